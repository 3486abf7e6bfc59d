package handler

import (
	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/pkg/response"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultRankLimit = 10

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/projects/:projectID/investors/:investorID", h.ScorePair)
	r.Get("/projects/:projectID/investors", h.RankInvestors)
}

func (h *MatchHandler) ScorePair(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}
	investorID, err := pathUUID(c, "investorID")
	if err != nil {
		return err
	}

	res, err := h.uc.ScorePair(c.Context(), projectID, investorID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StoredMatchResponse{
		ProjectID:  projectID,
		InvestorID: investorID,
		Match:      dto.NewMatchResultResponse(res),
	})
}

func (h *MatchHandler) RankInvestors(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	limit := fiber.Query(c, "limit", defaultRankLimit)
	ranked, err := h.uc.RankInvestors(c.Context(), projectID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK,
		dto.NewRankedMatchListResponse(ranked),
		response.Meta{Limit: limit, Count: len(ranked)},
	)
}
