package handler

import (
	"venturehive/internal/delivery/http/dto"
	"venturehive/internal/pkg/response"
	"venturehive/internal/repository"
	"venturehive/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultListLimit = 20

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectRequest struct {
	Title         string   `json:"title"`
	Pitch         string   `json:"pitch"`
	Sector        string   `json:"sector"`
	Stage         string   `json:"stage"`
	Location      string   `json:"location"`
	FundingAmount float64  `json:"funding_amount"`
	FundingType   string   `json:"funding_type"`
	ESGImpact     string   `json:"esg_impact"`
	Tags          []string `json:"tags"`
	WebsiteURL    *string  `json:"website_url"`
	TractionUsers int      `json:"traction_users"`
	Revenue       float64  `json:"revenue"`
	GrowthPercent float64  `json:"growth_percent"`
	TeamSize      int      `json:"team_size"`
	TeamNotes     string   `json:"team_notes"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// RegisterPublic wires the unauthenticated browse routes.
func (h *ProjectHandler) RegisterPublic(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/:projectID", h.Get)
}

// RegisterFounder wires the founder-only listing management routes.
func (h *ProjectHandler) RegisterFounder(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/mine", h.ListMine)
	r.Put("/:projectID", h.Update)
	r.Post("/:projectID/publish", h.Publish)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	proj, err := h.uc.Create(c.Context(), currentUserID(c), projectInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewProjectResponse(proj))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	proj, err := h.uc.Update(c.Context(), currentUserID(c), projectID, projectInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(proj))
}

func (h *ProjectHandler) Publish(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	proj, err := h.uc.Publish(c.Context(), currentUserID(c), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(proj))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	projectID, err := pathUUID(c, "projectID")
	if err != nil {
		return err
	}

	proj, err := h.uc.Get(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(proj))
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	filter := repository.ProjectListFilter{
		Sector: c.Query("sector"),
		Stage:  c.Query("stage"),
		Limit:  fiber.Query(c, "limit", defaultListLimit),
		Offset: fiber.Query(c, "offset", 0),
	}

	items, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK,
		dto.NewProjectListResponse(items),
		response.Meta{Limit: filter.Limit, Offset: filter.Offset, Count: len(items)},
	)
}

func (h *ProjectHandler) ListMine(c fiber.Ctx) error {
	items, err := h.uc.ListMine(c.Context(), currentUserID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectListResponse(items))
}

func projectInputFromRequest(req projectRequest) usecase.ProjectInput {
	return usecase.ProjectInput{
		Title:         req.Title,
		Pitch:         req.Pitch,
		Sector:        req.Sector,
		Stage:         req.Stage,
		Location:      req.Location,
		FundingAmount: req.FundingAmount,
		FundingType:   req.FundingType,
		ESGImpact:     req.ESGImpact,
		Tags:          req.Tags,
		WebsiteURL:    req.WebsiteURL,
		TractionUsers: req.TractionUsers,
		Revenue:       req.Revenue,
		GrowthPercent: req.GrowthPercent,
		TeamSize:      req.TeamSize,
		TeamNotes:     req.TeamNotes,
	}
}
