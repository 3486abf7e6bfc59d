package v1

import (
	"venturehive/internal/delivery/http/handler"
	"venturehive/internal/delivery/http/middleware"
	"venturehive/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles everything the v1 API surface mounts. The app container
// builds it; routing stays wiring-only.
type Handlers struct {
	Auth         *handler.AuthHandler
	Investor     *handler.InvestorHandler
	Project      *handler.ProjectHandler
	Comment      *handler.CommentHandler
	Engagement   *handler.EngagementHandler
	Contact      *handler.ContactHandler
	DealRoom     *handler.DealRoomHandler
	Subscription *handler.SubscriptionHandler
	Match        *handler.MatchHandler
	Insight      *handler.InsightHandler
}

func Register(r fiber.Router, h Handlers, authMW *middleware.AuthMiddleware) {
	if r == nil || authMW == nil {
		return
	}

	h.Auth.RegisterRoutes(r.Group("/auth"))

	// Anonymous browsing of published listings.
	publicProjects := r.Group("/projects")
	h.Project.RegisterPublic(publicProjects)
	h.Insight.RegisterPublic(publicProjects)

	protected := r.Group("", authMW.Middleware())

	protectedProjects := protected.Group("/projects")
	h.Engagement.RegisterRoutes(protectedProjects)
	h.Comment.RegisterRoutes(protectedProjects)

	h.Match.RegisterRoutes(protected.Group("/matches"))
	h.DealRoom.RegisterRoutes(protected.Group("/deal-rooms"))
	h.Subscription.RegisterRoutes(protected.Group("/subscriptions"))

	founder := protected.Group("", authMW.RequireRole(user.RoleFounder))
	h.Project.RegisterFounder(founder.Group("/projects"))
	h.Insight.RegisterFounder(founder.Group("/projects"))
	h.Contact.RegisterFounder(founder)

	investor := protected.Group("", authMW.RequireRole(user.RoleInvestor))
	h.Investor.RegisterRoutes(investor.Group("/investors"))
	h.Contact.RegisterInvestor(investor)
}
