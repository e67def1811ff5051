package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"reachdesk/internal/application/auth"
	contactuc "reachdesk/internal/application/contact/usecases"
	"reachdesk/internal/application/event"
	"reachdesk/internal/application/organization"
	ticketuc "reachdesk/internal/application/ticket/usecases"
	vo "reachdesk/internal/domain/ticket/valueobjects"
	"reachdesk/internal/infrastructure/cache"
	"reachdesk/internal/infrastructure/config"
	"reachdesk/internal/infrastructure/crm"
	"reachdesk/internal/interfaces/http/handlers"
	"reachdesk/internal/interfaces/http/middleware"
	"reachdesk/internal/shared/logger"
)

// Router wires the console's HTTP surface: server-rendered pages plus the
// JSON endpoints the pages call. All state lives in the CRM backend; every
// handler works off the session cookies the middleware put into the request
// context.
type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	ticketH     *handlers.TicketHandler
	contactH    *handlers.ContactHandler
	orgH        *handlers.OrganizationHandler
	eventH      *handlers.EventHandler
	authH       *handlers.AuthHandler
	pageH       *handlers.PageHandler
	rateLimiter *middleware.RateLimiter
	requestLog  logger.Interface
}

// NewRouter creates the router and every dependency behind it.
func NewRouter(cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(resolveGinMode(cfg.Server.Mode))
	engine := gin.New()

	crmOpts := []crm.Option{crm.WithTimeout(cfg.Backend.Timeout())}
	if cfg.Backend.LegacyNumericStatus {
		crmOpts = append(crmOpts, crm.WithLegacyNumericEncoding())
	}
	crmClient := crm.NewClient(cfg.Backend.BaseURL, crmOpts...)

	searchCache := cache.NewSearchCache(redisClient, cfg.Search.CacheTTL())

	responseCache := ticketuc.NewResponseCache(crmClient, log)
	listTicketsUC := ticketuc.NewListTicketsUseCase(crmClient, log)
	getTicketUC := ticketuc.NewGetTicketUseCase(crmClient, responseCache, log)
	changeStatusUC := ticketuc.NewChangeStatusUseCase(crmClient, log)
	toggleClaimUC := ticketuc.NewToggleClaimUseCase(crmClient, getTicketUC, log)
	addCommentUC := ticketuc.NewAddCommentUseCase(crmClient, log)
	recordResponseUC := ticketuc.NewRecordResponseUseCase(crmClient, responseCache, log)

	searchPeopleUC := contactuc.NewSearchPeopleUseCase(crmClient, searchCache, log)
	listPeopleUC := contactuc.NewListPeopleUseCase(crmClient, log)
	createPersonUC := contactuc.NewCreatePersonUseCase(crmClient, searchCache, log)
	getPersonUC := contactuc.NewGetPersonUseCase(crmClient, log)
	listTagsUC := contactuc.NewListTagsUseCase(crmClient, log)

	orgService := organization.NewService(crmClient, log)
	eventService := event.NewService(crmClient, log)
	authService := auth.NewService(crmClient, log)

	cookieSecure := cfg.Server.Mode == "release"

	return &Router{
		engine:   engine,
		cfg:      cfg,
		ticketH:  handlers.NewTicketHandler(listTicketsUC, getTicketUC, changeStatusUC, toggleClaimUC, addCommentUC, recordResponseUC),
		contactH: handlers.NewContactHandler(searchPeopleUC, listPeopleUC, createPersonUC, getPersonUC, listTagsUC),
		orgH:     handlers.NewOrganizationHandler(orgService),
		eventH:   handlers.NewEventHandler(eventService),
		authH:    handlers.NewAuthHandler(authService, cookieSecure),
		pageH:    handlers.NewPageHandler(listTicketsUC, getTicketUC, listPeopleUC, orgService, eventService, authService),
		rateLimiter: middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Limit,
			cfg.RateLimit.Window(),
		),
		requestLog: log,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.requestLog))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	if r.cfg.RateLimit.Enabled {
		r.engine.Use(r.rateLimiter.Limit())
	}
	r.engine.Use(middleware.CSRF())

	r.engine.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"statuses": func() []string {
			return []string{
				vo.StatusOpen.String(),
				vo.StatusTodo.String(),
				vo.StatusInProgress.String(),
				vo.StatusBlocked.String(),
				vo.StatusCompleted.String(),
				vo.StatusCanceled.String(),
			}
		},
	})
	if r.cfg.Server.TemplateGlob != "" {
		r.engine.LoadHTMLGlob(r.cfg.Server.TemplateGlob)
	}
	if r.cfg.Server.StaticDir != "" {
		r.engine.Static("/static", r.cfg.Server.StaticDir)
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.GET("/login", r.pageH.LoginPage)
	r.engine.POST("/login", r.authH.Login)
	r.engine.POST("/logout", r.authH.Logout)

	pages := r.engine.Group("/")
	pages.Use(middleware.RequireSession())
	{
		pages.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/tickets")
		})
		pages.GET("/tickets", r.pageH.TicketsPage)
		pages.GET("/tickets/:id", r.pageH.TicketDetailPage)
		pages.GET("/people", r.pageH.PeoplePage)
		pages.GET("/groups", r.pageH.GroupsPage)
		pages.GET("/events", r.pageH.EventsPage)
		pages.GET("/events/:id", r.pageH.EventDetailPage)
	}

	api := r.engine.Group("/api/console")
	api.Use(middleware.RequireSession())
	{
		api.GET("/me", r.authH.CurrentUser)

		tickets := api.Group("/tickets")
		{
			tickets.GET("", r.ticketH.ListTickets)
			tickets.GET("/:id", r.ticketH.GetTicket)
			tickets.POST("/:id/status", r.ticketH.ChangeStatus)
			tickets.POST("/:id/claim", r.ticketH.ToggleClaim)
			tickets.POST("/:id/comments", r.ticketH.AddComment)
			tickets.PUT("/:id/responses", r.ticketH.RecordResponse)
		}

		people := api.Group("/people")
		{
			people.GET("/search", r.contactH.SearchPeople)
			people.GET("", r.contactH.ListPeople)
			people.GET("/:did", r.contactH.GetPerson)
			people.POST("", r.contactH.CreatePerson)
		}
		api.GET("/tags", r.contactH.ListTags)

		groups := api.Group("/groups")
		{
			groups.GET("", r.orgH.ListGroups)
			groups.POST("", r.orgH.CreateGroup)
			groups.DELETE("/:id", r.orgH.DeleteGroup)
			groups.GET("/:id/members", r.orgH.ListMemberships)
			groups.POST("/:id/members", r.orgH.AddMembership)
		}
		api.PATCH("/memberships/:membershipID", r.orgH.UpdateMembership)
		api.DELETE("/memberships/:membershipID", r.orgH.RemoveMembership)

		roles := api.Group("/roles")
		{
			roles.GET("", r.orgH.ListGeneralRoles)
			roles.POST("", r.orgH.GrantGeneralRole)
			roles.PATCH("/:id", r.orgH.UpdateGeneralRole)
			roles.DELETE("/:id", r.orgH.RevokeGeneralRole)
		}

		events := api.Group("/events")
		{
			events.GET("", r.eventH.ListEvents)
			events.GET("/:id", r.eventH.GetEvent)
		}
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func resolveGinMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
