package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/application/auth"
	contactuc "reachdesk/internal/application/contact/usecases"
	"reachdesk/internal/application/event"
	"reachdesk/internal/application/organization"
	ticketuc "reachdesk/internal/application/ticket/usecases"
	"reachdesk/internal/domain/account"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

// PageHandler serves the server-rendered console pages. Pages carry only the
// initial state; subsequent interaction goes through the JSON endpoints.
type PageHandler struct {
	listTicketsUC *ticketuc.ListTicketsUseCase
	getTicketUC   *ticketuc.GetTicketUseCase
	listPeopleUC  *contactuc.ListPeopleUseCase
	orgService    *organization.Service
	eventService  *event.Service
	authService   *auth.Service
	logger        logger.Interface
}

func NewPageHandler(
	listTicketsUC *ticketuc.ListTicketsUseCase,
	getTicketUC *ticketuc.GetTicketUseCase,
	listPeopleUC *contactuc.ListPeopleUseCase,
	orgService *organization.Service,
	eventService *event.Service,
	authService *auth.Service,
) *PageHandler {
	return &PageHandler{
		listTicketsUC: listTicketsUC,
		getTicketUC:   getTicketUC,
		listPeopleUC:  listPeopleUC,
		orgService:    orgService,
		eventService:  eventService,
		authService:   authService,
		logger:        logger.NewLogger(),
	}
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Next": c.Query("next"),
	})
}

func (h *PageHandler) TicketsPage(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		h.errorPage(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), *query)
	if err != nil {
		h.errorPage(c, http.StatusBadGateway, "could not load tickets")
		return
	}

	c.HTML(http.StatusOK, "tickets.html", gin.H{
		"User":       h.currentUser(c),
		"Tickets":    result.Tickets,
		"Total":      result.Total,
		"Page":       result.Page,
		"PageSize":   result.PageSize,
		"TotalPages": result.TotalPages,
		"Query":      query.Query,
		"Status":     query.Status,
		"Type":       query.Type,
	})
}

func (h *PageHandler) TicketDetailPage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		h.errorPage(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), ticketuc.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		h.errorPage(c, http.StatusNotFound, "ticket not found")
		return
	}

	description, err := utils.RenderMarkdown(detail.Ticket.Description)
	if err != nil {
		h.logger.Warnw("failed to render ticket description", "ticket_id", ticketID, "error", err)
		description = template.HTML(template.HTMLEscapeString(detail.Ticket.Description))
	}

	c.HTML(http.StatusOK, "ticket_detail.html", gin.H{
		"User":             h.currentUser(c),
		"Ticket":           detail.Ticket,
		"Description":      description,
		"Responses":        detail.Responses,
		"AuditLog":         detail.AuditLog,
		"AvailableActions": detail.AvailableActions,
	})
}

func (h *PageHandler) PeoplePage(c *gin.Context) {
	query, err := parseListPeopleQuery(c)
	if err != nil {
		h.errorPage(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.listPeopleUC.Execute(c.Request.Context(), *query)
	if err != nil {
		h.errorPage(c, http.StatusBadGateway, "could not load people")
		return
	}

	c.HTML(http.StatusOK, "people.html", gin.H{
		"User":       h.currentUser(c),
		"People":     result.People,
		"Total":      result.Total,
		"Page":       result.Page,
		"PageSize":   result.PageSize,
		"TotalPages": result.TotalPages,
		"Query":      query.Query,
	})
}

func (h *PageHandler) GroupsPage(c *gin.Context) {
	groups, err := h.orgService.ListGroups(c.Request.Context())
	if err != nil {
		h.errorPage(c, http.StatusBadGateway, "could not load groups")
		return
	}

	c.HTML(http.StatusOK, "groups.html", gin.H{
		"User":   h.currentUser(c),
		"Groups": groups,
	})
}

func (h *PageHandler) EventsPage(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context(), nil)
	if err != nil {
		h.errorPage(c, http.StatusBadGateway, "could not load events")
		return
	}

	c.HTML(http.StatusOK, "events.html", gin.H{
		"User":   h.currentUser(c),
		"Events": events,
	})
}

func (h *PageHandler) EventDetailPage(c *gin.Context) {
	eid, err := parsePathID(c, "id")
	if err != nil {
		h.errorPage(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.eventService.GetEventDetail(c.Request.Context(), eid)
	if err != nil {
		h.errorPage(c, http.StatusNotFound, "event not found")
		return
	}

	c.HTML(http.StatusOK, "event_detail.html", gin.H{
		"User":         h.currentUser(c),
		"Event":        detail.Event,
		"Participants": detail.Participants,
	})
}

// currentUser resolves the navbar identity. A failure renders the page
// without it rather than blocking the whole view.
func (h *PageHandler) currentUser(c *gin.Context) *account.User {
	user, err := h.authService.CurrentUser(c.Request.Context())
	if err != nil {
		h.logger.Debugw("could not resolve current user", "error", err)
		return nil
	}
	return user
}

func (h *PageHandler) errorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
