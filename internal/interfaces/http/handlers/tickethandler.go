package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/application/ticket/usecases"
	"reachdesk/internal/domain/response"
	"reachdesk/internal/shared/constants"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

type TicketHandler struct {
	listTicketsUC    listTicketsUseCase
	getTicketUC      getTicketUseCase
	changeStatusUC   changeStatusUseCase
	toggleClaimUC    toggleClaimUseCase
	addCommentUC     addCommentUseCase
	recordResponseUC recordResponseUseCase
	logger           logger.Interface
}

func NewTicketHandler(
	listTicketsUC listTicketsUseCase,
	getTicketUC getTicketUseCase,
	changeStatusUC changeStatusUseCase,
	toggleClaimUC toggleClaimUseCase,
	addCommentUC addCommentUseCase,
	recordResponseUC recordResponseUseCase,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:    listTicketsUC,
		getTicketUC:      getTicketUC,
		changeStatusUC:   changeStatusUC,
		toggleClaimUC:    toggleClaimUC,
		addCommentUC:     addCommentUC,
		recordResponseUC: recordResponseUC,
		logger:           logger.NewLogger(),
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Message string `json:"message" binding:"required"`
}

type RecordResponseRequest struct {
	PersonID string `json:"did" binding:"required"`
	Value    int    `json:"value" binding:"required"`
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	query, err := parseListTicketsQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), *query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newTicketDetailResponse(detail))
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	updated, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", updated)
}

func (h *TicketHandler) ToggleClaim(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.toggleClaimUC.Execute(c.Request.Context(), usecases.ToggleClaimCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newTicketDetailResponse(detail))
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		Message:  req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, entry, "Comment added")
}

func (h *TicketHandler) RecordResponse(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record response", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	value, err := response.NewValue(req.Value)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	recorded, err := h.recordResponseUC.Execute(c.Request.Context(), usecases.RecordResponseCommand{
		TicketID: ticketID,
		PersonID: req.PersonID,
		Value:    value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response recorded", recorded)
}

func parseTicketID(c *gin.Context) (int, error) {
	idStr := c.Param("id")
	if idStr == "" {
		return 0, errors.NewValidationError("ticket ID is required")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("invalid ticket ID format")
	}

	return id, nil
}

func parseListTicketsQuery(c *gin.Context) (*usecases.ListTicketsQuery, error) {
	query := &usecases.ListTicketsQuery{
		Page:     constants.DefaultPage,
		PageSize: constants.DefaultPageSize,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return nil, errors.NewValidationError("invalid page parameter")
		}
		query.Page = page
	}

	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 1 {
			return nil, errors.NewValidationError("invalid page_size parameter")
		}
		if pageSize > constants.MaxPageSize {
			pageSize = constants.MaxPageSize
		}
		query.PageSize = pageSize
	}

	query.Query = c.Query("q")
	query.Status = c.Query("status")
	query.Type = c.Query("type")

	if priorityStr := c.Query("priority"); priorityStr != "" {
		priority, err := strconv.Atoi(priorityStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority parameter")
		}
		query.Priority = &priority
	}

	return query, nil
}
