package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/application/event"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

type EventHandler struct {
	service *event.Service
	logger  logger.Interface
}

func NewEventHandler(service *event.Service) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var groupID *int
	if groupStr := c.Query("group"); groupStr != "" {
		gid, err := strconv.Atoi(groupStr)
		if err != nil || gid <= 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid group parameter"))
			return
		}
		groupID = &gid
	}

	events, err := h.service.ListEvents(c.Request.Context(), groupID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	eid, err := parsePathID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.service.GetEventDetail(c.Request.Context(), eid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", detail)
}
