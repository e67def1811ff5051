package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/application/organization"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

type OrganizationHandler struct {
	service *organization.Service
	logger  logger.Interface
}

func NewOrganizationHandler(service *organization.Service) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddMembershipRequest struct {
	PersonID string `json:"did" binding:"required"`
	Access   int    `json:"access_level" binding:"required"`
}

type UpdateMembershipRequest struct {
	Access int `json:"access_level" binding:"required"`
}

type GrantRoleRequest struct {
	PersonID string `json:"did" binding:"required"`
	Level    int    `json:"level"`
}

type UpdateRoleRequest struct {
	Level int `json:"level"`
}

func (h *OrganizationHandler) ListGroups(c *gin.Context) {
	groups, err := h.service.ListGroups(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", groups)
}

func (h *OrganizationHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create group", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	group, err := h.service.CreateGroup(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, group, "Group created successfully")
}

func (h *OrganizationHandler) DeleteGroup(c *gin.Context) {
	gid, err := parsePathID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteGroup(c.Request.Context(), gid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *OrganizationHandler) ListMemberships(c *gin.Context) {
	gid, err := parsePathID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	memberships, err := h.service.ListMemberships(c.Request.Context(), gid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", memberships)
}

func (h *OrganizationHandler) AddMembership(c *gin.Context) {
	gid, err := parsePathID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add membership", "group_id", gid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	membership, err := h.service.AddMembership(c.Request.Context(), req.PersonID, gid, req.Access)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, membership, "Member added to group")
}

func (h *OrganizationHandler) UpdateMembership(c *gin.Context) {
	id, err := parsePathID(c, "membershipID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update membership", "membership_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	membership, err := h.service.UpdateMembership(c.Request.Context(), id, req.Access)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership updated", membership)
}

func (h *OrganizationHandler) RemoveMembership(c *gin.Context) {
	id, err := parsePathID(c, "membershipID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveMembership(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *OrganizationHandler) ListGeneralRoles(c *gin.Context) {
	roles, err := h.service.ListGeneralRoles(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", roles)
}

func (h *OrganizationHandler) GrantGeneralRole(c *gin.Context) {
	var req GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for grant role", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	role, err := h.service.GrantGeneralRole(c.Request.Context(), req.PersonID, req.Level)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, role, "Role granted")
}

func (h *OrganizationHandler) UpdateGeneralRole(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update role", "role_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	role, err := h.service.UpdateGeneralRole(c.Request.Context(), id, req.Level)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", role)
}

func (h *OrganizationHandler) RevokeGeneralRole(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RevokeGeneralRole(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parsePathID(c *gin.Context, param string) (int, error) {
	idStr := c.Param(param)
	if idStr == "" {
		return 0, errors.NewValidationError(param + " is required")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("invalid " + param + " format")
	}

	return id, nil
}
