package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reachdesk/internal/application/contact/usecases"
	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/constants"
	"reachdesk/internal/shared/errors"
	"reachdesk/internal/shared/logger"
	"reachdesk/internal/shared/utils"
)

type ContactHandler struct {
	searchPeopleUC *usecases.SearchPeopleUseCase
	listPeopleUC   *usecases.ListPeopleUseCase
	createPersonUC *usecases.CreatePersonUseCase
	getPersonUC    *usecases.GetPersonUseCase
	listTagsUC     *usecases.ListTagsUseCase
	logger         logger.Interface
}

func NewContactHandler(
	searchPeopleUC *usecases.SearchPeopleUseCase,
	listPeopleUC *usecases.ListPeopleUseCase,
	createPersonUC *usecases.CreatePersonUseCase,
	getPersonUC *usecases.GetPersonUseCase,
	listTagsUC *usecases.ListTagsUseCase,
) *ContactHandler {
	return &ContactHandler{
		searchPeopleUC: searchPeopleUC,
		listPeopleUC:   listPeopleUC,
		createPersonUC: createPersonUC,
		getPersonUC:    getPersonUC,
		listTagsUC:     listTagsUC,
		logger:         logger.NewLogger(),
	}
}

type CreatePersonRequest struct {
	DID    string  `json:"did" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	TagIDs []int   `json:"tags"`
}

// SearchResponse carries the search results together with the sequence
// number the client sent. The client compares it against the highest
// sequence it has rendered and drops anything older, so responses that
// arrive out of order never overwrite fresher results.
type SearchResponse struct {
	Seq    uint64           `json:"seq"`
	Query  string           `json:"query"`
	People []contact.Person `json:"people"`
}

func (h *ContactHandler) SearchPeople(c *gin.Context) {
	var seq uint64
	if seqStr := c.Query("seq"); seqStr != "" {
		parsed, err := strconv.ParseUint(seqStr, 10, 64)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid seq parameter"))
			return
		}
		seq = parsed
	}

	result, err := h.searchPeopleUC.Execute(c.Request.Context(), usecases.SearchPeopleQuery{
		Query: c.Query("q"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", SearchResponse{
		Seq:    seq,
		Query:  result.Query,
		People: result.People,
	})
}

func (h *ContactHandler) ListPeople(c *gin.Context) {
	query, err := parseListPeopleQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPeopleUC.Execute(c.Request.Context(), *query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.People, result.Total, result.Page, result.PageSize)
}

func (h *ContactHandler) GetPerson(c *gin.Context) {
	person, err := h.getPersonUC.Execute(c.Request.Context(), usecases.GetPersonQuery{
		PersonID: c.Param("did"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", person)
}

func (h *ContactHandler) CreatePerson(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create person", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	person, err := h.createPersonUC.Execute(c.Request.Context(), usecases.CreatePersonCommand{
		DID:    req.DID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		TagIDs: req.TagIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, person, "Person created successfully")
}

func (h *ContactHandler) ListTags(c *gin.Context) {
	tags, err := h.listTagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tags)
}

func parseListPeopleQuery(c *gin.Context) (*usecases.ListPeopleQuery, error) {
	query := &usecases.ListPeopleQuery{
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

	if groupStr := c.Query("group"); groupStr != "" {
		groupID, err := strconv.Atoi(groupStr)
		if err != nil || groupID <= 0 {
			return nil, errors.NewValidationError("invalid group parameter")
		}
		query.GroupID = &groupID
	}

	if tagStr := c.Query("tag"); tagStr != "" {
		tagID, err := strconv.Atoi(tagStr)
		if err != nil || tagID <= 0 {
			return nil, errors.NewValidationError("invalid tag parameter")
		}
		query.TagID = &tagID
	}

	return query, nil
}
