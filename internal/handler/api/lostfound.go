package api

import (
	"errors"
	"net/http"

	reqdto "campus-barter/internal/handler/dto/request"
	resdto "campus-barter/internal/handler/dto/response"
	"campus-barter/internal/handler/httperr"
	"campus-barter/internal/handler/middleware"
	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LostFoundHandler struct {
	cmds commands.LostFoundCommands
	q    queries.LostFoundQueries
}

func NewLostFoundHandler(cmds commands.LostFoundCommands, q queries.LostFoundQueries) *LostFoundHandler {
	return &LostFoundHandler{cmds: cmds, q: q}
}

// @Summary Create lost and found posting
// @Description Report a lost or found item
// @Tags lost-found
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePostingRequest true "Posting request"
// @Success 201 {object} resdto.LostFoundResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lost-found [post]
func (h *LostFoundHandler) CreatePosting(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("user id missing from context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	result, err := h.cmds.CreatePosting(c.Request.Context(), commands.CreatePostingRequest{
		ItemName:    req.ItemName,
		Category:    req.Category,
		Description: req.Description,
		Kind:        req.Kind,
		PhotoURL:    req.PhotoURL,
	}, userID)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid posting data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create posting failed", nil)
		return
	}
	posting, err := h.q.GetByID(c.Request.Context(), result.PostingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load posting", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLostFoundView(posting))
}

// @Summary Get lost and found posting
// @Description Get a posting by ID
// @Tags lost-found
// @Security BearerAuth
// @Produce json
// @Param id path string true "Posting ID"
// @Success 200 {object} resdto.LostFoundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lost-found/{id} [get]
func (h *LostFoundHandler) GetPosting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid posting ID", nil)
		return
	}
	posting, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrPostingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Posting not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load posting", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLostFoundView(posting))
}

// @Summary Browse lost and found board
// @Description List active postings, optionally filtered by kind or category
// @Tags lost-found
// @Security BearerAuth
// @Produce json
// @Param kind query string false "lost or found"
// @Param category query string false "Category filter"
// @Success 200 {array} resdto.LostFoundResponse
// @Router /lost-found [get]
func (h *LostFoundHandler) ListPostings(c *gin.Context) {
	filter := queries.LostFoundFilter{
		Kind:     c.Query("kind"),
		Category: c.Query("category"),
	}
	postings, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list postings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLostFoundViews(postings))
}
