package api

import (
	"errors"
	"net/http"

	resdto "campus-barter/internal/handler/dto/response"
	"campus-barter/internal/handler/middleware"
	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchCommands commands.MatchCommands
	matchQueries  queries.MatchQueries
}

func NewMatchHandler(matchCommands commands.MatchCommands, matchQueries queries.MatchQueries) *MatchHandler {
	return &MatchHandler{
		matchCommands: matchCommands,
		matchQueries:  matchQueries,
	}
}

// @Summary List my matches
// @Description List matches the authenticated user participates in
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.MatchResponse
// @Router /matches [get]
func (h *MatchHandler) ListMyMatches(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	matches, err := h.matchQueries.ListByParticipant(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchViews(matches))
}

// @Summary Get match
// @Description Get one match; only participants may see it
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid match ID",
		})
		return
	}

	match, err := h.matchQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Match not found",
			})
		case errors.Is(err, queries.ErrMatchAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "User is not part of this match",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchView(match))
}

// @Summary Accept match
// @Description Record acceptance; completes the match when everyone has accepted
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.AcceptMatchResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/accept [post]
func (h *MatchHandler) AcceptMatch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid match ID",
		})
		return
	}

	result, err := h.matchCommands.AcceptMatch(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Match not found",
			})
		case errors.Is(err, commands.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "User is not part of this match",
			})
		case errors.Is(err, commands.ErrCompletionTransaction):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Match completion failed; please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAcceptMatchResult(result))
}

// @Summary Reject match
// @Description Reject a pending match
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/reject [post]
func (h *MatchHandler) RejectMatch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid match ID",
		})
		return
	}

	if err := h.matchCommands.RejectMatch(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Match not found",
			})
		case errors.Is(err, commands.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "User is not part of this match",
			})
		case errors.Is(err, commands.ErrMatchNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Match is already resolved",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
