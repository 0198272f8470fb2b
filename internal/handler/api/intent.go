package api

import (
	"errors"
	"net/http"

	reqdto "campus-barter/internal/handler/dto/request"
	resdto "campus-barter/internal/handler/dto/response"
	"campus-barter/internal/handler/middleware"
	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type IntentHandler struct {
	intentCommands commands.IntentCommands
	intentQueries  queries.IntentQueries
}

func NewIntentHandler(intentCommands commands.IntentCommands, intentQueries queries.IntentQueries) *IntentHandler {
	return &IntentHandler{
		intentCommands: intentCommands,
		intentQueries:  intentQueries,
	}
}

// @Summary Submit barter intent
// @Description Register a barter intent and trigger the matching search
// @Tags barter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Barter intent request"
// @Success 201 {object} resdto.SubmitIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /barter/intents [post]
func (h *IntentHandler) SubmitIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.intentCommands.SubmitIntent(c.Request.Context(), commands.SubmitIntentRequest{
		ItemID:          req.ItemID,
		WantCategory:    req.WantCategory,
		WantDescription: req.WantDescription,
		Emergency:       req.Emergency,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errors.Is(err, commands.ErrItemNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Item does not belong to user",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid barter intent data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitIntentResult(result))
}

// @Summary List my barter intents
// @Description List active barter intents of the authenticated user
// @Tags barter
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.IntentResponse
// @Router /barter/intents [get]
func (h *IntentHandler) ListMyIntents(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	intents, err := h.intentQueries.ListActiveByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntentViews(intents))
}
