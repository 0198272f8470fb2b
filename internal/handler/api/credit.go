package api

import (
	"net/http"
	"strconv"

	resdto "campus-barter/internal/handler/dto/response"
	"campus-barter/internal/handler/middleware"
	"campus-barter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	creditQueries queries.CreditQueries
}

func NewCreditHandler(creditQueries queries.CreditQueries) *CreditHandler {
	return &CreditHandler{
		creditQueries: creditQueries,
	}
}

// @Summary Get my eco-credits
// @Description Get the authenticated user's eco-credit balance and ledger
// @Tags eco-credits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CreditBalanceResponse
// @Router /eco-credits [get]
func (h *CreditHandler) GetMyCredits(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	entries, err := h.creditQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	total, err := h.creditQueries.BalanceByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.CreditBalanceResponse{
		UserID:       userID,
		TotalCredits: total,
		Entries:      entries,
	})
}

// @Summary Eco-credit leaderboard
// @Description Top users by total eco-credits
// @Tags eco-credits
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of entries (default 10)"
// @Success 200 {object} resdto.LeaderboardResponse
// @Router /eco-credits/leaderboard [get]
func (h *CreditHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.creditQueries.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LeaderboardResponse{Leaderboard: entries})
}
