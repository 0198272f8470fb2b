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
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemCommands commands.ItemCommands
	itemQueries  queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands: itemCommands,
		itemQueries:  itemQueries,
	}
}

// @Summary Create item
// @Description List a new item for swapping
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.itemCommands.CreateItem(c.Request.Context(), commands.CreateItemRequest{
		Name:       req.Name,
		Category:   req.Category,
		Condition:  req.Condition,
		Department: req.Department,
		PhotoURL:   req.PhotoURL,
	}, userID)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid item data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	item, err := h.itemQueries.GetByID(c.Request.Context(), result.ItemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(item))
}

// @Summary Browse items
// @Description List items, optionally filtered by category, department or status
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param category query string false "Category filter"
// @Param department query string false "Department filter"
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	filter := queries.ItemFilter{
		Category:   c.Query("category"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	}

	items, err := h.itemQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(items))
}

// @Summary Get item
// @Description Get one item by ID
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	item, err := h.itemQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(item))
}

// @Summary List my items
// @Description List items owned by the authenticated user
// @Tags items
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ItemResponse
// @Router /items/mine [get]
func (h *ItemHandler) ListMyItems(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.itemQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(items))
}
