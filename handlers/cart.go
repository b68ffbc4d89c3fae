package handlers

import (
	"net/http"

	"utflykt/models"
	"utflykt/services/cart"
	"utflykt/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the cart CRUD endpoints.
type CartHandler struct {
	Service cart.CartService
}

// NewCartHandler creates a CartHandler over the given service.
func NewCartHandler(service cart.CartService) *CartHandler {
	return &CartHandler{Service: service}
}

// GetCartHandler returns the cart's items together with its derived values.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	cartID := c.Param("cartID")
	items, err := h.Service.Items(c.Request.Context(), cartID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"isEmpty":   len(items) == 0,
		"itemCount": len(items),
	})
}

// UpsertCartItemHandler inserts a booking into the cart, replacing any item
// with the same excursion and dates.
func (h *CartHandler) UpsertCartItemHandler(c *gin.Context) {
	cartID := c.Param("cartID")
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart item", err.Error())
		return
	}
	if item.ExcursionID == "" || item.StartDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart item", "excursionId and startDate are required")
		return
	}
	stored, err := h.Service.Upsert(c.Request.Context(), cartID, item)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, stored)
}

// RemoveCartItemHandler removes the booking matching the given key. Removing
// a booking that is not in the cart succeeds without effect.
func (h *CartHandler) RemoveCartItemHandler(c *gin.Context) {
	cartID := c.Param("cartID")
	var key models.CartItemKey
	if err := c.ShouldBindJSON(&key); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cart item key", err.Error())
		return
	}
	if err := h.Service.Remove(c.Request.Context(), cartID, key); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearCartHandler empties the cart.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	cartID := c.Param("cartID")
	if err := h.Service.Clear(c.Request.Context(), cartID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear cart", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
