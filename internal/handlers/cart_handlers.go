package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

func userID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

// GetCart is the handler for GET /v1/cart. The cart lives in server
// memory only; it is never persisted.
func (h *Handlers) GetCart(c *gin.Context) {
	uid := userID(c)
	items := h.Cart.Items(uid)
	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"itemCount": h.Cart.ItemCount(uid),
		"total":     h.Cart.Total(uid),
	})
}

type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddToCart is the handler for POST /v1/cart/items. The product, including
// its current price, is snapshotted into the cart line at add time.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	err := h.Store.Collection(ColProducts).Get(c.Request.Context(), input.ProductID, &product)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	uid := userID(c)
	h.Cart.AddItem(uid, product)
	c.JSON(http.StatusOK, gin.H{
		"items":     h.Cart.Items(uid),
		"itemCount": h.Cart.ItemCount(uid),
		"total":     h.Cart.Total(uid),
	})
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:productId.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := userID(c)
	h.Cart.UpdateQuantity(uid, c.Param("productId"), input.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"items":     h.Cart.Items(uid),
		"itemCount": h.Cart.ItemCount(uid),
		"total":     h.Cart.Total(uid),
	})
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:productId.
// Removing an absent product is a no-op, not an error.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	uid := userID(c)
	h.Cart.RemoveItem(uid, c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{
		"items":     h.Cart.Items(uid),
		"itemCount": h.Cart.ItemCount(uid),
		"total":     h.Cart.Total(uid),
	})
}

// ClearCart is the handler for POST /v1/cart/clear.
func (h *Handlers) ClearCart(c *gin.Context) {
	h.Cart.Clear(userID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
