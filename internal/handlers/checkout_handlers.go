package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zelligewear/zellige-api/internal/checkout"
	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

type BuyNowInput struct {
	ProductID     string               `json:"productId" binding:"required"`
	Quantity      int                  `json:"quantity" binding:"required,min=1"`
	Color         string               `json:"color"`
	Size          string               `json:"size"`
	Contact       checkout.ContactInfo `json:"contact" binding:"required"`
	Address       checkout.Address     `json:"address" binding:"required"`
	TermsAccepted bool                 `json:"termsAccepted"`
}

// CheckoutProduct is the handler for POST /v1/checkout/product — the
// single-product "buy now" path. On success the user's cart is cleared,
// matching the storefront's modal flow.
func (h *Handlers) CheckoutProduct(c *gin.Context) {
	var input BuyNowInput
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
	order, err := h.Checkout.CheckoutProduct(c.Request.Context(), checkout.SingleInput{
		Product:       product,
		Quantity:      input.Quantity,
		Color:         input.Color,
		Size:          input.Size,
		Contact:       input.Contact,
		Address:       input.Address,
		TermsAccepted: input.TermsAccepted,
		UserID:        uid,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	h.Cart.Clear(uid)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

type CartCheckoutInput struct {
	Options       map[string]checkout.ItemOptions `json:"options"`
	Contact       checkout.ContactInfo            `json:"contact" binding:"required"`
	Address       checkout.Address                `json:"address" binding:"required"`
	TermsAccepted bool                            `json:"termsAccepted"`
}

// CheckoutCart is the handler for POST /v1/checkout/cart. One order per
// cart line, written atomically: if any line fails, no order is created
// and the cart is left untouched.
func (h *Handlers) CheckoutCart(c *gin.Context) {
	var input CartCheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := userID(c)
	orders, err := h.Checkout.CheckoutCart(c.Request.Context(), checkout.CartInput{
		Lines:         h.Cart.Items(uid),
		Options:       input.Options,
		Contact:       input.Contact,
		Address:       input.Address,
		TermsAccepted: input.TermsAccepted,
		UserID:        uid,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place orders"})
		return
	}

	h.Cart.Clear(uid)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Orders placed successfully",
		"orders":  orders,
	})
}
