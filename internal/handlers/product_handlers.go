package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

// GetProducts is the handler for GET /v1/products. The catalog is sorted
// by name, the order the storefront lists it in.
func (h *Handlers) GetProducts(c *gin.Context) {
	var products []models.Product
	err := h.Store.Collection(ColProducts).All(c.Request.Context(), bson.M{}, bson.D{{Key: "name", Value: 1}}, &products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	var product models.Product
	err := h.Store.Collection(ColProducts).Get(c.Request.Context(), c.Param("id"), &product)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

type ProductInput struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description" binding:"required"`
	Price       string                `json:"price" binding:"required"`
	Image       string                `json:"image" binding:"required"`
	Images      []models.ProductImage `json:"images"`
	ModelURL    string                `json:"modelUrl"`
	Details     models.ProductDetails `json:"details" binding:"required"`
}

// CreateProduct is the handler for POST /v1/admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := decimal.NewFromString(input.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a decimal amount"})
		return
	}

	product := models.Product{
		ID:          store.NewID(),
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Images:      input.Images,
		ModelURL:    input.ModelURL,
		Details:     input.Details,
		CreatedAt:   nowISO(),
	}
	if err := h.Store.Collection(ColProducts).Set(c.Request.Context(), product.ID, product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct is the handler for PUT /v1/admin/products/:id. Existing
// orders keep their product snapshot; this only changes the catalog.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := decimal.NewFromString(input.Price); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a decimal amount"})
		return
	}

	id := c.Param("id")
	err := h.Store.Collection(ColProducts).Update(c.Request.Context(), id, bson.M{
		"name":        input.Name,
		"slug":        slug.Make(input.Name),
		"description": input.Description,
		"price":       input.Price,
		"image":       input.Image,
		"images":      input.Images,
		"modelUrl":    input.ModelURL,
		"details":     input.Details,
		"updatedAt":   nowISO(),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct is the handler for DELETE /v1/admin/products/:id. The
// delete is hard; there is no archival state.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	err := h.Store.Collection(ColProducts).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
