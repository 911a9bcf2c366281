package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

// GetPartners is the handler for GET /v1/partners, sorted by name.
func (h *Handlers) GetPartners(c *gin.Context) {
	var partners []models.Partner
	err := h.Store.Collection(ColPartners).All(c.Request.Context(),
		bson.M{}, bson.D{{Key: "name", Value: 1}}, &partners)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partners"})
		return
	}
	if partners == nil {
		partners = []models.Partner{}
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// GetPartner is the handler for GET /v1/partners/:id.
func (h *Handlers) GetPartner(c *gin.Context) {
	var partner models.Partner
	err := h.Store.Collection(ColPartners).Get(c.Request.Context(), c.Param("id"), &partner)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

// CreatePartner is the handler for POST /v1/admin/partners.
func (h *Handlers) CreatePartner(c *gin.Context) {
	var partner models.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if partner.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Partner name is required"})
		return
	}

	partner.ID = store.NewID()
	if err := h.Store.Collection(ColPartners).Set(c.Request.Context(), partner.ID, partner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add partner"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"partner": partner})
}

// UpdatePartner is the handler for PUT /v1/admin/partners/:id. Full
// replace under the same id, the way the dashboard saves the edit form.
func (h *Handlers) UpdatePartner(c *gin.Context) {
	var partner models.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner.ID = c.Param("id")
	if err := h.Store.Collection(ColPartners).Set(c.Request.Context(), partner.ID, partner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partner": partner})
}

// DeletePartner is the handler for DELETE /v1/admin/partners/:id.
func (h *Handlers) DeletePartner(c *gin.Context) {
	err := h.Store.Collection(ColPartners).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted successfully"})
}
