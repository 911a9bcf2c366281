package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

// Well-known document ids in the 'content' collection.
const (
	docStory    = "story"
	docSettings = "general"
)

// GetStory is the handler for GET /v1/content/story.
func (h *Handlers) GetStory(c *gin.Context) {
	var story models.Story
	err := h.Store.Collection(ColContent).Get(c.Request.Context(), docStory, &story)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch story"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"story": story})
}

// UpdateStory is the handler for PUT /v1/admin/content/story.
func (h *Handlers) UpdateStory(c *gin.Context) {
	var story models.Story
	if err := c.ShouldBindJSON(&story); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.Collection(ColContent).Set(c.Request.Context(), docStory, story); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update story"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"story": story})
}

// GetPage is the handler for GET /v1/content/pages/:id (contact, faq,
// shipping, returns).
func (h *Handlers) GetPage(c *gin.Context) {
	var page models.ContentPage
	err := h.Store.Collection(ColContent).Get(c.Request.Context(), c.Param("id"), &page)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

type PageInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdatePage is the handler for PUT /v1/admin/content/pages/:id. Pages are
// created on first save.
func (h *Handlers) UpdatePage(c *gin.Context) {
	var input PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page := models.ContentPage{
		ID:          c.Param("id"),
		Title:       input.Title,
		Content:     input.Content,
		LastUpdated: nowISO(),
	}
	if err := h.Store.Collection(ColContent).Set(c.Request.Context(), page.ID, page); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

// GetEvents is the handler for GET /v1/content/events, soonest first.
func (h *Handlers) GetEvents(c *gin.Context) {
	var events []models.Event
	err := h.Store.Collection(ColEvents).All(c.Request.Context(),
		bson.M{}, bson.D{{Key: "date", Value: 1}}, &events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type EventInput struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CreateEvent is the handler for POST /v1/admin/content/events.
func (h *Handlers) CreateEvent(c *gin.Context) {
	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		ID:          store.NewID(),
		Title:       input.Title,
		Date:        input.Date,
		Location:    input.Location,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := h.Store.Collection(ColEvents).Set(c.Request.Context(), event.ID, event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// UpdateEvent is the handler for PUT /v1/admin/content/events/:id.
func (h *Handlers) UpdateEvent(c *gin.Context) {
	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Store.Collection(ColEvents).Update(c.Request.Context(), c.Param("id"), bson.M{
		"title":       input.Title,
		"date":        input.Date,
		"location":    input.Location,
		"description": input.Description,
		"image":       input.Image,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

// DeleteEvent is the handler for DELETE /v1/admin/content/events/:id.
func (h *Handlers) DeleteEvent(c *gin.Context) {
	err := h.Store.Collection(ColEvents).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// GetSettings is the handler for GET /v1/settings. Missing settings come
// back as the zero document; the storefront fills in its own defaults.
func (h *Handlers) GetSettings(c *gin.Context) {
	var settings models.Settings
	err := h.Store.Collection(ColSettings).Get(c.Request.Context(), docSettings, &settings)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings is the handler for PUT /v1/admin/settings.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.Collection(ColSettings).Set(c.Request.Context(), docSettings, settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
