package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// CreateMessage is the handler for POST /v1/messages (the contact form).
func (h *Handlers) CreateMessage(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := models.Message{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: nowISO(),
	}
	if _, err := h.Store.Collection(ColMessages).AddAutoID(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// GetMessages is the handler for GET /v1/admin/messages, newest first.
func (h *Handlers) GetMessages(c *gin.Context) {
	var list []models.Message
	err := h.Store.Collection(ColMessages).All(c.Request.Context(),
		bson.M{}, bson.D{{Key: "createdAt", Value: -1}}, &list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	if list == nil {
		list = []models.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}

// DeleteMessage is the handler for DELETE /v1/admin/messages/:id.
func (h *Handlers) DeleteMessage(c *gin.Context) {
	err := h.Store.Collection(ColMessages).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe is the handler for POST /v1/subscribers (newsletter signup).
// Subscribing an address twice is rejected rather than duplicated.
func (h *Handlers) Subscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll := h.Store.Collection(ColSubscribers)
	var existing models.Subscriber
	err := coll.FindOne(c.Request.Context(), bson.M{"email": input.Email}, &existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already subscribed"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	sub := models.Subscriber{
		Email:        input.Email,
		SubscribedAt: nowISO(),
	}
	if _, err := coll.AddAutoID(c.Request.Context(), sub); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully"})
}

// GetSubscribers is the handler for GET /v1/admin/subscribers, newest
// first.
func (h *Handlers) GetSubscribers(c *gin.Context) {
	var list []models.Subscriber
	err := h.Store.Collection(ColSubscribers).All(c.Request.Context(),
		bson.M{}, bson.D{{Key: "subscribedAt", Value: -1}}, &list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}
	if list == nil {
		list = []models.Subscriber{}
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": list})
}
