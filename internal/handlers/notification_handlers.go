package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

// GetMyNotifications is the handler for GET /v1/notifications, newest
// first.
func (h *Handlers) GetMyNotifications(c *gin.Context) {
	var list []models.Notification
	err := h.Store.Collection(ColNotifications).All(c.Request.Context(),
		bson.M{"userId": userID(c)}, bson.D{{Key: "createdAt", Value: -1}}, &list)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	if list == nil {
		list = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// MarkNotificationAsRead is the handler for PATCH /v1/notifications/:id/read.
// Only the notification's owner may mark it.
func (h *Handlers) MarkNotificationAsRead(c *gin.Context) {
	coll := h.Store.Collection(ColNotifications)

	var n models.Notification
	if err := coll.Get(c.Request.Context(), c.Param("id"), &n); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notification"})
		return
	}
	if n.UserID != userID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	if err := coll.Update(c.Request.Context(), n.ID, bson.M{"isRead": true}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
