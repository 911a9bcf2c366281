package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

// GetMyLikes is the handler for GET /v1/likes.
func (h *Handlers) GetMyLikes(c *gin.Context) {
	var likes []models.Like
	err := h.Store.Collection(ColLikes).All(c.Request.Context(),
		bson.M{"userId": userID(c)}, nil, &likes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
		return
	}
	if likes == nil {
		likes = []models.Like{}
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// ToggleLike is the handler for POST /v1/products/:id/like. Existence of
// the (user, product) pair is the liked state, so the toggle either
// deletes or creates the document.
func (h *Handlers) ToggleLike(c *gin.Context) {
	uid := userID(c)
	productID := c.Param("id")
	coll := h.Store.Collection(ColLikes)

	var existing models.Like
	err := coll.FindOne(c.Request.Context(), bson.M{"userId": uid, "productId": productID}, &existing)
	switch {
	case err == nil:
		if err := coll.Delete(c.Request.Context(), existing.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"liked": false})
	case errors.Is(err, store.ErrNotFound):
		like := models.Like{
			ID:        store.NewID(),
			UserID:    uid,
			ProductID: productID,
			CreatedAt: nowISO(),
		}
		if err := coll.Set(c.Request.Context(), like.ID, like); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"liked": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorite"})
	}
}

// GetLikeCount is the handler for GET /v1/products/:id/likes.
func (h *Handlers) GetLikeCount(c *gin.Context) {
	count, err := h.Store.Collection(ColLikes).Count(c.Request.Context(),
		bson.M{"productId": c.Param("id")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count likes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
