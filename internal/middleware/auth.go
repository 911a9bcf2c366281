package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zelligewear/zellige-api/internal/auth"
	"github.com/zelligewear/zellige-api/internal/models"
)

// AuthMiddleware validates the bearer token and loads the user document so
// downstream handlers can read "userID" and "user" from the context.
func AuthMiddleware(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed authorization header"})
			return
		}

		userID, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User
		err = db.Collection("users").FindOne(c.Request.Context(), map[string]string{"_id": userID}).Decode(&user)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// AdminMiddleware gates dashboard routes on the user's admin capability.
// The flag lives on the user document and is checked here, at the API
// boundary, not just hidden in the UI.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRaw, exists := c.Get("user")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		user, ok := userRaw.(models.User)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the gin context.
func CurrentUser(c *gin.Context) models.User {
	user, _ := c.Get("user")
	u, _ := user.(models.User)
	return u
}
