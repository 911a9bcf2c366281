package routes

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zelligewear/zellige-api/internal/handlers"
	"github.com/zelligewear/zellige-api/internal/middleware"
)

// SetupRouter builds the full route table. The storefront frontend is the
// only intended CORS origin.
func SetupRouter(h *handlers.Handlers, db *mongo.Database) *gin.Engine {
	router := gin.Default()

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth (public) ---
		v1.POST("/auth/signup", h.Signup)
		v1.POST("/auth/login", h.Login)
		v1.POST("/auth/reset-password", h.RequestPasswordReset)

		// --- Public catalog & site content ---
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/products/:id/reviews", h.GetProductReviews)
		v1.GET("/products/:id/likes", h.GetLikeCount)

		v1.GET("/partners", h.GetPartners)
		v1.GET("/partners/:id", h.GetPartner)

		v1.GET("/content/story", h.GetStory)
		v1.GET("/content/pages/:id", h.GetPage)
		v1.GET("/content/events", h.GetEvents)
		v1.GET("/settings", h.GetSettings)

		v1.POST("/messages", h.CreateMessage)
		v1.POST("/subscribers", h.Subscribe)

		// --- Signed-in routes ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware(db))
		{
			auth.GET("/profile/me", h.GetProfile)

			auth.GET("/cart", h.GetCart)
			auth.POST("/cart/items", h.AddToCart)
			auth.PUT("/cart/items/:productId", h.UpdateCartItem)
			auth.DELETE("/cart/items/:productId", h.DeleteCartItem)
			auth.POST("/cart/clear", h.ClearCart)

			auth.POST("/checkout/product", h.CheckoutProduct)
			auth.POST("/checkout/cart", h.CheckoutCart)

			auth.GET("/orders", h.GetMyOrders)
			auth.GET("/orders/:id", h.GetOrder)

			auth.GET("/products/:id/eligible-order", h.GetEligibleOrder)
			auth.POST("/reviews", h.AddReview)

			auth.GET("/likes", h.GetMyLikes)
			auth.POST("/products/:id/like", h.ToggleLike)

			auth.GET("/notifications", h.GetMyNotifications)
			auth.PATCH("/notifications/:id/read", h.MarkNotificationAsRead)
		}

		// --- Admin-only routes ---
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(db))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.GET("/orders", h.GetAllOrders)
			// Not under /orders/:id: gin cannot mix a static segment
			// with a param at the same position.
			admin.GET("/orders-stream", h.StreamOrders)
			admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)
			admin.DELETE("/orders/:id", h.DeleteOrder)

			admin.DELETE("/reviews/:id", h.DeleteReview)
			admin.POST("/reviews/:id/reply", h.AddAdminReply)
			admin.PUT("/reviews/:id/reply", h.UpdateAdminReply)
			admin.DELETE("/reviews/:id/reply", h.DeleteAdminReply)

			admin.POST("/partners", h.CreatePartner)
			admin.PUT("/partners/:id", h.UpdatePartner)
			admin.DELETE("/partners/:id", h.DeletePartner)

			admin.GET("/messages", h.GetMessages)
			admin.DELETE("/messages/:id", h.DeleteMessage)
			admin.GET("/subscribers", h.GetSubscribers)

			admin.PUT("/content/story", h.UpdateStory)
			admin.PUT("/content/pages/:id", h.UpdatePage)
			admin.POST("/content/events", h.CreateEvent)
			admin.PUT("/content/events/:id", h.UpdateEvent)
			admin.DELETE("/content/events/:id", h.DeleteEvent)
			admin.PUT("/settings", h.UpdateSettings)

			admin.GET("/dashboard-stats", h.GetDashboardStats)
		}
	}

	return router
}
