package http

import (
	"github.com/gin-gonic/gin"

	"github.com/roomnest-app/roomnest-backend/internal/delivery/http/handler"
	"github.com/roomnest-app/roomnest-backend/internal/delivery/http/middleware"
	"github.com/roomnest-app/roomnest-backend/internal/domain"
)

type Router struct {
	authHandler         *handler.AuthHandler
	propertyHandler     *handler.PropertyHandler
	roommateHandler     *handler.RoommateHandler
	reservationHandler  *handler.ReservationHandler
	reviewHandler       *handler.ReviewHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	staticDir           string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	roommateHandler *handler.RoommateHandler,
	reservationHandler *handler.ReservationHandler,
	reviewHandler *handler.ReviewHandler,
	notificationHandler *handler.NotificationHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	staticDir string,
) *Router {
	return &Router{
		authHandler:         authHandler,
		propertyHandler:     propertyHandler,
		roommateHandler:     roommateHandler,
		reservationHandler:  reservationHandler,
		reviewHandler:       reviewHandler,
		notificationHandler: notificationHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
		staticDir:           staticDir,
	}
}

func (r *Router) Setup() *gin.Engine {
	RegisterValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Uploaded photos are served straight off disk
	if r.staticDir != "" {
		router.Static("/uploads", r.staticDir)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Public listing routes
		v1.GET("/properties", r.propertyHandler.Search)
		v1.GET("/properties/:id", r.propertyHandler.Get)
		v1.GET("/properties/:id/reviews", r.reviewHandler.ListByProperty)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Landlord listing routes
			landlord := protected.Group("")
			landlord.Use(r.authMiddleware.RequireRole(domain.RoleLandlord, domain.RoleAdmin))
			{
				landlord.POST("/properties", r.propertyHandler.Create)
				landlord.PUT("/properties/:id", r.propertyHandler.Update)
				landlord.DELETE("/properties/:id", r.propertyHandler.Delete)
				landlord.GET("/properties/mine", r.propertyHandler.ListMine)
				landlord.POST("/properties/:id/photos", r.propertyHandler.UploadPhoto)
				landlord.POST("/properties/generate-description", r.propertyHandler.GenerateDescription)
				landlord.GET("/properties/:id/reservations", r.reservationHandler.ListForProperty)
			}

			// Roommate matching routes
			roommates := protected.Group("/roommates")
			{
				roommates.POST("", r.roommateHandler.CreateProfile)
				roommates.GET("/me", r.roommateHandler.GetMyProfile)
				roommates.PUT("/me", r.roommateHandler.UpdateMyProfile)
				roommates.DELETE("/me", r.roommateHandler.DeactivateMyProfile)
				roommates.GET("/matches", r.roommateHandler.FindMatches)
			}

			// Reservation routes
			reservations := protected.Group("/reservations")
			{
				reservations.POST("", r.reservationHandler.Create)
				reservations.GET("/mine", r.reservationHandler.ListMine)
				reservations.POST("/:id/approve", r.reservationHandler.Approve)
				reservations.POST("/:id/decline", r.reservationHandler.Decline)
				reservations.POST("/:id/cancel", r.reservationHandler.Cancel)
			}

			// Review routes
			protected.POST("/reviews", r.reviewHandler.Create)
			protected.DELETE("/reviews/:id", r.reviewHandler.Delete)

			// Notification routes
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", r.notificationHandler.List)
				notifications.GET("/unread-count", r.notificationHandler.UnreadCount)
				notifications.POST("/:id/read", r.notificationHandler.MarkRead)
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(r.authMiddleware.RequireRole(domain.RoleAdmin))
			{
				admin.GET("/users", r.adminHandler.ListUsers)
				admin.POST("/users/:id/ban", r.adminHandler.SetUserBanned)
				admin.GET("/listings/pending", r.adminHandler.ListPendingListings)
				admin.POST("/listings/:id/verify", r.adminHandler.SetListingVerified)
			}
		}
	}

	return router
}
