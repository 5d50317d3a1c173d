package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/panchald9/roospark/configs"
	"github.com/panchald9/roospark/controllers"
	"github.com/panchald9/roospark/middlewares"
	"github.com/panchald9/roospark/repository"
	"github.com/panchald9/roospark/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, store repository.Storage) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	menuSvc := services.NewMenuService(store)
	bookingSvc := services.NewBookingService(store)
	reviewSvc := services.NewReviewService(store)
	orderSvc := services.NewOrderService(store)
	adminSvc := services.NewAdminService(store)
	authSvc := services.NewAuthService(store, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")
	{
		// Menu (public read, admin write)
		api.GET("/menu-items", menuCtrl.List)
		api.GET("/menu-items/:id", menuCtrl.Get)
		api.POST("/menu-items", adminOnly, menuCtrl.Create)
		api.PUT("/menu-items/:id", adminOnly, menuCtrl.Update)
		api.DELETE("/menu-items/:id", adminOnly, menuCtrl.Delete)

		// Bookings (public create, admin read)
		api.POST("/bookings", bookingCtrl.Create)
		api.GET("/bookings", adminOnly, bookingCtrl.List)
		api.GET("/bookings/:id", adminOnly, bookingCtrl.Get)

		// Reviews (public)
		api.GET("/reviews", reviewCtrl.List)
		api.POST("/reviews", reviewCtrl.Create)

		// Orders (public create, admin manage)
		api.POST("/orders", orderCtrl.Create)
		api.GET("/orders", adminOnly, orderCtrl.List)
		api.GET("/orders/:id", adminOnly, orderCtrl.Get)
		api.PATCH("/orders/:id/status", adminOnly, orderCtrl.UpdateStatus)

		// Admin
		admin := api.Group("/admin")
		{
			admin.POST("/login", authCtrl.Login)
			admin.POST("/logout", authCtrl.Logout)
			admin.GET("/me", adminOnly, authCtrl.Me)
			admin.GET("/stats", adminOnly, adminCtrl.Stats)
		}
	}
}
