package routes

import (
	"github.com/Ah-ugo/Amber-Foods-backend/configs"
	"github.com/Ah-ugo/Amber-Foods-backend/controllers"
	"github.com/Ah-ugo/Amber-Foods-backend/middlewares"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/cloudinary"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/paystack"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/ws"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole dependency graph and mounts every
// route group under /api.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.NotificationHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	noteRepo := repository.NewNotificationRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	// External collaborators
	gateway := paystack.NewClient(cfg.PaystackSecretKey)
	images := cloudinary.NewClient(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)

	// Services
	noteSvc := services.NewNotificationService(noteRepo, hub)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo, images)
	menuSvc := services.NewMenuService(menuRepo, images)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, addressRepo, userRepo)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, userRepo, gateway, noteSvc,
		cfg.BaseURL+"/api/payments/callback")
	deliverySvc := services.NewDeliveryService(db, deliveryRepo, orderRepo, noteSvc)
	reviewSvc := services.NewReviewService(reviewRepo, menuRepo, userRepo)
	addressSvc := services.NewAddressService(db, addressRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	noteCtrl := controllers.NewNotificationController(noteSvc)
	addressCtrl := controllers.NewAddressController(addressSvc)

	api := r.Group("/api")
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	admin := middlewares.AdminRequired()

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/refresh", auth, authCtrl.Refresh)
	}

	// Users
	users := api.Group("/users", auth)
	{
		users.GET("/me", userCtrl.Me)
		users.PUT("/me", userCtrl.UpdateMe)
		users.GET("", admin, userCtrl.List)
		users.GET("/:id", admin, userCtrl.Get)
	}

	// Menu (public reads, admin writes)
	menu := api.Group("/menu")
	{
		menu.GET("/categories", menuCtrl.ListCategories)
		menu.GET("/categories/:id", menuCtrl.GetCategory)
		menu.GET("/items", menuCtrl.ListItems)
		menu.GET("/items/:id", menuCtrl.GetItem)
		menu.GET("/featured", menuCtrl.Featured)
		menu.GET("/best-selling", menuCtrl.Featured)
		menu.GET("/recommended", menuCtrl.Featured)

		menuAdmin := menu.Group("", auth, admin)
		{
			menuAdmin.POST("/categories", menuCtrl.CreateCategory)
			menuAdmin.PUT("/categories/:id", menuCtrl.UpdateCategory)
			menuAdmin.DELETE("/categories/:id", menuCtrl.DeleteCategory)
			menuAdmin.POST("/items", menuCtrl.CreateItem)
			menuAdmin.PUT("/items/:id", menuCtrl.UpdateItem)
			menuAdmin.PATCH("/items/:id/availability", menuCtrl.SetAvailability)
			menuAdmin.POST("/items/:id/images", menuCtrl.UploadImages)
			menuAdmin.DELETE("/items/:id", menuCtrl.DeleteItem)
		}
	}

	// Cart
	cart := api.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PUT("/items/:itemId", cartCtrl.UpdateItem)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := api.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Get)
		orders.POST("/:id/cancel", orderCtrl.Cancel)
	}
	adminOrders := api.Group("/admin/orders", auth, admin)
	{
		adminOrders.GET("", orderCtrl.AdminList)
		adminOrders.GET("/:id", orderCtrl.AdminGet)
		adminOrders.PUT("/:id/status", orderCtrl.AdminSetStatus)
	}

	// Payments. Callback is Paystack's unauthenticated redirect.
	payments := api.Group("/payments")
	{
		payments.GET("/callback", paymentCtrl.Callback)
		payments.POST("/initialize", auth, paymentCtrl.Initialize)
		payments.GET("/verify/:reference", auth, paymentCtrl.Verify)
		payments.GET("/order/:orderId", auth, paymentCtrl.GetForOrder)
	}

	// Delivery
	delivery := api.Group("/delivery", auth)
	{
		delivery.GET("/track/:orderId", deliveryCtrl.Track)
		delivery.GET("/estimate", deliveryCtrl.Estimate)
		delivery.PUT("/:orderId/status", admin, deliveryCtrl.SetStatus)
		delivery.PUT("/:orderId/driver", admin, deliveryCtrl.AssignDriver)
	}

	// Reviews
	reviews := api.Group("/reviews")
	{
		reviews.GET("/item/:itemId", reviewCtrl.ListByItem)
		reviews.POST("", auth, reviewCtrl.Create)
		reviews.GET("/me", auth, reviewCtrl.ListMine)
		reviews.PUT("/:id", auth, reviewCtrl.Update)
		reviews.DELETE("/:id", auth, reviewCtrl.Delete)
	}

	// Notifications
	notes := api.Group("/notifications", auth)
	{
		notes.GET("", noteCtrl.List)
		notes.PUT("/:id/read", noteCtrl.MarkRead)
		notes.POST("", admin, noteCtrl.Create)
	}
	api.GET("/admin/notifications", auth, admin, noteCtrl.AdminList)

	// Addresses
	addresses := api.Group("/addresses", auth)
	{
		addresses.GET("", addressCtrl.List)
		addresses.POST("", addressCtrl.Create)
		addresses.GET("/:id", addressCtrl.Get)
		addresses.PUT("/:id", addressCtrl.Update)
		addresses.PUT("/:id/default", addressCtrl.SetDefault)
		addresses.DELETE("/:id", addressCtrl.Delete)
	}

	// Live notification stream
	r.GET("/ws/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
