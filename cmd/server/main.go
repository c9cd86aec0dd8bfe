package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/auth"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/comment"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/config"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/db"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/design"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/designer"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/files"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/inventory"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/middleware"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/notification"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/pricing"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/rating"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/storage"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/user"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Connect to database
	db.ConnectDb()
	defer db.CloseDb()

	// Create the secondary indexes the repositories rely on
	db.EnsureIndexes()

	// Custom binding rules
	pricing.RegisterValidators()

	// Initialize repositories
	userRepo := user.NewRepository(db.AppDb)
	designerRepo := designer.NewRepository(db.AppDb)
	portfolioRepo := designer.NewPortfolioRepository(db.AppDb)
	designRepo := design.NewRepository(db.AppDb)
	commentRepo := comment.NewRepository(db.AppDb)
	notificationRepo := notification.NewRepository(db.AppDb)
	designerPricingRepo := pricing.NewDesignerRepository(db.AppDb)
	printPricingRepo := pricing.NewPrintRepository(db.AppDb)
	inventoryRepo := inventory.NewRepository(db.AppDb)
	ratingRepo := rating.NewRepository(db.AppDb)

	// Initialize services
	blobClient := storage.NewBlobClient(config.AppConfig.BlobStoreAddress, config.AppConfig.BlobStoreSecret)
	filesService := files.NewService(blobClient)
	userService := user.NewService(userRepo, designerRepo, portfolioRepo)
	designerService := designer.NewService(designerRepo)
	designService := design.NewService(designRepo, filesService)
	commentService := comment.NewService(commentRepo)
	notificationService := notification.NewService(notificationRepo, designRepo)
	designerPricingService := pricing.NewDesignerService(designerPricingRepo)
	printPricingService := pricing.NewPrintService(printPricingRepo)
	inventoryService := inventory.NewService(inventoryRepo)
	ratingService := rating.NewService(ratingRepo)

	// Initialize handlers
	userHandler := user.NewHandler(userService)
	designerHandler := designer.NewHandler(designerService)
	designHandler := design.NewHandler(designService)
	commentHandler := comment.NewHandler(commentService)
	notificationHandler := notification.NewHandler(notificationService)
	pricingHandler := pricing.NewHandler(designerPricingService, printPricingService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	ratingHandler := rating.NewHandler(ratingService)
	filesHandler := files.NewHandler(filesService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// cors setting
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
	}

	if config.AppConfig.Environment == "development" {
		// Allow all origins in development
		corsConfig.AllowAllOrigins = true
	} else {
		// Restrict origins in production
		corsConfig.AllowOrigins = []string{config.AppConfig.FrontendAddress}
	}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pricing catalogs
	router.GET("/api/pricing/print", pricingHandler.ListPrintPricing)
	router.GET("/api/pricing/designers", pricingHandler.ListDesignerPricing)

	// Session-scoped routes
	api := router.Group("/api", auth.AuthMiddleWare())
	{
		// User directory
		api.GET("/users", userHandler.ListAll)
		api.GET("/users/public", userHandler.ListPublic)
		api.GET("/users/designers", userHandler.ListDesigners)
		api.GET("/users/clerk/:clerkId", userHandler.GetByClerkID)

		// Comments
		api.GET("/previews/:previewId/comments", commentHandler.ListByPreview)
		api.GET("/users/:userId/comments", commentHandler.ListByUser)
		api.POST("/comments", commentHandler.Add)

		// Notifications
		api.POST("/designs/:designId/notify-update", notificationHandler.NotifyDesignUpdate)
		api.GET("/users/:userId/notifications", notificationHandler.ListByUser)

		// Designer profiles
		api.GET("/users/:userId/designer", designerHandler.GetByUser)
		api.PATCH("/designers/:designerId/profile", designerHandler.UpdateProfile)

		// Designer pricing
		api.GET("/designers/:designerId/pricing", pricingHandler.ListByDesigner)
		api.POST("/pricing/designers", pricingHandler.CreateDesignerPricing)
		api.PUT("/pricing/designers/:id", pricingHandler.UpdateDesignerPricing)
		api.DELETE("/pricing/designers/:id", pricingHandler.DeleteDesignerPricing)

		// Print pricing
		api.POST("/pricing/print", pricingHandler.CreatePrintPricing)
		api.PUT("/pricing/print/:id", pricingHandler.UpdatePrintPricing)
		api.DELETE("/pricing/print/:id", pricingHandler.DeletePrintPricing)

		// Inventory
		api.GET("/inventory", inventoryHandler.ListItems)
		api.POST("/inventory", inventoryHandler.CreateItem)
		api.GET("/inventory/categories", inventoryHandler.ListCategories)
		api.PUT("/inventory/:id", inventoryHandler.UpdateItem)
		api.DELETE("/inventory/:id", inventoryHandler.DeleteItem)

		// File references
		api.GET("/files/:storageId/url", filesHandler.GetURL)
		api.POST("/files/urls", filesHandler.GetURLs)

		// Ratings
		api.POST("/ratings", ratingHandler.Add)

		// Design reads for the dashboard widgets
		api.GET("/requests/:id", designHandler.GetRequest)
		api.GET("/users/:userId/designs", designHandler.ListByClient)
	}

	// Server configuration
	serverPort := config.AppConfig.ServerPort
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverPort),
		Handler: router.Handler(),
	}

	// Start server
	go func() {
		log.Printf("Server listening on port %s", serverPort)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Println("Server shutdown error:", err)
	}

	<-ctx.Done()
	log.Println("Server shutdown complete")
}
