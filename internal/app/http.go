package app

import (
	"context"

	"github.com/Tharusha999/isdn-sub001/internal/auth"
	"github.com/Tharusha999/isdn-sub001/internal/auth/credentials"
	"github.com/Tharusha999/isdn-sub001/internal/auth/handler"
	"github.com/Tharusha999/isdn-sub001/internal/config"
	"github.com/Tharusha999/isdn-sub001/internal/middleware"
	"github.com/Tharusha999/isdn-sub001/internal/records"
	"github.com/Tharusha999/isdn-sub001/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	credentialGateway := credentials.NewService(infra.DB)
	recordRepo := records.NewRepository(infra.DB)

	authHandler := handler.NewHandler(
		credentialGateway,
		sessionStore,
		cfg.SessionTTL,
	)

	recordHandler := records.NewHandler(recordRepo)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------
	// Route gates mirror the navigation policy: what the sidebar
	// hides from a role, these groups refuse.

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		identity, _ := middleware.IdentityFromContext(c.Request.Context())
		c.JSON(200, gin.H{"user": identity})
	})

	api.GET("/navigation", authHandler.Session)

	api.GET("/metrics", recordHandler.Metrics)

	api.GET("/products",
		middleware.GinRequireDestination("/products"),
		recordHandler.Products)

	api.GET("/orders",
		middleware.GinRequireDestination("/orders"),
		recordHandler.Orders)

	api.GET("/activity",
		middleware.GinRequireDestination("/activity"),
		recordHandler.Activity)

	api.GET("/delivery",
		middleware.GinRequireRole(auth.RoleAdmin, auth.RoleDriver),
		recordHandler.Delivery)

	api.GET("/staff",
		middleware.GinRequireRole(auth.RoleAdmin),
		recordHandler.Staff)

	api.GET("/partners",
		middleware.GinRequireRole(auth.RoleAdmin),
		recordHandler.Partners)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			infra.DB.Close()
			return err
		}
		return infra.DB.Close()
	}, nil
}
