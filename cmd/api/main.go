package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"warrantly/internal/config"
	"warrantly/internal/database"
	"warrantly/internal/middleware"
	"warrantly/internal/modules/analytics"
	"warrantly/internal/modules/auth"
	"warrantly/internal/modules/brand"
	"warrantly/internal/modules/favorite"
	"warrantly/internal/modules/notification"
	"warrantly/internal/modules/product"
	"warrantly/internal/modules/profile"
	"warrantly/internal/modules/provider"
	"warrantly/internal/modules/review"
	"warrantly/internal/modules/support"
	jwtsvc "warrantly/internal/pkg/jwt"
	"warrantly/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	supportRepo := repository.NewSupportRequestRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	providerReviewRepo := repository.NewProviderReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	brandHandler := brand.NewHandler(brand.NewService(brandRepo))
	productHandler := product.NewHandler(product.NewService(productRepo, brandRepo, reviewRepo, supportRepo, cfg.StrictRefs))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, productRepo))
	supportHandler := support.NewHandler(support.NewService(supportRepo, productRepo, brandRepo))
	providerHandler := provider.NewHandler(provider.NewService(providerRepo, providerReviewRepo))
	analyticsHandler := analytics.NewHandler(analytics.NewService(productRepo, brandRepo, reviewRepo, providerRepo, providerReviewRepo))

	hub := notification.NewHub()
	defer hub.Close()
	notificationHandler := notification.NewHandler(
		notification.NewService(notificationRepo, productRepo, hub, log.Logger),
		hub,
	)

	favoriteHandler := favorite.NewHandler(favoriteRepo)
	profileHandler := profile.NewHandler(profile.NewService(profileRepo))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		brandHandler.RegisterPublicRoutes(v1)
		productHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		providerHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterRoutes(protected)
			brandHandler.RegisterRoutes(protected)
			productHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			supportHandler.RegisterRoutes(protected)
			providerHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("warrantly api listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
