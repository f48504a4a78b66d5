package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"yaopets-backend/bootstrap"
	"yaopets-backend/config"
	"yaopets-backend/database"
	_ "yaopets-backend/docs"
	"yaopets-backend/internal/handlers"
	"yaopets-backend/internal/metrics"
	"yaopets-backend/internal/middleware"
	"yaopets-backend/internal/oauth"
	"yaopets-backend/internal/payments"
	"yaopets-backend/internal/repository"
	"yaopets-backend/internal/routes"
	"yaopets-backend/internal/services"
)

// @title        YaoPets API
// @version      1.0
// @description  Social network for pet adoption, lost/found reporting and donations.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	setupLogger(cfg.LogLevel)

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer database.Disconnect(client)

	db := client.Database(cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("ensure indexes")
	}
	cancel()

	// repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(client, db)
	likeRepo := repository.NewLikeRepository(db)
	saveRepo := repository.NewSaveRepository(db)
	commentRepo := repository.NewCommentRepository(client, db)
	petRepo := repository.NewPetRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	feedSvc := services.NewFeedService(userRepo, likeRepo, saveRepo)
	notifSvc := services.NewNotificationService(notifRepo)

	var mediaSvc *services.MediaService
	if cfg.S3Bucket != "" {
		mediaSvc, err = services.NewMediaService(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("media service")
		}
	}

	var google *oauth.GoogleClient
	if cfg.GoogleClientID != "" {
		google = oauth.NewGoogleClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		defer google.Close()
	}

	var stripe *payments.StripeClient
	if cfg.StripeSecretKey != "" {
		stripe = payments.NewStripeClient(cfg.StripeSecretKey)
		defer stripe.Close()
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(metrics.Middleware())
	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Auth:          &handlers.AuthHandler{Auth: authSvc, Users: userRepo, Google: google},
		Users:         &handlers.UserHandler{Users: userRepo, Follows: followRepo, Media: mediaSvc},
		Follows:       &handlers.FollowHandler{Follows: followRepo, Users: userRepo, Notifs: notifSvc},
		Posts:         &handlers.PostHandler{Posts: postRepo, Feed: feedSvc},
		Likes:         &handlers.LikeHandler{Likes: likeRepo, Posts: postRepo, Comments: commentRepo, Notifs: notifSvc},
		Saves:         &handlers.SaveHandler{Saves: saveRepo},
		Comments:      &handlers.CommentHandler{Comments: commentRepo, Posts: postRepo, Feed: feedSvc, Notifs: notifSvc},
		Pets:          &handlers.PetHandler{Pets: petRepo},
		Donations:     &handlers.DonationHandler{Donations: donationRepo, Stripe: stripe},
		Notifications: &handlers.NotificationHandler{Notifs: notifRepo},
	})

	metricsSrv, err := metrics.Serve(cfg.MetricsPort)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics server")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	_ = metricsSrv.Shutdown(context.Background())
}

func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
