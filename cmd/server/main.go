package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/echofluxai/echoflux-api/configs"
	"github.com/echofluxai/echoflux-api/internal/api/handlers"
	"github.com/echofluxai/echoflux-api/internal/api/middleware"
	job "github.com/echofluxai/echoflux-api/internal/jobs"
	"github.com/echofluxai/echoflux-api/internal/queue"
	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/router"
	"github.com/echofluxai/echoflux-api/internal/service"
	"github.com/echofluxai/echoflux-api/pkg/ai"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	mediaItemRepo := repository.NewMediaItemRepository(db)
	mediaFolderRepo := repository.NewMediaFolderRepository(db)
	waitlistRepo := repository.NewWaitlistRepository(db)
	inviteRepo := repository.NewInviteCodeRepository(db)
	bioRepo := repository.NewBioPageRepository(db)
	usageRepo := repository.NewUsageLogRepository(db)
	contentRepo := repository.NewContentRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)

	generatorFactory := func(model string, jsonMode bool) ai.TextGenerator {
		return ai.NewClient(cfg.AIBaseURL, cfg.AIApiKey, model, jsonMode)
	}
	usageRecorder := queue.NewUsageRecorder(client)
	resolver := router.NewResolver(generatorFactory, usageRecorder)
	imageClient := ai.NewImageClient(cfg.ImageGenBaseURL, cfg.ImageGenApiKey, "flux-schnell")

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	r2Service := service.NewR2Service(*cfg)
	emailService := service.NewEmailService(*cfg)
	socialService := service.NewSocialService(*cfg, socialAccountRepo)
	generationService := service.NewGenerationService(resolver, contentRepo, socialService)
	mediaService := service.NewMediaService(mediaItemRepo, mediaFolderRepo, r2Service)
	waitlistService := service.NewWaitlistService(*cfg, waitlistRepo, inviteRepo, userRepo, emailService)
	bioService := service.NewBioService(userRepo, bioRepo)
	usageService := service.NewUsageService(usageRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, authService, userService)

	auth := handlers.NewAuthHandler(*cfg, authService, waitlistService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)

	waitlist := handlers.NewWaitlistHandler(waitlistService)
	app.Post("/waitlist/join", waitlist.Join)

	bio := handlers.NewBioHandler(bioService)
	app.Get("/bio/:username", bio.PublicPage)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)
	api.Post("/user/remove", user.RemoveUser)
	api.Post("/invite/redeem", auth.RedeemInvite)

	generate := handlers.NewGenerateHandler(generationService, imageClient)
	api.Post("/generate/strategy", generate.Strategy)
	api.Post("/generate/critique", generate.Critique)
	api.Post("/generate/trends", generate.Trends)
	api.Post("/generate/crm-summary", generate.CRMSummary)
	api.Post("/generate/analytics-report", generate.AnalyticsReport)
	api.Post("/generate/autopilot", generate.Autopilot)
	api.Post("/generate/caption", generate.Caption)
	api.Post("/generate/reply", generate.Reply)
	api.Post("/generate/categorize", generate.Categorize)
	api.Post("/generate/hashtags", generate.Hashtags)
	api.Post("/generate/brand", generate.Brand)
	api.Post("/generate/chatbot", generate.Chatbot)
	api.Post("/generate/image-prompt", generate.ImagePrompt)
	api.Post("/generate/content-gap", generate.ContentGap)
	api.Post("/generate/caption-optimization", generate.CaptionOptimization)
	api.Post("/generate/performance-prediction", generate.PerformancePrediction)
	api.Post("/generate/content-repurposing", generate.ContentRepurposing)
	api.Post("/generate/image", generate.GenerateImage)
	api.Get("/generate/history", generate.History)

	media := handlers.NewMediaHandler(mediaService)
	api.Post("/media/upload", media.Upload)
	api.Get("/media", media.List)
	api.Post("/media/folders/create", media.CreateFolder)
	api.Get("/media/folders", media.ListFolders)
	api.Post("/media/folders/rename", media.RenameFolder)
	api.Delete("/media/folders/:id", media.DeleteFolder)
	api.Post("/media/bulk-move", media.BulkMove)
	api.Post("/media/bulk-delete", media.BulkDelete)

	api.Post("/bio/update", bio.Update)

	usage := handlers.NewUsageHandler(usageService)
	api.Get("/usage/summary", usage.Summary)

	social := handlers.NewSocialHandler(*cfg, socialService)
	api.Get("/accounts/connect", social.Connect)
	api.Get("/accounts/callback", social.ConnectCallback)
	api.Get("/accounts", social.List)
	api.Get("/accounts/stats", social.Stats)
	api.Delete("/accounts/:id", social.Delete)

	admin := api.Group("/admin")
	admin.Use(authMiddleware.AdminMiddleware())
	admin.Get("/waitlist", waitlist.List)
	admin.Post("/waitlist/approve", waitlist.Approve)
	admin.Post("/waitlist/reject", waitlist.Reject)
	admin.Post("/waitlist/bulk-delete", waitlist.BulkDelete)

	// cron jobs
	refreshTokenJob := job.NewTokenRefreshJob(socialAccountRepo, socialService)
	inviteSweepJob := job.NewInviteSweepJob(inviteRepo)

	//queue
	queueW := queue.NewQueue(usageRepo)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", refreshTokenJob.RefreshTokens)
	c.AddFunc("@every 01h00m00s", inviteSweepJob.SweepExpired)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeUsageRecord, queueW.HandleUsageRecordTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
