package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"lms_backend/internal/auth"
	"lms_backend/internal/config"
	"lms_backend/internal/email"
	"lms_backend/internal/handlers"
	"lms_backend/internal/jobs"
	"lms_backend/internal/logger"
	"lms_backend/internal/models"
	"lms_backend/internal/payments"
	"lms_backend/internal/repositories"
	"lms_backend/internal/routes"
	"lms_backend/internal/services"
	"lms_backend/internal/validator"
	"lms_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Course{},
		&models.Lesson{},
		&models.Subscription{},
		&models.Payment{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue := jobs.NewQueue(cfg.Notifications.QueueSize, cfg.Notifications.Workers)
	queue.Start(ctx)
	defer queue.Close()

	ginRouter, svc := SetupRouter(cfg, gormDB, queue)

	userRepo := repositories.NewUserRepository(gormDB)
	inactivity := workers.NewInactivityWorker(
		userRepo,
		svc.Notifications,
		cfg.InactivityThreshold(),
		cfg.SweepInterval(),
	)
	inactivity.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, queue *jobs.Queue) (*gin.Engine, *services.ServiceContainer) {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		provider, err := email.NewSMTPProvider(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = provider
	} else {
		logger.Warn("SMTP is not configured, outgoing mail is logged only")
		emailProvider = &MockEmailProvider{}
	}

	gateway := payments.NewStripeGateway(cfg.Stripe.APIKey, cfg.Stripe.SuccessURL, cfg.Stripe.Currency)

	svc := services.NewServiceContainer(services.Dependencies{
		Config:        cfg,
		Queue:         queue,
		EmailProvider: emailProvider,
		Gateway:       gateway,

		UserRepo:         repositories.NewUserRepository(gormDB),
		RefreshTokenRepo: repositories.NewRefreshTokenRepository(gormDB),
		CourseRepo:       repositories.NewCourseRepository(gormDB),
		LessonRepo:       repositories.NewLessonRepository(gormDB),
		SubscriptionRepo: repositories.NewSubscriptionRepository(gormDB),
		PaymentRepo:      repositories.NewPaymentRepository(gormDB),
	})

	v := validator.New(cfg.Lessons.AllowedVideoDomains)
	appHandlers := handlers.NewAppHandlers(v, svc)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, svc
}

// seedFirstAdmin creates the bootstrap admin account when it is configured
// and not present yet.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", cfg.FirstAdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
