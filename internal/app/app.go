package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brandlink_backend/internal/config"
	"brandlink_backend/internal/email"
	"brandlink_backend/internal/handlers"
	"brandlink_backend/internal/logger"
	"brandlink_backend/internal/models"
	"brandlink_backend/internal/queue"
	"brandlink_backend/internal/routes"
	"brandlink_backend/internal/services"
	"brandlink_backend/internal/validator"
	"brandlink_backend/internal/workers"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// TranslateError нужен, чтобы нарушение уникального индекса приходило
	// как gorm.ErrDuplicatedKey, а не сырой ошибкой драйвера.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	container := initializeServices(cfg)
	appHandlers := handlers.NewAppHandlers(container, validator.New())
	ginRouter := routes.NewRouter(cfg, gormDB, appHandlers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx, cfg, gormDB, container)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BrandProfile{},
		&models.CreatorProfile{},
		&models.Campaign{},
		&models.Brief{},
		&models.CreatorInvitation{},
		&models.Submission{},
		&models.Review{},
		&models.Notification{},
		&models.PlatformRule{},
		&models.PaymentAccount{},
	)
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewGomailProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP not configured, emails are logged instead of sent")
		emailProvider = &LogEmailProvider{}
	}

	var publisher queue.Publisher
	if cfg.Queue.AMQPURL != "" {
		amqpPublisher, err := queue.NewAMQPPublisher(cfg.Queue.AMQPURL)
		if err != nil {
			logger.Fatal("Failed to connect to message broker", "error", err)
		}
		publisher = amqpPublisher
	} else {
		logger.Warn("AMQP not configured, notification events are not published")
	}

	classifier := services.NewOpenAIClassifier(cfg)
	paymentProvider := services.NewStripeProvider(cfg.Payments.SecretKey)

	return services.NewServiceContainer(cfg, emailProvider, publisher, classifier, paymentProvider)
}

func startWorkers(ctx context.Context, cfg *config.Config, db *gorm.DB, container *services.ServiceContainer) {
	notificationWorker := workers.NewNotificationWorker(
		db,
		container.NotificationService,
		time.Duration(cfg.Workers.NotificationInterval)*time.Second,
		cfg.Workers.NotificationBatch,
	)
	notificationWorker.Start(ctx)

	campaignWorker := workers.NewCampaignWorker(
		db,
		container.ComplianceService,
		time.Duration(cfg.Workers.CampaignInterval)*time.Second,
	)
	campaignWorker.Start(ctx)

	logger.Info("Background workers started")
}

// seedFirstAdmin создает администратора при первом запуске, если он задан в
// конфигурации и еще не существует.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.First(&existing, "email = ?", cfg.FirstAdminEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.FirstAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
