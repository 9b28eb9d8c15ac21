package app

import (
	"fmt"

	"shopkart_backend/database"
	_ "shopkart_backend/docs"
	"shopkart_backend/internal/config"
	"shopkart_backend/internal/email"
	"shopkart_backend/internal/handlers"
	"shopkart_backend/internal/logger"
	"shopkart_backend/internal/middleware"
	"shopkart_backend/internal/repositories"
	"shopkart_backend/internal/routes"
	"shopkart_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run - точка входа веб-приложения
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	// Просроченные записи access_tokens чистим на старте
	if err := repositories.NewAccessTokenRepository().DeleteExpired(db); err != nil {
		logger.Warn("failed to purge expired access tokens", "error", err)
	}

	router := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "env", cfg.Server.Env)

	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

// SetupRouter собирает gin-роутер со всеми зависимостями.
// Тесты вызывают его напрямую, передавая тестовую БД.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	return SetupRouterWithMailer(cfg, db, buildMailer(cfg))
}

// SetupRouterWithMailer - вариант с внешним email-провайдером
// (тесты подставляют сюда запись писем в память)
func SetupRouterWithMailer(cfg *config.Config, db *gorm.DB, mailer email.Provider) *gin.Engine {
	svc := services.NewServiceContainer(mailer)
	appHandlers := handlers.NewAppHandlers(svc)

	router := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(router, appHandlers)

	return router
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)
	return router
}

// openDatabase открывает соединение с БД по настроенному драйверу.
// TranslateError нужен для единообразного gorm.ErrDuplicatedKey.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}
}

// buildMailer создает SMTP провайдер; при неполной конфигурации
// приложение стартует с заглушкой, которая только логирует письма.
func buildMailer(cfg *config.Config) email.Provider {
	provider, err := email.NewSMTPProvider(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUsername,
		Password:     cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		ResetBaseURL: cfg.Email.ResetBaseURL,
	})
	if err != nil {
		logger.Warn("SMTP is not configured, emails will only be logged", "error", err)
		return email.NewLogProvider()
	}
	return provider
}
