package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/VictorSilvaVS/enem/internal/config"
	"github.com/VictorSilvaVS/enem/internal/handler"
	"github.com/VictorSilvaVS/enem/internal/middleware"
	pgRepo "github.com/VictorSilvaVS/enem/internal/repository/postgres"
	redisRepo "github.com/VictorSilvaVS/enem/internal/repository/redis"
	"github.com/VictorSilvaVS/enem/internal/service"
	"github.com/VictorSilvaVS/enem/pkg/auth"
	"github.com/VictorSilvaVS/enem/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	subjectRepo := pgRepo.NewSubjectRepo(db)
	topicRepo := pgRepo.NewTopicRepo(db)
	materialRepo := pgRepo.NewMaterialRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	sessionRepo := pgRepo.NewSessionRepo(db)
	progressRepo := pgRepo.NewProgressRepo(db)
	attemptRepo := pgRepo.NewAttemptRepo(db)
	txRunner := pgRepo.NewTxRunner(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(subjectRepo, topicRepo, materialRepo, progressRepo)
	sessionService := service.NewSessionService(sessionRepo, materialRepo, txRunner)
	progressService := service.NewProgressService(progressRepo, materialRepo, subjectRepo, txRunner)
	quizService := service.NewQuizService(attemptRepo, questionRepo, topicRepo, txRunner)
	dashboardService := service.NewDashboardService(sessionRepo, attemptRepo, progressRepo, progressService, cacheRepo)
	adminService := service.NewAdminService(userRepo, subjectRepo, materialRepo, questionRepo, topicRepo)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService, userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	studyHandler := handler.NewStudyHandler(sessionService, progressService, dashboardService)
	quizHandler := handler.NewQuizHandler(quizService, dashboardService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, progressService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	isProduction := gin.Mode() == gin.ReleaseMode

	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Публичные маршруты
		api.GET("/stats", catalogHandler.LandingStats)

		// Аутентификация
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)

			authedAuth := authGroup.Group("/")
			authedAuth.Use(authMiddleware.RequireAuth())
			{
				authedAuth.GET("/me", authHandler.Me)
				authedAuth.DELETE("/me", authHandler.DeleteAccount)
			}
		}

		// Каталог (требует аутентификации, кроме списка дисциплин)
		authed := api.Group("/")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.GET("/subjects", catalogHandler.ListSubjects)

			subjectWithID := authed.Group("/subjects/:id")
			subjectWithID.Use(middleware.ExtractUintParam("id", "subjectID"))
			{
				subjectWithID.GET("", catalogHandler.SubjectDetail)
			}

			topicWithID := authed.Group("/topics/:id")
			topicWithID.Use(middleware.ExtractUintParam("id", "topicID"))
			{
				topicWithID.GET("", catalogHandler.TopicDetail)
			}

			authed.GET("/search", catalogHandler.Search)

			// Учебный цикл
			materialWithID := authed.Group("/materials/:id")
			materialWithID.Use(middleware.ExtractUintParam("id", "materialID"))
			{
				materialWithID.GET("", studyHandler.OpenMaterial)
			}

			sessionWithID := authed.Group("/sessions/:id")
			sessionWithID.Use(middleware.ExtractUintParam("id", "sessionID"))
			{
				sessionWithID.POST("/finish", studyHandler.FinishSession)
			}

			// Квизы
			authed.POST("/quizzes", quizHandler.StartAttempt)

			attemptWithID := authed.Group("/quizzes/:id")
			attemptWithID.Use(middleware.ExtractUintParam("id", "attemptID"))
			{
				attemptWithID.POST("/submit", quizHandler.SubmitAttempt)
			}

			// Дашборд и прогресс
			authed.GET("/dashboard", dashboardHandler.Summary)
			authed.GET("/progress", dashboardHandler.Progress)
		}

		// Административные маршруты
		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
		{
			admin.GET("/stats", adminHandler.Totals)
			admin.POST("/questions/import", adminHandler.ImportQuestions)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
