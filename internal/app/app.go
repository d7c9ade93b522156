package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"doctorkays/internal/config"
	"doctorkays/internal/handlers"
	"doctorkays/internal/middleware"
	"doctorkays/internal/pdf"
	"doctorkays/internal/repositories"
	"doctorkays/internal/routes"
	"doctorkays/internal/services"
	"doctorkays/internal/storage"
	"doctorkays/internal/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "doctorkays/docs"
)

func Run() {
	cfg := config.LoadConfig()

	middleware.JWTKey = []byte(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// === Redis (login challenges) ===
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// === Repos ===
	adminRepo := repositories.NewAdminRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)
	sponsorRepo := repositories.NewSponsorRepository(db)
	enquiryRepo := repositories.NewEnquiryRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	consultationRepo := repositories.NewConsultationRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	doctorRepo := repositories.NewDoctorRepository(db)
	recordRepo := repositories.NewMedicalRecordRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Email.ForwardTo,
	)

	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	geoClient := utils.NewGeoClient(cfg.Geo.Endpoint, time.Duration(cfg.Geo.TimeoutSeconds)*time.Second)
	alertService := services.NewAlertService(geoClient, emailService, telegramService,
		time.Duration(cfg.Geo.TimeoutSeconds)*time.Second)

	challengeStore := services.NewChallengeStore(redisClient)
	jwtSecret := []byte(cfg.Auth.JWTSecret)

	loginService := services.NewLoginService(adminRepo, authService, challengeStore, emailService, alertService, jwtSecret)
	adminService := services.NewAdminService(adminRepo, contactRepo, consultationRepo, questionRepo, authService, emailService)
	patientService := services.NewPatientService(patientRepo, authService, jwtSecret)
	intakeService := services.NewIntakeService(contactRepo, volunteerRepo, sponsorRepo, enquiryRepo, feedbackRepo, emailService, telegramService)
	questionService := services.NewQuestionService(questionRepo)

	reportStore, err := storage.NewReportStore(cfg.Storage)
	if err != nil {
		log.Fatal("Failed to init report storage: ", err)
	}
	pdfGen := pdf.NewConfirmationGenerator()
	consultationService := services.NewConsultationService(consultationRepo, reportStore, emailService, pdfGen, telegramService)

	roomService := services.NewRoomService(roomRepo)
	doctorService := services.NewDoctorService(doctorRepo)
	recordService := services.NewRecordService(recordRepo, patientRepo)
	analysisService := services.NewAnalysisService(cfg.AI)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(loginService)
	adminHandler := handlers.NewAdminHandler(adminService)
	patientHandler := handlers.NewPatientHandler(patientService)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	roomHandler := handlers.NewRoomHandler(roomService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	recordHandler := handlers.NewRecordHandler(recordService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		adminHandler,
		patientHandler,
		intakeHandler,
		questionHandler,
		consultationHandler,
		roomHandler,
		doctorHandler,
		recordHandler,
		analysisHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
