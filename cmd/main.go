package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"aquarium-service/internal/catalog"
	"aquarium-service/internal/config"
	"aquarium-service/internal/database/postgres"
	"aquarium-service/internal/database/redis"
	"aquarium-service/internal/event"
	"aquarium-service/internal/gacha"
	"aquarium-service/internal/handlers"
	"aquarium-service/internal/repository"
	"aquarium-service/internal/services"

	"github.com/gin-gonic/gin"
)

func setupLogging() (*os.File, error) {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = filepath.Join("log", "aquarium_service")
	}
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Error setting up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()

	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("error connect to database: %s", err)
		// blocks until the database is reachable; schema init below needs a
		// live handle
		postgres.RetryConnectOnFailed(30*time.Second, &db, cfg.PostgresCfg)
	}
	defer db.Close()

	if err := postgres.InitSchema(db); err != nil {
		log.Fatalf("Error initializing schema: %v", err)
	}

	redisClient := redis.NewClient(cfg.RedisCfg)
	defer redisClient.Close()

	// repositories
	userRepository := repository.NewUserRepository(db)
	fishRepository := repository.NewFishRepository(db)
	statsRepository := repository.NewStatsRepository(db)
	sessionRepository := repository.NewSessionRepository(redisClient)

	if err := fishRepository.SeedCatalog(catalog.All()); err != nil {
		log.Fatalf("Error seeding fish catalog: %v", err)
	}

	// unlock event publisher; the gacha flow works without the broker
	var unlockPublisher *event.UnlockPublisher
	rabbitConn, err := event.ConnectRabbitMQ(cfg.RabbitMQCfg)
	if err != nil {
		log.Printf("RabbitMQ unavailable, unlock events disabled: %v", err)
	} else {
		defer rabbitConn.Close()
		unlockPublisher = event.NewUnlockPublisher(rabbitConn)
	}

	// core engine components over the immutable catalog
	picker := gacha.NewPicker(catalog.All(), nil)
	aquarium := gacha.NewAquarium(catalog.All(), nil, nil)

	// services
	jwtService := services.NewJWTService(cfg.AuthCfg.JWTSecret)
	sessionService := services.NewSessionService(sessionRepository)
	userService := services.NewUserService(userRepository, statsRepository, sessionService, jwtService)
	fishService := services.NewFishService(fishRepository, aquarium)
	gachaService := services.NewGachaService(statsRepository, picker, unlockPublisher)
	collectionService := services.NewCollectionService(statsRepository)
	leaderboardService := services.NewLeaderboardService(statsRepository)

	// handlers
	mw := handlers.NewMiddleware(jwtService, sessionService)
	authHandler := handlers.NewAuthHandler(userService)
	fishHandler := handlers.NewFishHandler(fishService)
	gachaHandler := handlers.NewGachaHandler(gachaService)
	userHandler := handlers.NewUserHandler(collectionService, leaderboardService)

	r := gin.Default()

	authHandler.RegisterRoutes(r)
	fishHandler.RegisterRoutes(r, mw)
	gachaHandler.RegisterRoutes(r, mw)
	userHandler.RegisterRoutes(r, mw)

	serverPort := cfg.Port
	if serverPort == "" {
		serverPort = "8088"
	}

	log.Printf("Starting aquarium-service on port %s", serverPort)
	if err := r.Run(":" + serverPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
