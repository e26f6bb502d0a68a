package main

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"tailor-service/internal/consumers"
	"tailor-service/internal/database"
	"tailor-service/internal/models"
	"tailor-service/internal/services"
	"tailor-service/internal/worker"
)

func main() {
	// Load env
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found in ../../.env, trying .env")
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using system env")
		}
	}

	// Connect DB
	database.Connect()
	db := database.DB

	// Commission configuration
	settings, err := models.LoadIncomeSettings(os.Getenv("INCOME_SETTINGS_FILE"))
	if err != nil {
		log.Fatalf("Failed to load income settings: %v", err)
	}

	commissionService := services.NewCommissionService(db, settings)
	processor := consumers.NewCommissionProcessor(commissionService)

	// Redis
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}

	log.Println("Starting Asynq Worker...")
	worker.StartWorker(redisOpt, processor)
}
