package main

import (
	"log"
	"os"

	"tailor-service/internal/database"
	"tailor-service/internal/handlers"
	"tailor-service/internal/models"
	"tailor-service/internal/services"
	"tailor-service/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	database.Connect()
	database.Migrate()
	db := database.DB

	// Commission configuration
	settings, err := models.LoadIncomeSettings(os.Getenv("INCOME_SETTINGS_FILE"))
	if err != nil {
		log.Fatalf("Failed to load income settings: %v", err)
	}

	// Init Services
	ledgerService := services.NewLedgerService(db)
	staffService := services.NewStaffService(db)
	orderService := services.NewOrderService(db)
	commissionService := services.NewCommissionService(db, settings)
	paymentService := services.NewPaymentService(db)
	dashboardService := services.NewDashboardService(db)

	// Commission dispatch: queue through Redis when configured, otherwise run
	// distributions inline.
	var dispatcher services.CommissionDispatcher
	if redisAddr := os.Getenv("REDIS_URL"); redisAddr != "" {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
		defer asynqClient.Close()
		dispatcher = worker.NewQueueCommissionDispatcher(asynqClient)
		log.Println("Commission distribution queued via Redis")
	} else {
		dispatcher = &services.InlineCommissionDispatcher{Service: commissionService}
		log.Println("Commission distribution running inline (no REDIS_URL)")
	}

	workflowService := services.NewWorkflowService(db, dispatcher)

	// Handlers
	staffHandler := handlers.NewStaffHandler(staffService, commissionService)
	orderHandler := handlers.NewOrderHandler(orderService)
	workflowHandler := handlers.NewWorkflowHandler(workflowService)
	walletHandler := handlers.NewWalletHandler(ledgerService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin
	r := gin.Default()

	// Ping endpoint
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome To Tailor Service",
		})
	})

	// Auth
	r.POST("/login", staffHandler.Login)

	// Staff Routes
	r.POST("/staff", staffHandler.CreateStaff)
	r.GET("/staff", staffHandler.ListStaff)
	r.GET("/staff/by-role", staffHandler.ListByRole)
	r.GET("/staff/:id", staffHandler.GetStaff)
	r.PUT("/staff/:id", staffHandler.UpdateStaff)
	r.DELETE("/staff/:id", staffHandler.DeactivateStaff)
	r.POST("/staff/:id/reactivate", staffHandler.ReactivateStaff)
	r.GET("/staff/:id/downlines", staffHandler.GetDownlines)
	r.GET("/staff/:id/network", staffHandler.GetNetwork)

	// Order Routes
	r.POST("/orders", orderHandler.CreateOrder)
	r.GET("/orders", orderHandler.ListOrders)
	r.GET("/orders/:id", orderHandler.GetOrder)
	r.GET("/orders/bill/:bill", orderHandler.GetOrderByBill)
	r.GET("/orders/queues/:staffId", orderHandler.GetMyOrders)
	r.PUT("/orders/:id/measurements", orderHandler.SaveMeasurements)

	// Workflow Routes
	r.POST("/orders/:id/submit", workflowHandler.SubmitDraft)
	r.POST("/orders/:id/accept", workflowHandler.Accept)
	r.POST("/orders/:id/handover", workflowHandler.Handover)
	r.POST("/orders/:id/return", workflowHandler.ReturnOrder)
	r.POST("/orders/:id/cancel", workflowHandler.CancelOrder)

	// Wallet Routes
	r.GET("/wallets/:staffId", walletHandler.GetWallet)
	r.GET("/wallets/:staffId/transactions", walletHandler.GetTransactions)
	r.POST("/wallets/credit", walletHandler.CreditWallet)
	r.POST("/wallets/debit", walletHandler.DebitWallet)

	// Payment Request Routes
	r.POST("/payments/deposit", paymentHandler.Deposit)
	r.POST("/payments/withdraw", paymentHandler.Withdraw)
	r.GET("/payments/requests", paymentHandler.ListRequests)
	r.GET("/payments/requests/mine/:staffId", paymentHandler.MyRequests)
	r.POST("/payments/requests/:id/resolve", paymentHandler.Resolve)

	// Dashboard
	r.GET("/dashboard/overview", dashboardHandler.GetOverview)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start Cron Schedulers
	transactionArchiveService := services.NewTransactionArchiveService(db)
	transactionArchiveService.StartScheduler()

	log.Printf("HTTP Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
