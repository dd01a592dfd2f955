package api

import (
	"context"
	"log"
	"time"

	"github.com/SundayYogurt/bank_service/config"
	"github.com/SundayYogurt/bank_service/infra/queue"
	"github.com/SundayYogurt/bank_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/bank_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/helper"
	"github.com/SundayYogurt/bank_service/internal/repository"
	"github.com/SundayYogurt/bank_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	// lock and unlock must run on the same session, so take a dedicated
	// connection instead of going through the pool
	const migrateLockID int64 = 20260830

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("database handle error: %v", err)
	}
	lockConn, err := sqlDB.Conn(context.Background())
	if err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	if _, err := lockConn.ExecContext(context.Background(), "SELECT pg_advisory_lock($1)", migrateLockID); err != nil {
		log.Fatalf("migration lock error: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserType{},
		&domain.BankAccount{},
		&domain.AccountType{},
		&domain.BranchDetails{},
		&domain.TransactionType{},
		&domain.FundTransfer{},
		&domain.AccountTransactionDetails{},
		&domain.TokenBlockList{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedLookups(db)

	// release before serving so other instances can start
	if _, err := lockConn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", migrateLockID); err != nil {
		log.Printf("migration unlock error: %v", err)
	}
	if err := lockConn.Close(); err != nil {
		log.Printf("migration lock connection close error: %v", err)
	}

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	userTypeRepo := repository.NewUserTypeRepository(db)
	accountRepo := repository.NewBankAccountRepository(db)
	accountTypeRepo := repository.NewAccountTypeRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	txTypeRepo := repository.NewTransactionTypeRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	ftRepo := repository.NewFundTransferRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, userTypeRepo, tokenRepo, authHelper)
	accountSvc := services.NewAccountService(accountRepo, userRepo, accountTypeRepo, branchRepo)
	ledgerSvc := services.NewLedgerService(ledgerRepo, txRepo, ftRepo, txTypeRepo, accountRepo, kafkaProducer)

	// ---------- Handlers ----------
	userHandler := handlers.NewUserHandler(userSvc)
	accountHandler := handlers.NewAccountHandler(accountSvc)
	transactionHandler := handlers.NewTransactionHandler(ledgerSvc)
	authHandler := handlers.NewAuthHandler(userSvc, authHelper)

	// ---------- Routes ----------
	// public: registration and login only
	app.Post("/user", userHandler.CreateUser)
	app.Post("/login", authHandler.Login)

	app.Use(middleware.AuthMiddleware(authHelper, tokenRepo))

	userHandler.SetupRoutes(app)
	accountHandler.SetupRoutes(app)
	transactionHandler.SetupRoutes(app)
	authHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Block list pruning ----------
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		n, err := tokenRepo.DeleteOlderThan(time.Now().Add(-authHelper.TTL))
		if err != nil {
			log.Printf("token block list prune error: %v", err)
			return
		}
		if n > 0 {
			log.Printf("pruned %d expired tokens from block list", n)
		}
	}); err != nil {
		log.Fatalf("cron setup error: %v", err)
	}
	c.Start()
	defer c.Stop()

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

func seedLookups(db *gorm.DB) {
	for _, name := range []string{domain.TransactionTypeCredit, domain.TransactionTypeDebit} {
		var tt domain.TransactionType
		err := db.Where("transaction_type = ?", name).First(&tt).Error
		if err == gorm.ErrRecordNotFound {
			_ = db.Create(&domain.TransactionType{TransactionType: name}).Error
		}
	}

	for _, name := range []string{"Saving", "Current"} {
		var at domain.AccountType
		err := db.Where("account_type = ?", name).First(&at).Error
		if err == gorm.ErrRecordNotFound {
			_ = db.Create(&domain.AccountType{AccountType: name}).Error
		}
	}

	for _, name := range []string{"customer", "admin", "other"} {
		var ut domain.UserType
		err := db.Where("user_type = ?", name).First(&ut).Error
		if err == gorm.ErrRecordNotFound {
			_ = db.Create(&domain.UserType{UserType: name}).Error
		}
	}
}
