package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/controller"
	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/middleware"
	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/http/router"
	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/repository/memory"
	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/repository/postgres"
	"github.com/api-sage/multiop-transaction-engine/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/bank"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/microfinance"
	"github.com/api-sage/multiop-transaction-engine/src/internal/capability/mobilemoney"
	"github.com/api-sage/multiop-transaction-engine/src/internal/config"
	"github.com/api-sage/multiop-transaction-engine/src/internal/engine"
	"github.com/api-sage/multiop-transaction-engine/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	resolver, err := capability.NewResolver(
		bank.NewProvider(),
		mobilemoney.NewProvider(),
		microfinance.NewProvider(),
	)
	if err != nil {
		log.Fatalf("build capability resolver: %v", err)
	}

	fraudPolicy := engine.NewDefaultFraudPolicy()
	fraudPolicy.DefaultLimit = cfg.FraudDefaultLimit
	executor := engine.NewExecutor(fraudPolicy, nil)

	var transactionLog repo_interfaces.TransactionLogRepository
	if cfg.DatabaseDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		defer db.Close()

		repo := postgres.NewTransactionLogRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		transactionLog = repo
	} else {
		transactionLog = memory.NewTransactionLogRepository()
	}

	transactionService := services.NewTransactionService(resolver, executor, transactionLog)
	operatorService := services.NewOperatorService(resolver)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.ChannelKeyHash != "" {
		authMiddleware = middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKeyHash)
	}

	mux := router.New(
		controller.NewTransactionController(transactionService),
		controller.NewOperatorController(operatorService),
		authMiddleware,
	)

	log.Printf("multi-operator transaction engine listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
