package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rmussard/easyloc-api/internal/config"
	"github.com/rmussard/easyloc-api/internal/db"
	"github.com/rmussard/easyloc-api/internal/excel"
	httphandler "github.com/rmussard/easyloc-api/internal/http"
	"github.com/rmussard/easyloc-api/internal/logger"
	"github.com/rmussard/easyloc-api/internal/pdf"
	"github.com/rmussard/easyloc-api/internal/repository"
	"github.com/rmussard/easyloc-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	relational, err := db.NewPostgres(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect postgres")
	}

	ctx := context.Background()
	mongoClient, documents, err := db.NewMongo(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongo")
	}
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	customerRepo := repository.NewCustomerRepository(documents)
	vehicleRepo := repository.NewVehicleRepository(documents)
	contractRepo := repository.NewContractRepository(relational)
	billingRepo := repository.NewBillingRepository(relational)
	reportRepo := repository.NewReportRepository(relational)

	customerService := service.NewCustomerService(customerRepo, contractRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, contractRepo)
	contractService := service.NewContractService(contractRepo, billingRepo, customerRepo, vehicleRepo)
	billingService := service.NewBillingService(billingRepo, contractRepo)
	reportService := service.NewReportService(reportRepo, excel.NewGenerator(), pdf.NewGenerator())

	handler := httphandler.NewHandler(customerService, vehicleService, contractService, billingService, reportService, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting easyloc api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
