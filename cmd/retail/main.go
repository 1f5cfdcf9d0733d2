package main

import (
	"context"
	"fmt"
	"os"

	"retail-cli/internal/catalog"
	"retail-cli/internal/cli"
	"retail-cli/internal/config"
	"retail-cli/internal/database"
	"retail-cli/internal/repository"
	"retail-cli/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	paymentRepo := repository.NewPaymentRepository(pool, logger)

	// Initialize catalogue feed loader with S3 and local fallback
	fileLoader := catalog.NewFileLoader(logger)
	var feedLoader catalog.Loader

	if cfg.S3.Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			feedLoader = fileLoader
		} else {
			feedLoader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
		}
	} else {
		// S3 disabled, use local file system only
		feedLoader = fileLoader
	}

	// Initialize services
	productService := service.NewProductService(productRepo, feedLoader, logger)
	customerService := service.NewCustomerService(customerRepo, orderRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, logger)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, logger)
	reportService := service.NewReportService(orderRepo, logger)

	app := cli.New(
		productService,
		customerService,
		orderService,
		paymentService,
		reportService,
		cfg,
		logger,
		os.Stdout,
	)

	return app.Run(ctx, os.Args[1:])
}
