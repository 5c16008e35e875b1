package main

import (
	"net/http"

	"loopa-be/internal/category"
	"loopa-be/internal/config"
	"loopa-be/internal/db"
	"loopa-be/internal/graph"
	"loopa-be/internal/logger"
	"loopa-be/internal/middleware"
	"loopa-be/internal/order"
	"loopa-be/internal/product"
	"loopa-be/internal/sample"
	"loopa-be/internal/user"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	userRepo := user.NewRepository(database)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo, userRepo, cfg.MissingProductPolicy)

	sampleRepo := sample.NewRepository(database)
	sampleSvc := sample.NewService(sampleRepo, orderRepo)

	resolver := &graph.Resolver{
		DB:          database,
		ProductSvc:  productSvc,
		CategorySvc: categorySvc,
		OrderSvc:    orderSvc,
		SampleSvc:   sampleSvc,
		UserRepo:    userRepo,
	}

	srv := handler.NewDefaultServer(graph.NewSchema(resolver))

	query := logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.RateLimitMiddleware(
				middleware.AuthMiddleware(srv))))

	http.Handle("/", playground.Handler("GraphQL Playground", "/query"))
	http.Handle("/query", query)

	logger.L().Info("GraphQL server running", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, nil); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
