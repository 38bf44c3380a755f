package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g cmd/api/main.go -o docs --parseDependency

import (
	"context"
	"net/http"

	"bagmarket-api/internal/config"
	"bagmarket-api/internal/handler"
	"bagmarket-api/internal/repository"
	"bagmarket-api/internal/service"
	"bagmarket-api/internal/upstream"

	_ "bagmarket-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Bag Market API
// @version 1.0
// @description Gateway for the surprise-bag marketplace: location resolution, store search and listings.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	locationCache := repository.NewLocationCache(conn, log.Logger)
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	resolver := service.NewResolver(client, locationCache, service.SavePolicy(cfg.SavePolicy), log.Logger)
	storeSearch := service.NewStoreSearch(client, log.Logger)
	locationSearch := service.NewLocationSearch(client, cfg.SearchCacheTTL, log.Logger)
	listings := service.NewListings(client)

	locationHandler := handler.NewLocationHandler(resolver, cfg.DefaultDeviceID)
	searchHandler := handler.NewLocationSearchHandler(locationSearch)
	storesHandler := handler.NewStoresHandler(storeSearch, listings)
	bagsHandler := handler.NewBagsHandler(listings)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger(log.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/location", locationHandler.Get)
	r.POST("/location", locationHandler.Save)
	r.GET("/locations/search", searchHandler.Search)
	r.GET("/stores/nearby", storesHandler.Nearby)
	r.GET("/stores/:id", storesHandler.ByID)
	r.GET("/surprise-bags", bagsHandler.List)
	r.GET("/surprise-bags/:id", bagsHandler.ByID)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
