package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/menucraft/restaurant-backend/internal/config"
	dbpkg "github.com/menucraft/restaurant-backend/internal/db"
	"github.com/menucraft/restaurant-backend/internal/logger"
	"github.com/menucraft/restaurant-backend/internal/middleware"
	"github.com/menucraft/restaurant-backend/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, zlog)

	zlog.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
