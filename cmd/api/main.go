package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barbeariabiu/agenda/internal/config"
	dbpkg "github.com/barbeariabiu/agenda/internal/db"
	"github.com/barbeariabiu/agenda/internal/logger"
	"github.com/barbeariabiu/agenda/internal/middleware"
	"github.com/barbeariabiu/agenda/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	db := dbpkg.Connect(cfg)
	log.Info("conexão com MongoDB estabelecida", zap.String("database", cfg.MongoDB))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
