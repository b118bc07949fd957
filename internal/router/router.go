package router

import (
	"github.com/yethan4/shop-backend/internal/config"
	"github.com/yethan4/shop-backend/internal/handler"
	"github.com/yethan4/shop-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and mounts the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}

	api := r.Group("/api")

	// open endpoints: registration and token issuance/refresh
	authHandler := handler.NewAuthHandler(db, cfg.JWT, cfg.Security.BcryptCost)
	api.POST("/register", authHandler.Register)
	api.POST("/token", authHandler.Token)
	api.POST("/token/refresh", authHandler.Refresh)

	// endpoints requiring a valid access token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))

	protected.GET("/me", handler.CurrentUser)
	protected.GET("/me/detail", handler.CurrentUserDetail)

	addressHandler := handler.NewAddressHandler(db)
	protected.POST("/addresses", addressHandler.CreateAddress)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/me/export/csv", exportHandler.ExportCSV)
	protected.GET("/me/export/xlsx", exportHandler.ExportXLSX)

	return r
}
