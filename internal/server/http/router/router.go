package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Erickrodrigues05/angohire/internal/config"
	pkgAuth "github.com/Erickrodrigues05/angohire/internal/pkg/auth"
	"github.com/Erickrodrigues05/angohire/internal/server/http/handlers"
	"github.com/Erickrodrigues05/angohire/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AngohireFacade, verifier pkgAuth.Verifier, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade, cfg)
	resumeHandler := handlers.NewResumeHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)

	api := engine.Group("/api")
	api.POST("/resume/analyze", resumeHandler.Analyze)
	api.GET("/templates", resumeHandler.Templates)

	orders := api.Group("/orders")
	orders.POST("/create", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/download-pdf", orderHandler.DownloadPDF)

	admin := orders.Group("")
	admin.Use(middleware.AdminRequired(verifier))
	admin.GET("/list", orderHandler.List)
	admin.POST("/:id/confirm-payment", orderHandler.ConfirmPayment)
	admin.POST("/:id/cancel", orderHandler.Cancel)

	return engine
}
