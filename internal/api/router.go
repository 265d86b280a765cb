package api

import (
	"net/http"

	"solar-advisor/internal/api/handlers"
	"solar-advisor/internal/api/middleware"
	"solar-advisor/internal/config"
	"solar-advisor/internal/render"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the API server routes to.
type Deps struct {
	Advisor    handlers.Advisor
	Forecaster handlers.Forecaster
	// States feeds the state picker on the index page. May be empty.
	States []string
}

// NewRouter builds the API server: form pages plus the /api/v1 JSON routes.
func NewRouter(cfg *config.Config, deps Deps) (*gin.Engine, error) {
	router := newEngine(cfg)

	tmpl, err := render.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	params := cfg.Projection.ToModelParams()
	pageHandler := handlers.NewPageHandler(deps.States)
	solarHandler := handlers.NewSolarHandler(deps.Advisor)
	energyHandler := handlers.NewEnergyHandler(deps.Advisor, params)
	incomeHandler := handlers.NewIncomeHandler(deps.Forecaster, params)

	router.GET("/", pageHandler.Index)
	router.POST("/solar-planning", solarHandler.SubmitForm)
	router.POST("/energy-selling", energyHandler.SubmitForm)
	router.POST("/solar-income", incomeHandler.ProjectForm)

	api := router.Group("/api/v1")
	{
		api.POST("/solar-planning", solarHandler.Submit)
		api.POST("/energy-selling", energyHandler.Submit)
		api.POST("/energy-selling/projection", energyHandler.Projection)
		api.POST("/solar-income", incomeHandler.Project)
		api.GET("/states", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"states": deps.States})
		})
	}

	return router, nil
}

// NewPredictRouter builds the standalone rainy-day prediction server.
func NewPredictRouter(cfg *config.Config, forecaster handlers.Forecaster) *gin.Engine {
	router := newEngine(cfg)
	router.POST("/predict", handlers.NewPredictHandler(forecaster).Predict)
	return router
}

func newEngine(cfg *config.Config) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
