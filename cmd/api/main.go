package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"solar-advisor/internal/api"
	"solar-advisor/internal/api/handlers"
	"solar-advisor/internal/config"
	"solar-advisor/internal/data"
	"solar-advisor/internal/forecast"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Webhook.URL == "" {
		log.Printf("Webhook URL not configured; advice requests will return WEBHOOK_NOT_CONFIGURED")
	}
	advisor := data.NewWebhookClient(cfg.Webhook.URL, cfg.Webhook.Timeout, cfg.Webhook.RepairJSON)

	// The rain model feeds the state picker and, without a prediction URL,
	// answers predictions in-process.
	var states []string
	rainModel, err := data.LoadRainModel(cfg.Forecast.ModelFile)
	if err == nil {
		states = rainModel.StateNames()
		log.Printf("Loaded rain model %s (%d states)", cfg.Forecast.ModelFile, len(states))
	}

	var forecaster handlers.Forecaster
	if cfg.Prediction.URL != "" {
		forecaster = data.NewPredictionClient(cfg.Prediction.URL, cfg.Prediction.Timeout)
		log.Printf("Using prediction service at %s", cfg.Prediction.URL)
	} else {
		if err != nil {
			log.Fatalf("No prediction URL and rain model unavailable: %v", err)
		}
		forecaster = forecast.NewPredictor(rainModel)
		log.Printf("Using in-process rainy-day predictor")
	}

	router, err := api.NewRouter(cfg, api.Deps{
		Advisor:    advisor,
		Forecaster: forecaster,
		States:     states,
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
