package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"solar-advisor/internal/api"
	"solar-advisor/internal/config"
	"solar-advisor/internal/data"
	"solar-advisor/internal/forecast"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	cfgPath := flag.String("config", os.Getenv("CONFIG_FILE"), "Path to YAML config (optional)")
	modelPath := flag.String("model", "", "Path to rain model YAML (default: forecast.model_file)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *modelPath == "" {
		*modelPath = cfg.Forecast.ModelFile
	}

	rainModel, err := data.LoadRainModel(*modelPath)
	if err != nil {
		log.Fatalf("Failed to load rain model: %v", err)
	}
	log.Printf("Loaded rain model %s (%d states, updated %s)", *modelPath, len(rainModel.States), rainModel.UpdatedAt)

	port := os.Getenv("PREDICT_PORT")
	if port == "" {
		port = "8000"
	}

	router := api.NewPredictRouter(cfg, forecast.NewPredictor(rainModel))

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting prediction server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
