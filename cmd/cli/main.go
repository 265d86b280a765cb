package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"solar-advisor/internal/analysis"
	"solar-advisor/internal/config"
	"solar-advisor/internal/data"
	"solar-advisor/internal/forecast"
	"solar-advisor/internal/model"
	"solar-advisor/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "energy":
		cmdEnergy(os.Args[2:])
	case "income":
		cmdIncome(os.Args[2:])
	case "train":
		cmdTrain(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli energy --panel-capacity 5 --sell-rate 0.3 --avg-usage 10 [--battery-capacity 13.5] [--gov-incentive 120] [--out results/energy.csv]")
	fmt.Println("  cli income --state selangor --panel-capacity 4 --sell-rate 0.5 [--model data/rain_model.yaml]")
	fmt.Println("  cli train --data weather.csv --out data/rain_model.yaml [--counts results/rainy_days.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - energy prints the local selling projection; values that cannot be computed show N/A")
	fmt.Println("  - income predicts next month's rainy days from the rain model")
	fmt.Println("  - train builds the per-state monthly rainy-day model from hourly observations")
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fail(err)
	}
	return cfg
}

func cmdEnergy(args []string) {
	fs := flag.NewFlagSet("energy", flag.ExitOnError)
	battery := fs.Float64("battery-capacity", 0, "Battery capacity (kWh)")
	panel := fs.Float64("panel-capacity", 0, "Panel capacity (kW)")
	sellRate := fs.Float64("sell-rate", 0, "Sell rate per kWh")
	avgUsage := fs.Float64("avg-usage", 0, "Average usage (kWh/day)")
	incentive := fs.Float64("gov-incentive", 0, "Government incentive per year")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional CSV output path")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	in := model.EnergyInputs{
		BatteryCapacity: *battery,
		PanelCapacity:   *panel,
		SellRate:        *sellRate,
		AvgUsage:        *avgUsage,
		GovIncentive:    *incentive,
	}
	if err := in.Validate(); err != nil {
		fail(err)
	}

	view := model.CalculateEnergySelling(in, cfg.Projection.ToModelParams()).Formatted()
	printRows(view.Rows())

	if *outPath != "" {
		if err := report.WriteProjectionCSV(*outPath, in.Rows(), view.Rows()); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote projection to %s\n", *outPath)
	}
}

func cmdIncome(args []string) {
	fs := flag.NewFlagSet("income", flag.ExitOnError)
	state := fs.String("state", "", "State name, e.g. \"Kuala Lumpur\"")
	panel := fs.Float64("panel-capacity", 0, "Panel capacity (kW)")
	sellRate := fs.Float64("sell-rate", 0, "Sell rate per kWh")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	modelPath := fs.String("model", "", "Path to rain model YAML (default: forecast.model_file)")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *modelPath == "" {
		*modelPath = cfg.Forecast.ModelFile
	}

	in := model.SolarIncomeInputs{State: *state, PanelCapacity: *panel, SellRate: *sellRate}
	if err := in.Validate(); err != nil {
		fail(err)
	}

	rainModel, err := data.LoadRainModel(*modelPath)
	if err != nil {
		fail(err)
	}
	pred, err := forecast.NewPredictor(rainModel).Predict(context.Background(), in.State)
	if err != nil {
		fail(err)
	}

	p := model.ProjectSolarIncome(in, *pred, cfg.Projection.ToModelParams())
	v := p.Formatted()
	fmt.Printf("%s, %s: %d of %d days predicted rainy\n", in.State, time.Month(p.NextMonth), v.RainyDays, v.DaysInNextMonth)
	printRows([]model.Row{
		{Label: "Daily production on a sunny day (kWh)", Value: v.DailyProduction},
		{Label: "Monthly production (kWh)", Value: v.MonthlyProduction},
		{Label: "Monthly income", Value: v.MonthlyIncome},
	})
}

func cmdTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to observations CSV (datetime,state,precipitation_total)")
	outPath := fs.String("out", data.DefaultRainModelPath(), "Output rain model YAML path")
	countsPath := fs.String("counts", "", "Optional CSV of per-month rainy-day counts")
	_ = fs.Parse(args)

	if *dataPath == "" {
		fmt.Println("--data is required")
		os.Exit(2)
	}

	obs, err := data.ReadObservationsFile(*dataPath)
	if err != nil {
		fail(err)
	}
	if len(obs) == 0 {
		fail(fmt.Errorf("%s has no usable observations", *dataPath))
	}

	m := analysis.BuildRainClimatology(obs)
	m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	m.Source = *dataPath
	if err := m.Validate(); err != nil {
		fail(err)
	}
	if err := data.SaveRainModel(m, *outPath); err != nil {
		fail(err)
	}
	fmt.Printf("Read %d observations, wrote %d states to %s\n", len(obs), len(m.States), *outPath)

	if *countsPath != "" {
		counts := analysis.CountRainyDays(obs)
		if err := report.WriteRainyDaysCSV(*countsPath, counts); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(counts), *countsPath)
	}
}

func printRows(rows []model.Row) {
	for _, r := range rows {
		fmt.Printf("%-36s %12s\n", r.Label, r.Value)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
