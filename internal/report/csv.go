package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"solar-advisor/internal/analysis"
	"solar-advisor/internal/model"
)

// WriteProjectionCSV writes inputs and projection rows as section,label,value.
func WriteProjectionCSV(path string, inputs, projection []model.Row) error {
	return writeCSV(path, []string{"section", "label", "value"}, func(w *csv.Writer) error {
		for _, r := range inputs {
			if err := w.Write([]string{"input", r.Label, r.Value}); err != nil {
				return err
			}
		}
		for _, r := range projection {
			if err := w.Write([]string{"projection", r.Label, r.Value}); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteRainyDaysCSV writes per-month rainy-day counts, one row per state and month.
func WriteRainyDaysCSV(path string, counts []analysis.MonthlyRainyDays) error {
	return writeCSV(path, []string{"state", "year", "month", "rainy_days", "observed_days"}, func(w *csv.Writer) error {
		for _, c := range counts {
			row := []string{
				c.State,
				strconv.Itoa(c.Year),
				strconv.Itoa(int(c.Month)),
				strconv.Itoa(c.RainyDays),
				strconv.Itoa(c.ObservedDays),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, header []string, rows func(*csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := rows(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
