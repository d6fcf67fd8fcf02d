package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/utils"
)

// DefaultReportFilename is used when the caller does not name the export.
const DefaultReportFilename = "reports.csv"

// SaveReport wraps any report-producing function with persistence: after
// the wrapped function succeeds, the full result is written to the named
// file under reportsDir (overwriting a previous export) and returned
// unchanged. If the wrapped function fails, nothing is persisted and the
// failure is recorded and re-raised.
func SaveReport(reportsDir, filename string, fn ReportFunc) ReportFunc {
	if filename == "" {
		filename = DefaultReportFilename
	}
	return func(category string, date *time.Time) ([]models.Transaction, error) {
		result, err := fn(category, date)
		if err != nil {
			logger.L.Error("Report function failed, nothing persisted", "file", filename, "error", err)
			return nil, err
		}

		path := filepath.Join(reportsDir, filename)
		if err := writeReportCSV(path, result); err != nil {
			return nil, fmt.Errorf("persisting report to %s: %w", path, err)
		}

		logger.L.Info("Report persisted", "path", path, "rows", len(result))
		return result, nil
	}
}

func writeReportCSV(path string, transactions []models.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating reports directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if err := w.Write([]string{"Дата операции", "Сумма операции", "Категория", "Описание", "Номер карты"}); err != nil {
		return err
	}
	for _, tx := range transactions {
		row := []string{
			tx.OperationDate.Format(utils.OperationDateLayout),
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			tx.Category,
			tx.Description,
			tx.CardNumber,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
