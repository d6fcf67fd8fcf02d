package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/username/finreport/src/models"
	"github.com/username/finreport/src/utils"
)

// Column headers of the bank's operations export.
const (
	colOperationDate = "Дата операции"
	colAmount        = "Сумма операции"
	colCategory      = "Категория"
	colDescription   = "Описание"
	colCardNumber    = "Номер карты"
)

// OperationsParser parses the semicolon-delimited operations export.
type OperationsParser struct{}

func NewOperationsParser() *OperationsParser {
	return &OperationsParser{}
}

func (p *OperationsParser) Parse(file io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read export header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colOperationDate, colAmount} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("export is missing required column %q", required)
		}
	}

	var transactions []models.Transaction
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read export row %d: %w", line, err)
		}

		date, err := utils.ParseOperationDate(field(record, index, colOperationDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		amountStr := strings.ReplaceAll(field(record, index, colAmount), ",", ".")
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q: %w", line, amountStr, err)
		}

		tx := models.Transaction{
			OperationDate: models.ISOTime{Time: date},
			Amount:        amount,
			Category:      field(record, index, colCategory),
			Description:   field(record, index, colDescription),
			CardNumber:    normalizeCardNumber(field(record, index, colCardNumber)),
		}

		// Carry unmapped columns so a record can be enumerated in full.
		for name, i := range index {
			switch name {
			case colOperationDate, colAmount, colCategory, colDescription, colCardNumber:
				continue
			}
			if i < len(record) {
				if tx.Extra == nil {
					tx.Extra = make(map[string]string)
				}
				tx.Extra[name] = record[i]
			}
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func field(record []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// normalizeCardNumber treats the export's textual NaN as a missing card.
func normalizeCardNumber(card string) string {
	if strings.EqualFold(card, "nan") {
		return ""
	}
	return card
}
