package services

import (
	"fmt"

	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/processors"
	"github.com/username/finreport/src/utils"
)

type scanServiceImpl struct {
	source  TransactionSource
	scanner processors.PhoneScanner
}

func NewScanService(source TransactionSource, scanner processors.PhoneScanner) ScanService {
	return &scanServiceImpl{source: source, scanner: scanner}
}

// MobileTransactions scans every description for a mobile number and
// returns the matching records in full, timestamps rendered as ISO-8601
// strings. An unreadable source aborts the scan with no partial output.
func (s *scanServiceImpl) MobileTransactions() ([]map[string]any, error) {
	transactions, err := s.source.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	records := s.scanner.Scan(transactions)
	converted := make([]map[string]any, 0, len(records))
	for _, record := range records {
		converted = append(converted, utils.ConvertTimestamps(record).(map[string]any))
	}

	logger.L.Info("Mobile number scan complete", "matches", len(converted), "scanned", len(transactions))
	return converted, nil
}
