package parsers

import (
	"io"

	"github.com/username/finreport/src/models"
)

// Parser reads a full operations export into memory.
type Parser interface {
	Parse(file io.Reader) ([]models.Transaction, error)
}
