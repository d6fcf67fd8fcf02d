package parsers

import (
	"fmt"
	"os"

	"github.com/username/finreport/src/models"
)

// FileSource loads transactions from an export file on disk.
// Every Load re-reads the file in full before any report runs on it.
type FileSource struct {
	path   string
	parser Parser
}

func NewFileSource(path string, parser Parser) *FileSource {
	return &FileSource{path: path, parser: parser}
}

func (s *FileSource) Load() ([]models.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening operations file %s: %w", s.path, err)
	}
	defer f.Close()
	return s.parser.Parse(f)
}
