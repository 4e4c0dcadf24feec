package services

import (
	"errors"
	"io"

	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/parsers"
)

var (
	ErrParsingFailed    = errors.New("parsing failed")
	ErrProcessingFailed = errors.New("processing failed")
	ErrNotConfigured    = errors.New("conversion not configured")
)

// ConversionResult holds the outcome of one conversion run.
type ConversionResult struct {
	ImportID int64                    `json:"import_id"`
	RowCount int                      `json:"row_count"`
	Rows     []models.CoinTrackingRow `json:"rows"`
}

// CategoryFile is one uploaded export file with its (possibly undetected)
// category.
type CategoryFile struct {
	Category parsers.Category
	Reader   io.Reader
	Name     string
}

// ConversionService defines the core conversion/reporting logic.
type ConversionService interface {
	ProcessConversion(files []CategoryFile, label string) (*ConversionResult, error)
	GetLedgerRows() ([]models.CoinTrackingRow, error)
	GetImports() ([]models.ImportRecord, error)
	DeleteAllRows() error
	WriteCSV(w io.Writer) error
}
