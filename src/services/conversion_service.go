package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/chainfolio/backend/src/config"
	"github.com/username/chainfolio/backend/src/database"
	"github.com/username/chainfolio/backend/src/logger"
	"github.com/username/chainfolio/backend/src/models"
	"github.com/username/chainfolio/backend/src/parsers"
	"github.com/username/chainfolio/backend/src/processors"
	"github.com/username/chainfolio/backend/src/security/validation"
)

const (
	ckLedgerRows = "res_ledger_rows"
	ckImports    = "res_imports"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type conversionServiceImpl struct {
	converter   *processors.Converter
	resolver    *processors.SymbolResolver
	reportCache *cache.Cache
}

func NewConversionService(converter *processors.Converter, resolver *processors.SymbolResolver, reportCache *cache.Cache) ConversionService {
	return &conversionServiceImpl{
		converter:   converter,
		resolver:    resolver,
		reportCache: reportCache,
	}
}

func (s *conversionServiceImpl) ProcessConversion(files []CategoryFile, label string) (*ConversionResult, error) {
	overallStartTime := time.Now()
	logger.L.Info("ProcessConversion START", "label", label, "files", len(files))

	if config.Cfg.WalletAddress == "" {
		return nil, fmt.Errorf("%w: WALLET_ADDRESS is not set", ErrNotConfigured)
	}

	input, err := s.collectInput(files)
	if err != nil {
		return nil, err
	}

	cfg := processors.ConversionConfig{
		UserAddress:  models.NewAddress(config.Cfg.WalletAddress),
		NativeSymbol: config.Cfg.NativeSymbol,
		Exchange:     config.Cfg.ExchangeLabel,
		CutoffDate:   config.Cfg.CutoffDate,
	}

	rows := s.converter.Convert(input, cfg, s.resolver)

	importID, err := s.storeRows(label, rows)
	if err != nil {
		return nil, err
	}

	s.invalidateCaches()

	logger.L.Info("ProcessConversion END", "label", label, "rowCount", len(rows), "duration", time.Since(overallStartTime))
	return &ConversionResult{ImportID: importID, RowCount: len(rows), Rows: rows}, nil
}

// collectInput reads every uploaded file into row maps and buckets them by
// category, auto-detecting from header shape when the caller did not say.
// Multiple files of the same category are concatenated.
func (s *conversionServiceImpl) collectInput(files []CategoryFile) (processors.ConversionInput, error) {
	var input processors.ConversionInput
	for _, file := range files {
		rows, err := parsers.ReadRows(file.Reader)
		if err != nil {
			return input, fmt.Errorf("%w: file %s: %v", ErrParsingFailed, file.Name, err)
		}

		category := file.Category
		if category == "" || category == parsers.CategoryUnknown {
			category = parsers.DetectCategory(rows)
			logger.L.Info("Auto-detected export category", "file", file.Name, "category", category)
		}

		switch category {
		case parsers.CategoryNative:
			input.NativeRows = append(input.NativeRows, rows...)
		case parsers.CategoryToken:
			input.TokenRows = append(input.TokenRows, rows...)
		case parsers.CategoryInternal:
			input.InternalRows = append(input.InternalRows, rows...)
		case parsers.CategoryNft721:
			input.Nft721Rows = append(input.Nft721Rows, rows...)
		case parsers.CategoryNft1155:
			input.Nft1155Rows = append(input.Nft1155Rows, rows...)
		default:
			return input, fmt.Errorf("%w: cannot determine export category of file %s", ErrParsingFailed, file.Name)
		}
	}
	return input, nil
}

func (s *conversionServiceImpl) storeRows(label string, rows []models.CoinTrackingRow) (int64, error) {
	dbTx, err := database.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("error beginning database transaction: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.Exec(`INSERT INTO imports (label, row_count) VALUES (?, ?)`, label, len(rows))
	if err != nil {
		return 0, fmt.Errorf("error recording import: %w", err)
	}
	importID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading import id: %w", err)
	}

	stmt, err := dbTx.Prepare(`INSERT INTO ledger_rows (import_id, type, buy_amount, buy_currency, sell_amount, sell_currency, fee, fee_currency, exchange, trade_group, comment, date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.Exec(importID, row.Type, row.BuyAmount, row.BuyCurrency, row.SellAmount, row.SellCurrency, row.Fee, row.FeeCurrency, row.Exchange, row.TradeGroup, row.Comment, row.Date)
		if err != nil {
			return 0, fmt.Errorf("error inserting ledger row (date %s): %w", row.Date, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing ledger rows: %w", err)
	}
	return importID, nil
}

func (s *conversionServiceImpl) invalidateCaches() {
	s.reportCache.Delete(ckLedgerRows)
	s.reportCache.Delete(ckImports)
	logger.L.Info("Invalidated report caches")
}

func (s *conversionServiceImpl) GetLedgerRows() ([]models.CoinTrackingRow, error) {
	if cached, found := s.reportCache.Get(ckLedgerRows); found {
		logger.L.Debug("Cache hit for GetLedgerRows")
		return cached.([]models.CoinTrackingRow), nil
	}

	logger.L.Debug("Cache miss for GetLedgerRows, fetching from DB")
	dbRows, err := database.DB.Query(`SELECT id, type, buy_amount, buy_currency, sell_amount, sell_currency, fee, fee_currency, exchange, trade_group, comment, date FROM ledger_rows ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger rows: %w", err)
	}
	defer dbRows.Close()

	var rows []models.CoinTrackingRow
	for dbRows.Next() {
		var row models.CoinTrackingRow
		if err := dbRows.Scan(&row.ID, &row.Type, &row.BuyAmount, &row.BuyCurrency, &row.SellAmount, &row.SellCurrency, &row.Fee, &row.FeeCurrency, &row.Exchange, &row.TradeGroup, &row.Comment, &row.Date); err != nil {
			return nil, fmt.Errorf("error scanning ledger row: %w", err)
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over ledger rows: %w", err)
	}

	s.reportCache.Set(ckLedgerRows, rows, DefaultCacheExpiration)
	return rows, nil
}

func (s *conversionServiceImpl) GetImports() ([]models.ImportRecord, error) {
	if cached, found := s.reportCache.Get(ckImports); found {
		return cached.([]models.ImportRecord), nil
	}

	dbRows, err := database.DB.Query(`SELECT id, created_at, label, row_count FROM imports ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying imports: %w", err)
	}
	defer dbRows.Close()

	var imports []models.ImportRecord
	for dbRows.Next() {
		var rec models.ImportRecord
		if err := dbRows.Scan(&rec.ID, &rec.CreatedAt, &rec.Label, &rec.RowCount); err != nil {
			return nil, fmt.Errorf("error scanning import record: %w", err)
		}
		imports = append(imports, rec)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over imports: %w", err)
	}

	s.reportCache.Set(ckImports, imports, DefaultCacheExpiration)
	return imports, nil
}

func (s *conversionServiceImpl) DeleteAllRows() error {
	if _, err := database.DB.Exec(`DELETE FROM ledger_rows`); err != nil {
		return fmt.Errorf("error deleting ledger rows: %w", err)
	}
	if _, err := database.DB.Exec(`DELETE FROM imports`); err != nil {
		return fmt.Errorf("error deleting imports: %w", err)
	}
	s.invalidateCaches()
	logger.L.Info("Deleted all ledger rows and import history")
	return nil
}

// WriteCSV serializes the stored ledger in the fixed CoinTracking column
// order. Free-text fields are sanitized against spreadsheet formula
// injection before writing.
func (s *conversionServiceImpl) WriteCSV(w io.Writer) error {
	rows, err := s.GetLedgerRows()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(models.CSVHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := row.CSVRecord()
		for i, field := range record {
			record[i] = validation.SanitizeForFormulaInjection(validation.StripUnprintable(field))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
