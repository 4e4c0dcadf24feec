package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/chainfolio/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Checking database migrations", "databasePath", databasePath)
	} else {
		stdlog.Println("Checking database migrations for:", databasePath)
	}
	migrateLedgerRowsTable()

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		label TEXT NOT NULL,
		row_count INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS ledger_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		import_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		buy_amount TEXT,
		buy_currency TEXT,
		sell_amount TEXT,
		sell_currency TEXT,
		fee TEXT,
		fee_currency TEXT,
		exchange TEXT,
		trade_group TEXT,
		comment TEXT,
		date TEXT NOT NULL,
		FOREIGN KEY(import_id) REFERENCES imports(id)
	);

	CREATE INDEX IF NOT EXISTS idx_ledger_rows_date ON ledger_rows(date);
	`

	_, err = DB.Exec(createTableStatement)
	if err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create tables", "error", err)
		}
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Database tables ensured/created.")
	} else {
		stdlog.Println("Database tables ensured/created.")
	}
}

func migrateLedgerRowsTable() {
	var tableName string
	err := DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='ledger_rows'").Scan(&tableName)
	if err != nil {
		if err == sql.ErrNoRows {
			if logger.L != nil {
				logger.L.Info("'ledger_rows' table does not exist, no migration needed as table will be created.")
			} else {
				stdlog.Println("'ledger_rows' table does not exist, no migration needed as table will be created.")
			}
			return
		}
		if logger.L != nil {
			logger.L.Error("Error checking for 'ledger_rows' table", "error", err)
		} else {
			stdlog.Printf("Error checking for 'ledger_rows' table: %v", err)
		}
		return
	}

	rows, err := DB.Query("PRAGMA table_info(ledger_rows)")
	if err != nil {
		if logger.L != nil {
			logger.L.Error("Error querying table schema for 'ledger_rows'", "error", err)
		} else {
			stdlog.Printf("Error querying table schema for 'ledger_rows': %v", err)
		}
		return
	}
	defer rows.Close()

	columnExists := make(map[string]bool)
	for rows.Next() {
		var cid, pk int
		var name, dataType string
		var notnullVal int
		var dfltValue interface{}

		if err := rows.Scan(&cid, &name, &dataType, &notnullVal, &dfltValue, &pk); err != nil {
			if logger.L != nil {
				logger.L.Error("Error scanning column info for 'ledger_rows'", "error", err)
			} else {
				stdlog.Printf("Error scanning column info for 'ledger_rows': %v", err)
			}
			return
		}
		columnExists[name] = true
	}
	if err = rows.Err(); err != nil {
		if logger.L != nil {
			logger.L.Error("Error iterating over column info for 'ledger_rows'", "error", err)
		} else {
			stdlog.Printf("Error iterating over column info for 'ledger_rows': %v", err)
		}
		return
	}

	// Early versions stored rows without a trade group column.
	if _, ok := columnExists["trade_group"]; !ok {
		_, err := DB.Exec("ALTER TABLE ledger_rows ADD COLUMN trade_group TEXT")
		if err != nil {
			if logger.L != nil {
				logger.L.Error("Error adding 'trade_group' column to 'ledger_rows' table", "error", err)
			} else {
				stdlog.Printf("Error adding 'trade_group' column: %v", err)
			}
		} else if logger.L != nil {
			logger.L.Info("Added 'trade_group' column to 'ledger_rows' table")
		}
	}
}
