package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DatabasePath string
	LogLevel     string

	// APISecret signs the HS256 bearer tokens guarding the API.
	APISecret        string
	TokenExpiry      time.Duration
	MaxUploadSizeBytes int64

	// Wallet/chain settings for the conversion engine.
	WalletAddress string
	Chain         string
	NativeSymbol  string
	ExchangeLabel string

	// CutoffDate, when set, excludes converted rows dated strictly before it.
	// Format: "2006-01-02 15:04:05" or "2006-01-02".
	CutoffDate string

	// SymbolOverrides layers user mappings over the built-in symbol table,
	// e.g. "Mantle=MNT3,ATOM=ATOM2".
	SymbolOverrides map[string]string
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	apiSecret := getEnv("API_SECRET", "change-me-a-very-secure-32-byte-long-signing-key")
	if apiSecret == "change-me-a-very-secure-32-byte-long-signing-key" {
		log.Println("WARNING: Using default insecure API_SECRET. Set API_SECRET environment variable for production.")
	}

	tokenExpiryStr := getEnv("TOKEN_EXPIRY", "60m")
	tokenExpiry, err := time.ParseDuration(tokenExpiryStr)
	if err != nil {
		log.Printf("WARNING: Invalid TOKEN_EXPIRY format '%s'. Using default 60m. Error: %v", tokenExpiryStr, err)
		tokenExpiry = 60 * time.Minute
	}

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	walletAddress := strings.ToLower(strings.TrimSpace(getEnv("WALLET_ADDRESS", "")))
	if walletAddress == "" {
		log.Println("WARNING: WALLET_ADDRESS is not set. Conversion requests must carry the wallet address explicitly.")
	}

	Cfg = &AppConfig{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./chainfolio.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		APISecret:          apiSecret,
		TokenExpiry:        tokenExpiry,
		MaxUploadSizeBytes: maxUploadSizeBytes,

		WalletAddress: walletAddress,
		Chain:         getEnv("CHAIN", "Ethereum"),
		NativeSymbol:  getEnv("NATIVE_SYMBOL", "ETH"),
		ExchangeLabel: getEnv("EXCHANGE_LABEL", "Wallet"),
		CutoffDate:    getEnv("CUTOFF_DATE", ""),

		SymbolOverrides: parseSymbolOverrides(getEnv("SYMBOL_OVERRIDES", "")),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, Chain=%s, NativeSymbol=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.Chain, Cfg.NativeSymbol)
}

// parseSymbolOverrides parses "Raw=Canonical,Raw2=Canonical2" pairs.
// Malformed entries are skipped with a warning, never fatal.
func parseSymbolOverrides(raw string) map[string]string {
	overrides := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return overrides
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			log.Printf("WARNING: Skipping malformed SYMBOL_OVERRIDES entry '%s'", pair)
			continue
		}
		overrides[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return overrides
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}
