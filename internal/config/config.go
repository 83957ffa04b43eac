package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	WHMCS        WHMCS        `mapstructure:",squash"`
	ExchangeRate ExchangeRate `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	CacheWarmup  CacheWarmup  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type WHMCS struct {
	URL           string        `mapstructure:"whmcs_api_url"`
	Identifier    string        `mapstructure:"whmcs_api_identifier"`
	Secret        string        `mapstructure:"whmcs_api_secret"`
	Timeout       time.Duration `mapstructure:"whmcs_timeout"`
	ClientsLimit  int           `mapstructure:"whmcs_clients_limit"`
	InvoicesLimit int           `mapstructure:"whmcs_invoices_limit"`
}

type ExchangeRate struct {
	URL     string        `mapstructure:"exchange_rate_url"`
	Timeout time.Duration `mapstructure:"exchange_rate_timeout"`
	TTL     time.Duration `mapstructure:"exchange_rate_ttl"`
}

type Cache struct {
	SalesTTL   time.Duration `mapstructure:"sales_cache_ttl"`
	ClearToken string        `mapstructure:"cache_clear_token"`
}

type CacheWarmup struct {
	CronSchedule string `mapstructure:"cache_warmup_cron"`
	Enabled      bool   `mapstructure:"cache_warmup_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("WHMCS_API_URL", "")
	v.SetDefault("WHMCS_API_IDENTIFIER", "")
	v.SetDefault("WHMCS_API_SECRET", "")
	v.SetDefault("WHMCS_TIMEOUT", "30s")
	v.SetDefault("WHMCS_CLIENTS_LIMIT", 250)
	v.SetDefault("WHMCS_INVOICES_LIMIT", 1000)

	v.SetDefault("EXCHANGE_RATE_URL", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("EXCHANGE_RATE_TIMEOUT", "10s")
	v.SetDefault("EXCHANGE_RATE_TTL", "1h")

	// O dashboard consulta a cada 30s; o cache precisa ser bem maior que isso
	v.SetDefault("SALES_CACHE_TTL", "5m")
	v.SetDefault("CACHE_CLEAR_TOKEN", "")

	v.SetDefault("CACHE_WARMUP_CRON", "*/5 * * * *")
	v.SetDefault("CACHE_WARMUP_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.WHMCS.URL = strings.TrimRight(config.WHMCS.URL, "/")
	config.ExchangeRate.URL = strings.TrimRight(config.ExchangeRate.URL, "/")

	return config, nil
}

// Warnings lista problemas de configuração que não impedem a subida do servidor
func (c *Config) Warnings() []string {
	var warnings []string

	if c.WHMCS.URL == "" || c.WHMCS.Identifier == "" || c.WHMCS.Secret == "" {
		warnings = append(warnings, "WHMCS credentials not fully configured (WHMCS_API_URL, WHMCS_API_IDENTIFIER, WHMCS_API_SECRET); sales data will be empty")
	}

	if c.Cache.ClearToken == "" {
		warnings = append(warnings, "CACHE_CLEAR_TOKEN is empty; POST /api/cache/clear is open to anyone who can reach the server")
	}

	if c.Cache.SalesTTL < 30*time.Second {
		warnings = append(warnings, "SALES_CACHE_TTL is shorter than the dashboard refresh interval (30s); every poll will hit WHMCS")
	}

	return warnings
}

// loadEnvFile carrega o .env do diretório atual ou de um dos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "..", ".env"),
		filepath.Join(cwd, "..", "..", ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
