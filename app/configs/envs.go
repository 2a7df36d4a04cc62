package configs

import (
	"log"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/utils/calc"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type ENV struct {
	AppEnv string

	DBDriver     string
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	DBSSLMode    string
	DBMaxRetries int

	LogPath  string
	LogDebug bool

	TaxPercent decimal.Decimal
}

// LoadEnv reads .env (when present) into the process environment and then
// resolves every setting through viper so unset keys fall back to defaults.
func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "marketplace")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 10)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_DEBUG", false)
	v.SetDefault("TAX_PERCENT", calc.GetTaxPercent().String())

	tax, err := decimal.NewFromString(v.GetString("TAX_PERCENT"))
	if err != nil {
		log.Printf("Warning: invalid TAX_PERCENT %q, using %s", v.GetString("TAX_PERCENT"), calc.GetTaxPercent())
		tax = calc.GetTaxPercent()
	}

	return ENV{
		AppEnv:       v.GetString("APP_ENV"),
		DBDriver:     strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:       v.GetString("DB_HOST"),
		DBUser:       v.GetString("DB_USER"),
		DBPassword:   v.GetString("DB_PASSWORD"),
		DBName:       v.GetString("DB_NAME"),
		DBPort:       v.GetString("DB_PORT"),
		DBSSLMode:    v.GetString("DB_SSLMODE"),
		DBMaxRetries: v.GetInt("DB_MAX_RETRIES"),
		LogPath:      v.GetString("LOG_PATH"),
		LogDebug:     v.GetBool("LOG_DEBUG"),
		TaxPercent:   tax,
	}
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}
