package configs

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const retryDelay = 5 * time.Second

// Dialector picks the gorm driver named by env.DBDriver.
func Dialector(env ENV) (gorm.Dialector, error) {
	switch env.DBDriver {
	case "mysql", "":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.DBUser,
			env.DBPassword,
			env.DBHost,
			env.DBPort,
			env.DBName,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			env.DBHost,
			env.DBUser,
			env.DBPassword,
			env.DBName,
			env.DBPort,
			env.DBSSLMode,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(env.DBName), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

// GormConfig is shared by every connection so unique violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func GormConfig(debug bool) *gorm.Config {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	}
}

func OpenConnection(env ENV, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(env)
	if err != nil {
		return nil, err
	}

	maxRetries := env.DBMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		logger.Info("Attempting to connect to database",
			zap.String("driver", env.DBDriver),
			zap.Int("attempt", i+1),
			zap.Int("max_retries", maxRetries),
		)

		db, err := gorm.Open(dialector, GormConfig(env.LogDebug))
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					logger.Info("Database connection successful")
					return db, nil
				}
			}
			lastErr = pingErr
			logger.Warn("Failed to ping database", zap.Error(pingErr), zap.Duration("retry_in", retryDelay))
		} else {
			lastErr = err
			logger.Warn("Failed to open GORM connection", zap.Error(err), zap.Duration("retry_in", retryDelay))
		}

		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", maxRetries, lastErr)
}
