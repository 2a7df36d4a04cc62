//go:build integration

package migrations

import (
	"context"
	"testing"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/configs"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("marketplace"),
		postgres.WithUsername("market"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := configs.OpenConnection(configs.ENV{
		DBDriver:     "postgres",
		DBHost:       host,
		DBPort:       port.Port(),
		DBUser:       "market",
		DBPassword:   "secret",
		DBName:       "marketplace",
		DBSSLMode:    "disable",
		DBMaxRetries: 3,
	}, zap.NewNop())
	require.NoError(t, err)
	return db
}

func TestAutoMigratePostgres(t *testing.T) {
	db := openPostgres(t)
	require.NoError(t, AutoMigrate(db))

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m))
	}

	seller := &models.User{Email: "seller@example.com", PasswordHash: "hash", FullName: "Seller", Role: models.RoleSeller, IsActive: true}
	require.NoError(t, db.Create(seller).Error)
	category := &models.Category{Name: "Coffee", IsActive: true}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		SellerID:         seller.ID,
		CategoryID:       category.ID,
		Name:             "Kopi Gayo",
		Price:            decimal.RequireFromString("99.99"),
		MinOrderQuantity: 1,
		WeightKg:         decimal.RequireFromString("0.250"),
		Specifications:   map[string]any{"roast": "medium"},
		IsActive:         true,
	}
	require.NoError(t, db.Create(product).Error)

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, "99.99", got.Price.String())
	assert.Equal(t, "0.25", got.WeightKg.String())
	assert.Equal(t, "medium", got.Specifications["roast"])

	dup := &models.User{Email: "seller@example.com", PasswordHash: "hash", FullName: "Copy", IsActive: true}
	assert.ErrorIs(t, db.Create(dup).Error, gorm.ErrDuplicatedKey)
}
