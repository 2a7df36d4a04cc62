package migrations

import (
	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

// Models lists every persistent entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Address{},
		&models.SellerProfile{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Delivery{},
		&models.ProductReview{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
