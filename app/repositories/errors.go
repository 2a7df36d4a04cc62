package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrSellerProfileExists = errors.New("user already has a seller profile")
	ErrCategoryNameTaken   = errors.New("category name is already used")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryCycle       = errors.New("category parent would create a cycle")
	ErrCategoryInUse       = errors.New("category still has children or products")
	ErrOrderNumberTaken    = errors.New("order number already exists")
	ErrDeliveryExists      = errors.New("order already has a delivery")
	ErrInsufficientStock   = errors.New("insufficient product stock")
	ErrNotFound            = errors.New("record not found")
)

// conn returns tx when the caller runs inside a transaction, db otherwise.
func conn(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
