package fakers

import (
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/go-faker/faker/v4"
)

// UserFaker builds an active user with the given role. passwordHash must
// already be a bcrypt hash.
func UserFaker(role models.UserRole, passwordHash string) *models.User {
	phone := faker.Phonenumber()
	return &models.User{
		Email:        faker.Email(),
		PasswordHash: passwordHash,
		FullName:     faker.FirstName() + " " + faker.LastName(),
		Phone:        &phone,
		Role:         role,
		IsActive:     true,
	}
}

func AddressFaker(userID uint) *models.Address {
	addr := faker.GetRealAddress()
	return &models.Address{
		UserID:      userID,
		Label:       "Home",
		FullAddress: addr.Address,
		City:        addr.City,
		State:       addr.State,
		PostalCode:  addr.PostalCode,
		Country:     models.DefaultCountry,
	}
}

func SellerProfileFaker(userID uint) *models.SellerProfile {
	description := faker.Sentence()
	return &models.SellerProfile{
		UserID:           userID,
		StoreName:        faker.LastName() + " Store",
		StoreDescription: &description,
	}
}
