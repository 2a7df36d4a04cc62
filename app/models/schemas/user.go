// Package schemas holds the inbound request shapes. They are validated and
// turned into persistent entities but are never stored themselves.
package schemas

import (
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/validation"
)

type UserCreate struct {
	Email    string          `json:"email" validate:"required,max=255,email_pattern"`
	Password string          `json:"password" validate:"required,min=8,max=100"`
	FullName string          `json:"full_name" validate:"required,max=100"`
	Phone    *string         `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=buyer seller admin"`
}

func (in *UserCreate) Validate() error {
	return validation.Struct(in)
}

// ToModel builds an active user. The password must already be hashed.
func (in *UserCreate) ToModel(passwordHash string) *models.User {
	role := in.Role
	if role == "" {
		role = models.RoleBuyer
	}
	return &models.User{
		Email:        in.Email,
		PasswordHash: passwordHash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         role,
		IsActive:     true,
	}
}

// UserUpdate changes only the fields that are set. A Phone set to "" removes
// the stored phone number.
type UserUpdate struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

func (in *UserUpdate) Validate() error {
	return validation.Struct(in)
}

func (in *UserUpdate) ApplyTo(u *models.User) {
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Phone != nil {
		if *in.Phone == "" {
			u.Phone = nil
		} else {
			phone := *in.Phone
			u.Phone = &phone
		}
	}
}

type AddressCreate struct {
	Label       string `json:"label" validate:"required,max=50"`
	FullAddress string `json:"full_address" validate:"required,max=500"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	PostalCode  string `json:"postal_code" validate:"required,max=20"`
	Country     string `json:"country,omitempty" validate:"omitempty,max=100"`
	IsDefault   bool   `json:"is_default"`
}

func (in *AddressCreate) Validate() error {
	return validation.Struct(in)
}

func (in *AddressCreate) ToModel(userID uint) *models.Address {
	country := in.Country
	if country == "" {
		country = models.DefaultCountry
	}
	return &models.Address{
		UserID:      userID,
		Label:       in.Label,
		FullAddress: in.FullAddress,
		City:        in.City,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Country:     country,
		IsDefault:   in.IsDefault,
	}
}

type SellerProfileCreate struct {
	StoreName        string  `json:"store_name" validate:"required,max=200"`
	StoreDescription *string `json:"store_description,omitempty" validate:"omitempty,max=1000"`
	StoreLogoURL     *string `json:"store_logo_url,omitempty" validate:"omitempty,max=500"`
	BusinessLicense  *string `json:"business_license,omitempty" validate:"omitempty,max=100"`
}

func (in *SellerProfileCreate) Validate() error {
	return validation.Struct(in)
}

func (in *SellerProfileCreate) ToModel(userID uint) *models.SellerProfile {
	return &models.SellerProfile{
		UserID:           userID,
		StoreName:        in.StoreName,
		StoreDescription: in.StoreDescription,
		StoreLogoURL:     in.StoreLogoURL,
		BusinessLicense:  in.BusinessLicense,
	}
}
