package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is deactivated")
	ErrNotSeller          = errors.New("user is not a seller")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrBelowMinimumOrder  = errors.New("quantity is below the product minimum order")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrAddressNotFound    = errors.New("shipping address not found")
	ErrInvalidShippingFee = errors.New("shipping fee must be a non-negative amount with at most 2 decimal places")
	ErrOrderNotFound      = errors.New("order not found")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrInvalidStatus      = errors.New("invalid delivery status")
	ErrOrderItemMismatch  = errors.New("order item does not belong to this user and product")
	ErrUnbalancedOrder    = errors.New("order totals do not add up")
)
