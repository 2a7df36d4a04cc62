package services

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_RatingsFollowReviews(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	seller := m.seller(t, "seller@example.com")
	alice := m.register(t, "alice@example.com")
	bob := m.register(t, "bob@example.com")
	category := m.category(t, "Coffee")
	coffee := m.product(t, seller.ID, category.ID, "10.00", 10, 1)
	tea := m.product(t, seller.ID, category.ID, "5.00", 10, 1)

	_, err := m.reviews.Create(ctx, alice.ID, coffee.ID, nil, schemas.ProductReviewCreate{Rating: 5})
	require.NoError(t, err)
	_, err = m.reviews.Create(ctx, bob.ID, coffee.ID, nil, schemas.ProductReviewCreate{Rating: 4})
	require.NoError(t, err)
	_, err = m.reviews.Create(ctx, bob.ID, coffee.ID, nil, schemas.ProductReviewCreate{Rating: 4})
	require.NoError(t, err)
	_, err = m.reviews.Create(ctx, alice.ID, tea.ID, nil, schemas.ProductReviewCreate{Rating: 1})
	require.NoError(t, err)

	got, err := m.productRepo.GetByID(ctx, coffee.ID)
	require.NoError(t, err)
	assert.True(t, dec("4.33").Equal(got.Rating), got.Rating.String())
	assert.Equal(t, 3, got.TotalReviews)

	profile, err := m.sellerRepo.FindByUserID(ctx, seller.ID)
	require.NoError(t, err)
	assert.True(t, dec("3.5").Equal(profile.Rating), profile.Rating.String())

	_, err = m.reviews.Create(ctx, alice.ID, coffee.ID, nil, schemas.ProductReviewCreate{Rating: 0})
	assert.Error(t, err)
	_, err = m.reviews.Create(ctx, alice.ID, 999, nil, schemas.ProductReviewCreate{Rating: 3})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestReviewService_VerifiedPurchase(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	order := placeOrder(t, m)
	stranger := m.register(t, "stranger@example.com")

	stored, err := m.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	item := stored.OrderItems[0]

	_, err = m.reviews.Create(ctx, stranger.ID, item.ProductID, &item.ID, schemas.ProductReviewCreate{Rating: 5})
	assert.ErrorIs(t, err, ErrOrderItemMismatch)

	missing := uint(999)
	_, err = m.reviews.Create(ctx, order.UserID, item.ProductID, &missing, schemas.ProductReviewCreate{Rating: 5})
	assert.ErrorIs(t, err, ErrOrderItemMismatch)

	review, err := m.reviews.Create(ctx, order.UserID, item.ProductID, &item.ID, schemas.ProductReviewCreate{Rating: 5})
	require.NoError(t, err)
	assert.True(t, review.IsVerifiedPurchase)
	require.NotNil(t, review.OrderItemID)
	assert.Equal(t, item.ID, *review.OrderItemID)

	require.NoError(t, m.reviews.MarkHelpful(ctx, review.ID))
	assert.Error(t, m.reviews.MarkHelpful(ctx, 999))

	reviews, total, err := m.reviews.List(ctx, item.ProductID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, 1, reviews[0].HelpfulCount)
}
