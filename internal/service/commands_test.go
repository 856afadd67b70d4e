package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rewear/exchange/internal/service"
)

func TestNewOffer(t *testing.T) {
	t.Run("item offer", func(t *testing.T) {
		offer, err := service.NewOffer(int64Ptr(20), nil)
		assert.NoError(t, err)
		assert.Equal(t, service.OfferItem, offer.Kind())
		assert.Equal(t, int64(20), offer.ItemID())
	})

	t.Run("points offer", func(t *testing.T) {
		offer, err := service.NewOffer(nil, int64Ptr(150))
		assert.NoError(t, err)
		assert.Equal(t, service.OfferPoints, offer.Kind())
		assert.Equal(t, int64(150), offer.Points())
	})

	t.Run("both selections are refused", func(t *testing.T) {
		_, err := service.NewOffer(int64Ptr(20), int64Ptr(150))
		assert.ErrorIs(t, err, service.ErrInvalidOfferSelection)
	})

	t.Run("neither selection is refused", func(t *testing.T) {
		_, err := service.NewOffer(nil, nil)
		assert.ErrorIs(t, err, service.ErrInvalidOfferSelection)
	})

	t.Run("non-positive values are refused", func(t *testing.T) {
		_, err := service.NewOffer(int64Ptr(0), nil)
		assert.ErrorIs(t, err, service.ErrInvalidOfferSelection)

		_, err = service.NewOffer(nil, int64Ptr(-5))
		assert.ErrorIs(t, err, service.ErrInvalidOfferSelection)
	})
}
