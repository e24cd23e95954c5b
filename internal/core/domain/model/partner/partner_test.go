package partner_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/partner"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryPartner(t *testing.T) {
	t.Run("should create partner with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		created, err := partner.NewDeliveryPartner(id, "Speedy")
		require.NoError(t, err)

		assert.True(t, created.ID().IsEqual(id))
		assert.Equal(t, "Speedy", created.Name())
		assert.NoError(t, created.Validate())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		_, err := partner.NewDeliveryPartner(kernel.UUID{}, "Speedy")
		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := partner.NewDeliveryPartner(kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeliveryPartner_Validate(t *testing.T) {
	t.Run("should fail for nil partner", func(t *testing.T) {
		var p *partner.DeliveryPartner
		require.ErrorIs(t, p.Validate(), partner.ErrDeliveryPartnerIsNotConstructed)
	})

	t.Run("should fail for zero value partner", func(t *testing.T) {
		require.ErrorIs(t, (&partner.DeliveryPartner{}).Validate(),
			partner.ErrDeliveryPartnerIsNotConstructed)
	})
}
