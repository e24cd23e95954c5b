// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence.
package partnerrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// DeliveryPartnerDTO represents the database structure for persisting
// delivery partners.
type DeliveryPartnerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for delivery partner entities.
func (DeliveryPartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a delivery partner domain entity to its database representation.
func fromDomain(aggregate *partner.DeliveryPartner) DeliveryPartnerDTO {
	return DeliveryPartnerDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database DTO to a delivery partner domain entity.
func toDomain(dto DeliveryPartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return partner.NewDeliveryPartner(id, dto.Name)
}
