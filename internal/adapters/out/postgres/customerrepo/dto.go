// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// The live location is nullable: a customer without a location fix still gets
// orders delivered to the recorded address.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LiveLatitude  *float64
	LiveLongitude *float64
	Address       string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain entity to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:      aggregate.ID().Bytes(),
		Address: aggregate.Address(),
	}

	if point := aggregate.LiveLocation(); point != nil {
		latitude := point.Latitude()
		longitude := point.Longitude()
		dto.LiveLatitude = &latitude
		dto.LiveLongitude = &longitude
	}

	return dto
}

// toDomain converts a database DTO to a customer domain entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var liveLocation *kernel.GeoPoint
	if dto.LiveLatitude != nil && dto.LiveLongitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LiveLatitude, *dto.LiveLongitude)
		if pointErr != nil {
			return nil, pointErr
		}

		liveLocation = &point
	}

	return customer.NewCustomer(id, liveLocation, dto.Address)
}
