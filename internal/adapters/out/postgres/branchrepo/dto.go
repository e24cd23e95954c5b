// Package branchrepo provides data transfer objects and mapping functions
// for branch persistence.
package branchrepo

import (
	"ordering/internal/core/domain/model/branch"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BranchDTO represents the database structure for persisting branches.
// Associated delivery partner IDs live in a text array column rather than a
// join table: the set is small and always read with the branch.
type BranchDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	LiveLatitude       *float64
	LiveLongitude      *float64
	Address            string
	DeliveryPartnerIDs pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for branch entities.
func (BranchDTO) TableName() string {
	return "branches"
}

// fromDomain converts a branch domain entity to its database representation.
func fromDomain(aggregate *branch.Branch) BranchDTO {
	dto := BranchDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		Address:            aggregate.Address(),
		DeliveryPartnerIDs: make(pq.StringArray, 0, len(aggregate.DeliveryPartners())),
	}

	if point := aggregate.LiveLocation(); point != nil {
		latitude := point.Latitude()
		longitude := point.Longitude()
		dto.LiveLatitude = &latitude
		dto.LiveLongitude = &longitude
	}

	for _, partnerID := range aggregate.DeliveryPartners() {
		dto.DeliveryPartnerIDs = append(dto.DeliveryPartnerIDs, partnerID.String())
	}

	return dto
}

// toDomain converts a database DTO to a branch domain entity.
func toDomain(dto BranchDTO) (*branch.Branch, error) {
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

	partnerIDs := make([]kernel.UUID, 0, len(dto.DeliveryPartnerIDs))
	for _, raw := range dto.DeliveryPartnerIDs {
		partnerID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}

		partnerIDs = append(partnerIDs, partnerID)
	}

	return branch.NewBranch(id, dto.Name, liveLocation, dto.Address, partnerIDs)
}
