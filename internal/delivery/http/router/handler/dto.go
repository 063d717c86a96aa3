// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"atlas/internal/domain/entity"

	"github.com/paulmach/orb"
)

// coordinateDTO is the wire shape of a geographic position.
type coordinateDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// accountDTO is the wire shape of an account.
type accountDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Address      string        `json:"address"`
	Coordinate   coordinateDTO `json:"coordinate"`
	OwnedRegions []string      `json:"ownedRegions"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// regionDTO is the wire shape of a region. The boundary serializes as an
// array of [longitude, latitude] pairs, first vertex repeated last.
type regionDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Boundary  orb.Ring  `json:"boundary"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAccountDTO(account *entity.Account) accountDTO {
	ownedRegions := make([]string, 0, len(account.OwnedRegions))
	for _, id := range account.OwnedRegions {
		ownedRegions = append(ownedRegions, id.String())
	}

	return accountDTO{
		ID:      account.ID.String(),
		Name:    account.Name,
		Email:   account.Email,
		Address: account.Address,
		Coordinate: coordinateDTO{
			Latitude:  account.Coordinate.Latitude,
			Longitude: account.Coordinate.Longitude,
		},
		OwnedRegions: ownedRegions,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}

func toAccountDTOs(accounts []*entity.Account) []accountDTO {
	dtos := make([]accountDTO, 0, len(accounts))
	for _, account := range accounts {
		dtos = append(dtos, toAccountDTO(account))
	}

	return dtos
}

func toRegionDTO(region *entity.Region) regionDTO {
	return regionDTO{
		ID:        region.ID.String(),
		Name:      region.Name,
		Boundary:  region.Boundary,
		OwnerID:   region.OwnerID.String(),
		CreatedAt: region.CreatedAt,
		UpdatedAt: region.UpdatedAt,
	}
}

func toRegionDTOs(regions []*entity.Region) []regionDTO {
	dtos := make([]regionDTO, 0, len(regions))
	for _, region := range regions {
		dtos = append(dtos, toRegionDTO(region))
	}

	return dtos
}
