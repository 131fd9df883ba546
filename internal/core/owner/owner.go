// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package owner manages Pokemon trainers, the country they live in and the
// Pokemon they own.
package owner

import "github.com/taibuivan/pokereview/pkg/slice"

// Owner is a trainer. CountryID is set from the request query on create and
// is never exposed in the transport form.
type Owner struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Gym       string `db:"gym"`
	CountryID int    `db:"country_id"`
}

// DTO is the JSON representation of an [Owner].
type DTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Gym       string `json:"gym" validate:"max=100"`
}

func ToDTO(owner *Owner) DTO {
	return DTO{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Gym:       owner.Gym,
	}
}

func ToDTOs(items []*Owner) []DTO {
	return slice.Map(items, ToDTO)
}

// FromDTO leaves CountryID unset; the service fills it in.
func FromDTO(dto DTO) *Owner {
	return &Owner{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Gym:       dto.Gym,
	}
}
