// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package review manages the reviews reviewers write about Pokemon.

A review always belongs to exactly one Pokemon and one reviewer. Both ids come
from the request query on create and are not part of the transport form.
Reviews disappear with their Pokemon or reviewer.
*/
package review

import "github.com/taibuivan/pokereview/pkg/slice"

// # Domain Entities

// Review is one reviewer's verdict on one Pokemon.
type Review struct {
	ID         int    `db:"id"`
	Title      string `db:"title"`
	Text       string `db:"text"`
	Rating     int    `db:"rating"`
	PokemonID  int    `db:"pokemon_id"`
	ReviewerID int    `db:"reviewer_id"`
}

// # Transport Objects

// DTO is the JSON representation of a [Review].
type DTO struct {
	ID     int    `json:"id"`
	Title  string `json:"title" validate:"required,max=200"`
	Text   string `json:"text" validate:"max=2000"`
	Rating int    `json:"rating"`
}

// # Mapping

// ToDTO converts a stored [Review] into its transport form. The foreign keys are dropped.
func ToDTO(review *Review) DTO {
	return DTO{
		ID:     review.ID,
		Title:  review.Title,
		Text:   review.Text,
		Rating: review.Rating,
	}
}

// ToDTOs converts a list of [Review].
func ToDTOs(items []*Review) []DTO {
	return slice.Map(items, ToDTO)
}

// FromDTO builds the entity for create and update. The caller sets PokemonID and ReviewerID.
func FromDTO(dto DTO) *Review {
	return &Review{
		ID:     dto.ID,
		Title:  dto.Title,
		Text:   dto.Text,
		Rating: dto.Rating,
	}
}
