// Package reviewer manages the people who write reviews.
package reviewer

import "github.com/taibuivan/pokereview/pkg/slice"

type Reviewer struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

// DTO is the JSON representation of a [Reviewer].
type DTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

func ToDTO(reviewer *Reviewer) DTO {
	return DTO{ID: reviewer.ID, FirstName: reviewer.FirstName, LastName: reviewer.LastName}
}

func ToDTOs(items []*Reviewer) []DTO {
	return slice.Map(items, ToDTO)
}

func FromDTO(dto DTO) *Reviewer {
	return &Reviewer{ID: dto.ID, FirstName: dto.FirstName, LastName: dto.LastName}
}
