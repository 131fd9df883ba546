// Package country manages the countries owners live in.
package country

import "github.com/taibuivan/pokereview/pkg/slice"

type Country struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// DTO is the JSON representation of a [Country].
type DTO struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

func ToDTO(country *Country) DTO {
	return DTO{ID: country.ID, Name: country.Name}
}

func ToDTOs(items []*Country) []DTO {
	return slice.Map(items, ToDTO)
}

func FromDTO(dto DTO) *Country {
	return &Country{ID: dto.ID, Name: dto.Name}
}
