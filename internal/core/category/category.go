// Package category manages Pokemon categories and the category side of the
// Pokemon/Category link.
package category

import "github.com/taibuivan/pokereview/pkg/slice"

// Category groups Pokemon by type.
type Category struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// DTO is the JSON representation of a [Category].
type DTO struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

func ToDTO(category *Category) DTO {
	return DTO{ID: category.ID, Name: category.Name}
}

func ToDTOs(items []*Category) []DTO {
	return slice.Map(items, ToDTO)
}

func FromDTO(dto DTO) *Category {
	return &Category{ID: dto.ID, Name: dto.Name}
}
