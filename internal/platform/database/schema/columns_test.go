package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	assert.Equal(t, "id, name, birth_date", Select("", Pokemon.Columns()))
	assert.Equal(t, "c.id, c.name", Select("c", Category.Columns()))
}
