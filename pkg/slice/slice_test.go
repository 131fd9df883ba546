package slice

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
}

func TestMap_NilEncodesAsEmptyArray(t *testing.T) {
	out := Map[int, string](nil, strconv.Itoa)
	require.NotNil(t, out)

	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(encoded))
}
