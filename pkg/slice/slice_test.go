// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))

	empty := slice.Map[int, string](nil, strconv.Itoa)
	require.NotNil(t, empty)

	encoded, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(encoded))
}

func TestFilter(t *testing.T) {
	input := []int{1, 2, 3, 4}
	even := slice.Filter(input, func(v int) bool { return v%2 == 0 })

	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 2, 3, 4}, input)
	assert.NotNil(t, slice.Filter[int](nil, func(int) bool { return true }))
}
