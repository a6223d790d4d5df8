// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/strongly/internal/platform/database"
)

func TestAssignments(t *testing.T) {
	assignments := &database.Assignments{}
	assert.True(t, assignments.Empty())

	assignments.Set("reps", 0).Set("weight", 135.0)

	assert.False(t, assignments.Empty())
	assert.Equal(t, 2, assignments.Len())
	assert.Equal(t, "reps = $1, weight = $2", assignments.Clause())
	assert.Equal(t, []any{0, 135.0, "set-id", int64(1)}, assignments.Args("set-id", int64(1)))
}
