// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/strongly":   "pgx5://u:p@localhost:5432/strongly",
		"postgresql://u:p@localhost:5432/strongly": "pgx5://u:p@localhost:5432/strongly",
		"pgx5://u:p@localhost:5432/strongly":       "pgx5://u:p@localhost:5432/strongly",
		"host=localhost dbname=strongly":           "host=localhost dbname=strongly",
	}

	for input, want := range tests {
		assert.Equal(t, want, ToPgx5DSN(input), input)
	}
}
