package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSetClause(t *testing.T) {
	clause, args := BuildSetClause(map[string]interface{}{
		"name": "Dupont",
		"city": "Paris",
		"age":  42,
	}, 2)

	// Columns come out sorted so the clause is deterministic.
	assert.Equal(t, "age = $2, city = $3, name = $4", clause)
	assert.Equal(t, []interface{}{42, "Paris", "Dupont"}, args)
}

func TestBuildSetClauseEmpty(t *testing.T) {
	clause, args := BuildSetClause(map[string]interface{}{}, 1)
	assert.Equal(t, "", clause)
	assert.Empty(t, args)
}
