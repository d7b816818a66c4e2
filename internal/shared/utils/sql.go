package utils

import (
	"fmt"
	"sort"
	"strings"
)

// BuildSetClause turns a column→value patch map into a deterministic
// "col1 = $1, col2 = $2" clause plus the matching argument slice.
// Placeholders start at startIdx.
func BuildSetClause(cols map[string]interface{}, startIdx int) (string, []interface{}) {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	clauses := make([]string, 0, len(names))
	args := make([]interface{}, 0, len(names))
	for i, name := range names {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", name, startIdx+i))
		args = append(args, cols[name])
	}

	return strings.Join(clauses, ", "), args
}
