package internal

import (
	"fmt"
	"strings"
)

// VariableRecord is one variable row as matched in the catalog page,
// before any normalization. Identifier has the shape GROUP_SUBGROUP,
// e.g. "B01001_001E"; Label is the display label as published,
// e.g. "Estimate!!Total:".
type VariableRecord struct {
	Identifier string
	Label      string
}

// Split breaks the identifier into its group and variable parts.
// The two-part contract requires exactly one underscore; anything else
// is malformed and reported rather than guessed around.
func (r VariableRecord) Split() (group, variable string, err error) {
	parts := strings.Split(r.Identifier, "_")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed identifier %q: want GROUP_SUBGROUP with a single underscore", r.Identifier)
	}
	return parts[0], parts[1], nil
}

// StoredVariable is a catalog variable as persisted in the sqlite store.
type StoredVariable struct {
	GroupID    string
	VariableID string
	Label      string
	Path       string
	UpdatedAt  string
}
