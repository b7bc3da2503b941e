package util

import "strings"

var pathReplacer = strings.NewReplacer("!!", ".", ":", "", " ", "_")

// ToNamePath turns a catalog display label into a filesystem-safe path
// fragment: lowercase, "!!" becomes ".", colons are dropped, spaces become
// underscores. Any input is accepted; no other characters are touched.
func ToNamePath(label string) string {
	return pathReplacer.Replace(strings.ToLower(label))
}
