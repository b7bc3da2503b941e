package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"acsgen/internal"
)

// labelClass is the permissive character class for catalog labels: word
// characters, colon, exclamation mark, space. Commas never match, which is
// what makes the unquoted CSV output safe.
const labelClass = `[\w:! ]`

// BuildRowPattern compiles the table-row pattern for the given indent width.
// With indent 0 the whole row fragment sits on one line. With a positive
// indent each inner cell is preceded by a newline and exactly that many
// literal space characters, so a page saved with 2-space indents is only
// matched at indent 2.
func BuildRowPattern(indent int) (*regexp.Regexp, error) {
	if indent < 0 {
		return nil, fmt.Errorf("indent must be non-negative, got %d", indent)
	}
	sep := ""
	if indent > 0 {
		sep = "\n" + strings.Repeat(" ", indent)
	}
	pattern := fmt.Sprintf(`<tr>%[1]s<td><a href="variables/.*" name=".*">(\w+_\w+)</a></td>%[1]s<td>(%s+)</td>`,
		sep, labelClass)
	return regexp.Compile(pattern)
}

// Extract scans the saved catalog page for variable rows and returns them in
// document order. Rows that do not match the pattern are skipped; zero
// matches yields an empty slice, which the driver reports to the user.
func Extract(text string, indent int) ([]internal.VariableRecord, error) {
	re, err := BuildRowPattern(indent)
	if err != nil {
		return nil, err
	}

	matches := re.FindAllStringSubmatch(text, -1)
	records := make([]internal.VariableRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, internal.VariableRecord{Identifier: m[1], Label: m[2]})
	}
	return records, nil
}
