package pipeline

import (
	"fmt"
	"os"
	"strings"

	"acsgen/internal"
	"acsgen/internal/util"
)

const csvHeader = "group,variable,path"

// RenderCSV builds the full CSV listing in memory: a header line followed by
// one unquoted group,variable,path row per record. Quoting is unnecessary
// because the extractor's label class excludes commas and newlines and
// ToNamePath removes the rest.
func RenderCSV(records []internal.VariableRecord) ([]byte, error) {
	var b strings.Builder
	b.WriteString(csvHeader + "\n")
	for _, rec := range records {
		group, variable, err := rec.Split()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%s,%s,%s\n", group, variable, util.ToNamePath(rec.Label))
	}
	return []byte(b.String()), nil
}

// EmitCSV writes the listing to path, creating or truncating it. The render
// happens before the file is touched, so a malformed identifier leaves no
// partial output behind.
func EmitCSV(records []internal.VariableRecord, path string) error {
	out, err := RenderCSV(records)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
