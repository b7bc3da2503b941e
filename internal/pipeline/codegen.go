package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"acsgen/internal"
	"acsgen/internal/util"
)

// codeTemplate is the whole generated file. The three sections are built
// independently and joined line-wise so each can be tested on its own.
const codeTemplate = `// Code generated by acsgen. DO NOT EDIT.

package {{.Package}}

import "fmt"

// {{.TypeName}} enumerates the variable groups published in the ACS catalog.
// The underlying string is the canonical upper-case group identifier, so
// values round-trip through JSON and other encodings unchanged.
type {{.TypeName}} string

const (
{{.Variants}}
)

// Label returns the display label as published in the catalog.
func (g {{.TypeName}}) Label() string {
	switch g {
{{.LabelArms}}
	}
	return ""
}

// Path returns the normalized path fragment for the group.
func (g {{.TypeName}}) Path() (string, error) {
	switch g {
{{.PathArms}}
	}
	return "", fmt.Errorf("unknown {{.TypeName}} %q", string(g))
}
`

var codeTmpl = template.Must(template.New("enum").Parse(codeTemplate))

type groupEntry struct {
	Name  string
	Label string
}

// GenerateCode renders a complete Go source file declaring one enum variant
// per group in first-seen order, with Label and Path arms for each. Repeated
// groups would collide as constants, so they fail fast; output bytes are a
// pure function of the records.
func GenerateCode(records []internal.VariableRecord, typeName, pkg string) ([]byte, error) {
	groups := make([]groupEntry, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		group, _, err := rec.Split()
		if err != nil {
			return nil, err
		}
		if seen[group] {
			return nil, fmt.Errorf("duplicate group %s: enum variants must be distinct", group)
		}
		seen[group] = true
		groups = append(groups, groupEntry{Name: group, Label: rec.Label})
	}

	var out bytes.Buffer
	err := codeTmpl.Execute(&out, map[string]string{
		"Package":   pkg,
		"TypeName":  typeName,
		"Variants":  variantSection(typeName, groups),
		"LabelArms": labelArmSection(groups),
		"PathArms":  pathArmSection(groups),
	})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// EmitCode writes the generated source to path, creating or truncating it.
// Rendering precedes the write, so a bad record leaves no partial file.
func EmitCode(records []internal.VariableRecord, typeName, pkg, path string) error {
	out, err := GenerateCode(records, typeName, pkg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func variantSection(typeName string, groups []groupEntry) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("\t%s %s = %q", g.Name, typeName, g.Name))
	}
	return strings.Join(lines, "\n")
}

func labelArmSection(groups []groupEntry) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("\tcase %s:\n\t\treturn %q", g.Name, g.Label))
	}
	return strings.Join(lines, "\n")
}

func pathArmSection(groups []groupEntry) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("\tcase %s:\n\t\treturn %q, nil", g.Name, util.ToNamePath(g.Label)))
	}
	return strings.Join(lines, "\n")
}
