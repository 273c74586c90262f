// Where: internal/describe/describe.go
// What: Member table for a model object.
// Why: Show names, kinds, and known enum values without reading generated code.
package describe

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

const maxValuesWidth = 100

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Row is one member line of the table.
type Row struct {
	Name      string
	Type      string
	Known     []string
	Sensitive bool
}

type shapeTemplateData struct {
	Name      string
	Width     int
	MaxValues int
	Members   []Row
}

// Rows lists the members of s in declaration order.
func Rows(s shape.Shape) []Row {
	members := shape.Collect(s)
	rows := make([]Row, len(members))
	for i, member := range members {
		rows[i] = Row{
			Name:      member.Name,
			Type:      TypeName(member),
			Known:     member.Known,
			Sensitive: member.Sensitive,
		}
	}
	return rows
}

// TypeName spells the member type, e.g. "list<structure Tag>".
func TypeName(member shape.Member) string {
	switch member.Kind {
	case shape.KindList:
		return fmt.Sprintf("list<%s>", elemName(member))
	case shape.KindMap:
		if member.Elem == shape.KindStructure {
			return fmt.Sprintf("map<string, list<%s>>", elemName(member))
		}
		return fmt.Sprintf("map<string, %s>", elemName(member))
	case shape.KindStructure:
		return "structure " + member.New().ShapeName()
	default:
		return member.Kind.String()
	}
}

func elemName(member shape.Member) string {
	if member.Elem == shape.KindStructure {
		return "structure " + member.New().ShapeName()
	}
	return member.Elem.String()
}

// Describe renders the member table of s.
func Describe(s shape.Shape) (string, error) {
	rows := Rows(s)
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Name))
	}
	data := shapeTemplateData{
		Name:      s.ShapeName(),
		Width:     width,
		MaxValues: maxValuesWidth,
		Members:   rows,
	}
	return renderTemplate("shape.tmpl", data)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
