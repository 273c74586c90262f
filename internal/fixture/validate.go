// Where: internal/fixture/validate.go
// What: Structural validation of fixtures against the derived schema.
// Why: Report every mistake at once with a path instead of failing on the first decode error.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/poruru-code/lightsail-model/pkg/shape"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var compiledSchemas sync.Map

// Issue is one structural problem found in a fixture.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	path := i.Path
	if path == "" {
		path = "(root)"
	}
	return path + ": " + i.Message
}

// ValidationError lists every issue found in a fixture.
type ValidationError struct {
	Shape  string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("invalid %s fixture: %s", e.Shape, strings.Join(parts, "; "))
}

// Validate checks YAML or JSON content against the schema derived from s.
// It returns a *ValidationError when the content does not match.
func Validate(s shape.Shape, content []byte) error {
	sch, err := compile(s)
	if err != nil {
		return err
	}
	data, err := toJSON(content)
	if err != nil {
		return err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var document any
	if err := decoder.Decode(&document); err != nil {
		return fmt.Errorf("decode %s fixture: %w", s.ShapeName(), err)
	}

	if err := sch.Validate(document); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return &ValidationError{Shape: s.ShapeName(), Issues: collectIssues(ve, nil)}
		}
		return fmt.Errorf("validate %s fixture: %w", s.ShapeName(), err)
	}
	return nil
}

func compile(s shape.Shape) (*jsonschema.Schema, error) {
	name := s.ShapeName()
	if cached, ok := compiledSchemas.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	payload, err := SchemaJSON(s)
	if err != nil {
		return nil, err
	}
	resource := name + ".schema.json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource(resource, bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", name, err)
	}
	sch, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}
	compiledSchemas.Store(name, sch)
	return sch, nil
}

func collectIssues(ve *jsonschema.ValidationError, out []Issue) []Issue {
	if len(ve.Causes) == 0 {
		return append(out, Issue{Path: ve.InstanceLocation, Message: ve.Message})
	}
	for _, cause := range ve.Causes {
		out = collectIssues(cause, out)
	}
	return out
}
