// Where: internal/fixture/scaffold.go
// What: Generate a starter fixture with every member filled in.
// Why: Give developers a valid file to edit instead of typing member names from memory.
package fixture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poruru-code/lightsail-model/pkg/shape"
	"gopkg.in/yaml.v3"
)

const (
	maxScaffoldDepth = 4
	sensitiveExample = "change-me"
	exampleMapKey    = "example"
)

var (
	newID = uuid.NewString
	now   = time.Now
)

// Scaffold returns YAML for s with one example value per member, in member
// order. Identifier members get random UUIDs and enum members the first
// known value.
func Scaffold(s shape.Shape) ([]byte, error) {
	root := shapeNode(s, 0)
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("encode %s scaffold: %w", s.ShapeName(), err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode %s scaffold: %w", s.ShapeName(), err)
	}
	return buf.Bytes(), nil
}

func shapeNode(s shape.Shape, depth int) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if depth > maxScaffoldDepth {
		return node
	}
	for _, member := range shape.Collect(s) {
		node.Content = append(node.Content, keyNode(member.Name), memberNode(member, depth))
	}
	return node
}

func memberNode(member shape.Member, depth int) *yaml.Node {
	switch member.Kind {
	case shape.KindList:
		return &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{elemNode(member, depth)}}
	case shape.KindMap:
		return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{keyNode(exampleMapKey), elemNode(member, depth)}}
	case shape.KindStructure:
		return shapeNode(member.New(), depth+1)
	default:
		return scalarNode(member.Kind, member)
	}
}

func elemNode(member shape.Member, depth int) *yaml.Node {
	if member.Elem != shape.KindStructure {
		return scalarNode(member.Elem, member)
	}
	item := shapeNode(member.New(), depth+1)
	if member.Kind == shape.KindMap {
		return &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{item}}
	}
	return item
}

func scalarNode(kind shape.Kind, member shape.Member) *yaml.Node {
	switch kind {
	case shape.KindInteger, shape.KindLong:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: "1"}
	case shape.KindFloat, shape.KindDouble:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "1.5"}
	case shape.KindBoolean:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	case shape.KindTimestamp:
		return stringNode(now().UTC().Truncate(time.Second).Format(time.RFC3339))
	case shape.KindBlob:
		return stringNode(base64.StdEncoding.EncodeToString([]byte("example")))
	case shape.KindEnum:
		if len(member.Known) > 0 {
			return stringNode(member.Known[0])
		}
		return stringNode("")
	}
	switch {
	case member.Sensitive:
		return stringNode(sensitiveExample)
	case member.Name == "id" || strings.HasSuffix(member.Name, "Id"):
		return stringNode(newID())
	default:
		return stringNode("example")
	}
}

func keyNode(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}
}
