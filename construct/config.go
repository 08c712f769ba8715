package construct

import (
	"strings"

	"github.com/osuushi/euclid/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ToolSet is the set of tools a Context may apply when generating next
// states. It has one bit per geom.Tool.
type ToolSet uint16

var (
	// Basic is the classic straightedge and collapsing compass.
	Basic = NewToolSet(geom.ToolLine, geom.ToolCircle)
	// All enables every construction tool.
	All = NewToolSet(geom.Tools...)
)

func NewToolSet(tools ...geom.Tool) ToolSet {
	var s ToolSet
	for _, t := range tools {
		s = s.With(t)
	}
	return s
}

func (s ToolSet) Has(t geom.Tool) bool {
	return t != geom.ToolGiven && s&(1<<uint(t)) != 0
}

func (s ToolSet) With(t geom.Tool) ToolSet {
	if t == geom.ToolGiven {
		return s
	}
	return s | 1<<uint(t)
}

func (s ToolSet) Without(t geom.Tool) ToolSet {
	return s &^ (1 << uint(t))
}

// Tools lists the enabled tools in generation order.
func (s ToolSet) Tools() []geom.Tool {
	var out []geom.Tool
	for _, t := range geom.Tools {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s ToolSet) Names() []string {
	tools := s.Tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.String()
	}
	return names
}

func (s ToolSet) String() string {
	return strings.Join(s.Names(), ",")
}

// ParseToolSet reads tool names. The names "basic" and "all" expand to the
// presets.
func ParseToolSet(names []string) (ToolSet, error) {
	var s ToolSet
	for _, name := range names {
		name = strings.TrimSpace(name)
		switch name {
		case "":
			continue
		case "basic":
			s |= Basic
			continue
		case "all":
			s |= All
			continue
		}
		t, err := geom.ParseTool(name)
		if err != nil {
			return 0, err
		}
		if t == geom.ToolGiven {
			return 0, errors.Errorf("%q is not a construction tool", name)
		}
		s = s.With(t)
	}
	return s, nil
}

func (s ToolSet) MarshalYAML() (interface{}, error) {
	return s.Names(), nil
}

func (s *ToolSet) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if value.Kind == yaml.ScalarNode {
		names = strings.Split(value.Value, ",")
	} else if err := value.Decode(&names); err != nil {
		return errors.Wrap(err, "decoding tool list")
	}
	parsed, err := ParseToolSet(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Config is shared by a Context and every state derived from it.
type Config struct {
	Tools ToolSet `yaml:"tools"`
	// MaxSqDist bounds the squared distance from the origin of any point a
	// generated step may introduce. Zero or less disables the bound.
	MaxSqDist float64 `yaml:"max_sq_dist"`
}

func DefaultConfig() Config {
	return Config{Tools: Basic}
}

func (c Config) inBounds(p geom.Point) bool {
	if !p.IsFinite() {
		return false
	}
	return c.MaxSqDist <= 0 || p.SqLen() <= c.MaxSqDist
}
