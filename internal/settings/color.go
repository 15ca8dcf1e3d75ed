package settings

import (
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an opaque RGB colour. In YAML it is written either as
// "#rrggbb" or as a three element list.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// UnmarshalYAML accepts the hex and list forms.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		hex := strings.TrimPrefix(value.Value, "#")
		if len(hex) != 6 {
			return fmt.Errorf("line %d: colour %q is not #rrggbb", value.Line, value.Value)
		}
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return fmt.Errorf("line %d: colour %q: %w", value.Line, value.Value, err)
		}
		return nil
	case yaml.SequenceNode:
		var vals []uint8
		if err := value.Decode(&vals); err != nil {
			return fmt.Errorf("line %d: colour: %w", value.Line, err)
		}
		if len(vals) != 3 {
			return fmt.Errorf("line %d: colour needs 3 components, got %d", value.Line, len(vals))
		}
		c.R, c.G, c.B = vals[0], vals[1], vals[2]
		return nil
	default:
		return fmt.Errorf("line %d: unsupported colour value", value.Line)
	}
}
