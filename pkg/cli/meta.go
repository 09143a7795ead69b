package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// ParamType is a small enum for parameter types used in metadata.
type ParamType string

const (
	ParamTypeInt     ParamType = "int"
	ParamTypePercent ParamType = "percent"
	ParamTypePath    ParamType = "path"
	ParamTypeString  ParamType = "string"
)

// ValidationRule is a machine-friendly representation of the constraints
// that a UI or client can use to validate input before invoking a command.
type ValidationRule struct {
	Type     ParamType `json:"type"`
	Required bool      `json:"required"`
	Min      *float64  `json:"min,omitempty"`
	Max      *float64  `json:"max,omitempty"`
	Example  string    `json:"example,omitempty"`
	Hint     string    `json:"hint,omitempty"`
}

// parseBoolLikeToString accepts common truthy/falsy forms and returns "true"/"false" string.
func parseBoolLikeToString(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return "true", nil
	case "0", "f", "false", "n", "no", "off":
		return "false", nil
	default:
		return "", fmt.Errorf("invalid boolean: %q", s)
	}
}

// parsePercentValue accepts "30%" or "30" and returns the bare integer text.
func parsePercentValue(s string) (string, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid percent value: %q", s)
	}
	return strconv.Itoa(v), nil
}

// GenerateTooltip produces a help string from a stdimg.CommandSpec.
func GenerateTooltip(c stdimg.CommandSpec) string {
	var sb strings.Builder
	if c.Description != "" {
		sb.WriteString(c.Description)
	} else {
		sb.WriteString("No description")
	}
	if len(c.Args) == 0 {
		sb.WriteString(" (no parameters)")
		return sb.String()
	}
	sb.WriteString("\nusage: " + c.Usage + "\nparameters:\n")
	for _, a := range c.Args {
		req := "optional"
		if a.Required {
			req = "required"
		}
		sb.WriteString(fmt.Sprintf("- %s (%s, %s", a.Name, a.Type, req))
		if a.Min != nil && a.Max != nil {
			sb.WriteString(fmt.Sprintf(", %g..%g", *a.Min, *a.Max))
		}
		sb.WriteString(")")
		if a.Description != "" {
			sb.WriteString(": " + a.Description)
		}
		if a.Default != "" {
			sb.WriteString(" (default: " + a.Default + ")")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// GenerateValidationRules creates ValidationRule entries from a stdimg.CommandSpec.
func GenerateValidationRules(c stdimg.CommandSpec) map[string]ValidationRule {
	rules := make(map[string]ValidationRule, len(c.Args))
	for _, a := range c.Args {
		var t ParamType
		switch strings.ToLower(a.Type) {
		case "int":
			t = ParamTypeInt
		case "percent":
			t = ParamTypePercent
		case "path":
			t = ParamTypePath
		default:
			t = ParamTypeString
		}
		rules[a.Name] = ValidationRule{
			Type:     t,
			Required: a.Required,
			Min:      a.Min,
			Max:      a.Max,
			Example:  a.Default,
			Hint:     a.Description,
		}
	}
	return rules
}

// MetaStore indexes the engine registry by name.
type MetaStore struct {
	Commands []stdimg.CommandSpec
	byName   map[string]stdimg.CommandSpec
}

// NewMetaStore creates a MetaStore from a stdimg.CommandSpec list.
func NewMetaStore(cmds []stdimg.CommandSpec) *MetaStore {
	m := &MetaStore{Commands: cmds, byName: make(map[string]stdimg.CommandSpec, len(cmds))}
	for _, c := range cmds {
		m.byName[c.Name] = c
	}
	return m
}

// Lookup returns the spec registered under name.
func (m *MetaStore) Lookup(name string) (stdimg.CommandSpec, bool) {
	c, ok := m.byName[name]
	return c, ok
}

// GetCommandHelp returns both tooltip and validation rules for a command.
func (m *MetaStore) GetCommandHelp(name string) (string, map[string]ValidationRule, error) {
	c, ok := m.byName[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", stdimg.ErrUnknownCommand, name)
	}
	return GenerateTooltip(c), GenerateValidationRules(c), nil
}

// Resolve maps user input (a 1-based index, an exact name or an unambiguous
// prefix) to a command name.
func (m *MetaStore) Resolve(selection string) (string, error) {
	sel := strings.ToLower(strings.TrimSpace(selection))
	if sel == "" {
		return "", fmt.Errorf("empty selection")
	}
	if idx, err := strconv.Atoi(sel); err == nil {
		if idx < 1 || idx > len(m.Commands) {
			return "", fmt.Errorf("invalid selection %d", idx)
		}
		return m.Commands[idx-1].Name, nil
	}
	if _, ok := m.byName[sel]; ok {
		return sel, nil
	}
	var matches []string
	for _, c := range m.Commands {
		if strings.HasPrefix(c.Name, sel) {
			matches = append(matches, c.Name)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", stdimg.ErrUnknownCommand, selection)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous selection %q, candidates: %s", selection, strings.Join(matches, ", "))
	}
}

// NormalizeArgs validates raw arguments against the registry metadata and returns
// them in canonical form. Blank optional arguments are dropped, so the engine
// applies its own defaults.
func (m *MetaStore) NormalizeArgs(cmdName string, args []string) ([]string, error) {
	c, ok := m.byName[cmdName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", stdimg.ErrUnknownCommand, cmdName)
	}
	if len(args) > len(c.Args) {
		return nil, fmt.Errorf("%s takes at most %d parameters, got %d", cmdName, len(c.Args), len(args))
	}
	rules := GenerateValidationRules(c)
	out := make([]string, 0, len(c.Args))
	for i, a := range c.Args {
		var raw string
		if i < len(args) {
			raw = strings.TrimSpace(args[i])
		}
		if raw == "" {
			if a.Required {
				return nil, fmt.Errorf("missing required parameter: %s", a.Name)
			}
			// later optionals cannot be given once one is skipped
			break
		}
		vr := rules[a.Name]
		switch vr.Type {
		case ParamTypeInt, ParamTypePercent:
			n := raw
			if vr.Type == ParamTypePercent {
				var err error
				if n, err = parsePercentValue(raw); err != nil {
					return nil, fmt.Errorf("parameter %s: %w", a.Name, err)
				}
			}
			v, err := strconv.Atoi(n)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: expected integer, got %q", a.Name, raw)
			}
			if vr.Min != nil && float64(v) < *vr.Min {
				return nil, fmt.Errorf("parameter %s: %d < min %v", a.Name, v, *vr.Min)
			}
			if vr.Max != nil && float64(v) > *vr.Max {
				return nil, fmt.Errorf("parameter %s: %d > max %v", a.Name, v, *vr.Max)
			}
			out = append(out, strconv.Itoa(v))
		default:
			out = append(out, raw)
		}
	}
	return out, nil
}
