package schematic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the schematic package.
var (
	// ErrSameTerminal is returned when a wire or voltage indicator is asked
	// to span from a terminal to itself.
	ErrSameTerminal = errors.New("schematic: terminals at each end must differ")

	// ErrForeignTerminal is returned by Circuit.Connect when a terminal does
	// not belong to any component in the circuit.
	ErrForeignTerminal = errors.New("schematic: terminal does not belong to a component in this circuit")

	// ErrMonopoleAnnotation is returned when an annotation is set on a
	// single-terminal component, which has no below-body side to place it.
	ErrMonopoleAnnotation = errors.New("schematic: monopoles do not support annotations, use a label")

	// ErrNoFont is returned when marks must be drawn but no font face could
	// be prepared.
	ErrNoFont = errors.New("schematic: no font available for marks")
)

// ConfigErrorKind classifies style configuration failures.
type ConfigErrorKind int

const (
	// ConfigUnknownKey marks a key that does not correspond to any style field.
	ConfigUnknownKey ConfigErrorKind = iota
	// ConfigUnknownTable marks a whole table that the style schema does not define.
	ConfigUnknownTable
	// ConfigBadValue marks a value whose TOML type does not match the field.
	ConfigBadValue
)

// ConfigError describes a rejected style configuration file. Path is the
// dotted key path within the file ("symbol.bipole_width").
type ConfigError struct {
	Path   string
	Kind   ConfigErrorKind
	Detail string // decoder diagnostic for ConfigBadValue
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case ConfigUnknownKey:
		return fmt.Sprintf("schematic: invalid key %q in style configuration", e.Path)
	case ConfigUnknownTable:
		return fmt.Sprintf("schematic: invalid table %q in style configuration", e.Path)
	default:
		return fmt.Sprintf("schematic: invalid value for key %q in style configuration: %s", e.Path, e.Detail)
	}
}

// UnknownTerminalError is returned by name-based terminal lookups. When the
// requested name is close to a real terminal name, Suggestion carries the
// nearest match.
type UnknownTerminalError struct {
	Component  string
	Name       string
	Suggestion string
}

func (e *UnknownTerminalError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("schematic: unknown terminal %q on %s (did you mean %q?)", e.Name, e.Component, e.Suggestion)
	}
	return fmt.Sprintf("schematic: unknown terminal %q on %s", e.Name, e.Component)
}
