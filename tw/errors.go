package tw

import "errors"

var (
	// ErrNoMatch is returned when no shortcut or rule produces CSS for a class.
	ErrNoMatch = errors.New("no utility matches")
	// ErrShortcutCycle is returned when a shortcut expands into itself.
	ErrShortcutCycle = errors.New("shortcut cycle")
	// ErrDynamicRule is returned when serializing a rule whose output is not fixed.
	ErrDynamicRule = errors.New("rule is not static")
	// ErrUnknownFormat is returned for unsupported document formats.
	ErrUnknownFormat = errors.New("unknown document format")
)
