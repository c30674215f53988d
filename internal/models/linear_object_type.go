package models

import (
	"fmt"
	"strings"

	"github.com/UnknownOlympus/atlas-indoor/internal/geometry"
)

// LinearObjectType describes what kind of feature a linear object is.
type LinearObjectType uint8

const (
	// LinearObjectTypeDoor is a door in a wall of the location.
	LinearObjectTypeDoor LinearObjectType = iota
	// LinearObjectTypeWindow is a window in a wall of the location.
	LinearObjectTypeWindow
)

var linearObjectTypeNames = [...]string{
	LinearObjectTypeDoor:   "door",
	LinearObjectTypeWindow: "window",
}

// String returns the serialized name of the type.
func (t LinearObjectType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("LinearObjectType(%d)", uint8(t))
	}
	return linearObjectTypeNames[t]
}

// IsValid reports whether t is one of the defined types.
func (t LinearObjectType) IsValid() bool {
	return int(t) < len(linearObjectTypeNames)
}

// ParseLinearObjectType returns the type with the given name, ignoring case and
// surrounding whitespace.
func ParseLinearObjectType(name string) (LinearObjectType, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for idx, typeName := range linearObjectTypeNames {
		if typeName == normalized {
			return LinearObjectType(idx), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown linear object type %q", geometry.ErrMalformedInput, name)
}
