package models

import (
	"fmt"

	"github.com/UnknownOlympus/atlas-indoor/internal/geometry"
	"github.com/cespare/xxhash/v2"
)

// Dictionary keys of a serialized linear object.
const (
	KeyType         = "type"
	KeyLinePosition = "line_position"
)

// ErrMalformedInput is returned when a dictionary does not describe a linear object.
var ErrMalformedInput = geometry.ErrMalformedInput

// LinearObject represents an object in a location whose position can be described by a
// line segment, such as a door or a window.
// It is an immutable, comparable value: it may be shared between goroutines and used as
// a map key.
type LinearObject struct {
	kind         LinearObjectType
	linePosition geometry.OrientedLineSegment
}

type linearObjectRecord struct {
	Type         *string        `mapstructure:"type"`
	LinePosition map[string]any `mapstructure:"line_position"`
}

// NewLinearObject returns a linear object of the given type placed at linePosition.
// The orientation of linePosition typically points toward the centre of the location.
func NewLinearObject(kind LinearObjectType, linePosition geometry.OrientedLineSegment) LinearObject {
	return LinearObject{kind: kind, linePosition: linePosition}
}

// NewLinearObjectFrom returns a copy of other.
func NewLinearObjectFrom(other LinearObject) LinearObject {
	return NewLinearObject(other.kind, other.linePosition)
}

// Type returns the kind of the object.
func (o LinearObject) Type() LinearObjectType { return o.kind }

// LinePosition returns the oriented line segment the object occupies.
func (o LinearObject) LinePosition() geometry.OrientedLineSegment { return o.linePosition }

// TranslatedBy returns a new linear object moved by the vector (dX, dY).
func (o LinearObject) TranslatedBy(dX, dY float64) LinearObject {
	return NewLinearObject(o.kind, o.linePosition.Translated(dX, dY))
}

// Equal reports whether both objects have the same type and equal line positions.
func (o LinearObject) Equal(other LinearObject) bool {
	return o.kind == other.kind && o.linePosition.Equal(other.linePosition)
}

// EqualAny is Equal for values of unknown kind. A nil pointer or a value that is not a
// linear object is never equal.
func (o LinearObject) EqualAny(other any) bool {
	switch v := other.(type) {
	case LinearObject:
		return o.Equal(v)
	case *LinearObject:
		return v != nil && o.Equal(*v)
	default:
		return false
	}
}

// Hash returns a hash of the object consistent with Equal.
func (o LinearObject) Hash() uint64 {
	digest := xxhash.New()
	_, _ = digest.Write([]byte{byte(o.kind)})
	o.linePosition.WriteHash(digest)

	return digest.Sum64()
}

// String implements fmt.Stringer.
func (o LinearObject) String() string {
	seg := o.linePosition
	return fmt.Sprintf("%s[%v -> %v facing %v]", o.kind, seg.Start(), seg.End(), seg.Orientation())
}

// ToDictionary serializes the object into a generic key-value map that
// LinearObjectFromDictionary reads back into an equal object.
func (o LinearObject) ToDictionary() map[string]any {
	return map[string]any{
		KeyType:         o.kind.String(),
		KeyLinePosition: o.linePosition.ToDictionary(),
	}
}

// LinearObjectFromDictionary deserializes a linear object produced by ToDictionary.
// Missing, unknown or mistyped keys, an unknown type name and an invalid line position
// all fail with an error wrapping ErrMalformedInput.
func LinearObjectFromDictionary(dict map[string]any) (LinearObject, error) {
	var rec linearObjectRecord
	if err := geometry.DecodeDictionary(dict, &rec); err != nil {
		return LinearObject{}, fmt.Errorf("failed to decode linear object: %w", err)
	}

	if rec.Type == nil {
		return LinearObject{}, fmt.Errorf(
			"failed to decode linear object: %w: %s is null", ErrMalformedInput, KeyType)
	}
	if rec.LinePosition == nil {
		return LinearObject{}, fmt.Errorf(
			"failed to decode linear object: %w: %s is null", ErrMalformedInput, KeyLinePosition)
	}

	kind, err := ParseLinearObjectType(*rec.Type)
	if err != nil {
		return LinearObject{}, fmt.Errorf("failed to decode linear object: %w", err)
	}

	linePosition, err := geometry.OrientedLineSegmentFromDictionary(rec.LinePosition)
	if err != nil {
		return LinearObject{}, fmt.Errorf("failed to decode linear object %s: %w", KeyLinePosition, err)
	}

	return NewLinearObject(kind, linePosition), nil
}
