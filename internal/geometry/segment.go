package geometry

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Dictionary keys of a serialized oriented line segment.
const (
	KeyStart       = "start"
	KeyEnd         = "end"
	KeyOrientation = "orientation"
	KeyX           = "x"
	KeyY           = "y"
)

// ErrInvalidSegment is returned by Validate for segments that cannot be serialized and read back.
var ErrInvalidSegment = errors.New("invalid oriented line segment")

// OrientedLineSegment is a line segment paired with a direction that usually points
// toward the interior of the location, perpendicular to the segment.
// The zero value is a degenerate segment at the origin with no orientation.
type OrientedLineSegment struct {
	start       Point
	end         Point
	orientation Vector
}

// Record fields are pointers so that a key holding null is told apart from a zero value.
type pointRecord struct {
	X *float64 `mapstructure:"x"`
	Y *float64 `mapstructure:"y"`
}

type segmentRecord struct {
	Start       *pointRecord `mapstructure:"start"`
	End         *pointRecord `mapstructure:"end"`
	Orientation *pointRecord `mapstructure:"orientation"`
}

// values returns the decoded coordinates, failing when the record or one of its
// coordinates was null.
func (r *pointRecord) values(key string) (float64, float64, error) {
	switch {
	case r == nil:
		return 0, 0, fmt.Errorf("%w: %s is null", ErrMalformedInput, key)
	case r.X == nil:
		return 0, 0, fmt.Errorf("%w: %s.%s is null", ErrMalformedInput, key, KeyX)
	case r.Y == nil:
		return 0, 0, fmt.Errorf("%w: %s.%s is null", ErrMalformedInput, key, KeyY)
	}

	return *r.X, *r.Y, nil
}

// NewOrientedLineSegment returns a segment from start to end facing orientation.
func NewOrientedLineSegment(start, end Point, orientation Vector) OrientedLineSegment {
	return OrientedLineSegment{start: start, end: end, orientation: orientation}
}

// Start returns the first endpoint.
func (s OrientedLineSegment) Start() Point { return s.start }

// End returns the second endpoint.
func (s OrientedLineSegment) End() Point { return s.end }

// Orientation returns the facing direction of the segment.
func (s OrientedLineSegment) Orientation() Vector { return s.orientation }

// Translated returns the segment with both endpoints shifted by (dX, dY).
// The orientation is a direction and does not move.
func (s OrientedLineSegment) Translated(dX, dY float64) OrientedLineSegment {
	return OrientedLineSegment{
		start:       s.start.Translated(dX, dY),
		end:         s.end.Translated(dX, dY),
		orientation: s.orientation,
	}
}

// Equal reports whether both endpoints and the orientation are equal.
func (s OrientedLineSegment) Equal(other OrientedLineSegment) bool {
	return s.start == other.start && s.end == other.end && s.orientation == other.orientation
}

// Length returns the euclidean distance between the endpoints.
func (s OrientedLineSegment) Length() float64 {
	return math.Hypot(s.end.X-s.start.X, s.end.Y-s.start.Y)
}

// Midpoint returns the point halfway between the endpoints.
func (s OrientedLineSegment) Midpoint() Point {
	return Point{X: (s.start.X + s.end.X) / 2, Y: (s.start.Y + s.end.Y) / 2}
}

// Validate checks that every value is finite and the orientation is not the zero vector.
func (s OrientedLineSegment) Validate() error {
	switch {
	case !s.start.IsFinite():
		return fmt.Errorf("%w: start %v is not finite", ErrInvalidSegment, s.start)
	case !s.end.IsFinite():
		return fmt.Errorf("%w: end %v is not finite", ErrInvalidSegment, s.end)
	case !s.orientation.IsFinite():
		return fmt.Errorf("%w: orientation %v is not finite", ErrInvalidSegment, s.orientation)
	case s.orientation.IsZero():
		return fmt.Errorf("%w: orientation is the zero vector", ErrInvalidSegment)
	}

	return nil
}

// WriteHash feeds the segment into digest so that equal segments produce equal sums.
func (s OrientedLineSegment) WriteHash(digest *xxhash.Digest) {
	var buf [8]byte
	for _, v := range [...]float64{
		s.start.X, s.start.Y, s.end.X, s.end.Y, s.orientation.X, s.orientation.Y,
	} {
		// -0 and +0 compare equal, so they must hash equal too.
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = digest.Write(buf[:])
	}
}

// ToDictionary serializes the segment into a generic key-value map.
func (s OrientedLineSegment) ToDictionary() map[string]any {
	return map[string]any{
		KeyStart:       map[string]any{KeyX: s.start.X, KeyY: s.start.Y},
		KeyEnd:         map[string]any{KeyX: s.end.X, KeyY: s.end.Y},
		KeyOrientation: map[string]any{KeyX: s.orientation.X, KeyY: s.orientation.Y},
	}
}

// OrientedLineSegmentFromDictionary deserializes a segment produced by ToDictionary.
// It fails with ErrMalformedInput when a key is missing or unknown, a value has the wrong
// shape, or the decoded segment does not pass Validate.
func OrientedLineSegmentFromDictionary(dict map[string]any) (OrientedLineSegment, error) {
	var rec segmentRecord
	if err := DecodeDictionary(dict, &rec); err != nil {
		return OrientedLineSegment{}, fmt.Errorf("failed to decode oriented line segment: %w", err)
	}

	startX, startY, err := rec.Start.values(KeyStart)
	if err != nil {
		return OrientedLineSegment{}, fmt.Errorf("failed to decode oriented line segment: %w", err)
	}
	endX, endY, err := rec.End.values(KeyEnd)
	if err != nil {
		return OrientedLineSegment{}, fmt.Errorf("failed to decode oriented line segment: %w", err)
	}
	dirX, dirY, err := rec.Orientation.values(KeyOrientation)
	if err != nil {
		return OrientedLineSegment{}, fmt.Errorf("failed to decode oriented line segment: %w", err)
	}

	seg := NewOrientedLineSegment(Point{X: startX, Y: startY}, Point{X: endX, Y: endY}, Vector{X: dirX, Y: dirY})
	if err = seg.Validate(); err != nil {
		return OrientedLineSegment{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return seg, nil
}
