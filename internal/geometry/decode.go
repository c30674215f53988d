package geometry

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ErrMalformedInput is returned when a dictionary cannot be decoded into a value.
var ErrMalformedInput = errors.New("malformed input")

// DecodeDictionary decodes dict into the typed record pointed to by record.
// Every field of the record must be present in dict under its exact tag name and dict must
// not carry unknown keys. Keys holding null leave pointer fields nil for the caller to reject.
// Numbers are accepted from any Go numeric kind or json.Number, never from strings.
// Any failure is wrapped with ErrMalformedInput.
func DecodeDictionary(dict map[string]any, record any) error {
	if len(dict) == 0 {
		return fmt.Errorf("%w: empty dictionary", ErrMalformedInput)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		ErrorUnset:  true,
		Result:      record,
		TagName:     "mapstructure",
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create dictionary decoder: %w", err)
	}

	if err = decoder.Decode(dict); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return nil
}
