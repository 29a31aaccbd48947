package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingField is the Kind of a FieldError raised for an absent key.
	ErrMissingField = errors.New("missing field")
	// ErrFieldType is the Kind of a FieldError raised for a key whose value
	// has the wrong JSON type.
	ErrFieldType = errors.New("unexpected field type")
)

// FieldError reports the first field that stopped a decode.
type FieldError struct {
	// Kind is ErrMissingField or ErrFieldType.
	Kind error
	// Record is the innermost record type being decoded, e.g. "HourlyWeather".
	Record string
	// Field is the offending key in that record.
	Field string
	// Path locates the field from the decode entry point,
	// e.g. "weather[0].hourly[3].tempC".
	Path string
	// Got is the JSON type found when Kind is ErrFieldType.
	Got string
}

func (e *FieldError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("%s: %v %q at %s (got %s)", e.Record, e.Kind, e.Field, e.Path, e.Got)
	}
	return fmt.Sprintf("%s: %v %q at %s", e.Record, e.Kind, e.Field, e.Path)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// withPathPrefix re-roots a nested FieldError under prefix.
func withPathPrefix(err error, prefix string) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		rooted := *fe
		rooted.Path = prefix + "." + fe.Path
		return &rooted
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
