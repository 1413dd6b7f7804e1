package service

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type fieldKind int

const (
	stringField fieldKind = iota
	optionalStringField
	intField
	floatField
	datetimeField
	nullableDatetimeField
)

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDatetime parses the datetime formats accepted anywhere on the API
// surface (JSON payloads and query parameters alike), most specific first.
func ParseDatetime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty datetime", ErrInvalidInput)
	}
	for _, layout := range datetimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable datetime %q", ErrInvalidInput, raw)
}

// validatePatch checks a partial-update payload against the known field set.
// An unknown field fails the whole request; nothing is silently dropped.
// Values arrive as decoded JSON, so numbers are float64 and datetimes are
// strings to be parsed here.
func validatePatch(patch map[string]interface{}, known map[string]fieldKind) (map[string]interface{}, error) {
	if len(patch) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidInput)
	}

	fields := make(map[string]interface{}, len(patch))
	for key, value := range patch {
		kind, ok := known[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, key)
		}

		switch kind {
		case stringField:
			str, ok := value.(string)
			if !ok || strings.TrimSpace(str) == "" {
				return nil, fmt.Errorf("%w: field %q must be a non-empty string", ErrInvalidInput, key)
			}
			fields[key] = strings.TrimSpace(str)
		case optionalStringField:
			str, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field %q must be a string", ErrInvalidInput, key)
			}
			fields[key] = strings.TrimSpace(str)
		case intField:
			num, ok := value.(float64)
			if !ok || num != math.Trunc(num) {
				return nil, fmt.Errorf("%w: field %q must be an integer", ErrInvalidInput, key)
			}
			fields[key] = int64(num)
		case floatField:
			num, ok := value.(float64)
			if !ok {
				return nil, fmt.Errorf("%w: field %q must be a number", ErrInvalidInput, key)
			}
			fields[key] = num
		case datetimeField:
			str, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field %q must be a datetime string", ErrInvalidInput, key)
			}
			parsed, err := ParseDatetime(str)
			if err != nil {
				return nil, err
			}
			fields[key] = parsed
		case nullableDatetimeField:
			if value == nil {
				fields[key] = nil
				continue
			}
			str, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field %q must be a datetime string or null", ErrInvalidInput, key)
			}
			parsed, err := ParseDatetime(str)
			if err != nil {
				return nil, err
			}
			fields[key] = parsed
		}
	}
	return fields, nil
}
