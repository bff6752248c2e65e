package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// The Wirespeed API omits fields, sends numbers as strings and occasionally
// returns objects where arrays are expected. The types below decode such
// values into safe defaults instead of failing the whole response.

// Number is a float that decodes from a JSON number or numeric string.
// Anything else, including null, NaN and Inf, becomes 0.
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	v, _ := parseNumber(data)
	*n = Number(v)
	return nil
}

// Float returns the value as float64
func (n Number) Float() float64 {
	return float64(n)
}

// Int returns the value truncated to int64
func (n Number) Int() int64 {
	return int64(n)
}

// OptionalNumber is like Number but remembers whether a usable value was present.
type OptionalNumber struct {
	value float64
	valid bool
}

// NewOptionalNumber creates a valid OptionalNumber
func NewOptionalNumber(v float64) OptionalNumber {
	return OptionalNumber{value: v, valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	n.value, n.valid = parseNumber(data)
	return nil
}

// Get returns the value and whether it was present and numeric
func (n OptionalNumber) Get() (float64, bool) {
	return n.value, n.valid
}

// Text is a string that tolerates non-string JSON values. Numbers keep their
// literal form; objects, arrays, booleans and null become "".
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*t = ""
			return nil
		}
		*t = Text(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*t = Text(data)
	default:
		*t = ""
	}
	return nil
}

// String returns the string representation
func (t Text) String() string {
	return string(t)
}

// Or returns t, or fallback when t is empty
func (t Text) Or(fallback string) string {
	if t == "" {
		return fallback
	}
	return string(t)
}

// Flag is a boolean following JSON truthiness: null, false, 0, "" and
// absent are false, everything else is true.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "", "null", "false", `""`:
		*f = false
	default:
		v, ok := parseNumber(data)
		*f = Flag(!(ok && v == 0 && data[0] != '"'))
	}
	return nil
}

// Bool returns the value as bool
func (f Flag) Bool() bool {
	return bool(f)
}

// List decodes a JSON array of T. A non-array value decodes to an empty list,
// and elements that are not decodable as T are dropped.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = List[T]{}
		return nil
	}

	items := make(List[T], 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			// A mismatch on a nested field keeps what was decoded; a
			// mismatch of the element itself drops it.
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) || typeErr.Field == "" {
				continue
			}
		}
		items = append(items, v)
	}
	*l = items
	return nil
}

// Items returns the elements as a plain slice, never nil
func (l List[T]) Items() []T {
	if l == nil {
		return []T{}
	}
	return []T(l)
}

func parseNumber(data []byte) (float64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0, false
	}

	var s string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
	} else {
		s = string(data)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
