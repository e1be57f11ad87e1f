package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is a numeric form value that may be empty. An empty Number is what a
// cleared input field holds while the user is still editing; it reads as 0 and
// is never positive.
type Number struct {
	value float64
	set   bool
}

// Num wraps v. NaN and infinities produce an empty Number.
func Num(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{value: v, set: true}
}

// Empty returns the empty Number.
func Empty() Number { return Number{} }

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads the longest leading decimal literal from s, ignoring
// leading whitespace and any trailing text ("60kg" parses as 60). Input
// without a leading number yields the empty Number.
func ParseNumber(s string) Number {
	m := leadingFloat.FindString(strings.TrimLeft(s, " \t\r\n"))
	if m == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return Number{}
	}
	return Num(v)
}

// Float returns the value, or 0 when empty.
func (n Number) Float() float64 {
	if !n.set {
		return 0
	}
	return n.value
}

func (n Number) Valid() bool { return n.set }

// IsZero reports emptiness so that `omitzero` drops empty fields on encode.
func (n Number) IsZero() bool { return !n.set }

// Positive reports whether n holds a value strictly greater than zero.
func (n Number) Positive() bool { return n.set && n.value > 0 }

func (n Number) String() string {
	if !n.set {
		return ""
	}
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte(`""`), nil
	}
	return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding number: %w", err)
		}
		*n = ParseNumber(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}
	*n = Num(v)
	return nil
}

// looseID decodes an id stored either as a JSON string or as a number.
// Numbers keep their literal text.
type looseID string

func (id *looseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = looseID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = looseID(n.String())
	}
	return nil
}
