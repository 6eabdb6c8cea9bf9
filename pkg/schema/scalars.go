package schema

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Int is an integer member. It accepts JSON numbers without a fractional
// part and decimal numeric strings, within the int64 range. Use *Int for
// members that may be absent.
type Int int64

// Float is a finite floating point member that also accepts numeric strings.
type Float float64

func (i *Int) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	text, err := numberText(data)
	if err != nil {
		return err
	}
	n, err := parseInteger(text)
	if err != nil {
		return err
	}
	*i = Int(n)
	return nil
}

func (f *Float) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	text, err := numberText(data)
	if err != nil {
		return err
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return fmt.Errorf("expected a finite number, got %s", text)
	}
	*f = Float(n)
	return nil
}

// IntPtr is a convenience for optional integer literals.
func IntPtr(v int64) *Int {
	i := Int(v)
	return &i
}

// FloatPtr is a convenience for optional float literals.
func FloatPtr(v float64) *Float {
	f := Float(v)
	return &f
}

// StringPtr is a convenience for optional string literals.
func StringPtr(s string) *string {
	return &s
}

// decimalNumber is the plain decimal notation accepted for numeric members.
// Base prefixes, digit separators and the Inf and NaN spellings are not.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// numberText returns the literal of a JSON number, or the trimmed content of
// a JSON string, when it is a decimal number.
func numberText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", fmt.Errorf("empty value")
	}
	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		text = strings.TrimSpace(s)
	}
	if !decimalNumber.MatchString(text) {
		return "", fmt.Errorf("expected a number, got %s", string(data))
	}
	return text, nil
}

// parseInteger parses a decimal integer exactly. Integral values written with
// a fraction or exponent are accepted while they fit in an int64.
func parseInteger(text string) (int64, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return n, nil
	}
	if stderrors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%s is out of the 64-bit integer range", text)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("expected an integer, got %s", text)
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, fmt.Errorf("%s is out of the 64-bit integer range", text)
	}
	return int64(f), nil
}

// IntOrString holds either an integer or a string, keeping whichever the
// payload used.
type IntOrString struct {
	num   int64
	str   string
	isStr bool
}

// IntValue wraps an integer.
func IntValue(v int64) IntOrString { return IntOrString{num: v} }

// StringValue wraps a string.
func StringValue(s string) IntOrString { return IntOrString{str: s, isStr: true} }

// IsString reports whether the payload carried a string.
func (v IntOrString) IsString() bool { return v.isStr }

// Int returns the integer form. Numeric strings are converted; other strings
// report false.
func (v IntOrString) Int() (int64, bool) {
	if !v.isStr {
		return v.num, true
	}
	text := strings.TrimSpace(v.str)
	if !decimalNumber.MatchString(text) {
		return 0, false
	}
	n, err := parseInteger(text)
	return n, err == nil
}

// Text returns the value as it would be printed.
func (v IntOrString) Text() string {
	if v.isStr {
		return v.str
	}
	return cast.ToString(v.num)
}

func (v IntOrString) MarshalJSON() ([]byte, error) {
	if v.isStr {
		return json.Marshal(v.str)
	}
	return json.Marshal(v.num)
}

func (v *IntOrString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}
	var n Int
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	*v = IntValue(int64(n))
	return nil
}

// StringOrList holds a single string or a list of strings.
type StringOrList struct {
	values []string
	isList bool
}

// Single wraps one string.
func Single(s string) StringOrList { return StringOrList{values: []string{s}} }

// List wraps a list of strings.
func List(values ...string) StringOrList { return StringOrList{values: values, isList: true} }

// IsList reports whether the payload carried a list.
func (s StringOrList) IsList() bool { return s.isList }

// Values returns the strings in either form.
func (s StringOrList) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

func (s StringOrList) MarshalJSON() ([]byte, error) {
	if s.isList {
		if s.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.values)
	}
	if len(s.values) == 0 {
		return []byte(`""`), nil
	}
	return json.Marshal(s.values[0])
}

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		if values == nil {
			values = []string{}
		}
		*s = StringOrList{values: values, isList: true}
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*s = Single(single)
	return nil
}
