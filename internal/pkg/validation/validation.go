package validation

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

var ErrInvalid = errors.New("invalid input")

// Error reports every rejected field of one input. It matches ErrInvalid.
type Error struct {
	Fields Violations
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Fields[k])
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, ", ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Field builds an Error for a single field.
func Field(field, reason string) error {
	return &Error{Fields: Violations{field: reason}}
}

// Violations maps a field name to a short machine-readable reason.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Err returns nil when no field was rejected.
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return &Error{Fields: v}
}

// Add records reason for field unless the field already has one, so the
// first failing rule wins.
func (v Violations) Add(field, reason string) {
	if _, ok := v[field]; ok {
		return
	}
	v[field] = reason
}

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "required")
	}
}

func MaxLen(field, value string, maxLen int, v Violations) {
	if utf8.RuneCountInString(value) > maxLen {
		v.Add(field, "too_long")
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v.Add(field, "must_not_be_negative")
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v.Add(field, "out_of_range")
	}
}

func RangeInt(field string, val, minVal, maxVal int, v Violations) {
	if val < minVal || val > maxVal {
		v.Add(field, "out_of_range")
	}
}

func Email(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	at := strings.LastIndex(value, "@")
	if at <= 0 || at == len(value)-1 || strings.ContainsAny(value, " \t\n") {
		v.Add(field, "invalid_email")
	}
}

func OneOf(field string, ok bool, v Violations) {
	if !ok {
		v.Add(field, "invalid_choice")
	}
}
