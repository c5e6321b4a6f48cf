package tools_parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
)

// Field is a named pattern whose first capture group is the value.
type Field struct {
	Name string
	re   *regexp.Regexp
}

func NewField(name, pattern string) Field {
	return Field{Name: name, re: regexp.MustCompile(pattern)}
}

// Find returns the first capture, or false when the pattern is absent.
func (f Field) Find(text string) (string, bool) {
	m := f.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) < 2 {
		return m[0], true
	}
	return m[1], true
}

// String returns the capture verbatim, nil when absent.
func (f Field) String(text string) *string {
	v, ok := f.Find(text)
	if !ok {
		return nil
	}
	return &v
}

// NonEmpty is String, treating an empty capture as absent.
func (f Field) NonEmpty(text string) *string {
	v, ok := f.Find(text)
	if !ok || v == "" {
		return nil
	}
	return &v
}

// Lower returns the capture lowercased, for MAC-like and enum values.
func (f Field) Lower(text string) *string {
	v, ok := f.Find(text)
	if !ok {
		return nil
	}
	v = strings.ToLower(v)
	return &v
}

// Int parses the capture as a base-10 integer. A capture that does not
// convert is a *dogewifi.FieldError.
func (f Field) Int(text string) (*int, error) {
	v, ok := f.Find(text)
	if !ok {
		return nil, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, &dogewifi.FieldError{Field: f.Name, Text: v, Err: err}
	}
	return &i, nil
}

// MHz parses a decimal GHz capture such as "2.437" into integer MHz.
func (f Field) MHz(text string) (*int, error) {
	v, ok := f.Find(text)
	if !ok {
		return nil, nil
	}
	ghz, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, &dogewifi.FieldError{Field: f.Name, Text: v, Err: err}
	}
	mhz := int(math.Round(ghz * 1000))
	return &mhz, nil
}

// Present reports whether the pattern matches anywhere in text.
func (f Field) Present(text string) bool {
	return f.re.MatchString(text)
}

// Flag is true when the pattern matches and nil otherwise, never false.
func (f Field) Flag(text string) *bool {
	if !f.Present(text) {
		return nil
	}
	t := true
	return &t
}

// Ints collects integer fields into their targets, stopping at the first
// conversion failure.
type Ints []IntTarget

type IntTarget struct {
	Field Field
	Into  **int
	GHz   bool
}

func (is Ints) Extract(text string) error {
	for _, t := range is {
		var v *int
		var err error
		if t.GHz {
			v, err = t.Field.MHz(text)
		} else {
			v, err = t.Field.Int(text)
		}
		if err != nil {
			return err
		}
		*t.Into = v
	}
	return nil
}
