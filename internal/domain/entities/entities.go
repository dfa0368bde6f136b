package entities

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Common errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateName   = errors.New("profile name is empty or already exists")
	ErrEmptyName       = errors.New("coordinate name is empty")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrIndexOutOfRange = errors.New("coordinate index out of range")
	ErrInvalidDocument = errors.New("document is not a profile mapping")
	ErrLoadFailed      = errors.New("failed to load dataset")
	ErrSaveFailed      = errors.New("failed to save dataset")
)

// ImportMode controls how an imported document is combined with the
// existing dataset.
type ImportMode string

const (
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

func (m ImportMode) IsValid() bool {
	switch m {
	case ImportModeMerge, ImportModeReplace:
		return true
	default:
		return false
	}
}

// Number is a JSON number that remembers whether it was entered as an
// integer or as a decimal, so values round-trip through the data file
// without changing form (100 stays 100, 1.5 stays 1.5).
type Number struct {
	integral bool
	intVal   int64
	floatVal float64
}

// IntNumber returns an integral Number.
func IntNumber(v int64) Number {
	return Number{integral: true, intVal: v}
}

// FloatNumber returns a fractional Number.
func FloatNumber(v float64) Number {
	return Number{floatVal: v}
}

// ParseNumber parses user-entered text into a Number. Text consisting of
// an optional leading minus sign followed only by digits is parsed as
// integral; anything else must parse as a finite decimal value.
func ParseNumber(text string) (Number, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Number{}, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}

	if isDigits(s) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return IntNumber(v), nil
		}
		// Out of int64 range, fall through to the float path.
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return FloatNumber(v), nil
}

// isDigits reports whether s is an optional leading '-' followed by one
// or more ASCII digits.
func isDigits(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsIntegral reports whether the number carries an integer value.
func (n Number) IsIntegral() bool {
	return n.integral
}

// Int64 returns the integer value; fractional numbers are truncated.
func (n Number) Int64() int64 {
	if n.integral {
		return n.intVal
	}
	return int64(n.floatVal)
}

// Float64 returns the value as a float64.
func (n Number) Float64() float64 {
	if n.integral {
		return float64(n.intVal)
	}
	return n.floatVal
}

func (n Number) String() string {
	if n.integral {
		return strconv.FormatInt(n.intVal, 10)
	}
	// Same shape encoding/json uses for float64 values.
	abs := math.Abs(n.floatVal)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(n.floatVal, format, -1, 64)
	// A whole fractional value keeps its decimal point so the kind
	// survives a round trip: 2.0 stays 2.0, not 2.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// MarshalJSON writes the number as a bare JSON number token.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalJSON accepts any JSON number token and infers the integral or
// fractional kind from its text form. A null axis in a hand-edited file
// is rejected rather than quietly read as zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return fmt.Errorf("%w: null", ErrInvalidNumber)
	}
	parsed, err := ParseNumber(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Coordinate is a named point in a world.
type Coordinate struct {
	Name string `json:"name" validate:"required"`
	X    Number `json:"x"`
	Y    Number `json:"y"`
	Z    Number `json:"z"`
}

// Text renders the coordinate in the copy/print format.
func (c Coordinate) Text() string {
	return fmt.Sprintf("%s: x=%s y=%s z=%s", c.Name, c.X, c.Y, c.Z)
}

// Profile holds an optional world seed and an ordered list of named
// coordinates. Coordinates are identified by their list position only;
// deleting index i shifts all later indices down by one.
type Profile struct {
	Seed   string       `json:"seed"`
	Coords []Coordinate `json:"coords" validate:"dive"`
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{Seed: "", Coords: []Coordinate{}}
}

// CoordinateAt returns the coordinate at index i.
func (p *Profile) CoordinateAt(i int) (Coordinate, error) {
	if i < 0 || i >= len(p.Coords) {
		return Coordinate{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.Coords))
	}
	return p.Coords[i], nil
}

// AddCoordinate appends c to the end of the coordinate list.
func (p *Profile) AddCoordinate(c Coordinate) {
	p.Coords = append(p.Coords, c)
}

// RemoveCoordinate deletes the coordinate at index i.
func (p *Profile) RemoveCoordinate(i int) error {
	if i < 0 || i >= len(p.Coords) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.Coords))
	}
	p.Coords = append(p.Coords[:i], p.Coords[i+1:]...)
	return nil
}

// ReplaceCoordinate overwrites the coordinate at index i.
func (p *Profile) ReplaceCoordinate(i int, c Coordinate) error {
	if i < 0 || i >= len(p.Coords) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.Coords))
	}
	p.Coords[i] = c
	return nil
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	out := &Profile{Seed: p.Seed, Coords: make([]Coordinate, len(p.Coords))}
	copy(out.Coords, p.Coords)
	return out
}

// Dataset maps profile names to profiles. It is the unit of persistence:
// the whole mapping is read and written as one JSON document.
type Dataset map[string]*Profile

// NewDataset returns an empty dataset.
func NewDataset() Dataset {
	return make(Dataset)
}

// Names returns the profile names sorted case-insensitively for display.
func (d Dataset) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	for name, profile := range d {
		if profile == nil {
			out[name] = nil
			continue
		}
		out[name] = profile.Clone()
	}
	return out
}

// Merge overlays other onto d; entries from other win on name collision.
func (d Dataset) Merge(other Dataset) {
	for name, profile := range other {
		d[name] = profile
	}
}

// Normalize repairs holes a hand-edited or imported document may carry:
// null profiles become empty profiles and nil coordinate lists become
// empty lists.
func (d Dataset) Normalize() {
	for name, profile := range d {
		if profile == nil {
			d[name] = NewProfile()
			continue
		}
		if profile.Coords == nil {
			profile.Coords = []Coordinate{}
		}
	}
}
