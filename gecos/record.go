package gecos

import (
	"fmt"
	"strings"
)

// Position names one of the four fixed GECOS sub-fields.
type Position int

const (
	FullName Position = iota
	Room
	WorkPhone
	HomePhone
)

// NumPositions is the number of fixed sub-fields before the "other" list.
const NumPositions = 4

var positionNames = [NumPositions]string{"full-name", "room", "work-phone", "home-phone"}

func (p Position) String() string {
	if p < 0 || p >= NumPositions {
		return fmt.Sprintf("position(%d)", int(p))
	}
	return positionNames[p]
}

// ParsePosition maps "full-name", "room", "work-phone" or "home-phone" to a
// Position.
func ParsePosition(name string) (Position, error) {
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("unknown gecos position %q", name)
}

// Record is the structured form of a GECOS string. A nil position is absent
// and renders as an empty segment. A position holding an empty Field renders
// the same way and is treated as absent by Get, Equal and String, so it
// reparses as nil.
type Record struct {
	FullName  *Field
	Room      *Field
	WorkPhone *Field
	HomePhone *Field
	Other     []Field

	// segments is how many of the four fixed positions the parsed source
	// spelled out, so that "a" and "a,,," both survive a round trip.
	segments int
}

// Parse splits raw into a Record. It fails only when raw contains a colon or
// a line terminator; on failure the zero Record is returned.
func Parse(raw string) (Record, error) {
	if i := strings.IndexAny(raw, recordForbidden); i >= 0 {
		return Record{}, &ParseError{Char: rune(raw[i]), Pos: i}
	}
	parts := strings.Split(raw, ",")

	var r Record
	r.segments = min(len(parts), NumPositions)
	for i := 0; i < r.segments; i++ {
		if parts[i] == "" {
			continue
		}
		f := Field{value: parts[i]}
		*r.slot(Position(i)) = &f
	}
	if len(parts) > NumPositions {
		r.Other = make([]Field, 0, len(parts)-NumPositions)
		for _, p := range parts[NumPositions:] {
			r.Other = append(r.Other, Field{value: p})
		}
	}
	return r, nil
}

// String serializes the record back to its raw GECOS form.
func (r Record) String() string {
	n := r.width()
	segs := make([]string, 0, n+len(r.Other))
	for i := 0; i < n; i++ {
		if f := *r.slot(Position(i)); f != nil {
			segs = append(segs, f.value)
		} else {
			segs = append(segs, "")
		}
	}
	for _, f := range r.Other {
		segs = append(segs, f.value)
	}
	return strings.Join(segs, ",")
}

// width is the number of fixed positions to emit.
func (r Record) width() int {
	if len(r.Other) > 0 {
		return NumPositions
	}
	n := r.segments
	for i := n; i < NumPositions; i++ {
		if _, ok := r.Get(Position(i)); ok {
			n = i + 1
		}
	}
	return n
}

func (r *Record) slot(p Position) **Field {
	switch p {
	case FullName:
		return &r.FullName
	case Room:
		return &r.Room
	case WorkPhone:
		return &r.WorkPhone
	case HomePhone:
		return &r.HomePhone
	}
	panic(fmt.Sprintf("gecos: invalid position %d", int(p)))
}

func validPosition(p Position) error {
	if p < 0 || p >= NumPositions {
		return fmt.Errorf("gecos: invalid position %d", int(p))
	}
	return nil
}

// Get returns the field at p and whether it is present. An empty Field
// counts as absent.
func (r Record) Get(p Position) (Field, bool) {
	if validPosition(p) != nil {
		return Field{}, false
	}
	if f := *r.slot(p); f != nil && !f.IsEmpty() {
		return *f, true
	}
	return Field{}, false
}

// Set validates text and stores it at p. Empty text clears the position.
func (r *Record) Set(p Position, text string) error {
	if err := validPosition(p); err != nil {
		return err
	}
	if text == "" {
		*r.slot(p) = nil
		return nil
	}
	f, err := NewField(text)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	*r.slot(p) = &f
	return nil
}

// SetOther replaces the whole "other" list. Nothing changes if any entry is
// invalid.
func (r *Record) SetOther(texts ...string) error {
	other := make([]Field, 0, len(texts))
	for i, t := range texts {
		f, err := NewField(t)
		if err != nil {
			return fmt.Errorf("other[%d]: %w", i, err)
		}
		other = append(other, f)
	}
	if len(other) == 0 {
		other = nil
	}
	r.Other = other
	return nil
}

func (r *Record) AppendOther(text string) error {
	f, err := NewField(text)
	if err != nil {
		return fmt.Errorf("other[%d]: %w", len(r.Other), err)
	}
	r.Other = append(r.Other, f)
	return nil
}

func (r *Record) SetOtherAt(i int, text string) error {
	if i < 0 || i >= len(r.Other) {
		return fmt.Errorf("other[%d]: index out of range (len %d)", i, len(r.Other))
	}
	f, err := NewField(text)
	if err != nil {
		return fmt.Errorf("other[%d]: %w", i, err)
	}
	r.Other[i] = f
	return nil
}

// Clone returns a copy that shares no slice storage with r.
func (r Record) Clone() Record {
	c := r
	if r.Other != nil {
		c.Other = append([]Field(nil), r.Other...)
	}
	return c
}

// Equal compares the five attributes. It does not compare serialized form:
// Parse("a") and Parse("a,,,") are Equal but their String results differ,
// because each keeps the trailing empty positions its source had.
func (r Record) Equal(o Record) bool {
	for p := Position(0); p < NumPositions; p++ {
		a, aok := r.Get(p)
		b, bok := o.Get(p)
		if aok != bok || !a.Equal(b) {
			return false
		}
	}
	if len(r.Other) != len(o.Other) {
		return false
	}
	for i := range r.Other {
		if !r.Other[i].Equal(o.Other[i]) {
			return false
		}
	}
	return true
}

// CheckChfn reports the first stored value chfn(1) would refuse.
func (r Record) CheckChfn() error {
	for p := Position(0); p < NumPositions; p++ {
		if f, ok := r.Get(p); ok {
			if err := CheckChfn(f.value); err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}
	}
	for i, f := range r.Other {
		if err := CheckChfn(f.value); err != nil {
			return fmt.Errorf("other[%d]: %w", i, err)
		}
	}
	return nil
}

func (r Record) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Record) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
