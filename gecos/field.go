package gecos

import "strings"

const (
	// fieldForbidden is everything that is structural in passwd(5).
	fieldForbidden = ",:\n\r"
	// recordForbidden is fieldForbidden minus the sub-field separator.
	recordForbidden = ":\n\r"
	// chfnForbidden follows util-linux chfn, which also refuses these.
	chfnForbidden = fieldForbidden + "=\\\""
)

// Field is a single GECOS sub-field. The zero value is the empty field.
type Field struct {
	value string
}

// NewField validates text and wraps it unmodified. Surrounding whitespace is
// kept and no length limit is applied.
func NewField(text string) (Field, error) {
	if err := check(text, fieldForbidden); err != nil {
		return Field{}, err
	}
	return Field{value: text}, nil
}

// MustField is like NewField but panics on invalid input.
func MustField(text string) Field {
	f, err := NewField(text)
	if err != nil {
		panic(err)
	}
	return f
}

// CheckChfn applies the stricter character set used by chfn(1):
// in addition to the structural characters it rejects '=', '\' and '"'.
func CheckChfn(text string) error {
	return check(text, chfnForbidden)
}

func check(text, forbidden string) error {
	if i := strings.IndexAny(text, forbidden); i >= 0 {
		return &ValidationError{Char: rune(text[i]), Pos: i}
	}
	return nil
}

func (f Field) String() string { return f.value }

func (f Field) IsEmpty() bool { return f.value == "" }

func (f Field) Equal(o Field) bool { return f.value == o.value }

// Compare orders fields by their text, like strings.Compare.
func (f Field) Compare(o Field) int { return strings.Compare(f.value, o.value) }
