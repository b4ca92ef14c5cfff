package crypto

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+[]{}|;:,.<>/?~-"

	MinLength     = 8
	MaxLength     = 64
	DefaultLength = 16
)

// Class is a character class that can be toggled on a Selection.
type Class uint8

const (
	Upper Class = 1 << iota
	Lower
	Digit
	Symbol
)

// Classes lists every class in canonical order.
var Classes = []Class{Upper, Lower, Digit, Symbol}

// Alphabet returns the fixed character set for c, or "" for an unknown class.
func (c Class) Alphabet() string {
	switch c {
	case Upper:
		return uppercaseChars
	case Lower:
		return lowercaseChars
	case Digit:
		return digitChars
	case Symbol:
		return symbolChars
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case Upper:
		return "uppercase"
	case Lower:
		return "lowercase"
	case Digit:
		return "numbers"
	case Symbol:
		return "symbols"
	default:
		return "unknown"
	}
}

// ParseClass maps a class name (as returned by String) back to a Class.
func ParseClass(name string) (Class, bool) {
	for _, c := range Classes {
		if strings.EqualFold(name, c.String()) {
			return c, true
		}
	}
	return 0, false
}

// ClassSet is an immutable set of enabled classes.
type ClassSet uint8

// NewClassSet builds a set from the given classes.
func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// AllClasses returns a set with every class enabled.
func AllClasses() ClassSet {
	return NewClassSet(Classes...)
}

// Has reports whether c is enabled.
func (s ClassSet) Has(c Class) bool {
	return s&ClassSet(c) != 0
}

// With returns a copy of s with c enabled.
func (s ClassSet) With(c Class) ClassSet {
	return s | ClassSet(c)
}

// Without returns a copy of s with c disabled.
func (s ClassSet) Without(c Class) ClassSet {
	return s &^ ClassSet(c)
}

// Empty reports whether no class is enabled.
func (s ClassSet) Empty() bool {
	return s&ClassSet(Upper|Lower|Digit|Symbol) == 0
}

// Len returns the number of enabled classes.
func (s ClassSet) Len() int {
	n := 0
	for _, c := range Classes {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// List returns the enabled classes in canonical order.
func (s ClassSet) List() []Class {
	list := make([]Class, 0, len(Classes))
	for _, c := range Classes {
		if s.Has(c) {
			list = append(list, c)
		}
	}
	return list
}

// Names returns the enabled class names in canonical order.
func (s ClassSet) Names() []string {
	list := s.List()
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.String()
	}
	return names
}

// Pool concatenates the alphabets of the enabled classes in canonical order.
func (s ClassSet) Pool() string {
	var b strings.Builder
	for _, c := range s.List() {
		b.WriteString(c.Alphabet())
	}
	return b.String()
}

// Selection is the requested length and enabled classes for one generation.
type Selection struct {
	Length  int
	Classes ClassSet
}

// DefaultSelection returns 16 characters with every class enabled.
func DefaultSelection() Selection {
	return Selection{
		Length:  DefaultLength,
		Classes: AllClasses(),
	}
}

// Clamp bounds n to [MinLength, MaxLength].
func Clamp(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}
