package token

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase. Tokens are plain values and can be
// compared with ==.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// New creates a new token
func New(kind Kind, text string, offset int) Token {
	return Token{kind, text, offset}
}

// EOFAt creates the end-of-input marker for a source of the given length.
func EOFAt(offset int) Token {
	return Token{EOF, "", offset}
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF@%d", t.Offset)
	}
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Offset)
}

// Is reports whether the token has the given kind and, when text is not
// empty, the given text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && (text == "" || t.Text == text)
}

// Kind is the lexical category of a token
type Kind uint

const (
	// EOF marks the end of the input, it is not a lexical unit
	EOF Kind = iota

	Int
	Id
	Op
	Assign
	Paren
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Int:
		return "Int"
	case Id:
		return "Id"
	case Op:
		return "Op"
	case Assign:
		return "Assign"
	case Paren:
		return "Paren"
	}
	return fmt.Sprintf("Kind(%d)", uint(k))
}
