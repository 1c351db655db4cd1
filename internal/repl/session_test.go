package repl

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/calc/internal/calc"
)

func TestSessionHandle(t *testing.T) {
	testCases := []struct {
		line  string
		reply Reply
	}{
		{"", Reply{}},
		{"   ", Reply{}},
		{"a = 1 + 2 * 3", Reply{Text: "a = 7"}},
		{"b = a - 10", Reply{Text: "b = -3"}},
		{"a = a + 1", Reply{Text: "a = 8"}},
		{"", Reply{Text: "a = 9"}},
		{"\t", Reply{Text: "a = 10"}},
		{"c = -7 / 2", Reply{Text: "c = -4"}},
		{"!h", Reply{Text: HelpText, Info: true}},
		{"", Reply{Text: HelpText, Info: true}},
		{"!x", Reply{Text: "unknown command: !x", Info: true}},
		{" !q ", Reply{Quit: true}},
	}

	assert := assert.New(t)
	session := NewSession()
	for _, tc := range testCases {
		assert.Equal(tc.reply, session.Handle(tc.line), "%q", tc.line)
	}
	assert.Equal([]string{"a", "b", "c"}, session.Environment().Names())
}

func TestSessionErrorsDoNotEndTheSession(t *testing.T) {
	testCases := []struct {
		line string
		text string
		err  interface{}
	}{
		{"a = b + 1", "NameError: name 'b' is not defined", &calc.NameError{}},
		{"a = 1 / 0", "ArithmeticError: division by zero", &calc.ArithmeticError{}},
		{"a = ", "SyntaxError: expected int, id, or '(', got end of input", &calc.SyntaxError{}},
		{"a = 1 b = 2", "SyntaxError: expected end of input, got 'b'", &calc.SyntaxError{}},
		{"a = 1 ?", "LexError: unexpected character '?' at position 6", &calc.LexError{}},
	}

	assert := assert.New(t)
	session := NewSession()
	for _, tc := range testCases {
		reply := session.Handle(tc.line)
		assert.Equal(tc.text, reply.Text, tc.line)
		assert.False(reply.Quit, tc.line)
		assert.IsType(tc.err, reply.Err, tc.line)
	}
	assert.Zero(session.Environment().Len())

	reply := session.Handle("a = 2")
	assert.NoError(reply.Err)
	assert.Equal("a = 2", reply.Text)
}

func TestSessionRepeatsFailedLine(t *testing.T) {
	session := NewSession()

	first := session.Handle("x = y")
	var nameErr *calc.NameError
	require.True(t, errors.As(first.Err, &nameErr))

	session.Handle("y = 5")
	assert.Equal(t, "y = 5", session.Handle("").Text)
}

func TestSessionID(t *testing.T) {
	a, b := NewSession(), NewSession()

	_, err := uuid.Parse(a.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStylesRender(t *testing.T) {
	assert := assert.New(t)

	plain := PlainStyles()
	assert.Equal("a = 1", plain.Render(Reply{Text: "a = 1"}))
	assert.Equal(HelpText, plain.Render(Reply{Text: HelpText, Info: true}))

	styled := DefaultStyles()
	for _, reply := range []Reply{
		{Text: "a = 1"},
		{Text: "unknown command: !x", Info: true},
		{Text: "NameError: name 'b' is not defined", Err: errors.New("x")},
	} {
		assert.Contains(styled.Render(reply), reply.Text)
	}
}
