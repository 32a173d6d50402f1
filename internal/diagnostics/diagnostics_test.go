package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ensargok/numerix/internal/parser"
)

func TestFormatOnOKStatusIsEmpty(t *testing.T) {
	assert.Equal(t, "", Format("x+1", parser.Status{Code: parser.StatusOK}))
}

func TestMessageForEachStatusCode(t *testing.T) {
	assert.Equal(t, "unexpected character", Message(parser.Status{Code: parser.StatusUnexpectedCharacter}))
	assert.Equal(t, "expected ')'", Message(parser.Status{Code: parser.StatusExpectedCharacter, Expected: ')'}))
}

func TestFormatIncludesSourceAndPosition(t *testing.T) {
	_, status := parser.Parse("sin(x")
	out := Format("sin(x", status)
	assert.True(t, strings.Contains(out, "sin(x"))
	assert.True(t, strings.Contains(out, "input:1:"))
}
