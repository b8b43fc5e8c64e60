package shared

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestPinHints(t *testing.T) {
	out := PinHints("a\nb", "hint", 5)
	assert.Equal(t, []string{"a", "b", "", "", "hint"}, strings.Split(out, "\n"))

	// overflowing content is cut, hints survive
	out = PinHints("1\n2\n3\n4", "h", 3)
	assert.Equal(t, []string{"1", "2", "h"}, strings.Split(out, "\n"))

	out = PinHints("", "", 2)
	assert.Equal(t, "\n", out)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		n, cursor, height int
		start, end        int
	}{
		{n: 3, cursor: 0, height: 10, start: 0, end: 3},
		{n: 20, cursor: 0, height: 5, start: 0, end: 5},
		{n: 20, cursor: 10, height: 5, start: 8, end: 13},
		{n: 20, cursor: 19, height: 5, start: 15, end: 20},
		{n: 5, cursor: 2, height: 0, start: 0, end: 5},
	}
	for _, tt := range tests {
		start, end := Window(tt.n, tt.cursor, tt.height)
		assert.Equal(t, tt.start, start, "%+v", tt)
		assert.Equal(t, tt.end, end, "%+v", tt)
	}
}

func TestShortHelpSkipsDisabled(t *testing.T) {
	a := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	b := key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bye"))
	b.SetEnabled(false)

	assert.Equal(t, "a:add", ShortHelp(a, b))
}
