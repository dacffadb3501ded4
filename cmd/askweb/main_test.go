package main

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))

	long := strings.Repeat("x", 20)
	got := preview(long, 10)
	assert.Equal(t, strings.Repeat("x", 10)+"...", got)
}

func TestPrompt(t *testing.T) {
	a := &app{stdin: bufio.NewReader(strings.NewReader("  y  \n"))}
	assert.Equal(t, "y", a.prompt("continue? "))

	// EOF without newline still returns what was typed.
	a = &app{stdin: bufio.NewReader(strings.NewReader("partial"))}
	assert.Equal(t, "partial", a.prompt("q: "))
}
