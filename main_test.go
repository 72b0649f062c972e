package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptIfEmpty(t *testing.T) {
	t.Run("returns flag value without prompting", func(t *testing.T) {
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader(""))

		value, err := promptIfEmpty(reader, &out, "username", "display1")

		require.NoError(t, err)
		assert.Equal(t, "display1", value)
		assert.Empty(t, out.String())
	})

	t.Run("prompts and reads when value is empty", func(t *testing.T) {
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader("display1\n"))

		value, err := promptIfEmpty(reader, &out, "username", "")

		require.NoError(t, err)
		assert.Equal(t, "display1", value)
		assert.Contains(t, out.String(), "Please insert a username")
	})

	t.Run("accepts a final line without newline", func(t *testing.T) {
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader("A-101"))

		value, err := promptIfEmpty(reader, &out, "room", "")

		require.NoError(t, err)
		assert.Equal(t, "A-101", value)
	})

	t.Run("fails on empty input stream", func(t *testing.T) {
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader(""))

		_, err := promptIfEmpty(reader, &out, "password", "")

		assert.Error(t, err)
	})
}
