package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPromptLine_StopsAtLFOrCR(t *testing.T) {
	in := strings.NewReader("start\rend\nlast")

	got, err := readPromptLine(in)
	require.NoError(t, err)
	assert.Equal(t, "start", got)

	got, err = readPromptLine(in)
	require.NoError(t, err)
	assert.Equal(t, "end", got)

	got, err = readPromptLine(in)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = readPromptLine(in)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPromptLine_NilReader(t *testing.T) {
	_, err := readPromptLine(nil)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer
	got, err := promptLine(strings.NewReader("  1B  \n"), &out, "part? ")
	require.NoError(t, err)
	assert.Equal(t, "1B", got)
	assert.Equal(t, "part? ", out.String())

	_, err = promptLine(strings.NewReader(""), &out, "part? ")
	assert.ErrorIs(t, err, errInputClosed)
}

func TestWaitForWord_RemindsUntilMatch(t *testing.T) {
	var out bytes.Buffer
	err := waitForWord(strings.NewReader("go\r\n\nSTART\n"), &out, "start")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out.String(), "Waiting for 'start'..."))
}

func TestWaitForWord_EOF(t *testing.T) {
	var out bytes.Buffer
	err := waitForWord(strings.NewReader("nope\n"), &out, "end")
	assert.ErrorIs(t, err, errInputClosed)
	assert.Contains(t, err.Error(), `"end"`)
}
