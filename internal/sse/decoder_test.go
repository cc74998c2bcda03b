package sse

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderSingleEvent(t *testing.T) {
	d := NewDecoder(strings.NewReader("id: 1234\nevent: message\ndata: {\"x\":1}\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "1234", ev.ID)
	assert.Equal(t, "message", ev.Name)
	assert.Equal(t, `{"x":1}`, string(ev.Data))

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderMultiLineData(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: line one\ndata: line two\ndata: line three\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\nline three", string(ev.Data))
}

func TestDecoderMultipleEvents(t *testing.T) {
	d := NewDecoder(strings.NewReader("id: 1\ndata: a\n\nid: 2\ndata: b\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", ev.ID)
	assert.Equal(t, "a", string(ev.Data))

	ev, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", ev.ID)
	assert.Equal(t, "b", string(ev.Data))

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderCommentsIgnored(t *testing.T) {
	d := NewDecoder(strings.NewReader(": keepalive\n: another comment\ndata: x\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "x", string(ev.Data))
}

func TestDecoderCRLF(t *testing.T) {
	d := NewDecoder(strings.NewReader("id: 7\r\ndata: payload\r\n\r\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "7", ev.ID)
	assert.Equal(t, "payload", string(ev.Data))
}

func TestDecoderUnknownFieldsIgnored(t *testing.T) {
	d := NewDecoder(strings.NewReader("sequence: 42\ndata: x\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "x", string(ev.Data))
}

func TestDecoderValueSpaceHandling(t *testing.T) {
	// Exactly one leading space belongs to the separator; further
	// whitespace is payload.
	d := NewDecoder(strings.NewReader("data:no space\n\ndata:  extra space\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "no space", string(ev.Data))

	ev, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, " extra space", string(ev.Data))
}

func TestDecoderEmptyFrameNotDispatched(t *testing.T) {
	// Blank lines with nothing accumulated are not frames.
	d := NewDecoder(strings.NewReader("\n\n\ndata: x\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "x", string(ev.Data))
}

func TestDecoderIDOnlyFrame(t *testing.T) {
	d := NewDecoder(strings.NewReader("id: 99\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "99", ev.ID)
	assert.Empty(t, ev.Data)
}

func TestDecoderRetryField(t *testing.T) {
	d := NewDecoder(strings.NewReader("retry: 3000\ndata: x\n\n"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "3000", ev.Retry)
}

func TestDecoderMalformedLine(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: ok\n\nthis is not a field line\n\n"))

	_, err := d.Next()
	require.NoError(t, err)

	_, err = d.Next()
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestDecoderInvalidUTF8(t *testing.T) {
	d := NewDecoder(strings.NewReader("data: \xff\xfe\n\n"))

	_, err := d.Next()
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestDecoderPartialFrameDiscardedAtEOF(t *testing.T) {
	// No closing blank line: the frame was never dispatched by the
	// server, so it must not be surfaced.
	d := NewDecoder(strings.NewReader("id: 1\ndata: complete\n\nid: 2\ndata: partial"))

	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "complete", string(ev.Data))

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderEmptyStream(t *testing.T) {
	d := NewDecoder(strings.NewReader(""))

	_, err := d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderExhaustedAfterError(t *testing.T) {
	d := NewDecoder(strings.NewReader("garbage\n"))

	_, err := d.Next()
	require.ErrorIs(t, err, ErrMalformedLine)

	_, err = d.Next()
	assert.Error(t, err)
}
