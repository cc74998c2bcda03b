// Package sse decodes Server-Sent Events frames from a response body.
//
// The decoder implements the line-oriented SSE framing rules:
//   - lines are split on '\n', a trailing '\r' is stripped
//   - `field: value` lines set the named field on the frame being accumulated
//   - `data` fields accumulate across lines, joined with '\n'
//   - a blank line dispatches the accumulated frame
//   - lines starting with ':' are comments and ignored
//   - unknown field names are ignored
//
// A decoder is bound to a single connection. Once Next returns an error
// (including io.EOF) the decoder is exhausted; create a new decoder for a
// new connection.
package sse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrMalformedLine indicates a non-empty line that is neither a comment
// nor a `field:value` pair. The stream terminates with this error.
var ErrMalformedLine = errors.New("sse: malformed line")

// ErrInvalidUTF8 indicates the byte stream is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("sse: invalid utf-8")

// Event is one dispatched SSE frame.
// Empty ID and Name mean the field was absent.
type Event struct {
	ID    string
	Name  string
	Data  []byte
	Retry string
}

// Decoder reads SSE frames from an io.Reader.
type Decoder struct {
	reader *bufio.Reader

	// frame being accumulated between blank lines
	id      string
	name    string
	data    []string
	retry   string
	pending bool
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: bufio.NewReader(r)}
}

// Next returns the next dispatched frame.
// Returns io.EOF when the connection closes; a partial frame with no
// closing blank line is discarded. Any framing violation terminates the
// stream with an error.
func (d *Decoder) Next() (Event, error) {
	for {
		line, err := d.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF && line != "" {
				// Feed the final unterminated line through the field
				// parser so protocol violations still surface, then
				// discard the partial frame.
				if ferr := d.consumeLine(strings.TrimSuffix(line, "\r")); ferr != nil {
					return Event{}, ferr
				}
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if line == "" {
			if ev, ok := d.dispatch(); ok {
				return ev, nil
			}
			continue
		}

		if err := d.consumeLine(line); err != nil {
			return Event{}, err
		}
	}
}

// consumeLine applies one non-blank line to the frame being accumulated.
func (d *Decoder) consumeLine(line string) error {
	if !utf8.ValidString(line) {
		return ErrInvalidUTF8
	}
	if strings.HasPrefix(line, ":") {
		// comment
		return nil
	}

	field, value, found := strings.Cut(line, ":")
	if !found {
		return fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	// One optional leading space in the value is part of the separator.
	value = strings.TrimPrefix(value, " ")

	switch field {
	case "id":
		d.id = value
		d.pending = true
	case "event":
		d.name = value
		d.pending = true
	case "data":
		d.data = append(d.data, value)
		d.pending = true
	case "retry":
		d.retry = value
		d.pending = true
	default:
		// unknown fields are ignored for forward compatibility
	}
	return nil
}

// dispatch emits the accumulated frame, if any, and resets state.
func (d *Decoder) dispatch() (Event, bool) {
	if !d.pending {
		return Event{}, false
	}
	ev := Event{
		ID:    d.id,
		Name:  d.name,
		Retry: d.retry,
	}
	if len(d.data) > 0 {
		ev.Data = []byte(strings.Join(d.data, "\n"))
	}
	d.id = ""
	d.name = ""
	d.data = nil
	d.retry = ""
	d.pending = false
	return ev, true
}
