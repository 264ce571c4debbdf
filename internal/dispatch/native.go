package dispatch

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Browsers cap a single message sent to the extension at 1 MiB. Incoming
// messages are bounded more loosely to keep a corrupt length from
// allocating without limit.
const (
	MaxOutgoingMessage = 1 << 20
	MaxIncomingMessage = 64 << 20
)

// ReadMessage reads one native messaging frame: a little-endian uint32 length
// followed by that many bytes of JSON. It returns io.EOF at a clean end of input.
func ReadMessage(r io.Reader) ([]byte, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read message length: %w", err)
	}
	if size > MaxIncomingMessage {
		return nil, fmt.Errorf("message of %d bytes exceeds limit", size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read message body: %w", err)
	}
	return buf, nil
}

// WriteMessage encodes v as JSON and writes it as one frame
func WriteMessage(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	if len(data) > MaxOutgoingMessage {
		return fmt.Errorf("message of %d bytes exceeds limit", len(data))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(data))); err != nil {
		return fmt.Errorf("failed to write message length: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	return nil
}

// Serve answers framed requests from r on w until r is exhausted or ctx is done.
// Every request gets exactly one response.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := ReadMessage(in)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		resp := d.HandleJSON(ctx, data)
		if err := WriteMessage(out, resp); err != nil {
			d.log.Error("failed to write response", "error", err)
			if err := WriteMessage(out, fail(err.Error())); err != nil {
				return err
			}
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("failed to flush response: %w", err)
		}
	}
}
