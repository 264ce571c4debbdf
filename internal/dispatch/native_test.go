package dispatch

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"testing"
)

func TestMessageFraming(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMessage(&buf, map[string]string{"action": "getStats"}); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	raw := buf.Bytes()
	if got := binary.LittleEndian.Uint32(raw[:4]); int(got) != len(raw)-4 {
		t.Fatalf("length prefix %d, body %d", got, len(raw)-4)
	}

	data, err := ReadMessage(&buf)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if string(data) != `{"action":"getStats"}` {
		t.Fatalf("data = %s", data)
	}
	if _, err := ReadMessage(&buf); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestReadMessageTruncated(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(10))
	buf.WriteString("abc")
	if _, err := ReadMessage(&buf); err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("expected a truncation error, got %v", err)
	}
}

func TestReadMessageTooLarge(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(MaxIncomingMessage+1))
	if _, err := ReadMessage(&buf); err == nil {
		t.Fatalf("expected size error")
	}
}

func TestServe(t *testing.T) {
	h := newHarness(t, nil)

	var in bytes.Buffer
	for _, req := range []string{
		`{"action":"saveWord","word":"placid"}`,
		`{"action":"getWords"}`,
		`{"action":"teleport"}`,
	} {
		_ = binary.Write(&in, binary.LittleEndian, uint32(len(req)))
		in.WriteString(req)
	}

	var out bytes.Buffer
	if err := h.d.Serve(context.Background(), &in, &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	var responses []Response
	for {
		data, err := ReadMessage(&out)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadMessage: %v", err)
		}
		var resp Response
		if err := json.Unmarshal(data, &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		responses = append(responses, resp)
	}

	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3", len(responses))
	}
	if !responses[0].Success || len(responses[1].Words) != 1 || responses[2].Error != MsgUnknownAction {
		t.Fatalf("responses = %+v", responses)
	}
}
