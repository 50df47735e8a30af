package hpack

import (
	"errors"
	"testing"
)

func TestCodecErrorIsSentinel(t *testing.T) {
	err := newCodecError(ErrKindTruncated, "test")
	if !errors.Is(err, ErrTruncated) {
		t.Fatal("errors.Is should match the sentinel for the error's kind")
	}
	if errors.Is(err, ErrProtocol) {
		t.Fatal("errors.Is should not match a different kind's sentinel")
	}
}

func TestCodecErrorAs(t *testing.T) {
	var err error = newCodecError(ErrKindIndexOutOfRange, "index 99")
	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As should recover the *CodecError")
	}
	if ce.Kind != ErrKindIndexOutOfRange || ce.Context != "index 99" {
		t.Fatalf("got %+v", ce)
	}
}

func TestErrorKindString(t *testing.T) {
	if ErrKindProtocol.String() != "PROTOCOL_ERROR" {
		t.Fatalf("got %q", ErrKindProtocol.String())
	}
}
