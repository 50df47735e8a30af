package hpack

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeIntegerRFCExample(t *testing.T) {
	// RFC 7541 §C.1.1: 1337 encoded with a 5-bit prefix is 31, 154, 10.
	var buf bytes.Buffer
	n := encodeInteger(&buf, 1337, 5, 0xe0)
	if n != 3 {
		t.Fatalf("wrote %d octets, want 3", n)
	}
	want := []byte{0xe0 | 31, 154, 10}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}

	var r reader
	r.reset(buf.Bytes())
	got, padding, err := decodeInteger(&r, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1337 {
		t.Fatalf("decoded %d, want 1337", got)
	}
	if padding != 0xe0 {
		t.Fatalf("padding = %#x, want 0xe0", padding)
	}
}

func TestEncodeDecodeIntegerRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 14, 15, 16, 126, 127, 128, 1337, 65535, 65536, 1 << 20, 1<<32 - 1}
	for _, n := range []uint8{1, 4, 5, 6, 7, 8} {
		for _, v := range values {
			var buf bytes.Buffer
			encodeInteger(&buf, v, n, 0)
			var r reader
			r.reset(buf.Bytes())
			got, _, err := decodeInteger(&r, n)
			if err != nil {
				t.Fatalf("n=%d value=%d: %v", n, v, err)
			}
			if got != v {
				t.Fatalf("n=%d value=%d: got %d", n, v, got)
			}
		}
	}
}

func TestDecodeIntegerTruncated(t *testing.T) {
	var r reader
	r.reset(nil)
	if _, _, err := decodeInteger(&r, 5); !isKind(err, ErrKindTruncated) {
		t.Fatalf("got %v, want ErrKindTruncated", err)
	}

	var r2 reader
	r2.reset([]byte{0xff}) // prefix maxed out, continuation missing
	if _, _, err := decodeInteger(&r2, 5); !isKind(err, ErrKindIntegerOverflow) {
		t.Fatalf("got %v, want ErrKindIntegerOverflow", err)
	}
}

func TestDecodeIntegerOverflow(t *testing.T) {
	// A continuation sequence long enough to overflow 32 bits.
	data := []byte{0x1f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	var r reader
	r.reset(data)
	if _, _, err := decodeInteger(&r, 5); !isKind(err, ErrKindIntegerOverflow) {
		t.Fatalf("got %v, want ErrKindIntegerOverflow", err)
	}
}

func isKind(err error, kind ErrorKind) bool {
	ce, ok := err.(*CodecError)
	return ok && ce.Kind == kind
}
