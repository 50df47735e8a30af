package hpack

// HuffmanPolicy controls how the encoder chooses between the raw and
// Huffman-coded string representations.
type HuffmanPolicy uint8

const (
	// HuffmanWhenSmaller codes with Huffman only if doing so is
	// strictly shorter than the raw octets. This is the package default.
	HuffmanWhenSmaller HuffmanPolicy = iota
	// HuffmanNever always emits the raw octet form.
	HuffmanNever
	// HuffmanAlways always Huffman-codes, even if it would be longer.
	// Useful for deterministic test fixtures and RFC conformance
	// vectors.
	HuffmanAlways
)

// encodeString writes s as a length-prefixed octet string, choosing
// the representation per policy.
func encodeString(dst byteSink, s string, policy HuffmanPolicy) {
	if policy != HuffmanNever && len(s) > 0 {
		huffmanLen := HuffmanEncodeLen(s)
		if policy == HuffmanAlways || huffmanLen < len(s) {
			encoded := HuffmanEncode(s)
			encodeInteger(dst, uint32(len(encoded)), 7, 0x80)
			dst.Write(encoded)
			return
		}
	}

	encodeInteger(dst, uint32(len(s)), 7, 0x00)
	dst.WriteString(s)
}

// decodeString reads a length-prefixed octet string, failing with
// ErrKindTruncated if the declared length exceeds the remaining input
// or maxLen is exceeded — a defense against memory exhaustion from a
// peer declaring an absurd length.
func decodeString(r *reader, maxLen int) (string, error) {
	first, err := r.peekByte()
	if err != nil {
		return "", newCodecError(ErrKindTruncated, "string prefix")
	}
	huffman := first&0x80 != 0

	length, _, err := decodeInteger(r, 7)
	if err != nil {
		return "", err
	}

	if maxLen > 0 && int(length) > maxLen {
		return "", newCodecError(ErrKindTruncated, "declared string length exceeds maximum")
	}

	raw, ok := r.take(int(length))
	if !ok {
		return "", newCodecError(ErrKindTruncated, "string data")
	}

	if !huffman {
		return string(raw), nil
	}
	return HuffmanDecode(raw)
}
