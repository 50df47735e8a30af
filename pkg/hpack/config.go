package hpack

// Default table and string limits. DefaultDynamicTableSize matches
// HTTP/2's SETTINGS_HEADER_TABLE_SIZE default (RFC 7540 §6.5.2);
// DefaultMaxStringLength guards against a peer declaring an absurd
// string length.
const (
	DefaultDynamicTableSize = 4096
	DefaultMaxStringLength  = 16 * 1024 * 1024
)

// EncoderConfig configures a new Encoder.
type EncoderConfig struct {
	// MaxDynamicTableSize is the encoder's own ceiling on its dynamic
	// table, set by the local side of the connection.
	MaxDynamicTableSize uint32
	// Huffman controls string representation choice.
	Huffman HuffmanPolicy
}

// DefaultEncoderConfig returns the conventional defaults: a 4096-byte
// dynamic table and Huffman coding only when it shrinks the string.
func DefaultEncoderConfig() EncoderConfig {
	return EncoderConfig{
		MaxDynamicTableSize: DefaultDynamicTableSize,
		Huffman:             HuffmanWhenSmaller,
	}
}

// Validate reports whether the configuration is usable.
func (c EncoderConfig) Validate() error {
	if c.Huffman != HuffmanNever && c.Huffman != HuffmanAlways && c.Huffman != HuffmanWhenSmaller {
		return newCodecError(ErrKindProtocol, "unknown huffman policy")
	}
	return nil
}

// DecoderConfig configures a new Decoder.
type DecoderConfig struct {
	// MaxDynamicTableSize is the decoder's ceiling on its dynamic
	// table, set by the peer's negotiated table size.
	MaxDynamicTableSize uint32
	// MaxStringLength bounds a single decoded string literal,
	// defending against a peer declaring an unreasonable length.
	MaxStringLength int
	// MaxHeaderFields bounds how many fields a single Decode call may
	// yield, defending against a maliciously long header block.
	MaxHeaderFields int
}

// DefaultDecoderConfig returns the conventional defaults.
func DefaultDecoderConfig() DecoderConfig {
	return DecoderConfig{
		MaxDynamicTableSize: DefaultDynamicTableSize,
		MaxStringLength:     DefaultMaxStringLength,
		MaxHeaderFields:     0, // 0 == unbounded
	}
}

func (c DecoderConfig) Validate() error {
	if c.MaxStringLength < 0 {
		return newCodecError(ErrKindProtocol, "negative max string length")
	}
	if c.MaxHeaderFields < 0 {
		return newCodecError(ErrKindProtocol, "negative max header fields")
	}
	return nil
}
