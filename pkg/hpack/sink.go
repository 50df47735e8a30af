package hpack

// byteSink is the minimal append-only-buffer surface the encoder needs
// on its output side. github.com/valyala/bytebufferpool's
// *ByteBuffer implements exactly this surface, which is why the
// Encoder is built against the interface rather than *bytes.Buffer
// directly — see encoder.go.
type byteSink interface {
	WriteByte(byte) error
	Write([]byte) (int, error)
	WriteString(string) (int, error)
}
