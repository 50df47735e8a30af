package hpack

import "testing"

func BenchmarkEncode(b *testing.B) {
	fields := []HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/index.html"},
		{Name: ":authority", Value: "www.example.com"},
		{Name: "accept", Value: "text/html,application/xhtml+xml"},
		{Name: "user-agent", Value: "Mozilla/5.0 (compatible)"},
	}

	b.Run("cold", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			enc := NewEncoder(DefaultEncoderConfig())
			enc.Encode(fields)
		}
	})

	b.Run("warm", func(b *testing.B) {
		enc := NewEncoder(DefaultEncoderConfig())
		enc.Encode(fields)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			enc.Encode(fields)
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	enc := NewEncoder(DefaultEncoderConfig())
	fields := []HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/index.html"},
		{Name: ":authority", Value: "www.example.com"},
	}
	block := enc.Encode(fields)

	dec := NewDecoder(DefaultDecoderConfig())
	b.ReportAllocs()
	b.SetBytes(int64(len(block)))
	for i := 0; i < b.N; i++ {
		if _, err := dec.Decode(block); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHuffmanEncode(b *testing.B) {
	const s = "www.example.com"
	b.ReportAllocs()
	b.SetBytes(int64(len(s)))
	for i := 0; i < b.N; i++ {
		HuffmanEncode(s)
	}
}

func BenchmarkHuffmanDecode(b *testing.B) {
	encoded := HuffmanEncode("www.example.com")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := HuffmanDecode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
