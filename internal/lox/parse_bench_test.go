package lox

import (
	"strings"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	src := strings.Repeat(sampleProgram, 64)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	src := strings.Repeat(sampleProgram, 64)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		Tokenize(src)
	}
}
