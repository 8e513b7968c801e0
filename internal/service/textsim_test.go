package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markup digits link", "<p>Belajar 101 Go di https://example.com/go!</p>", "belajar go"},
		{"stopwords", "Kelas ini untuk pemula yang ingin belajar", "kelas pemula belajar"},
		{"punctuation", "API, REST & gRPC.", "api rest grpc"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestTFIDFCosine(t *testing.T) {
	assert.InDelta(t, 1.0, TFIDFCosine("golang rest api", "golang rest api"), 1e-9)
	assert.InDelta(t, 0.0, TFIDFCosine("golang rest api", "desain grafis"), 1e-9)
	assert.Zero(t, TFIDFCosine("", "golang"))
	// single letters are not tokens
	assert.Zero(t, TFIDFCosine("a b c", "a b c"))

	partial := TFIDFCosine("backend developer golang", "backend engineer java")
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
}
