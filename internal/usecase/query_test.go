package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "PASTA", "pasta"},
		{"trims whitespace", "  pasta  ", "pasta"},
		{"both", "  Pasta Carbonara\t", "pasta carbonara"},
		{"inner whitespace kept", "chicken  soup", "chicken  soup"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuery(tt.input))
		})
	}
}

func TestQueryHash(t *testing.T) {
	// Known sha256 of "pasta"
	assert.Equal(t,
		"a4c18ee0ada59e343691ef4ddc0e502b86679f2eaa6a5576a0ec3c9ea0658e36",
		QueryHash("pasta"))

	// Same normalized form, same key
	assert.Equal(t, QueryHash(NormalizeQuery("PASTA ")), QueryHash(NormalizeQuery(" pasta")))

	// Hex encoded sha256 is 64 chars
	assert.Len(t, QueryHash(""), 64)
}
