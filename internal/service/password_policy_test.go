package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"empty", "", msgPasswordTooShort},
		{"short with uppercase", "Abc1234", msgPasswordTooShort},
		{"length checked before case", "abc", msgPasswordTooShort},
		{"long without uppercase", "abcdefgh", msgPasswordNoUppercase},
		{"non ascii uppercase does not count", "ábcdéfgÉ", msgPasswordNoUppercase},
		{"exactly eight with uppercase", "Abcdefgh", ""},
		{"uppercase at end", "abcdefgH", ""},
		{"multibyte runes count once", "Äbcdéfgh", msgPasswordNoUppercase},
		{"seven runes many bytes", "Aéééééé", msgPasswordTooShort},
		{"long", "Correct horse battery staple", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.want)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestValidatePasswordProperty(t *testing.T) {
	alphabet := []string{"a", "B", "1", "z", "Q", " ", "é"}
	// every combination up to length 9 of a small alphabet
	var walk func(prefix string, depth int)
	walk = func(prefix string, depth int) {
		want := len([]rune(prefix)) >= 8 && strings.ContainsAny(prefix, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		if got := ValidatePassword(prefix) == nil; got != want {
			t.Fatalf("ValidatePassword(%q) ok=%v, want %v", prefix, got, want)
		}
		if depth == 0 {
			return
		}
		for _, a := range alphabet[:3] {
			walk(prefix+a, depth-1)
		}
	}
	walk("", 9)

	for _, a := range alphabet {
		p := strings.Repeat(a, 8)
		want := strings.ContainsAny(p, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		assert.Equal(t, want, ValidatePassword(p) == nil, p)
	}
}
