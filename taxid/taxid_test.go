package taxid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/brinput/digits"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "letters only", in: "abc", want: ""},
		{name: "three digits no dot", in: "111", want: "111"},
		{name: "fourth digit adds dot", in: "1114", want: "111.4"},
		{name: "six digits", in: "111444", want: "111.444"},
		{name: "seventh digit adds second dot", in: "1114447", want: "111.444.7"},
		{name: "nine digits", in: "111444777", want: "111.444.777"},
		{name: "tenth digit adds hyphen", in: "1114447773", want: "111.444.777-3"},
		{name: "complete", in: "11144477735", want: "111.444.777-35"},
		{name: "already masked", in: "111.444.777-35", want: "111.444.777-35"},
		{name: "extra digits truncated", in: "1114447773599", want: "111.444.777-35"},
		{name: "odd punctuation", in: "111 444/777_35", want: "111.444.777-35"},
		{name: "separator typed early", in: "11.1", want: "111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.in))
		})
	}
}

func TestMask_Properties(t *testing.T) {
	inputs := []string{
		"", "x", "1", "123", "1234", "123456789", "12345678901", "123456789012345",
		"...---", "1.2.3.4.5.6.7.8.9.0.1.2", "cpf: 529.982.247-25!", "１２３",
		"111.444.777-35", "111.444.777-3", "a1b2c3d4e5f6g7h8i9j0k1l2",
	}

	for _, in := range inputs {
		got := Mask(in)

		require.LessOrEqual(t, len(got), MaskedLength, "Mask(%q) = %q", in, got)
		require.Equal(t, digits.Take(in, Length), digits.Only(got), "digits must survive masking for %q", in)
		require.Equal(t, got, Mask(got), "mask must be idempotent for %q", in)
	}
}

func TestRedact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "abc", want: ""},
		{in: "1", want: "1"},
		{in: "1114", want: "***.4"},
		{in: "11144", want: "*11.44"},
		{in: "11144477735", want: "***.***.*77-35"},
		{in: "111.444.777-35", want: "***.***.*77-35"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Redact(tt.in))
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "11144477735", Digits("111.444.777-35"))
	assert.Equal(t, "11144477735", Digits("111444777359999"))
	assert.Equal(t, "", Digits("---"))
	assert.False(t, strings.ContainsAny(Digits("1.2-3"), ".-"))
}
