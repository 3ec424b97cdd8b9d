package taxid

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "masked valid", in: "111.444.777-35", want: true},
		{name: "raw valid", in: "11144477735", want: true},
		{name: "another valid", in: "529.982.247-25", want: true},
		{name: "valid with zero check digits", in: "987.654.321-00", want: true},
		{name: "valid with leading zero", in: "012.345.678-90", want: true},
		{name: "valid with noise", in: " cpf 123.456.789-09 ", want: true},
		{name: "repeated ones", in: "111.111.111-11", want: false},
		{name: "repeated zeros", in: "00000000000", want: false},
		{name: "wrong check digits", in: "123.456.789-00", want: false},
		{name: "wrong second check digit", in: "111.444.777-36", want: false},
		{name: "wrong first check digit", in: "111.444.777-45", want: false},
		{name: "letters", in: "abc", want: false},
		{name: "empty", in: "", want: false},
		{name: "too short", in: "111.444.777-3", want: false},
		{name: "too long", in: "111.444.777-350", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.in))
		})
	}
}

func TestCheck_Reasons(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{in: "", wantErr: ErrLength},
		{in: "1234567890", wantErr: ErrLength},
		{in: "123456789012", wantErr: ErrLength},
		{in: "222.222.222-22", wantErr: ErrRepeatedDigits},
		{in: "123.456.789-00", wantErr: ErrCheckDigit},
		{in: "111.444.777-35", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Check(tt.in)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheck_RepeatedDigitsRejectedDespiteChecksum(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		d := strings.Repeat(string(c), Length)

		// The arithmetic alone accepts every all-same sequence.
		dv, err := CheckDigits(d[:9])
		require.NoError(t, err)
		require.Equal(t, d[9:], dv, "checksum for %s", d)

		require.ErrorIs(t, Check(d), ErrRepeatedDigits)
		require.False(t, IsValid(Mask(d)))
	}
}

func TestCheckDigits(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{base: "111444777", want: "35"},
		{base: "529982247", want: "25"},
		{base: "123456789", want: "09"},
		{base: "987654321", want: "00"},
		{base: "000000001", want: "91"},
		{base: "100000000", want: "19"},
		{base: "111.444.777", want: "35"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got, err := CheckDigits(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValid(tt.base+got))
		})
	}

	_, err := CheckDigits("12345678")
	require.ErrorIs(t, err, ErrLength)
	_, err = CheckDigits("1234567890")
	require.ErrorIs(t, err, ErrLength)
}

func TestIsValid_SingleDigitCorruptionDetected(t *testing.T) {
	const valid = "52998224725"
	require.True(t, IsValid(valid))

	for i := 0; i < len(valid); i++ {
		orig := valid[i]
		for c := byte('0'); c <= '9'; c++ {
			if c == orig {
				continue
			}
			b := []byte(valid)
			b[i] = c
			assert.False(t, IsValid(string(b)), fmt.Sprintf("corrupted %s must be rejected", b))
		}
	}
}
