package digits

import "testing"

func TestOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "letters only", in: "abc", want: ""},
		{name: "masked tax id", in: "111.444.777-35", want: "11144477735"},
		{name: "masked postal code", in: "01310-930", want: "01310930"},
		{name: "whitespace and symbols", in: " 1 2\t3/4 ", want: "1234"},
		{name: "arabic-indic digits dropped", in: "1٢3", want: "13"},
		{name: "fullwidth digits dropped", in: "１2", want: "2"},
		{name: "leading zeros kept", in: "000", want: "000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Only(tt.in); got != tt.want {
				t.Fatalf("Only(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "zero", in: "123", n: 0, want: ""},
		{name: "negative", in: "123", n: -1, want: ""},
		{name: "fewer digits than n", in: "1a2", n: 5, want: "12"},
		{name: "caps at n", in: "1234567890123", n: 11, want: "12345678901"},
		{name: "skips separators before cap", in: "12.34.56", n: 4, want: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Take(tt.in, tt.n); got != tt.want {
				t.Fatalf("Take(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestAllSame(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "", want: false},
		{in: "7", want: true},
		{in: "00000000000", want: true},
		{in: "99999999999", want: true},
		{in: "11111111112", want: false},
		{in: "21111111111", want: false},
	}

	for _, tt := range tests {
		if got := AllSame(tt.in); got != tt.want {
			t.Fatalf("AllSame(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := c >= '0' && c <= '9'
		if got := IsDigit(byte(c)); got != want {
			t.Fatalf("IsDigit(%q) = %v, want %v", rune(c), got, want)
		}
	}
}
