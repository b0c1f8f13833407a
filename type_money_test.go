package recipes

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(5), "$5.00"},
		{USD(1.425), "$1.42"},
		{USD(1.435), "$1.44"},
		{USD(0.125), "$0.12"},
		{USD(0.004), "$0.00"},
		{M(D("1234.5"), "USD"), "$1,234.50"},
		// beyond int64 cents.
		{M(D("1e20"), "USD"), "100000000000000000000.00 USD"},
		{M(D("-1e20"), "USD"), "-100000000000000000000.00 USD"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5", "5"},
		{"1.425", "1.42"},
		{"1.435", "1.44"},
		{"3.3333333", "3.33"},
		{"2.126", "2.13"},
	}
	for _, tt := range tests {
		if got := M(D(tt.in), "USD").Round(2); !got.Decimal().Equal(D(tt.want)) {
			t.Errorf("Round(%s) = %v, want %s", tt.in, got.Decimal(), tt.want)
		}
	}
}

func TestQuantity_Truncate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"4", "4"},
		{"2.9", "2"},
		{"0.5", "0"},
		{"1e1", "10"},
		{"18446744073709551617.9", "18446744073709551617"},
	}
	for _, tt := range tests {
		if got := Q(D(tt.in)).Truncate().String(); got != tt.want {
			t.Errorf("Q(%s).Truncate() = %s, want %s", tt.in, got, tt.want)
		}
	}
}
