package money

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cents    int64
		currency string
		want     string
	}{
		{0, "MUR", "Rs 0"},
		{50000, "MUR", "Rs 500"},
		{150000, "MUR", "Rs 1,500"},
		{100000000, "MUR", "Rs 1,000,000"},
		// Sub-unit remainders are truncated for display.
		{150099, "MUR", "Rs 1,500"},
		// Unknown currencies fall back to the code itself.
		{50000, "EUR", "EUR 500"},
	}

	for _, tt := range tests {
		if got := Format(tt.cents, tt.currency); got != tt.want {
			t.Fatalf("Format(%d, %q) = %q, want %q", tt.cents, tt.currency, got, tt.want)
		}
	}
}
