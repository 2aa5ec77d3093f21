package redis

import "testing"

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := generateCode(otpDigits)
		if err != nil {
			t.Fatalf("generateCode failed: %v", err)
		}
		if len(code) != otpDigits {
			t.Fatalf("expected %d digits, got %q", otpDigits, code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in code %q", code)
			}
		}
		seen[code] = struct{}{}
	}
	// 50 draws from a million values colliding down to a handful would
	// indicate a broken generator.
	if len(seen) < 40 {
		t.Fatalf("suspiciously many duplicate codes: %d unique of 50", len(seen))
	}
}
