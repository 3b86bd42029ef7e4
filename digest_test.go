package inputmask

import "testing"

func TestDigest(t *testing.T) {
	a := Digest("9876543210")
	b := Digest("9876543210")
	c := Digest("9876543211")

	if len(a) != digestLen {
		t.Errorf("Digest() length = %d, want %d", len(a), digestLen)
	}
	if a != b {
		t.Error("Digest() should be deterministic")
	}
	if a == c {
		t.Error("Digest() should differ for different values")
	}
	if a == "9876543210" {
		t.Error("Digest() should not expose the value")
	}
	if Digest("") != "" {
		t.Errorf("Digest(\"\") = %q, want empty", Digest(""))
	}
}
