package types

import "testing"

func TestTextKeyLowercasesNonASCII(t *testing.T) {
	k := TextKey("École")
	if k.TextLower != "école" {
		t.Fatalf("TextLower = %q, want %q (non-ASCII letters must lowercase too)", k.TextLower, "école")
	}
	k2 := TextKey("ÄBC")
	if k2.TextLower != "äbc" {
		t.Fatalf("TextLower = %q, want %q", k2.TextLower, "äbc")
	}
}

func TestTextKeyPreservesOriginalText(t *testing.T) {
	k := TextKey("HELLO")
	if k.Text != "HELLO" {
		t.Fatalf("Text = %q, want original casing preserved", k.Text)
	}
	if k.TextLower != "hello" {
		t.Fatalf("TextLower = %q, want %q", k.TextLower, "hello")
	}
}
