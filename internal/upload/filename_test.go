package upload

import "testing"

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"invoice.png", "invoice.png"},
		{"My Invoice 2024.PDF", "My_Invoice_2024.PDF"},
		{"../../etc/passwd", "etc_passwd"},
		{`C:\Users\bob\scan.jpg`, "C_Users_bob_scan.jpg"},
		{"façade résumé.jpeg", "facade_resume.jpeg"},
		{"  .hidden.png  ", "hidden.png"},
		{"a$b%c.png", "abc.png"},
		{"日本語", ""},
		{"...", ""},
	}
	for _, tt := range tests {
		if got := SecureFilename(tt.in); got != tt.want {
			t.Errorf("SecureFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueNameFallsBackOnEmptySecureName(t *testing.T) {
	got := uniqueName("日本語.png")
	// uuid (36) + "_" + "png"
	if len(got) != 36+1+len("png") {
		t.Fatalf("unexpected unique name %q", got)
	}
	got = uniqueName("請求書")
	if len(got) <= 37 || got[37:] != "upload." {
		t.Fatalf("expected upload. fallback, got %q", got)
	}
}
