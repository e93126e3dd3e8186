package llm

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestReadAsDataURL(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	p := writeFile(t, "scan.PNG", data)

	u, mt, err := ReadAsDataURL(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if mt != "image/png" {
		t.Fatalf("mime = %q", mt)
	}
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	if u != want {
		t.Fatalf("data url = %q, want %q", u, want)
	}

	if _, _, err := ReadAsDataURL(filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFileContentPart(t *testing.T) {
	img := writeFile(t, "invoice.jpg", []byte("jpeg-bytes"))
	part, err := FileContentPart(img)
	if err != nil {
		t.Fatalf("image part: %v", err)
	}
	if part["type"] != "image_url" {
		t.Fatalf("image part type = %v", part["type"])
	}
	url := part["image_url"].(map[string]any)["url"].(string)
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Fatalf("image url = %q", url)
	}

	pdf := writeFile(t, "invoice.pdf", []byte("%PDF-1.4"))
	part, err = FileContentPart(pdf)
	if err != nil {
		t.Fatalf("pdf part: %v", err)
	}
	if part["type"] != "file" {
		t.Fatalf("pdf part type = %v", part["type"])
	}
	file := part["file"].(map[string]any)
	if file["filename"] != "invoice.pdf" {
		t.Fatalf("filename = %v", file["filename"])
	}
	if !strings.HasPrefix(file["file_data"].(string), "data:application/pdf;base64,") {
		t.Fatalf("file_data = %v", file["file_data"])
	}
}
