package upload

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/llm"
)

// fakeExtractor records what it saw and answers with out or err.
type fakeExtractor struct {
	out     json.RawMessage
	err     error
	path    string
	content string
	calls   int
}

func (f *fakeExtractor) ExtractInvoice(_ context.Context, path string) (json.RawMessage, error) {
	f.calls++
	f.path = path
	b, _ := os.ReadFile(path)
	f.content = string(b)
	return f.out, f.err
}

func newTestService(t *testing.T, ex llm.InvoiceExtractor) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir(), ex, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	return len(entries)
}

func TestProcessSuccessRemovesFile(t *testing.T) {
	ex := &fakeExtractor{out: json.RawMessage(`{"invoiceNumber":"X"}`)}
	svc := newTestService(t, ex)

	res, err := svc.Process(context.Background(), "My Scan.PNG", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if string(res.Data) != `{"invoiceNumber":"X"}` {
		t.Fatalf("data = %s", res.Data)
	}
	if !strings.HasSuffix(res.Filename, "_My_Scan.PNG") {
		t.Fatalf("filename = %q", res.Filename)
	}
	if ex.calls != 1 || ex.content != "png-bytes" {
		t.Fatalf("extractor saw %d calls, content %q", ex.calls, ex.content)
	}
	if filepath.Dir(ex.path) != svc.Dir() {
		t.Fatalf("file saved outside upload dir: %s", ex.path)
	}
	if n := dirEntries(t, svc.Dir()); n != 0 {
		t.Fatalf("expected upload dir to be empty, %d entries", n)
	}
}

func TestProcessFailureRemovesFile(t *testing.T) {
	ex := &fakeExtractor{err: llm.ErrNotConfigured}
	svc := newTestService(t, ex)

	_, err := svc.Process(context.Background(), "invoice.pdf", strings.NewReader("%PDF-1.4"))
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if n := dirEntries(t, svc.Dir()); n != 0 {
		t.Fatalf("expected upload dir to be empty, %d entries", n)
	}
}

func TestProcessRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", MsgNoFileName},
		{"notes.txt", MsgInvalidFormat},
		{"pdf", MsgInvalidFormat},
		{"archive.pdf.zip", MsgInvalidFormat},
	}
	for _, tt := range tests {
		ex := &fakeExtractor{}
		svc := newTestService(t, ex)
		_, err := svc.Process(context.Background(), tt.name, strings.NewReader("x"))
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Fatalf("%q: expected invalid input, got %v", tt.name, err)
		}
		if err.Error() != tt.want {
			t.Fatalf("%q: message = %q, want %q", tt.name, err.Error(), tt.want)
		}
		if ex.calls != 0 {
			t.Fatalf("%q: extractor must not be called", tt.name)
		}
		if n := dirEntries(t, svc.Dir()); n != 0 {
			t.Fatalf("%q: nothing should be written, %d entries", tt.name, n)
		}
	}
}

func TestResolveDirFallsBack(t *testing.T) {
	// a regular file where the directory should go
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	dir, err := ResolveDir(filepath.Join(blocker, "uploads"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dir != os.TempDir() {
		t.Fatalf("expected fallback to %s, got %s", os.TempDir(), dir)
	}
}

func TestNewServiceRequiresExtractor(t *testing.T) {
	if _, err := NewService(t.TempDir(), nil, nil); err == nil {
		t.Fatalf("expected error without extractor")
	}
}
