package llm

import (
	"encoding/json"
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json tag", "```json\n{\"invoiceNumber\":\"X\"}\n```", `{"invoiceNumber":"X"}`},
		{"no tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"inline", "```{\"a\":1}```", `{"a":1}`},
		{"tag without newline", "```json {\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  \n```JSON\n[1,2]\n```\n ", `[1,2]`},
		{"unfenced", "  {\"a\":1}\n", `{"a":1}`},
		{"only opening fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty fence", "```json\n```", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Fatalf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeContent(t *testing.T) {
	raw, err := DecodeContent("```json\n{\"invoiceNumber\":\"X\"}\n```")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != 1 || m["invoiceNumber"] != "X" {
		t.Fatalf("unexpected object: %v", m)
	}

	if _, err := DecodeContent("Sorry, I cannot read this invoice."); err == nil {
		t.Fatalf("expected error for prose reply")
	}
	if _, err := DecodeContent("```json\n```"); err == nil {
		t.Fatalf("expected error for empty fence")
	}
}
