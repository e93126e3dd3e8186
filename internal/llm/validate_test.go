package llm

import "testing"

func TestInvoiceSchema(t *testing.T) {
	v, err := NewSchemaValidator(BuildInvoiceJSONSchema())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	valid := `{
		"invoiceNumber": 1042,
		"invoiceDate": "2024-03-01",
		"dueDate": null,
		"vendor": {"name": "Acme", "fax": null},
		"customer": null,
		"lineItems": [{"itemNumber": "A1", "description": "Widget", "quantity": 1.5, "unitPrice": 50, "lineTotal": 100}],
		"totals": {"subtotal": 100, "tax": 8, "total": 108, "other": null}
	}`
	if err := v.Validate([]byte(valid)); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}

	bad := []string{
		`{"totals": {"total": 1}}`,
		`{"lineItems": [], "totals": {"total": "108"}}`,
		`{"lineItems": [{"quantity": "two"}], "totals": {}}`,
		`not json`,
	}
	for _, doc := range bad {
		if err := v.Validate([]byte(doc)); err == nil {
			t.Fatalf("expected validation error for %s", doc)
		}
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []string{"a"},
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(`{}`)); err == nil {
		t.Fatalf("expected missing property error")
	}
}
