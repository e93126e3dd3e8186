package llm

// BuildInvoiceJSONSchema returns the invoice shape from InvoicePrompt as a
// JSON-Schema map. It is only enforced in strict mode; nullable fields mirror
// what the model is allowed to leave blank.
func BuildInvoiceJSONSchema() map[string]any {
	party := func(extra ...string) map[string]any {
		props := map[string]any{
			"name":         nullableString(),
			"company":      nullableString(),
			"address":      nullableString(),
			"cityStateZip": nullableString(),
			"phone":        nullableString(),
		}
		for _, k := range extra {
			props[k] = nullableString()
		}
		return map[string]any{"type": []string{"object", "null"}, "properties": props}
	}

	lineItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"itemNumber":  nullableText(),
			"description": nullableString(),
			"quantity":    nullableNumber(),
			"unitPrice":   nullableNumber(),
			"lineTotal":   nullableNumber(),
		},
	}

	totals := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subtotal":         nullableNumber(),
			"taxRate":          nullableNumber(),
			"tax":              nullableNumber(),
			"shippingHandling": nullableNumber(),
			"other":            nullableNumber(),
			"total":            nullableNumber(),
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"invoiceNumber": nullableText(),
			"invoiceDate":   nullableString(),
			"dueDate":       nullableString(),
			"vendor":        party("fax", "website"),
			"customer":      party(),
			"shipTo":        party(),
			"shipping": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"salesPerson": nullableString(),
					"poNumber":    nullableText(),
					"shipDate":    nullableString(),
					"shipVia":     nullableString(),
					"fob":         nullableString(),
					"terms":       nullableString(),
				},
			},
			"lineItems": map[string]any{"type": "array", "items": lineItem},
			"totals":    totals,
		},
		"required": []string{"lineItems", "totals"},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

// nullableText also admits numbers, which models emit for numeric ids.
func nullableText() map[string]any {
	return map[string]any{"type": []string{"string", "number", "null"}}
}

func nullableNumber() map[string]any {
	return map[string]any{"type": []string{"number", "null"}}
}
