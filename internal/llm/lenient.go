package llm

import (
	"encoding/json"
	"strconv"

	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

var (
	totalsNumbers   = []string{"subtotal", "taxRate", "tax", "shippingHandling", "other", "total"}
	lineItemNumbers = []string{"quantity", "unitPrice", "lineTotal"}
)

// CoerceNumericFields rewrites money-like strings ("$1,234.50", "6.875%") in
// totals and line items into JSON numbers so the document can pass strict
// validation. Values that still do not parse are left alone. It returns the
// paths it changed.
func CoerceNumericFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var changed []string
	if totals, ok := m["totals"].(map[string]any); ok {
		for _, k := range totalsNumbers {
			if coerceNumber(totals, k) {
				changed = append(changed, "totals."+k)
			}
		}
	}
	if items, ok := m["lineItems"].([]any); ok {
		for i, it := range items {
			item, ok := it.(map[string]any)
			if !ok {
				continue
			}
			for _, k := range lineItemNumbers {
				if coerceNumber(item, k) {
					changed = append(changed, "lineItems["+strconv.Itoa(i)+"]."+k)
				}
			}
		}
	}
	if len(changed) == 0 {
		return doc, nil, nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, changed, nil
}

func coerceNumber(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	if !ok {
		return false
	}
	f, ok := utils.ParseAmount(s)
	if !ok {
		return false
	}
	m[key] = f
	return true
}
