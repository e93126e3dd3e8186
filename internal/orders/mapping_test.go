package orders

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/joseph-ayodele/invoice-orders/internal/entity"
	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

var clock = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func decode[T any](t *testing.T, raw string) *T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return &v
}

func TestOrderNumber(t *testing.T) {
	tests := []struct {
		name string
		in   *entity.Text
		want string
	}{
		{"present", utils.Ptr(entity.Text("INV-1")), "INV-1"},
		{"missing", nil, "SO-20240506070809"},
		{"empty", utils.Ptr(entity.Text("")), "SO-20240506070809"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderNumber(tt.in, clock); got != tt.want {
				t.Fatalf("OrderNumber = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderFromInvoice(t *testing.T) {
	p := decode[entity.InvoicePayload](t, `{
		"invoiceNumber": "INV-1",
		"invoiceDate": "2024-01-01",
		"vendor": {"name": "V", "fax": "555-0100", "website": "v.example"},
		"customer": {"name": "Acme", "company": null},
		"shipTo": null,
		"shipping": {"poNumber": 4411, "fob": "Origin", "terms": "Net 30"},
		"lineItems": [],
		"totals": {"subtotal": 100, "tax": 8, "total": 108, "other": null}
	}`)
	h := HeaderFromInvoice(p, clock)

	if utils.StrOrEmpty(h.SalesOrderNumber) != "INV-1" || utils.StrOrEmpty(h.OrderDate) != "2024-01-01" {
		t.Fatalf("unexpected number/date %q %q", utils.StrOrEmpty(h.SalesOrderNumber), utils.StrOrEmpty(h.OrderDate))
	}
	if utils.StrOrEmpty(h.VendorFax) != "555-0100" || utils.StrOrEmpty(h.VendorWebsite) != "v.example" {
		t.Fatalf("vendor contact not mapped")
	}
	if utils.StrOrEmpty(h.PurchaseOrderNumber) != "4411" {
		t.Fatalf("numeric PO number should be kept as text, got %q", utils.StrOrEmpty(h.PurchaseOrderNumber))
	}
	if h.CustomerCompany != nil || h.ShipToName != nil || h.DueDate != nil {
		t.Fatalf("absent text should stay nil")
	}
	if utils.StrOrEmpty(h.FOB) != "Origin" || utils.StrOrEmpty(h.Terms) != "Net 30" {
		t.Fatalf("shipping block not mapped")
	}
	for name, v := range map[string]*float64{
		"SubTotal": h.SubTotal, "TaxRate": h.TaxRate, "TaxAmt": h.TaxAmt,
		"ShippingHandling": h.ShippingHandling, "Other": h.Other, "TotalDue": h.TotalDue,
	} {
		if v == nil {
			t.Fatalf("%s should default to 0, got nil", name)
		}
	}
	if *h.SubTotal != 100 || *h.TaxAmt != 8 || *h.TotalDue != 108 || *h.Other != 0 || *h.TaxRate != 0 {
		t.Fatalf("unexpected totals")
	}
	if h.Status != nil || h.CustomerID != nil {
		t.Fatalf("status and customer id are left to the store")
	}
}

func TestHeaderFromInvoiceSynthesizesNumber(t *testing.T) {
	h := HeaderFromInvoice(&entity.InvoicePayload{}, clock)
	if got := utils.StrOrEmpty(h.SalesOrderNumber); got != "SO-20240506070809" {
		t.Fatalf("SalesOrderNumber = %q", got)
	}
}

func TestHeaderFromUpdate(t *testing.T) {
	u := decode[entity.OrderUpdate](t, `{
		"salesOrderNumber": "SO-9",
		"orderDate": "2024-02-02",
		"customerName": "Acme",
		"totalDue": 12.5
	}`)
	h := HeaderFromUpdate(u)
	if utils.StrOrEmpty(h.SalesOrderNumber) != "SO-9" || utils.StrOrEmpty(h.OrderDate) != "2024-02-02" {
		t.Fatalf("fallback fields not used")
	}
	if utils.Float64OrZero(h.TotalDue) != 12.5 {
		t.Fatalf("TotalDue = %v", h.TotalDue)
	}
	if h.SubTotal != nil || h.Terms != nil {
		t.Fatalf("absent fields should map to nil")
	}

	u = decode[entity.OrderUpdate](t, `{
		"invoiceNumber": "INV-7", "salesOrderNumber": "SO-9",
		"invoiceDate": "2024-03-03", "orderDate": "2024-02-02"
	}`)
	h = HeaderFromUpdate(u)
	if utils.StrOrEmpty(h.SalesOrderNumber) != "INV-7" || utils.StrOrEmpty(h.OrderDate) != "2024-03-03" {
		t.Fatalf("invoice fields should win")
	}
}

func TestDetailsFromItems(t *testing.T) {
	items := []entity.LineItem{
		{ItemNumber: utils.Ptr(entity.Text("A1")), Quantity: entity.Number{Value: 2, Valid: true}, UnitPrice: entity.Number{Value: 50, Valid: true}, LineTotal: entity.Number{Value: 100, Valid: true}},
		{Description: utils.Ptr(entity.Text("freebie"))},
	}
	got := DetailsFromItems(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 details, got %d", len(got))
	}
	if utils.StrOrEmpty(got[0].ItemNumber) != "A1" || utils.Float64OrZero(got[0].Quantity) != 2 || utils.Float64OrZero(got[0].LineTotal) != 100 {
		t.Fatalf("first item not mapped: %+v", got[0])
	}
	second := got[1]
	if second.ItemNumber != nil {
		t.Fatalf("missing item number should stay nil")
	}
	if second.Quantity == nil || *second.Quantity != 0 || second.UnitPrice == nil || *second.UnitPrice != 0 || second.LineTotal == nil || *second.LineTotal != 0 {
		t.Fatalf("missing numbers should default to 0")
	}

	if got := DetailsFromItems(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice")
	}
}

func TestDetailsFromItemsLenientNumbers(t *testing.T) {
	p := decode[entity.InvoicePayload](t, `{
		"lineItems": [
			{"itemNumber": 7, "quantity": 2.0, "unitPrice": "$1,250.00", "lineTotal": "2500"},
			{"quantity": 1.5, "unitPrice": 4, "lineTotal": "n/a"}
		],
		"totals": {"subtotal": "$2,506.00", "taxRate": "6.5%"}
	}`)
	got := DetailsFromItems(p.LineItems)
	if utils.StrOrEmpty(got[0].ItemNumber) != "7" || *got[0].Quantity != 2 || *got[0].UnitPrice != 1250 || *got[0].LineTotal != 2500 {
		t.Fatalf("first item = %+v", got[0])
	}
	if *got[1].Quantity != 1.5 {
		t.Fatalf("fractional quantity should be stored as sent, got %v", *got[1].Quantity)
	}
	if *got[1].LineTotal != 0 {
		t.Fatalf("non-numeric line total should default to 0, got %v", *got[1].LineTotal)
	}
	h := HeaderFromInvoice(p, clock)
	if *h.SubTotal != 2506 || *h.TaxRate != 6.5 {
		t.Fatalf("totals = %v %v", *h.SubTotal, *h.TaxRate)
	}
}
