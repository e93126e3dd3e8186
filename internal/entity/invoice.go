package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

// InvoicePayload is the nested shape produced by extraction and accepted by
// order creation.
type InvoicePayload struct {
	InvoiceNumber *Text      `json:"invoiceNumber"`
	InvoiceDate   *Text      `json:"invoiceDate"`
	DueDate       *Text      `json:"dueDate"`
	Vendor        Party      `json:"vendor"`
	Customer      Party      `json:"customer"`
	ShipTo        Party      `json:"shipTo"`
	Shipping      Shipping   `json:"shipping"`
	LineItems     []LineItem `json:"lineItems"`
	Totals        Totals     `json:"totals"`
}

// Party is a vendor, customer or ship-to block. Fax and Website are only
// read for the vendor.
type Party struct {
	Name         *Text `json:"name"`
	Company      *Text `json:"company"`
	Address      *Text `json:"address"`
	CityStateZip *Text `json:"cityStateZip"`
	Phone        *Text `json:"phone"`
	Fax          *Text `json:"fax,omitempty"`
	Website      *Text `json:"website,omitempty"`
}

type Shipping struct {
	SalesPerson *Text `json:"salesPerson"`
	PONumber    *Text `json:"poNumber"`
	ShipDate    *Text `json:"shipDate"`
	ShipVia     *Text `json:"shipVia"`
	FOB         *Text `json:"fob"`
	Terms       *Text `json:"terms"`
}

// Totals are header money fields. Missing values become 0 on create.
type Totals struct {
	Subtotal         Number `json:"subtotal"`
	TaxRate          Number `json:"taxRate"`
	Tax              Number `json:"tax"`
	ShippingHandling Number `json:"shippingHandling"`
	Other            Number `json:"other"`
	Total            Number `json:"total"`
}

// LineItem is shared by the create and update payloads.
type LineItem struct {
	ItemNumber  *Text  `json:"itemNumber"`
	Description *Text  `json:"description"`
	Quantity    Number `json:"quantity"`
	UnitPrice   Number `json:"unitPrice"`
	LineTotal   Number `json:"lineTotal"`
}

// OrderUpdate is the flat shape accepted by order update. Every header
// column is overwritten; absent fields are stored as NULL.
type OrderUpdate struct {
	InvoiceNumber        *Text      `json:"invoiceNumber"`
	SalesOrderNumber     *Text      `json:"salesOrderNumber"`
	InvoiceDate          *Text      `json:"invoiceDate"`
	OrderDate            *Text      `json:"orderDate"`
	DueDate              *Text      `json:"dueDate"`
	ShipDate             *Text      `json:"shipDate"`
	PurchaseOrderNumber  *Text      `json:"purchaseOrderNumber"`
	CustomerName         *Text      `json:"customerName"`
	CustomerCompany      *Text      `json:"customerCompany"`
	CustomerAddress      *Text      `json:"customerAddress"`
	CustomerCityStateZip *Text      `json:"customerCityStateZip"`
	CustomerPhone        *Text      `json:"customerPhone"`
	VendorName           *Text      `json:"vendorName"`
	VendorCompany        *Text      `json:"vendorCompany"`
	VendorAddress        *Text      `json:"vendorAddress"`
	VendorCityStateZip   *Text      `json:"vendorCityStateZip"`
	VendorPhone          *Text      `json:"vendorPhone"`
	VendorFax            *Text      `json:"vendorFax"`
	VendorWebsite        *Text      `json:"vendorWebsite"`
	SalesPerson          *Text      `json:"salesPerson"`
	ShipToName           *Text      `json:"shipToName"`
	ShipToCompany        *Text      `json:"shipToCompany"`
	ShipToAddress        *Text      `json:"shipToAddress"`
	ShipToCityStateZip   *Text      `json:"shipToCityStateZip"`
	ShipToPhone          *Text      `json:"shipToPhone"`
	SubTotal             Number     `json:"subTotal"`
	TaxRate              Number     `json:"taxRate"`
	TaxAmt               Number     `json:"taxAmt"`
	ShippingHandling     Number     `json:"shippingHandling"`
	Other                Number     `json:"other"`
	TotalDue             Number     `json:"totalDue"`
	Terms                *Text      `json:"terms"`
	ShipVia              *Text      `json:"shipVia"`
	FOB                  *Text      `json:"fob"`
	LineItems            []LineItem `json:"lineItems"`
}

// Text is a free-form column value. Models sometimes emit invoice or item
// numbers as JSON numbers, so numbers and booleans are kept as their literal text.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case '{', '[':
		return fmt.Errorf("expected text, got %s", kindOf(data[0]))
	default:
		*t = Text(data)
		return nil
	}
}

// Ptr converts an optional Text to an optional string.
func (t *Text) Ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

// Empty reports whether t is absent or the empty string.
func (t *Text) Empty() bool {
	return t == nil || *t == ""
}

// Number is a lenient numeric value. JSON numbers and numeric strings such as
// "$1,234.00" or "6.5%" set Value; null, absent and non-numeric strings leave
// it unset. Fractions are kept, including for quantities.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = Number{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if f, ok := utils.ParseAmount(s); ok {
			*n = Number{Value: f, Valid: true}
		}
		return nil
	case '{', '[':
		return fmt.Errorf("expected number, got %s", kindOf(data[0]))
	case 't', 'f':
		return nil
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("expected number, got %s", data)
		}
		*n = Number{Value: f, Valid: true}
		return nil
	}
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value, or nil when unset.
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
