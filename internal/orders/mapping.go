package orders

import (
	"time"

	"github.com/joseph-ayodele/invoice-orders/constants"
	"github.com/joseph-ayodele/invoice-orders/internal/entity"
	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

// OrderNumber returns the invoice number when present, otherwise a
// SO-YYYYMMDDHHMMSS number for now.
func OrderNumber(invoiceNumber *entity.Text, now time.Time) string {
	if !invoiceNumber.Empty() {
		return string(*invoiceNumber)
	}
	return constants.OrderNumberPrefix + now.Format(constants.OrderNumberLayout)
}

// HeaderFromInvoice maps the nested create payload onto a header. Missing
// totals become 0; missing text stays NULL.
func HeaderFromInvoice(p *entity.InvoicePayload, now time.Time) *entity.OrderHeader {
	return &entity.OrderHeader{
		SalesOrderNumber:     utils.Ptr(OrderNumber(p.InvoiceNumber, now)),
		OrderDate:            p.InvoiceDate.Ptr(),
		DueDate:              p.DueDate.Ptr(),
		ShipDate:             p.Shipping.ShipDate.Ptr(),
		PurchaseOrderNumber:  p.Shipping.PONumber.Ptr(),
		CustomerName:         p.Customer.Name.Ptr(),
		CustomerCompany:      p.Customer.Company.Ptr(),
		CustomerAddress:      p.Customer.Address.Ptr(),
		CustomerCityStateZip: p.Customer.CityStateZip.Ptr(),
		CustomerPhone:        p.Customer.Phone.Ptr(),
		VendorName:           p.Vendor.Name.Ptr(),
		VendorCompany:        p.Vendor.Company.Ptr(),
		VendorAddress:        p.Vendor.Address.Ptr(),
		VendorCityStateZip:   p.Vendor.CityStateZip.Ptr(),
		VendorPhone:          p.Vendor.Phone.Ptr(),
		VendorFax:            p.Vendor.Fax.Ptr(),
		VendorWebsite:        p.Vendor.Website.Ptr(),
		SalesPerson:          p.Shipping.SalesPerson.Ptr(),
		ShipToName:           p.ShipTo.Name.Ptr(),
		ShipToCompany:        p.ShipTo.Company.Ptr(),
		ShipToAddress:        p.ShipTo.Address.Ptr(),
		ShipToCityStateZip:   p.ShipTo.CityStateZip.Ptr(),
		ShipToPhone:          p.ShipTo.Phone.Ptr(),
		SubTotal:             utils.Ptr(p.Totals.Subtotal.Value),
		TaxRate:              utils.Ptr(p.Totals.TaxRate.Value),
		TaxAmt:               utils.Ptr(p.Totals.Tax.Value),
		ShippingHandling:     utils.Ptr(p.Totals.ShippingHandling.Value),
		Other:                utils.Ptr(p.Totals.Other.Value),
		TotalDue:             utils.Ptr(p.Totals.Total.Value),
		Terms:                p.Shipping.Terms.Ptr(),
		ShipVia:              p.Shipping.ShipVia.Ptr(),
		FOB:                  p.Shipping.FOB.Ptr(),
	}
}

// HeaderFromUpdate maps the flat update payload. Every column is taken as
// given, so absent fields overwrite with NULL.
func HeaderFromUpdate(u *entity.OrderUpdate) *entity.OrderHeader {
	number := u.InvoiceNumber
	if number.Empty() {
		number = u.SalesOrderNumber
	}
	orderDate := u.InvoiceDate
	if orderDate.Empty() {
		orderDate = u.OrderDate
	}
	return &entity.OrderHeader{
		SalesOrderNumber:     number.Ptr(),
		OrderDate:            orderDate.Ptr(),
		DueDate:              u.DueDate.Ptr(),
		ShipDate:             u.ShipDate.Ptr(),
		PurchaseOrderNumber:  u.PurchaseOrderNumber.Ptr(),
		CustomerName:         u.CustomerName.Ptr(),
		CustomerCompany:      u.CustomerCompany.Ptr(),
		CustomerAddress:      u.CustomerAddress.Ptr(),
		CustomerCityStateZip: u.CustomerCityStateZip.Ptr(),
		CustomerPhone:        u.CustomerPhone.Ptr(),
		VendorName:           u.VendorName.Ptr(),
		VendorCompany:        u.VendorCompany.Ptr(),
		VendorAddress:        u.VendorAddress.Ptr(),
		VendorCityStateZip:   u.VendorCityStateZip.Ptr(),
		VendorPhone:          u.VendorPhone.Ptr(),
		VendorFax:            u.VendorFax.Ptr(),
		VendorWebsite:        u.VendorWebsite.Ptr(),
		SalesPerson:          u.SalesPerson.Ptr(),
		ShipToName:           u.ShipToName.Ptr(),
		ShipToCompany:        u.ShipToCompany.Ptr(),
		ShipToAddress:        u.ShipToAddress.Ptr(),
		ShipToCityStateZip:   u.ShipToCityStateZip.Ptr(),
		ShipToPhone:          u.ShipToPhone.Ptr(),
		SubTotal:             u.SubTotal.Ptr(),
		TaxRate:              u.TaxRate.Ptr(),
		TaxAmt:               u.TaxAmt.Ptr(),
		ShippingHandling:     u.ShippingHandling.Ptr(),
		Other:                u.Other.Ptr(),
		TotalDue:             u.TotalDue.Ptr(),
		Terms:                u.Terms.Ptr(),
		ShipVia:              u.ShipVia.Ptr(),
		FOB:                  u.FOB.Ptr(),
	}
}

// DetailsFromItems maps line items in order. Missing quantity, unit price and
// line total become 0. Fractional quantities are stored as sent and totals
// are not recomputed.
func DetailsFromItems(items []entity.LineItem) []*entity.OrderDetail {
	out := make([]*entity.OrderDetail, 0, len(items))
	for _, it := range items {
		out = append(out, &entity.OrderDetail{
			ItemNumber:  it.ItemNumber.Ptr(),
			Description: it.Description.Ptr(),
			Quantity:    utils.Ptr(it.Quantity.Value),
			UnitPrice:   utils.Ptr(it.UnitPrice.Value),
			LineTotal:   utils.Ptr(it.LineTotal.Value),
		})
	}
	return out
}
