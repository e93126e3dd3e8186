package entity

// OrderHeader is one SalesOrderHeader row. JSON keys are the column names.
type OrderHeader struct {
	SalesOrderID         int64    `json:"SalesOrderID"`
	SalesOrderNumber     *string  `json:"SalesOrderNumber"`
	OrderDate            *string  `json:"OrderDate"`
	DueDate              *string  `json:"DueDate"`
	ShipDate             *string  `json:"ShipDate"`
	Status               *int64   `json:"Status"`
	PurchaseOrderNumber  *string  `json:"PurchaseOrderNumber"`
	CustomerID           *int64   `json:"CustomerID"`
	CustomerName         *string  `json:"CustomerName"`
	CustomerCompany      *string  `json:"CustomerCompany"`
	CustomerAddress      *string  `json:"CustomerAddress"`
	CustomerCityStateZip *string  `json:"CustomerCityStateZip"`
	CustomerPhone        *string  `json:"CustomerPhone"`
	VendorName           *string  `json:"VendorName"`
	VendorCompany        *string  `json:"VendorCompany"`
	VendorAddress        *string  `json:"VendorAddress"`
	VendorCityStateZip   *string  `json:"VendorCityStateZip"`
	VendorPhone          *string  `json:"VendorPhone"`
	VendorFax            *string  `json:"VendorFax"`
	VendorWebsite        *string  `json:"VendorWebsite"`
	SalesPerson          *string  `json:"SalesPerson"`
	ShipToName           *string  `json:"ShipToName"`
	ShipToCompany        *string  `json:"ShipToCompany"`
	ShipToAddress        *string  `json:"ShipToAddress"`
	ShipToCityStateZip   *string  `json:"ShipToCityStateZip"`
	ShipToPhone          *string  `json:"ShipToPhone"`
	SubTotal             *float64 `json:"SubTotal"`
	TaxRate              *float64 `json:"TaxRate"`
	TaxAmt               *float64 `json:"TaxAmt"`
	ShippingHandling     *float64 `json:"ShippingHandling"`
	Other                *float64 `json:"Other"`
	TotalDue             *float64 `json:"TotalDue"`
	Terms                *string  `json:"Terms"`
	ShipVia              *string  `json:"ShipVia"`
	FOB                  *string  `json:"FOB"`
	CreatedAt            *string  `json:"CreatedAt"`
}

// OrderDetail is one SalesOrderDetail row.
type OrderDetail struct {
	SalesOrderDetailID int64    `json:"SalesOrderDetailID"`
	SalesOrderID       int64    `json:"SalesOrderID"`
	ItemNumber         *string  `json:"ItemNumber"`
	Description        *string  `json:"Description"`
	Quantity           *float64 `json:"Quantity"`
	UnitPrice          *float64 `json:"UnitPrice"`
	LineTotal          *float64 `json:"LineTotal"`
}

// OrderSummary is the list view of a header.
type OrderSummary struct {
	SalesOrderID     int64    `json:"SalesOrderID"`
	SalesOrderNumber *string  `json:"SalesOrderNumber"`
	OrderDate        *string  `json:"OrderDate"`
	CustomerName     *string  `json:"CustomerName"`
	CustomerCompany  *string  `json:"CustomerCompany"`
	TotalDue         *float64 `json:"TotalDue"`
	CreatedAt        *string  `json:"CreatedAt"`
}

// Order is a header with its line items ordered by detail id.
type Order struct {
	Header    OrderHeader   `json:"header"`
	LineItems []OrderDetail `json:"lineItems"`
}
