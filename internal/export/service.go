package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-orders/internal/repository"
	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

const (
	SheetOrders    = "Orders"
	SheetLineItems = "LineItems"

	// ContentType is the MIME type of the workbook bytes.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Service produces XLSX bytes for exports.
type Service struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

func NewService(repo repository.OrderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orderRepo: repo, logger: logger}
}

var orderHeaders = []string{
	"Order ID",
	"Order Number",
	"Order Date",
	"Due Date",
	"Customer",
	"Customer Company",
	"Vendor",
	"PO Number",
	"Sub Total",
	"Tax Rate",
	"Tax",
	"Shipping/Handling",
	"Other",
	"Total Due",
	"Terms",
	"Created At",
}

var lineItemHeaders = []string{
	"Order ID",
	"Order Number",
	"Line ID",
	"Item Number",
	"Description",
	"Quantity",
	"Unit Price",
	"Line Total",
}

// ExportOrdersXLSX returns a workbook with one Orders row per header and one
// LineItems row per detail, newest orders first.
func (s *Service) ExportOrdersXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("export.xlsx.close_failed", "error", err)
		}
	}()

	// The default sheet is renamed rather than left empty.
	if err := f.SetSheetName(f.GetSheetName(0), SheetOrders); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetLineItems); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	writeHeaderRow(f, SheetOrders, orderHeaders)
	writeHeaderRow(f, SheetLineItems, lineItemHeaders)

	row, itemRow := 2, 2
	lines := 0
	for _, o := range orders {
		h := o.Header
		writeRow(f, SheetOrders, row, []any{
			h.SalesOrderID,
			utils.StrOrEmpty(h.SalesOrderNumber),
			utils.StrOrEmpty(h.OrderDate),
			utils.StrOrEmpty(h.DueDate),
			utils.StrOrEmpty(h.CustomerName),
			utils.StrOrEmpty(h.CustomerCompany),
			utils.StrOrEmpty(h.VendorName),
			utils.StrOrEmpty(h.PurchaseOrderNumber),
			utils.Float64OrZero(h.SubTotal),
			utils.Float64OrZero(h.TaxRate),
			utils.Float64OrZero(h.TaxAmt),
			utils.Float64OrZero(h.ShippingHandling),
			utils.Float64OrZero(h.Other),
			utils.Float64OrZero(h.TotalDue),
			utils.StrOrEmpty(h.Terms),
			utils.StrOrEmpty(h.CreatedAt),
		})
		row++

		for _, d := range o.LineItems {
			writeRow(f, SheetLineItems, itemRow, []any{
				h.SalesOrderID,
				utils.StrOrEmpty(h.SalesOrderNumber),
				d.SalesOrderDetailID,
				utils.StrOrEmpty(d.ItemNumber),
				utils.Truncate(utils.StrOrEmpty(d.Description), 200),
				utils.Float64OrZero(d.Quantity),
				utils.Float64OrZero(d.UnitPrice),
				utils.Float64OrZero(d.LineTotal),
			})
			itemRow++
			lines++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(SheetOrders, "B", "D", 16) // number, dates
	_ = f.SetColWidth(SheetOrders, "E", "G", 28) // parties
	_ = f.SetColWidth(SheetOrders, "I", "N", 14) // money
	_ = f.SetColWidth(SheetOrders, "O", "P", 20)
	_ = f.SetColWidth(SheetLineItems, "D", "D", 16)
	_ = f.SetColWidth(SheetLineItems, "E", "E", 48) // description

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"orders", len(orders),
		"line_items", lines,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
}
