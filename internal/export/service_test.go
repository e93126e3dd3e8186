package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-orders/internal/entity"
	"github.com/joseph-ayodele/invoice-orders/internal/repository"
	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

// stubRepo serves a fixed order list; the remaining methods are unused here.
type stubRepo struct {
	repository.OrderRepository
	orders []*entity.Order
	err    error
}

func (s *stubRepo) ListOrders(context.Context) ([]*entity.Order, error) {
	return s.orders, s.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportOrdersXLSX(t *testing.T) {
	repo := &stubRepo{orders: []*entity.Order{
		{
			Header: entity.OrderHeader{
				SalesOrderID:     2,
				SalesOrderNumber: utils.Ptr("INV-2"),
				CustomerName:     utils.Ptr("Acme"),
				TotalDue:         utils.Ptr(108.0),
				CreatedAt:        utils.Ptr("2024-06-01 00:00:00"),
			},
			LineItems: []entity.OrderDetail{
				{SalesOrderDetailID: 5, SalesOrderID: 2, ItemNumber: utils.Ptr("A1"), Quantity: utils.Ptr(2.0), UnitPrice: utils.Ptr(50.0), LineTotal: utils.Ptr(100.0)},
				{SalesOrderDetailID: 6, SalesOrderID: 2, Description: utils.Ptr("Shipping")},
			},
		},
		{
			Header:    entity.OrderHeader{SalesOrderID: 1, SalesOrderNumber: utils.Ptr("SO-20240101000000")},
			LineItems: []entity.OrderDetail{},
		},
	}}

	b, err := NewService(repo, quietLogger()).ExportOrdersXLSX(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 2 || sheets[0] != SheetOrders || sheets[1] != SheetLineItems {
		t.Fatalf("sheets = %v", sheets)
	}

	rows, err := f.GetRows(SheetOrders)
	if err != nil {
		t.Fatalf("orders rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 orders, got %d rows", len(rows))
	}
	if rows[0][0] != "Order ID" || rows[0][13] != "Total Due" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][0] != "2" || rows[1][1] != "INV-2" || rows[1][4] != "Acme" || rows[1][13] != "108" {
		t.Fatalf("unexpected first order row %v", rows[1])
	}
	if rows[2][1] != "SO-20240101000000" {
		t.Fatalf("unexpected second order row %v", rows[2])
	}

	items, err := f.GetRows(SheetLineItems)
	if err != nil {
		t.Fatalf("line item rows: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected header + 2 items, got %d rows", len(items))
	}
	if items[1][1] != "INV-2" || items[1][3] != "A1" || items[1][5] != "2" || items[1][7] != "100" {
		t.Fatalf("unexpected item row %v", items[1])
	}
	if items[2][4] != "Shipping" || items[2][5] != "0" {
		t.Fatalf("unexpected second item row %v", items[2])
	}
}

func TestExportOrdersXLSXEmpty(t *testing.T) {
	b, err := NewService(&stubRepo{}, quietLogger()).ExportOrdersXLSX(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows(SheetOrders)
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d", len(rows))
	}
}

func TestExportOrdersXLSXRepoError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewService(&stubRepo{err: boom}, quietLogger()).ExportOrdersXLSX(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
