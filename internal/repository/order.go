package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/joseph-ayodele/invoice-orders/constants"
	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/entity"
)

type OrderRepository interface {
	ListSummaries(ctx context.Context) ([]*entity.OrderSummary, error)
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	Create(ctx context.Context, header *entity.OrderHeader, items []*entity.OrderDetail) (int64, error)
	Update(ctx context.Context, id int64, header *entity.OrderHeader, items []*entity.OrderDetail) error
	Delete(ctx context.Context, id int64) error
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	Count(ctx context.Context) (int, error)
}

type orderRepository struct {
	db     *DB
	now    func() time.Time
	logger *slog.Logger
}

func NewOrderRepository(db *DB, logger *slog.Logger) OrderRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

const (
	colOrderID  = "SalesOrderID"
	colDetailID = "SalesOrderDetailID"
	colCreated  = "CreatedAt"
)

// editableColumns are overwritten by update, in this order.
var editableColumns = []string{
	"SalesOrderNumber", "OrderDate", "DueDate", "ShipDate", "PurchaseOrderNumber",
	"CustomerName", "CustomerCompany", "CustomerAddress", "CustomerCityStateZip", "CustomerPhone",
	"VendorName", "VendorCompany", "VendorAddress", "VendorCityStateZip", "VendorPhone", "VendorFax", "VendorWebsite",
	"SalesPerson", "ShipToName", "ShipToCompany", "ShipToAddress", "ShipToCityStateZip", "ShipToPhone",
	"SubTotal", "TaxRate", "TaxAmt", "ShippingHandling", "Other", "TotalDue",
	"Terms", "ShipVia", "FOB",
}

func editableValues(h *entity.OrderHeader) []any {
	return []any{
		h.SalesOrderNumber, h.OrderDate, h.DueDate, h.ShipDate, h.PurchaseOrderNumber,
		h.CustomerName, h.CustomerCompany, h.CustomerAddress, h.CustomerCityStateZip, h.CustomerPhone,
		h.VendorName, h.VendorCompany, h.VendorAddress, h.VendorCityStateZip, h.VendorPhone, h.VendorFax, h.VendorWebsite,
		h.SalesPerson, h.ShipToName, h.ShipToCompany, h.ShipToAddress, h.ShipToCityStateZip, h.ShipToPhone,
		h.SubTotal, h.TaxRate, h.TaxAmt, h.ShippingHandling, h.Other, h.TotalDue,
		h.Terms, h.ShipVia, h.FOB,
	}
}

var headerColumns = append(append([]string{colOrderID}, editableColumns...), "Status", "CustomerID", colCreated)

func headerDest(h *entity.OrderHeader) []any {
	return []any{
		&h.SalesOrderID,
		&h.SalesOrderNumber, &h.OrderDate, &h.DueDate, &h.ShipDate, &h.PurchaseOrderNumber,
		&h.CustomerName, &h.CustomerCompany, &h.CustomerAddress, &h.CustomerCityStateZip, &h.CustomerPhone,
		&h.VendorName, &h.VendorCompany, &h.VendorAddress, &h.VendorCityStateZip, &h.VendorPhone, &h.VendorFax, &h.VendorWebsite,
		&h.SalesPerson, &h.ShipToName, &h.ShipToCompany, &h.ShipToAddress, &h.ShipToCityStateZip, &h.ShipToPhone,
		&h.SubTotal, &h.TaxRate, &h.TaxAmt, &h.ShippingHandling, &h.Other, &h.TotalDue,
		&h.Terms, &h.ShipVia, &h.FOB,
		&h.Status, &h.CustomerID, &h.CreatedAt,
	}
}

var detailColumns = []string{colDetailID, colOrderID, "ItemNumber", "Description", "Quantity", "UnitPrice", "LineTotal"}

func detailDest(d *entity.OrderDetail) []any {
	return []any{&d.SalesOrderDetailID, &d.SalesOrderID, &d.ItemNumber, &d.Description, &d.Quantity, &d.UnitPrice, &d.LineTotal}
}

var summaryColumns = []string{colOrderID, "SalesOrderNumber", "OrderDate", "CustomerName", "CustomerCompany", "TotalDue", colCreated}

func (r *orderRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.db.Dialect())
}

func (r *orderRepository) ListSummaries(ctx context.Context) ([]*entity.OrderSummary, error) {
	b := r.builder()
	q, args := b.Select(summaryColumns...).
		From(b.Table(constants.TableOrderHeader)).
		OrderBy(entsql.Desc(colCreated), entsql.Desc(colOrderID)).
		Query()

	out := make([]*entity.OrderSummary, 0)
	err := r.db.WithReadTx(ctx, func(tx dialect.Tx) error {
		rows := &entsql.Rows{}
		if err := tx.Query(ctx, q, args, rows); err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			s := &entity.OrderSummary{}
			if err := rows.Scan(&s.SalesOrderID, &s.SalesOrderNumber, &s.OrderDate, &s.CustomerName, &s.CustomerCompany, &s.TotalDue, &s.CreatedAt); err != nil {
				return err
			}
			out = append(out, s)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("failed to list orders", "error", err)
		return nil, common.WrapError(err, "list orders")
	}
	return out, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	var order *entity.Order
	err := r.db.WithReadTx(ctx, func(tx dialect.Tx) error {
		h, err := r.getHeader(ctx, tx, id)
		if err != nil {
			return err
		}
		items, err := r.listDetails(ctx, tx, &id)
		if err != nil {
			return err
		}
		order = &entity.Order{Header: *h, LineItems: items}
		return nil
	})
	if err != nil {
		if !common.IsNotFound(err) {
			r.logger.Error("failed to get order", "order_id", id, "error", err)
		}
		return nil, common.WrapError(err, "get order")
	}
	return order, nil
}

func (r *orderRepository) Create(ctx context.Context, header *entity.OrderHeader, items []*entity.OrderDetail) (int64, error) {
	status := header.Status
	if status == nil {
		s := int64(constants.DefaultOrderStatus)
		status = &s
	}
	createdAt := r.now().UTC().Format(constants.CreatedAtLayout)

	b := r.builder()
	cols := append(append([]string{}, editableColumns...), "Status", "CustomerID", colCreated)
	vals := append(editableValues(header), status, header.CustomerID, createdAt)
	q, args := b.Insert(constants.TableOrderHeader).
		Columns(cols...).
		Values(vals...).
		Returning(colOrderID).
		Query()

	var id int64
	err := r.db.WithTx(ctx, func(tx dialect.Tx) error {
		var err error
		if id, err = queryInt64(ctx, tx, q, args); err != nil {
			return err
		}
		return r.insertDetails(ctx, tx, id, items)
	})
	if err != nil {
		r.logger.Error("failed to create order", "order_number", header.SalesOrderNumber, "error", err)
		return 0, common.WrapError(err, "create order")
	}
	r.logger.Info("orders.create.ok", "order_id", id, "line_items", len(items))
	return id, nil
}

func (r *orderRepository) Update(ctx context.Context, id int64, header *entity.OrderHeader, items []*entity.OrderDetail) error {
	b := r.builder()
	ub := b.Update(constants.TableOrderHeader)
	vals := editableValues(header)
	for i, col := range editableColumns {
		ub = ub.Set(col, vals[i])
	}
	q, args := ub.Where(entsql.EQ(colOrderID, id)).Query()
	dq, dargs := b.Delete(constants.TableOrderDetail).Where(entsql.EQ(colOrderID, id)).Query()

	err := r.db.WithTx(ctx, func(tx dialect.Tx) error {
		var res sql.Result
		if err := tx.Exec(ctx, q, args, &res); err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return orderNotFound(id)
		}
		if err := tx.Exec(ctx, dq, dargs, nil); err != nil {
			return err
		}
		return r.insertDetails(ctx, tx, id, items)
	})
	if err != nil {
		if !common.IsNotFound(err) {
			r.logger.Error("failed to update order", "order_id", id, "error", err)
		}
		return common.WrapError(err, "update order")
	}
	r.logger.Info("orders.update.ok", "order_id", id, "line_items", len(items))
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	q, args := r.builder().Delete(constants.TableOrderHeader).Where(entsql.EQ(colOrderID, id)).Query()
	err := r.db.WithTx(ctx, func(tx dialect.Tx) error {
		var res sql.Result
		if err := tx.Exec(ctx, q, args, &res); err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return orderNotFound(id)
		}
		return nil
	})
	if err != nil {
		if !common.IsNotFound(err) {
			r.logger.Error("failed to delete order", "order_id", id, "error", err)
		}
		return common.WrapError(err, "delete order")
	}
	r.logger.Info("orders.delete.ok", "order_id", id)
	return nil
}

// ListOrders returns every order with its line items, newest first.
func (r *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	b := r.builder()
	q, args := b.Select(headerColumns...).
		From(b.Table(constants.TableOrderHeader)).
		OrderBy(entsql.Desc(colCreated), entsql.Desc(colOrderID)).
		Query()

	var out []*entity.Order
	err := r.db.WithReadTx(ctx, func(tx dialect.Tx) error {
		headers, err := scanHeaders(ctx, tx, q, args)
		if err != nil {
			return err
		}
		details, err := r.listDetails(ctx, tx, nil)
		if err != nil {
			return err
		}
		byOrder := make(map[int64][]entity.OrderDetail, len(headers))
		for _, d := range details {
			byOrder[d.SalesOrderID] = append(byOrder[d.SalesOrderID], d)
		}
		out = make([]*entity.Order, 0, len(headers))
		for _, h := range headers {
			items := byOrder[h.SalesOrderID]
			if items == nil {
				items = []entity.OrderDetail{}
			}
			out = append(out, &entity.Order{Header: *h, LineItems: items})
		}
		return nil
	})
	if err != nil {
		r.logger.Error("failed to list orders with line items", "error", err)
		return nil, common.WrapError(err, "list orders with line items")
	}
	return out, nil
}

func (r *orderRepository) Count(ctx context.Context) (int, error) {
	b := r.builder()
	q, args := b.Select().Count().From(b.Table(constants.TableOrderHeader)).Query()
	var n int64
	err := r.db.WithReadTx(ctx, func(tx dialect.Tx) error {
		var err error
		n, err = queryInt64(ctx, tx, q, args)
		return err
	})
	if err != nil {
		return 0, common.WrapError(err, "count orders")
	}
	return int(n), nil
}

func (r *orderRepository) getHeader(ctx context.Context, tx dialect.Tx, id int64) (*entity.OrderHeader, error) {
	b := r.builder()
	q, args := b.Select(headerColumns...).
		From(b.Table(constants.TableOrderHeader)).
		Where(entsql.EQ(colOrderID, id)).
		Query()
	headers, err := scanHeaders(ctx, tx, q, args)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, orderNotFound(id)
	}
	return headers[0], nil
}

// listDetails returns line items ordered by detail id, for one order or all.
func (r *orderRepository) listDetails(ctx context.Context, tx dialect.Tx, orderID *int64) ([]entity.OrderDetail, error) {
	b := r.builder()
	sel := b.Select(detailColumns...).From(b.Table(constants.TableOrderDetail))
	if orderID != nil {
		sel = sel.Where(entsql.EQ(colOrderID, *orderID))
	}
	q, args := sel.OrderBy(entsql.Asc(colDetailID)).Query()

	rows := &entsql.Rows{}
	if err := tx.Query(ctx, q, args, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]entity.OrderDetail, 0)
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(detailDest(&d)...); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *orderRepository) insertDetails(ctx context.Context, tx dialect.Tx, orderID int64, items []*entity.OrderDetail) error {
	for i, it := range items {
		q, args := r.builder().Insert(constants.TableOrderDetail).
			Columns(colOrderID, "ItemNumber", "Description", "Quantity", "UnitPrice", "LineTotal").
			Values(orderID, it.ItemNumber, it.Description, it.Quantity, it.UnitPrice, it.LineTotal).
			Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			return fmt.Errorf("insert line item %d: %w", i, err)
		}
	}
	return nil
}

func orderNotFound(id int64) error {
	return common.NotFoundError(fmt.Sprintf("order %d not found", id))
}

func scanHeaders(ctx context.Context, tx dialect.Tx, q string, args []any) ([]*entity.OrderHeader, error) {
	rows := &entsql.Rows{}
	if err := tx.Query(ctx, q, args, rows); err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.OrderHeader
	for rows.Next() {
		h := &entity.OrderHeader{}
		if err := rows.Scan(headerDest(h)...); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func queryInt64(ctx context.Context, tx dialect.Tx, q string, args []any) (int64, error) {
	rows := &entsql.Rows{}
	if err := tx.Query(ctx, q, args, rows); err != nil {
		return 0, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, sql.ErrNoRows
	}
	var n int64
	if err := rows.Scan(&n); err != nil {
		return 0, err
	}
	return n, rows.Close()
}
