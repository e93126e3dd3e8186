package orders

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/invoice-orders/internal/entity"
	"github.com/joseph-ayodele/invoice-orders/internal/repository"
)

// Service handles order business logic.
//
// Create takes the nested extraction shape while Update takes a flat shape.
// Both are kept for client compatibility; the mismatch looks accidental.
type Service struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
	logger    *slog.Logger
}

// NewService creates a new order service.
func NewService(orderRepo repository.OrderRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		orderRepo: orderRepo,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock overrides the clock used for synthesized order numbers.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns order summaries, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.OrderSummary, error) {
	out, err := s.orderRepo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("orders listed", "count", len(out))
	return out, nil
}

// Get returns the header and its line items.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// Create stores a new order from the nested invoice shape and returns its id.
func (s *Service) Create(ctx context.Context, p *entity.InvoicePayload) (int64, error) {
	header := HeaderFromInvoice(p, s.now().UTC())
	items := DetailsFromItems(p.LineItems)
	s.logger.Info("creating order", "order_number", *header.SalesOrderNumber, "line_items", len(items))
	return s.orderRepo.Create(ctx, header, items)
}

// Update overwrites every header column and replaces all line items.
func (s *Service) Update(ctx context.Context, id int64, u *entity.OrderUpdate) error {
	header := HeaderFromUpdate(u)
	items := DetailsFromItems(u.LineItems)
	s.logger.Info("updating order", "order_id", id, "line_items", len(items))
	return s.orderRepo.Update(ctx, id, header, items)
}

// Delete removes the order; line items go with it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.orderRepo.Delete(ctx, id)
}
