package orders

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/joseph-ayodele/invoice-orders/internal/entity"
	"github.com/joseph-ayodele/invoice-orders/internal/repository"
	"github.com/joseph-ayodele/invoice-orders/internal/utils"
)

// recordingRepo captures what the service hands to the store.
type recordingRepo struct {
	repository.OrderRepository
	header   *entity.OrderHeader
	items    []*entity.OrderDetail
	updateID int64
}

func (r *recordingRepo) Create(_ context.Context, h *entity.OrderHeader, items []*entity.OrderDetail) (int64, error) {
	r.header, r.items = h, items
	return 7, nil
}

func (r *recordingRepo) Update(_ context.Context, id int64, h *entity.OrderHeader, items []*entity.OrderDetail) error {
	r.updateID, r.header, r.items = id, h, items
	return nil
}

func TestServiceCreate(t *testing.T) {
	repo := &recordingRepo{}
	local := time.Date(2024, 5, 6, 9, 8, 9, 0, time.FixedZone("CEST", 2*60*60))
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithClock(func() time.Time { return local })

	p := decode[entity.InvoicePayload](t, `{"lineItems":[{"itemNumber":"A"},{"itemNumber":"B"}]}`)
	id, err := svc.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 7 {
		t.Fatalf("id = %d", id)
	}
	// synthesized numbers use UTC
	if got := utils.StrOrEmpty(repo.header.SalesOrderNumber); got != "SO-20240506070809" {
		t.Fatalf("SalesOrderNumber = %q", got)
	}
	if len(repo.items) != 2 || utils.StrOrEmpty(repo.items[1].ItemNumber) != "B" {
		t.Fatalf("items not passed in order")
	}
}

func TestServiceUpdate(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo, nil)

	u := decode[entity.OrderUpdate](t, `{"invoiceNumber":"INV-3","lineItems":[]}`)
	if err := svc.Update(context.Background(), 3, u); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.updateID != 3 || utils.StrOrEmpty(repo.header.SalesOrderNumber) != "INV-3" {
		t.Fatalf("unexpected update call: id %d header %+v", repo.updateID, repo.header)
	}
	if repo.items == nil || len(repo.items) != 0 {
		t.Fatalf("expected empty item list")
	}
}
