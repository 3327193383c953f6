package orders

import (
	"context"
	"log/slog"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/order"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/events"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/notify"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/quote"
	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/receipt"
)

var (
	ErrInvalidItems      = errors.New("order items failed validation")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service struct {
	repo      *Repo
	quote     *quote.Service
	events    events.Publisher
	notifier  notify.Notifier
	printer   receipt.Printer // nil when no printer device is configured
	storeName string
	log       *slog.Logger
}

func NewService(repo *Repo, q *quote.Service, pub events.Publisher, notifier notify.Notifier, printer receipt.Printer, storeName string, log *slog.Logger) *Service {
	return &Service{repo: repo, quote: q, events: pub, notifier: notifier, printer: printer, storeName: storeName, log: log}
}

type CreateInput struct {
	Type          string
	TableID       *int64
	CustomerName  string
	CustomerPhone string
	Address       string
	Items         []quote.ItemInput
}

// Create prices the items through the same service the quote endpoint
// uses, then persists the order with the computed values alongside their
// pricing inputs. On any line validation failure the returned quote
// carries the per-line errors and ErrInvalidItems is returned; nothing is
// persisted.
func (s *Service) Create(ctx context.Context, in CreateInput) (order.Order, quote.Quote, error) {
	q, err := s.quote.Quote(ctx, in.Items)
	if err != nil {
		return order.Order{}, quote.Quote{}, errors.Wrap(err, "quote order")
	}
	if !q.OK() {
		return order.Order{}, q, ErrInvalidItems
	}

	o := order.Order{
		Code:          uuid.NewString(),
		Type:          in.Type,
		Status:        order.StatusReceived,
		TableID:       in.TableID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Address:       in.Address,
		Total:         *q.Total,
	}
	for i, it := range q.Items {
		o.Items = append(o.Items, order.Item{
			ProductID:     it.ProductID,
			ProductName:   it.Name,
			Quantity:      it.Quantity,
			OptionItemIDs: in.Items[i].OptionItemIDs,
			OptionNames:   it.PickedItems,
			Observation:   it.Observation,
			UnitBase:      *it.UnitBase,
			AddonsTotal:   *it.AddonsTotal,
			UnitPrice:     *it.Unit,
			FreeQty:       it.FreeQty,
			LineTotal:     *it.Total,
			PromoLabels:   it.Labels,
		})
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return order.Order{}, quote.Quote{}, errors.Wrap(err, "persist order")
	}

	// delivery problems on events and notifications never fail the order
	if err := s.events.OrderCreated(ctx, created); err != nil {
		s.log.Error("publish order created", "order", created.Code, "err", err)
	}
	if err := s.notifier.OrderConfirmed(ctx, created); err != nil {
		s.log.Error("notify order confirmed", "order", created.Code, "err", err)
	}
	if s.printer != nil {
		if err := s.printer.Print(ctx, receipt.RenderKitchen(s.storeName, created)); err != nil {
			s.log.Error("print kitchen ticket", "order", created.Code, "err", err)
		}
	}
	return created, q, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (order.Order, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if !order.ValidTransition(current.Status, status) {
		return order.Order{}, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return order.Order{}, err
	}
	if err := s.events.OrderStatusChanged(ctx, updated, current.Status); err != nil {
		s.log.Error("publish status change", "order", updated.Code, "err", err)
	}
	return updated, nil
}
