package usecase

import (
	"context"
	"log/slog"
	"sync"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/catalog"
	"repairshop/internal/domain/order"
	"repairshop/internal/pkg/clock"
	"repairshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAppointmentNotFound = errs.ErrAppointmentNotFound
	ErrOrderNotFound       = errs.ErrOrderNotFound
	ErrProductNotFound     = errs.ErrProductNotFound
	ErrPersistenceFailed   = errs.ErrPersistenceFailed
)

type Deps struct {
	Agenda   AgendaRepository
	Orders   OrderRepository
	Products ProductRepository
	Ledger   FinanceLedger
	IDs      order.IDGenerator
	Machine  *order.StateMachine
	Clock    clock.Clock
	Labor    decimal.Decimal
	Logger   *slog.Logger
}

// Workshop is the single-session in-memory model: the slot grid, the order
// collection and the catalog. Every mutation is written back to its
// repository right after it succeeds; the in-memory copy stays authoritative
// when a write fails. mu serializes callers.
type Workshop struct {
	mu     sync.Mutex
	loaded bool

	grid        *agenda.SlotGrid
	orders      []*order.ServiceOrder
	orderByID   map[order.ID]*order.ServiceOrder
	products    []*catalog.Product
	productByID map[uuid.UUID]*catalog.Product

	agendaRepo  AgendaRepository
	orderRepo   OrderRepository
	productRepo ProductRepository
	ledger      FinanceLedger
	ids         order.IDGenerator
	machine     *order.StateMachine
	clock       clock.Clock
	labor       decimal.Decimal
	logger      *slog.Logger
}

func NewWorkshop(d Deps) *Workshop {
	return &Workshop{
		agendaRepo:  d.Agenda,
		orderRepo:   d.Orders,
		productRepo: d.Products,
		ledger:      d.Ledger,
		ids:         d.IDs,
		machine:     d.Machine,
		clock:       d.Clock,
		labor:       d.Labor,
		logger:      d.Logger,
	}
}

// Load reads every collection. Calls after the first successful load are no-ops.
func (w *Workshop) Load(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ensureLoaded(ctx)
}

func (w *Workshop) ensureLoaded(ctx context.Context) error {
	if w.loaded {
		return nil
	}

	grid, err := w.agendaRepo.Load(ctx)
	if err != nil {
		return errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "load slot grid")
	}
	orders, err := w.orderRepo.LoadAll(ctx)
	if err != nil {
		return errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "load service orders")
	}
	products, err := w.productRepo.LoadAll(ctx)
	if err != nil {
		return errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "load catalog")
	}

	w.grid = grid
	w.orders = orders
	w.orderByID = make(map[order.ID]*order.ServiceOrder, len(orders))
	for _, o := range orders {
		w.orderByID[o.ID()] = o
	}
	w.products = products
	w.productByID = make(map[uuid.UUID]*catalog.Product, len(products))
	for _, p := range products {
		w.productByID[p.ID()] = p
	}
	w.loaded = true

	w.logger.Info("Workshop state loaded",
		slog.Int("booked_dates", len(grid.BookedDates())),
		slog.Int("orders", len(orders)),
		slog.Int("products", len(products)))
	return nil
}

func (w *Workshop) findOrder(id order.ID) (*order.ServiceOrder, error) {
	o, ok := w.orderByID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (w *Workshop) findProduct(id uuid.UUID) (*catalog.Product, error) {
	p, ok := w.productByID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (w *Workshop) findAppointment(id uuid.UUID) (*agenda.Appointment, error) {
	a, ok := w.grid.Find(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

func (w *Workshop) saveGrid(ctx context.Context) error {
	if err := w.agendaRepo.Save(ctx, w.grid); err != nil {
		return errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "save slot grid")
	}
	return nil
}

func (w *Workshop) saveOrders(ctx context.Context) error {
	if err := w.orderRepo.SaveAll(ctx, w.orders); err != nil {
		return errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "save service orders")
	}
	return nil
}

func (w *Workshop) saveProducts(ctx context.Context) error {
	if err := w.productRepo.SaveAll(ctx, w.products); err != nil {
		return errs.Wrap(errs.Mark(err, ErrPersistenceFailed), "save catalog")
	}
	return nil
}
