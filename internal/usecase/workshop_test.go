//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/catalog"
	"repairshop/internal/domain/finance"
	"repairshop/internal/domain/order"
	"repairshop/internal/pkg/clock"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/usecase"
	"repairshop/tests/common/builder"
	repositorymock "repairshop/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	today    = time.Date(2025, time.March, 10, 7, 45, 0, 0, time.UTC)
	labor    = decimal.RequireFromString(order.DefaultLaborCharge)
	errStore = errors.New("store unavailable")
)

type fixture struct {
	ctx      context.Context
	agenda   *repositorymock.MockAgendaRepository
	orders   *repositorymock.MockOrderRepository
	products *repositorymock.MockProductRepository
	ledger   *repositorymock.MockFinanceLedger
	ids      *repositorymock.MockIDGenerator
	clock    *clock.MockClock
	events   []order.Event
	workshop *usecase.Workshop
}

// newFixture loads the workshop from the given state. Expectations for writes
// are left to each test.
func newFixture(t *testing.T, grid *agenda.SlotGrid, orders []*order.ServiceOrder, products []*catalog.Product) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctx:      context.Background(),
		agenda:   repositorymock.NewMockAgendaRepository(ctrl),
		orders:   repositorymock.NewMockOrderRepository(ctrl),
		products: repositorymock.NewMockProductRepository(ctrl),
		ledger:   repositorymock.NewMockFinanceLedger(ctrl),
		ids:      repositorymock.NewMockIDGenerator(ctrl),
		clock:    clock.NewMockClock(today),
	}
	if grid == nil {
		var err error
		grid, err = agenda.NewSlotGrid(agenda.DefaultHours())
		require.NoError(t, err)
	}
	f.agenda.EXPECT().Load(gomock.Any()).Return(grid, nil)
	f.orders.EXPECT().LoadAll(gomock.Any()).Return(orders, nil)
	f.products.EXPECT().LoadAll(gomock.Any()).Return(products, nil)

	notifier := order.NotifierFunc(func(_ context.Context, ev order.Event) {
		f.events = append(f.events, ev)
	})
	f.workshop = usecase.NewWorkshop(usecase.Deps{
		Agenda:   f.agenda,
		Orders:   f.orders,
		Products: f.products,
		Ledger:   f.ledger,
		IDs:      f.ids,
		Machine:  order.NewStateMachine(f.clock, notifier),
		Clock:    f.clock,
		Labor:    labor,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, f.workshop.Load(f.ctx))
	return f
}

func bookedGrid(t *testing.T, appts ...*agenda.Appointment) *agenda.SlotGrid {
	t.Helper()
	grid, err := agenda.NewSlotGrid(agenda.DefaultHours())
	require.NoError(t, err)
	for _, a := range appts {
		require.NoError(t, grid.Reserve(a))
	}
	return grid
}

func TestWorkshop_Load(t *testing.T) {
	t.Run("loads once", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)
		require.NoError(t, f.workshop.Load(f.ctx))
	})

	t.Run("failure is a persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		agendaRepo := repositorymock.NewMockAgendaRepository(ctrl)
		agendaRepo.EXPECT().Load(gomock.Any()).Return(nil, errStore)

		w := usecase.NewWorkshop(usecase.Deps{
			Agenda: agendaRepo,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		})
		err := w.Load(context.Background())

		require.True(t, errs.Is(err, usecase.ErrPersistenceFailed), "got %v", err)
		require.ErrorIs(t, err, errStore)
	})
}

func TestWorkshop_BookAppointment(t *testing.T) {
	params := func(hour int) usecase.BookAppointmentParams {
		b := builder.NewAppointmentBuilder().WithHour(hour)
		return usecase.BookAppointmentParams{
			Client:      b.Client,
			Vehicle:     b.Vehicle,
			Mechanic:    b.Mechanic,
			ServiceType: b.ServiceType,
			LiftID:      b.LiftID,
			ScheduledAt: b.ScheduledAt,
		}
	}

	t.Run("reserves and saves", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		view, err := f.workshop.BookAppointment(f.ctx, params(14))
		require.NoError(t, err)

		assert.Equal(t, 4, view.Slot)
		assert.Equal(t, "2025-03-10", view.Date)
		day, err := f.workshop.SlotsForDay(f.ctx, agenda.Date{Year: 2025, Month: time.March, Day: 10})
		require.NoError(t, err)
		require.NotNil(t, day.Slots[4].Appointment)
		assert.Equal(t, 14, day.Slots[4].Hour)
	})

	t.Run("taken slot is not saved", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := f.workshop.BookAppointment(f.ctx, params(9))
		require.NoError(t, err)
		_, err = f.workshop.BookAppointment(f.ctx, params(9))

		require.ErrorIs(t, err, agenda.ErrSlotTaken)
	})

	t.Run("validation happens before loading", func(t *testing.T) {
		w := usecase.NewWorkshop(usecase.Deps{})
		p := params(9)
		p.ServiceType = "painting"

		_, err := w.BookAppointment(context.Background(), p)

		require.ErrorIs(t, err, agenda.ErrInvalidServiceType)
	})

	t.Run("save failure keeps the booking in memory", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errStore)

		_, err := f.workshop.BookAppointment(f.ctx, params(10))

		require.True(t, errs.Is(err, usecase.ErrPersistenceFailed), "got %v", err)
		dates, err := f.workshop.BookedDates(f.ctx)
		require.NoError(t, err)
		assert.Len(t, dates, 1)
	})
}

func TestWorkshop_CancelAppointment(t *testing.T) {
	t.Run("same day books a fee", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().MustBuildDomain()
		f := newFixture(t, bookedGrid(t, appt), nil, nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		var recorded []*finance.Entry
		f.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entries ...*finance.Entry) error {
				recorded = entries
				return nil
			})

		res, err := f.workshop.CancelAppointment(f.ctx, appt.ID(), "flat tyre")
		require.NoError(t, err)

		assert.True(t, res.FeeCharged)
		assert.Equal(t, "30.00", res.Fee.StringFixed(2))
		require.Len(t, recorded, 1)
		assert.Equal(t, finance.KindCancellationFee, recorded[0].Kind())
	})

	t.Run("another day is free", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().WithDay(2025, time.March, 12).MustBuildDomain()
		f := newFixture(t, bookedGrid(t, appt), nil, nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.workshop.CancelAppointment(f.ctx, appt.ID(), "")
		require.NoError(t, err)

		assert.False(t, res.FeeCharged)
		assert.True(t, res.Fee.IsZero())
	})

	t.Run("release is free and unknown ids are not found", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().MustBuildDomain()
		f := newFixture(t, bookedGrid(t, appt), nil, nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.workshop.ReleaseAppointment(f.ctx, appt.ID()))
		assert.ErrorIs(t, f.workshop.ReleaseAppointment(f.ctx, appt.ID()), usecase.ErrAppointmentNotFound)
		_, err := f.workshop.CancelAppointment(f.ctx, uuid.New(), "")
		assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	})
}

func TestWorkshop_OpenOrderFromAppointment(t *testing.T) {
	t.Run("opens and frees the slot", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().MustBuildDomain()
		f := newFixture(t, bookedGrid(t, appt), nil, nil)
		f.ids.EXPECT().Next(gomock.Any()).Return(order.ID("OS-0001"), nil)
		gomock.InOrder(
			f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Len(1)).Return(nil),
			f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := f.workshop.OpenOrderFromAppointment(f.ctx, usecase.OpenOrderParams{
			AppointmentID: appt.ID(),
			Defect:        "Engine noise",
		})
		require.NoError(t, err)

		assert.True(t, res.OrderSaved)
		assert.True(t, res.SlotReleased)
		assert.Equal(t, "OS-0001", res.Order.ID)
		assert.Equal(t, "Waiting", res.Order.Status)
		assert.Equal(t, appt.Mechanic(), res.Order.Mechanic)
		assert.Equal(t, appt.Client(), res.Order.Client)
		assert.True(t, labor.Equal(res.Order.LaborCharge))
		assert.Equal(t, []string{"start_inspection", "cancel"}, res.Order.AllowedOperations)
		require.Len(t, f.events, 1)

		day, err := f.workshop.SlotsForDay(f.ctx, appt.Date())
		require.NoError(t, err)
		assert.Nil(t, day.Slots[1].Appointment)
	})

	t.Run("session mechanic overrides the appointment", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().MustBuildDomain()
		f := newFixture(t, bookedGrid(t, appt), nil, nil)
		f.ids.EXPECT().Next(gomock.Any()).Return(order.ID("OS-0001"), nil)
		f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		session := builder.NewAppointmentBuilder().Mechanic

		res, err := f.workshop.OpenOrderFromAppointment(f.ctx, usecase.OpenOrderParams{
			AppointmentID: appt.ID(),
			Defect:        "Engine noise",
			Mechanic:      session,
		})
		require.NoError(t, err)
		assert.Equal(t, session, res.Order.Mechanic)
	})

	t.Run("order survives when the released slot cannot be saved", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().MustBuildDomain()
		f := newFixture(t, bookedGrid(t, appt), nil, nil)
		f.ids.EXPECT().Next(gomock.Any()).Return(order.ID("OS-0001"), nil)
		f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)
		f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errStore)

		res, err := f.workshop.OpenOrderFromAppointment(f.ctx, usecase.OpenOrderParams{
			AppointmentID: appt.ID(),
			Defect:        "Engine noise",
		})
		require.NoError(t, err)

		assert.True(t, res.SlotReleased)
		assert.Contains(t, res.ReleaseDetail, "store unavailable")
		got, err := f.workshop.GetOrder(f.ctx, "OS-0001")
		require.NoError(t, err)
		assert.Equal(t, "Waiting", got.Status)
	})

	t.Run("order save failure still frees the slot and blocks a second order", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().MustBuildDomain()
		f := newFixture(t, bookedGrid(t, appt), nil, nil)
		f.ids.EXPECT().Next(gomock.Any()).Return(order.ID("OS-0001"), nil)
		gomock.InOrder(
			f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errStore),
			f.agenda.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := f.workshop.OpenOrderFromAppointment(f.ctx, usecase.OpenOrderParams{
			AppointmentID: appt.ID(),
			Defect:        "Engine noise",
		})
		require.NoError(t, err)
		assert.False(t, res.OrderSaved)
		assert.Contains(t, res.SaveDetail, "store unavailable")
		assert.True(t, res.SlotReleased)
		assert.Empty(t, res.ReleaseDetail)

		_, err = f.workshop.OpenOrderFromAppointment(f.ctx, usecase.OpenOrderParams{
			AppointmentID: appt.ID(),
			Defect:        "Engine noise",
		})
		assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)

		orders, err := f.workshop.ListOrders(f.ctx, false)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "OS-0001", orders[0].ID)
		day, err := f.workshop.SlotsForDay(f.ctx, appt.Date())
		require.NoError(t, err)
		assert.Nil(t, day.Slots[1].Appointment)
	})

	t.Run("blank defect and unknown appointment", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)

		_, err := f.workshop.OpenOrderFromAppointment(f.ctx, usecase.OpenOrderParams{AppointmentID: uuid.New(), Defect: " "})
		assert.ErrorIs(t, err, order.ErrBlankDefect)

		_, err = f.workshop.OpenOrderFromAppointment(f.ctx, usecase.OpenOrderParams{AppointmentID: uuid.New(), Defect: "noise"})
		assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	})
}

func TestWorkshop_OrderWorkflow(t *testing.T) {
	t.Run("add part saves catalog then orders", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusInService).BuildReconstructed()
		p := builder.NewProductBuilder().MustBuildDomain()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, []*catalog.Product{p})
		gomock.InOrder(
			f.products.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil),
			f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil),
		)

		view, err := f.workshop.AddPart(f.ctx, o.ID(), p.ID(), 3)
		require.NoError(t, err)

		require.Len(t, view.Parts, 1)
		assert.Equal(t, "37.50", view.Parts[0].Subtotal.StringFixed(2))
		assert.Equal(t, "187.50", view.Total.StringFixed(2))
		assert.Equal(t, 7, p.Stock())
	})

	t.Run("insufficient stock writes nothing", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusInService).BuildReconstructed()
		p := builder.NewProductBuilder().WithStock(2).MustBuildDomain()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, []*catalog.Product{p})

		_, err := f.workshop.AddPart(f.ctx, o.ID(), p.ID(), 3)

		require.ErrorIs(t, err, catalog.ErrInsufficientStock)
		assert.Equal(t, 2, p.Stock())
		assert.Empty(t, o.Parts())
	})

	t.Run("unknown order or product", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusInService).BuildReconstructed()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, nil)

		_, err := f.workshop.AddPart(f.ctx, "OS-9999", uuid.New(), 1)
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
		_, err = f.workshop.AddPart(f.ctx, o.ID(), uuid.New(), 1)
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})

	t.Run("finish records revenue and commission", func(t *testing.T) {
		o := builder.NewOrderBuilder().
			WithStatus(order.StatusInService).
			WithParts(order.ReconstructPartUsage(uuid.New(), "Oil filter", 3, decimal.RequireFromString("12.50"))).
			BuildReconstructed()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, nil)
		f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)
		var recorded []*finance.Entry
		f.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entries ...*finance.Entry) error {
				recorded = entries
				return nil
			})

		view, err := f.workshop.FinishService(f.ctx, o.ID())
		require.NoError(t, err)

		assert.Equal(t, "Finalized", view.Status)
		require.NotNil(t, view.ClosedAt)
		assert.Equal(t, today, *view.ClosedAt)
		assert.Empty(t, view.AllowedOperations)
		require.Len(t, recorded, 2)
		assert.Equal(t, "178.12", finance.Balance(recorded).StringFixed(2))

		_, err = f.workshop.FinishService(f.ctx, o.ID())
		assert.ErrorIs(t, err, order.ErrInvalidOperation)
	})

	t.Run("ledger failure is a persistence error", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusInService).BuildReconstructed()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, nil)
		f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)
		f.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(errStore)

		_, err := f.workshop.FinishService(f.ctx, o.ID())

		require.True(t, errs.Is(err, usecase.ErrPersistenceFailed), "got %v", err)
		status, err := f.workshop.GetStatus(f.ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.StatusFinalized, status)
	})

	t.Run("ledger is told even when the order save fails", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusInService).BuildReconstructed()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, nil)
		gomock.InOrder(
			f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errStore),
			f.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1),
		)

		_, err := f.workshop.FinishService(f.ctx, o.ID())
		require.True(t, errs.Is(err, usecase.ErrPersistenceFailed), "got %v", err)
		assert.Contains(t, err.Error(), "save service orders")

		_, err = f.workshop.FinishService(f.ctx, o.ID())
		assert.ErrorIs(t, err, order.ErrInvalidOperation)
		status, err := f.workshop.GetStatus(f.ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.StatusFinalized, status)
	})

	t.Run("cancel a finalized order", func(t *testing.T) {
		o := builder.NewOrderBuilder().WithStatus(order.StatusFinalized).BuildReconstructed()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, nil)

		_, err := f.workshop.CancelOrder(f.ctx, o.ID(), "")

		assert.ErrorIs(t, err, order.ErrCancelFinalized)
	})

	t.Run("steps in order", func(t *testing.T) {
		o := builder.NewOrderBuilder().BuildReconstructed()
		f := newFixture(t, nil, []*order.ServiceOrder{o}, nil)
		f.orders.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		_, err := f.workshop.StartInspection(f.ctx, o.ID())
		require.NoError(t, err)
		_, err = f.workshop.StartService(f.ctx, o.ID())
		require.NoError(t, err)
		view, err := f.workshop.CancelOrder(f.ctx, o.ID(), "parts unavailable")
		require.NoError(t, err)

		assert.Equal(t, "Cancelled", view.Status)
		assert.Equal(t, "parts unavailable", view.CancelReason)
		assert.Len(t, f.events, 3)
	})
}

func TestWorkshop_Queries(t *testing.T) {
	client := builder.NewAppointmentBuilder().Client
	a1 := builder.NewAppointmentBuilder().WithClient(client).MustBuildDomain()
	a2 := builder.NewAppointmentBuilder().WithDay(2025, time.March, 12).WithClient(client).MustBuildDomain()
	a3 := builder.NewAppointmentBuilder().WithHour(16).MustBuildDomain()

	active := builder.NewOrderBuilder().BuildReconstructed()
	done := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.ID = "OS-0002"
		b.Status = order.StatusFinalized
	}).BuildReconstructed()

	f := newFixture(t, bookedGrid(t, a1, a2, a3), []*order.ServiceOrder{active, done}, nil)

	t.Run("search needs exactly one filter", func(t *testing.T) {
		_, err := f.workshop.SearchAppointments(f.ctx, usecase.AppointmentSearch{})
		assert.ErrorIs(t, err, usecase.ErrInvalidSearch)

		date := a1.Date()
		id := client.ID
		_, err = f.workshop.SearchAppointments(f.ctx, usecase.AppointmentSearch{Date: &date, ClientID: &id})
		assert.ErrorIs(t, err, usecase.ErrInvalidSearch)
	})

	t.Run("search by date", func(t *testing.T) {
		date := a1.Date()
		got, err := f.workshop.SearchAppointments(f.ctx, usecase.AppointmentSearch{Date: &date})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, a1.ID(), got[0].ID)
		assert.Equal(t, a3.ID(), got[1].ID)
	})

	t.Run("search by client", func(t *testing.T) {
		id := client.ID
		got, err := f.workshop.SearchAppointments(f.ctx, usecase.AppointmentSearch{ClientID: &id})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, a2.ID(), got[1].ID)
	})

	t.Run("active orders", func(t *testing.T) {
		all, err := f.workshop.ListOrders(f.ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		activeOnly, err := f.workshop.ListOrders(f.ctx, true)
		require.NoError(t, err)
		require.Len(t, activeOnly, 1)
		assert.Equal(t, "OS-0001", activeOnly[0].ID)
	})

	t.Run("extract", func(t *testing.T) {
		ex, err := f.workshop.GetExtract(f.ctx, "OS-0002")
		require.NoError(t, err)
		assert.Equal(t, "150.00", ex.Total.StringFixed(2))
		assert.Contains(t, ex.Statement, "OS-0002")

		_, err = f.workshop.GetExtract(f.ctx, "OS-0404")
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})

	t.Run("ledger", func(t *testing.T) {
		fee, err := finance.NewEntry(finance.KindCancellationFee, decimal.NewFromInt(30), "x", "fee", today)
		require.NoError(t, err)
		f.ledger.EXPECT().Entries(gomock.Any()).Return([]*finance.Entry{fee}, nil)

		view, err := f.workshop.LedgerEntries(f.ctx)
		require.NoError(t, err)
		require.Len(t, view.Entries, 1)
		assert.Equal(t, "30.00", view.Balance.StringFixed(2))
	})
}

func TestWorkshop_Catalog(t *testing.T) {
	t.Run("register, reprice and restock", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)
		f.products.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		p, err := f.workshop.RegisterProduct(f.ctx, usecase.RegisterProductParams{
			Name:  "Brake pad",
			Price: decimal.RequireFromString("89.90"),
			Stock: 4,
		})
		require.NoError(t, err)
		_, err = f.workshop.UpdateProductPrice(f.ctx, p.ID, decimal.RequireFromString("95.00"))
		require.NoError(t, err)
		got, err := f.workshop.Restock(f.ctx, p.ID, 6)
		require.NoError(t, err)

		assert.Equal(t, 10, got.Stock)
		assert.Equal(t, "95.00", got.Price.StringFixed(2))
		list, err := f.workshop.ListProducts(f.ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("invalid price", func(t *testing.T) {
		p := builder.NewProductBuilder().MustBuildDomain()
		f := newFixture(t, nil, nil, []*catalog.Product{p})

		_, err := f.workshop.UpdateProductPrice(f.ctx, p.ID(), decimal.Zero)
		assert.ErrorIs(t, err, catalog.ErrInvalidPrice)
		_, err = f.workshop.Restock(f.ctx, uuid.New(), 1)
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})
}
