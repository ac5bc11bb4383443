//go:build unit

package repository_test

import (
	"bytes"
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
	"repairshop/internal/infra"
	"repairshop/internal/infra/repository"
	"repairshop/internal/infra/store"
	"repairshop/tests/common/builder"
	storemock "repairshop/tests/mock/store"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFileStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir(), discardLogger())
	require.NoError(t, err)
	return s
}

func TestAgendaRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store gives an empty grid", func(t *testing.T) {
		repo := repository.NewAgendaRepository(newFileStore(t), agenda.DefaultHours(), discardLogger())

		grid, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, grid.BookedDates())
	})

	t.Run("round trip keeps slots and released rows", func(t *testing.T) {
		s := newFileStore(t)
		repo := repository.NewAgendaRepository(s, agenda.DefaultHours(), discardLogger())
		grid, err := agenda.NewSlotGrid(agenda.DefaultHours())
		require.NoError(t, err)

		brt := time.FixedZone("BRT", -3*3600)
		kept := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.ScheduledAt = time.Date(2025, time.March, 10, 15, 0, 0, 0, brt)
		}).MustBuildDomain()
		released := builder.NewAppointmentBuilder().WithDay(2025, time.March, 11).MustBuildDomain()
		require.NoError(t, grid.Reserve(kept))
		require.NoError(t, grid.Reserve(released))
		require.NoError(t, grid.Release(released))
		require.NoError(t, repo.Save(ctx, grid))

		loaded, err := repository.NewAgendaRepository(s, agenda.DefaultHours(), discardLogger()).Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, grid.BookedDates(), loaded.BookedDates())
		slot := loaded.SlotsForDay(kept.Date())[5]
		require.NotNil(t, slot)
		assert.Equal(t, kept.ID(), slot.ID())
		assert.Equal(t, kept.Client(), slot.Client())
		assert.True(t, kept.ScheduledAt().Equal(slot.ScheduledAt()))
		assert.Equal(t, 15, slot.Hour())
		require.NotNil(t, slot.Lift())
		assert.Equal(t, 1, slot.Lift().ID())
		for _, a := range loaded.SlotsForDay(released.Date()) {
			assert.Nil(t, a)
		}
	})

	t.Run("rows saved under other hours", func(t *testing.T) {
		s := newFileStore(t)
		grid, err := agenda.NewSlotGrid(agenda.DefaultHours())
		require.NoError(t, err)
		nine := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.ID = uuid.New() }).MustBuildDomain()
		five := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.ID = uuid.New() }).WithHour(17).MustBuildDomain()
		require.NoError(t, grid.Reserve(nine))
		require.NoError(t, grid.Reserve(five))
		require.NoError(t, repository.NewAgendaRepository(s, agenda.DefaultHours(), discardLogger()).Save(ctx, grid))

		var logs bytes.Buffer
		shifted := agenda.Hours{MorningStart: 7, MorningEnd: 11, AfternoonStart: 13, AfternoonEnd: 17}
		loaded, err := repository.NewAgendaRepository(s, shifted, slog.New(slog.NewTextHandler(&logs, nil))).Load(ctx)
		require.NoError(t, err)

		assert.True(t, loaded.SlotsForDay(nine.Date())[2].Equals(nine))
		_, ok := loaded.Find(five.ID())
		assert.False(t, ok)
		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), five.ID().String())
		require.NoError(t, loaded.Release(nine))
	})

	t.Run("corrupt document", func(t *testing.T) {
		s := newFileStore(t)
		require.NoError(t, s.Save(ctx, store.KeyAppointments, []byte(`{"rows": 42}`)))

		_, err := repository.NewAgendaRepository(s, agenda.DefaultHours(), discardLogger()).Load(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
	})

	t.Run("unknown service type in a row", func(t *testing.T) {
		s := newFileStore(t)
		doc := `{"rows":{"2025-03-10":[null,{"id":"` + uuid.NewString() + `","service_type":"painting","scheduled_at":"2025-03-10T09:00:00Z"}]}}`
		require.NoError(t, s.Save(ctx, store.KeyAppointments, []byte(doc)))

		_, err := repository.NewAgendaRepository(s, agenda.DefaultHours(), discardLogger()).Load(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
		assert.ErrorIs(t, err, agenda.ErrInvalidServiceType)
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)
	repo := repository.NewOrderRepository(s, discardLogger())

	closed := time.Date(2025, time.March, 10, 17, 30, 0, 0, time.UTC)
	finalized := builder.NewOrderBuilder().
		WithStatus(order.StatusFinalized).
		WithParts(order.ReconstructPartUsage(uuid.New(), "Oil filter", 3, decimal.RequireFromString("12.50"))).
		With(func(b *builder.OrderBuilder) { b.ClosedAt = &closed }).
		BuildReconstructed()
	cancelled := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.ID = "OS-0002"
		b.Status = order.StatusCancelled
		b.CancelReason = "client gave up"
		b.ClosedAt = &closed
	}).BuildReconstructed()

	orders, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	require.NoError(t, repo.SaveAll(ctx, []*order.ServiceOrder{finalized, cancelled}))
	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, order.StatusFinalized, loaded[0].Status())
	assert.Equal(t, finalized.Client(), loaded[0].Client())
	require.NotNil(t, loaded[0].ClosedAt())
	assert.True(t, closed.Equal(*loaded[0].ClosedAt()))
	require.Len(t, loaded[0].Parts(), 1)
	assert.Equal(t, "12.50", loaded[0].Parts()[0].UnitPrice().StringFixed(2))
	assert.Equal(t,
		order.GenerateExtract(finalized).Total.StringFixed(2),
		order.GenerateExtract(loaded[0]).Total.StringFixed(2))

	assert.Equal(t, order.ID("OS-0002"), loaded[1].ID())
	assert.Equal(t, "client gave up", loaded[1].CancelReason())

	t.Run("unknown status tag", func(t *testing.T) {
		s := newFileStore(t)
		require.NoError(t, s.Save(ctx, store.KeyOrders, []byte(`[{"id":"OS-0009","status":"Paused","opened_at":"2025-03-10T09:00:00Z"}]`)))

		_, err := repository.NewOrderRepository(s, discardLogger()).LoadAll(ctx)

		assert.ErrorIs(t, err, order.ErrUnknownStatus)
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	seed, err := repository.ParseCatalogSeed([]byte(`
products:
  - id: 6f1c1d1e-4a35-4c83-9a57-d0a4a3f3c001
    name: Oil filter
    price: "35.90"
    stock: 20
    supplier: Acme Parts
  - name: Spark plug
    price: "19.99"
    stock: 40
`))
	require.NoError(t, err)

	t.Run("seed fills an empty catalog", func(t *testing.T) {
		repo := repository.NewProductRepository(newFileStore(t), seed, discardLogger())

		products, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "6f1c1d1e-4a35-4c83-9a57-d0a4a3f3c001", products[0].ID().String())
		assert.Equal(t, "35.90", products[0].Price().StringFixed(2))
		assert.Equal(t, "Spark plug", products[1].Name())
		assert.Equal(t, 40, products[1].Stock())
	})

	t.Run("saved catalog wins over the seed", func(t *testing.T) {
		s := newFileStore(t)
		repo := repository.NewProductRepository(s, seed, discardLogger())
		require.NoError(t, repo.SaveAll(ctx, nil))

		products, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("round trip", func(t *testing.T) {
		repo := repository.NewProductRepository(newFileStore(t), nil, discardLogger())
		p := builder.NewProductBuilder().WithPrice("7.35").WithStock(3).MustBuildDomain()

		require.NoError(t, repo.SaveAll(ctx, []*catalog.Product{p}))
		products, err := repo.LoadAll(ctx)
		require.NoError(t, err)

		require.Len(t, products, 1)
		got := products[0]
		assert.Equal(t, p.ID(), got.ID())
		assert.True(t, p.Price().Equal(got.Price()))
		assert.Equal(t, 3, got.Stock())
		assert.Equal(t, "Acme Parts", got.Supplier())
	})

	t.Run("invalid seed price", func(t *testing.T) {
		bad, err := repository.ParseCatalogSeed([]byte("products:\n  - name: X\n    price: abc\n"))
		require.NoError(t, err)
		_, err = bad.Build()
		assert.Error(t, err)
	})

	t.Run("no seed path", func(t *testing.T) {
		s, err := repository.LoadCatalogSeed("")
		require.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLedgerRepository(newFileStore(t), discardLogger())
	at := time.Date(2025, time.March, 10, 17, 0, 0, 0, time.UTC)

	entries, err := repo.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	first, err := finance.NewEntry(finance.KindServiceRevenue, decimal.RequireFromString("187.50"), "OS-0001", "revenue", at)
	require.NoError(t, err)
	second, err := finance.NewEntry(finance.KindMechanicCommission, decimal.RequireFromString("9.38"), "OS-0001", "commission", at)
	require.NoError(t, err)
	third, err := finance.NewEntry(finance.KindCancellationFee, decimal.RequireFromString("30"), "appt", "fee", at)
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, first, second))
	require.NoError(t, repo.Append(ctx))
	require.NoError(t, repo.Append(ctx, third))

	entries, err = repo.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	gotKinds := []finance.Kind{entries[0].Kind(), entries[1].Kind(), entries[2].Kind()}
	wantKinds := []finance.Kind{finance.KindServiceRevenue, finance.KindMechanicCommission, finance.KindCancellationFee}
	if diff := cmp.Diff(wantKinds, gotKinds); diff != "" {
		t.Errorf("ledger order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, first.ID(), entries[0].ID())
	assert.True(t, at.Equal(entries[2].RecordedAt()))
	assert.Equal(t, "208.12", finance.Balance(entries).StringFixed(2))
}

func TestSequenceIDGenerator(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	gen := repository.NewSequenceIDGenerator(s, discardLogger())
	for _, want := range []order.ID{"OS-0001", "OS-0002", "OS-0003"} {
		got, err := gen.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	t.Run("continues after restart", func(t *testing.T) {
		next, err := repository.NewSequenceIDGenerator(s, discardLogger()).Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, order.ID("OS-0004"), next)
	})

	t.Run("uuid generator", func(t *testing.T) {
		id, err := repository.UUIDGenerator{}.Next(ctx)
		require.NoError(t, err)
		_, err = uuid.Parse(id.String())
		assert.NoError(t, err)
	})
}

func TestRepository_StoreFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := infra.WrapRepoErr(discardLogger(), infra.KindStoreFailure, "read", errors.New("io error"))

	testCases := []struct {
		name      string
		setupMock func(*storemock.MockStore)
		run       func(store.Store) error
	}{
		{
			name: "agenda load",
			setupMock: func(m *storemock.MockStore) {
				m.EXPECT().Load(ctx, store.KeyAppointments).Return(nil, storeErr)
			},
			run: func(s store.Store) error {
				_, err := repository.NewAgendaRepository(s, agenda.DefaultHours(), discardLogger()).Load(ctx)
				return err
			},
		},
		{
			name: "orders save",
			setupMock: func(m *storemock.MockStore) {
				m.EXPECT().Save(ctx, store.KeyOrders, gomock.Any()).Return(storeErr)
			},
			run: func(s store.Store) error {
				return repository.NewOrderRepository(s, discardLogger()).SaveAll(ctx, nil)
			},
		},
		{
			name: "ledger append stops before writing",
			setupMock: func(m *storemock.MockStore) {
				m.EXPECT().Load(ctx, store.KeyLedger).Return(nil, storeErr)
			},
			run: func(s store.Store) error {
				e, err := finance.NewEntry(finance.KindCancellationFee, decimal.NewFromInt(30), "x", "", time.Now())
				if err != nil {
					return err
				}
				return repository.NewLedgerRepository(s, discardLogger()).Append(ctx, e)
			},
		},
		{
			name: "sequence not advanced when save fails",
			setupMock: func(m *storemock.MockStore) {
				m.EXPECT().Load(ctx, store.KeySequences).Return(nil, infra.NotFound(store.KeySequences))
				m.EXPECT().Save(ctx, store.KeySequences, gomock.Any()).Return(storeErr)
			},
			run: func(s store.Store) error {
				_, err := repository.NewSequenceIDGenerator(s, discardLogger()).Next(ctx)
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := storemock.NewMockStore(ctrl)
			tc.setupMock(m)

			err := tc.run(m)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, infra.KindStoreFailure), "got %v", err)
		})
	}
}
