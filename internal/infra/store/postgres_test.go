//go:build unit

package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"repairshop/internal/infra"
	"repairshop/internal/infra/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag(ret.String(0)), ret.Error(1)
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgx.Row)
}

type fakeRow struct {
	body []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.body
	return nil
}

func newPostgresStore(t *testing.T, q *mockQuerier) *store.PostgresStore {
	t.Helper()
	q.On("Exec", mock.Anything, mock.MatchedBy(func(sql string) bool {
		return containsAll(sql, "CREATE TABLE IF NOT EXISTS documents", "JSONB")
	}), mock.Anything).Return("CREATE TABLE", nil).Once()
	s, err := store.NewPostgresStore(context.Background(), q, discardLogger())
	require.NoError(t, err)
	return s
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load returns the stored body", func(t *testing.T) {
		q := &mockQuerier{}
		s := newPostgresStore(t, q)
		q.On("QueryRow", ctx, mock.Anything, []any{store.KeyOrders}).Return(fakeRow{body: []byte(`[]`)})

		body, err := s.Load(ctx, store.KeyOrders)

		require.NoError(t, err)
		assert.Equal(t, `[]`, string(body))
		q.AssertExpectations(t)
	})

	t.Run("no rows is not found", func(t *testing.T) {
		q := &mockQuerier{}
		s := newPostgresStore(t, q)
		q.On("QueryRow", ctx, mock.Anything, mock.Anything).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := s.Load(ctx, store.KeyLedger)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("driver failure on load", func(t *testing.T) {
		q := &mockQuerier{}
		s := newPostgresStore(t, q)
		q.On("QueryRow", ctx, mock.Anything, mock.Anything).Return(fakeRow{err: errors.New("connection reset")})

		_, err := s.Load(ctx, store.KeyLedger)

		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})

	t.Run("save upserts the document as text", func(t *testing.T) {
		q := &mockQuerier{}
		s := newPostgresStore(t, q)
		q.On("Exec", ctx, mock.MatchedBy(func(sql string) bool {
			return containsAll(sql, "INSERT INTO documents", "ON CONFLICT (key)")
		}), []any{store.KeyProducts, `[{"name":"Oil filter"}]`}).Return("INSERT 0 1", nil).Once()

		require.NoError(t, s.Save(ctx, store.KeyProducts, []byte(`[{"name":"Oil filter"}]`)))
		q.AssertExpectations(t)
	})

	t.Run("save failure", func(t *testing.T) {
		q := &mockQuerier{}
		s := newPostgresStore(t, q)
		q.On("Exec", ctx, mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

		err := s.Save(ctx, store.KeyProducts, []byte(`[]`))

		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})

	t.Run("table creation failure", func(t *testing.T) {
		q := &mockQuerier{}
		q.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("permission denied"))

		_, err := store.NewPostgresStore(ctx, q, discardLogger())

		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
