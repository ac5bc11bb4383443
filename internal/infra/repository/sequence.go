package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"repairshop/internal/domain/order"
	"repairshop/internal/infra/store"

	"github.com/google/uuid"
)

const orderSequence = "service_order"

// SequenceIDGenerator numbers orders OS-0001, OS-0002, ... and persists the
// counter in the sequences document before handing a number out.
type SequenceIDGenerator struct {
	store  store.Store
	logger *slog.Logger
	mu     sync.Mutex
}

func NewSequenceIDGenerator(s store.Store, logger *slog.Logger) *SequenceIDGenerator {
	return &SequenceIDGenerator{store: s, logger: logger}
}

func (g *SequenceIDGenerator) Next(ctx context.Context) (order.ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seqs := map[string]int64{}
	if _, err := loadDoc(ctx, g.store, g.logger, store.KeySequences, &seqs); err != nil {
		return "", err
	}
	n := seqs[orderSequence] + 1
	seqs[orderSequence] = n
	if err := saveDoc(ctx, g.store, g.logger, store.KeySequences, seqs); err != nil {
		return "", err
	}
	return order.ID(fmt.Sprintf("OS-%04d", n)), nil
}

// UUIDGenerator is the stateless alternative.
type UUIDGenerator struct{}

func (UUIDGenerator) Next(context.Context) (order.ID, error) {
	return order.ID(uuid.NewString()), nil
}
