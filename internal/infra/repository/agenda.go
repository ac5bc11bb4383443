package repository

import (
	"context"
	"log/slog"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/infra"
	"repairshop/internal/infra/repository/converter"
	"repairshop/internal/infra/store"
)

type AgendaRepository struct {
	store  store.Store
	hours  agenda.Hours
	logger *slog.Logger
}

func NewAgendaRepository(s store.Store, hours agenda.Hours, logger *slog.Logger) *AgendaRepository {
	return &AgendaRepository{store: s, hours: hours, logger: logger}
}

func (r *AgendaRepository) Load(ctx context.Context) (*agenda.SlotGrid, error) {
	var doc converter.GridDoc
	found, err := loadDoc(ctx, r.store, r.logger, store.KeyAppointments, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return agenda.NewSlotGrid(r.hours)
	}
	grid, unplaced, err := converter.GridFromDoc(r.hours, doc)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "rebuild slot grid", err)
	}
	for _, a := range unplaced {
		r.logger.Warn("Appointment does not fit the configured hours",
			"appointment_id", a.ID(),
			"scheduled_at", a.ScheduledAt(),
			"client", a.Client().Name,
		)
	}
	return grid, nil
}

func (r *AgendaRepository) Save(ctx context.Context, grid *agenda.SlotGrid) error {
	return saveDoc(ctx, r.store, r.logger, store.KeyAppointments, converter.GridToDoc(grid))
}
