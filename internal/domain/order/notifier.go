package order

import (
	"context"
	"time"

	"repairshop/internal/domain/party"
)

// Event is what observers receive after each successful transition.
type Event struct {
	OrderID ID
	Status  Status
	Client  party.Client
	Vehicle party.Vehicle
	At      time.Time
}

// Notifier must not fail the transition that triggered it; delivery errors
// are the implementation's to handle.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// Notifiers fans an event out to each observer in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(ctx context.Context, ev Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(ctx, ev)
		}
	}
}

type NotifierFunc func(ctx context.Context, ev Event)

func (f NotifierFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }
