package order

import (
	"context"
	"strings"

	"repairshop/internal/domain/catalog"
	"repairshop/internal/pkg/clock"
)

// StateMachine drives service orders through their workflow. It owns the
// side effects of each transition: stock consumption, closing timestamps and
// the notification fired after every successful step.
type StateMachine struct {
	clock    clock.Clock
	notifier Notifier
	ledger   PartLedger
}

func NewStateMachine(clk clock.Clock, notifier Notifier) *StateMachine {
	if notifier == nil {
		notifier = Notifiers(nil)
	}
	return &StateMachine{clock: clk, notifier: notifier}
}

func (m *StateMachine) Open(ctx context.Context, p OpenParams) (*ServiceOrder, error) {
	if p.OpenedAt.IsZero() {
		p.OpenedAt = m.clock.Now()
	}
	o, err := Open(p)
	if err != nil {
		return nil, err
	}
	m.notifier.Notify(ctx, o.event(p.OpenedAt))
	return o, nil
}

func (m *StateMachine) StartInspection(ctx context.Context, o *ServiceOrder) error {
	return m.step(ctx, o, OpStartInspection)
}

func (m *StateMachine) StartService(ctx context.Context, o *ServiceOrder) error {
	return m.step(ctx, o, OpStartService)
}

// AddPart is only valid in service. Insufficient stock returns
// catalog.ErrInsufficientStock and leaves order and product as they were.
func (m *StateMachine) AddPart(ctx context.Context, o *ServiceOrder, product *catalog.Product, qty int) (PartUsage, error) {
	if _, err := next(o.status, OpAddPart); err != nil {
		return PartUsage{}, err
	}
	usage, err := m.ledger.Consume(product, qty)
	if err != nil {
		return PartUsage{}, err
	}
	o.parts = append(o.parts, usage)
	m.notifier.Notify(ctx, o.event(m.clock.Now()))
	return usage, nil
}

func (m *StateMachine) FinishService(ctx context.Context, o *ServiceOrder) error {
	if err := o.transition(OpFinishService); err != nil {
		return err
	}
	now := m.clock.Now()
	o.close(now)
	m.notifier.Notify(ctx, o.event(now))
	return nil
}

func (m *StateMachine) Cancel(ctx context.Context, o *ServiceOrder, reason string) error {
	if err := o.transition(OpCancel); err != nil {
		return err
	}
	now := m.clock.Now()
	o.cancelReason = strings.TrimSpace(reason)
	o.close(now)
	m.notifier.Notify(ctx, o.event(now))
	return nil
}

func (m *StateMachine) Status(o *ServiceOrder) Status {
	return o.status
}

func (m *StateMachine) step(ctx context.Context, o *ServiceOrder, op Operation) error {
	if err := o.transition(op); err != nil {
		return err
	}
	m.notifier.Notify(ctx, o.event(m.clock.Now()))
	return nil
}
