package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingID       = errors.New("service order requires an identifier")
	ErrMissingClient   = errors.New("service order requires a client")
	ErrMissingVehicle  = errors.New("service order requires a vehicle")
	ErrMissingMechanic = errors.New("service order requires a mechanic")
	ErrBlankDefect     = errors.New("reported defect cannot be blank")
	ErrNegativeLabor   = errors.New("labor charge cannot be negative")
	ErrUnknownStatus   = errors.New("unknown service order status")

	ErrInvalidOperation = errors.New("operation not allowed in current state")
	ErrCancelFinalized  = errors.New("a finalized service order cannot be cancelled")
	ErrAlreadyCancelled = errors.New("service order is already cancelled")
)

// ID is the human-readable order number handed out by an IDGenerator.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

type Status string

const (
	StatusWaiting    Status = "Waiting"
	StatusInspecting Status = "Inspecting"
	StatusInService  Status = "InService"
	StatusFinalized  Status = "Finalized"
	StatusCancelled  Status = "Cancelled"
)

var statusByTag = map[string]Status{
	string(StatusWaiting):    StatusWaiting,
	string(StatusInspecting): StatusInspecting,
	string(StatusInService):  StatusInService,
	string(StatusFinalized):  StatusFinalized,
	string(StatusCancelled):  StatusCancelled,
}

// ParseStatus resolves a persisted tag to its state.
func ParseStatus(tag string) (Status, error) {
	s, ok := statusByTag[tag]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, tag)
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusByTag[string(s)]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

type Operation string

const (
	OpStartInspection Operation = "start_inspection"
	OpStartService    Operation = "start_service"
	OpAddPart         Operation = "add_part"
	OpFinishService   Operation = "finish_service"
	OpCancel          Operation = "cancel"
)

func (o Operation) String() string {
	return string(o)
}
