package order

import "fmt"

var transitions = map[Status]map[Operation]Status{
	StatusWaiting: {
		OpStartInspection: StatusInspecting,
		OpCancel:          StatusCancelled,
	},
	StatusInspecting: {
		OpStartService: StatusInService,
		OpCancel:       StatusCancelled,
	},
	StatusInService: {
		OpAddPart:       StatusInService,
		OpFinishService: StatusFinalized,
		OpCancel:        StatusCancelled,
	},
	StatusFinalized: {},
	StatusCancelled: {},
}

// operationOrder fixes the listing order of AllowedOperations.
var operationOrder = []Operation{OpStartInspection, OpStartService, OpAddPart, OpFinishService, OpCancel}

// InvalidOperationError reports an operation the current state does not accept.
type InvalidOperationError struct {
	Op     Operation
	Status Status
	cause  error
}

func (e *InvalidOperationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (current state: %s)", e.cause.Error(), e.Status)
	}
	return fmt.Sprintf("operation %s not allowed in current state: %s", e.Op, e.Status)
}

func (e *InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation || (e.cause != nil && target == e.cause)
}

func (e *InvalidOperationError) Unwrap() error {
	return e.cause
}

func next(from Status, op Operation) (Status, error) {
	if to, ok := transitions[from][op]; ok {
		return to, nil
	}
	err := &InvalidOperationError{Op: op, Status: from}
	if op == OpCancel {
		switch from {
		case StatusFinalized:
			err.cause = ErrCancelFinalized
		case StatusCancelled:
			err.cause = ErrAlreadyCancelled
		}
	}
	return "", err
}

func AllowedOperations(s Status) []Operation {
	var ops []Operation
	for _, op := range operationOrder {
		if _, ok := transitions[s][op]; ok {
			ops = append(ops, op)
		}
	}
	return ops
}
