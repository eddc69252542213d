package calculation

import (
	"errors"

	"github.com/aiof/projection-engine/internal/domain"
)

var (
	// ErrEmptyInput is returned when an aggregate is requested over an empty collection
	ErrEmptyInput = errors.New("empty input")
	// ErrDivisionByZero is returned when a ratio's denominator is not positive
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnrecognizedLifeEvent marks an event type outside the catalog
	ErrUnrecognizedLifeEvent = errors.New("unrecognized life event")
	// ErrUnimplementedLifeEvent marks a catalog event type that has no model yet
	ErrUnimplementedLifeEvent = errors.New("life event not implemented")
)

// LifeEventErr converts a non-simulated life event status into its sentinel
// error. Callers that treat pass-through results as failures use it; the
// simulator itself never returns these errors.
func LifeEventErr(res *domain.LifeEventResult) error {
	if res == nil {
		return nil
	}
	switch res.Status {
	case domain.LifeEventUnrecognized:
		return ErrUnrecognizedLifeEvent
	case domain.LifeEventNotImplemented:
		return ErrUnimplementedLifeEvent
	default:
		return nil
	}
}
