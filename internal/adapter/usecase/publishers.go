package usecase

import (
	"context"
	"errors"

	"hermes-ido/internal/core/domain"
	"hermes-ido/internal/core/port"
)

// Publishers fans one event out to several publishers. Every publisher is
// tried; the returned error joins all failures.
type Publishers []port.EventPublisher

// Publish implements port.EventPublisher.
func (ps Publishers) Publish(ctx context.Context, evt domain.Event) error {
	var errs []error
	for _, p := range ps {
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
