package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/errs"
)

// MaxSlugAttempts bounds how many slug variants ("name", "name-2", ...) are tried.
const MaxSlugAttempts = 5

var ErrSlugIsTaken = errors.New("no free slug for restaurant name")

// CreateRestaurantResult identifies the stored restaurant.
type CreateRestaurantResult struct {
	RestaurantID kernel.UUID
	Slug         string
}

type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	cache      RestaurantCacheInvalidator
}

// NewCreateRestaurantCommandHandler builds the handler. cache may be nil.
func NewCreateRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	cache RestaurantCacheInvalidator,
) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle stores the restaurant under the first free slug. A conflicting slug is retried
// with "-2", "-3" and so on in a fresh transaction, since a failed insert aborts the
// current one.
func (h CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (CreateRestaurantResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateRestaurantResult{}, err
	}

	location, err := kernel.NewLocation(cmd.Latitude(), cmd.Longitude())
	if err != nil {
		return CreateRestaurantResult{}, err
	}

	r, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.Name(), location, cmd.PrepMinutes(), cmd.Email(), cmd.Phone(),
	)
	if err != nil {
		return CreateRestaurantResult{}, err
	}

	for attempt := 1; attempt <= MaxSlugAttempts; attempt++ {
		r.WithSlugSuffix(attempt)

		err = h.add(ctx, r)
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			continue
		}
		if err != nil {
			return CreateRestaurantResult{}, err
		}

		if h.cache != nil {
			// A failed invalidation leaves listings stale until their TTL.
			_ = h.cache.Invalidate(ctx)
		}

		return CreateRestaurantResult{RestaurantID: r.ID(), Slug: r.Slug()}, nil
	}

	return CreateRestaurantResult{}, fmt.Errorf("%w: %q after %d attempts", ErrSlugIsTaken, cmd.Name(), MaxSlugAttempts)
}

func (h CreateRestaurantCommandHandler) add(ctx context.Context, r *restaurant.Restaurant) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestaurantRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
