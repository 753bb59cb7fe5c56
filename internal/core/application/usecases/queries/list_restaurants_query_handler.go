package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantPageCache stores rendered restaurant pages keyed by page and limit.
//
// Get also reports the cache generation it looked in. Set writes into that generation,
// so a page loaded before an invalidation lands where nobody reads it.
type RestaurantPageCache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, page, limit int) (value ListRestaurantsQueryResponse, generation int64, found bool, err error)
	Set(ctx context.Context, generation int64, page, limit int, value ListRestaurantsQueryResponse) error
}

// ListRestaurantsQueryHandler serves restaurant pages, from the cache when it can.
// Cache errors fall back to the database without refilling the cache; the cache is optional.
//
// Example:
//
//	handler := NewListRestaurantsQueryHandler(db, redisCache)
//	page, err := handler.Handle(ctx, NewListRestaurantsQuery(1, 20))
type ListRestaurantsQueryHandler struct {
	db    *gorm.DB
	cache RestaurantPageCache
}

func NewListRestaurantsQueryHandler(db *gorm.DB, cache RestaurantPageCache) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{
		db:    db,
		cache: cache,
	}
}

func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) (ListRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListRestaurantsQueryResponse{}, err
	}

	var (
		generation int64
		cacheable  bool
	)
	if h.cache != nil {
		cached, gen, found, err := h.cache.Get(ctx, query.Page(), query.Limit())
		if err == nil && found {
			return cached, nil
		}
		generation, cacheable = gen, err == nil
	}

	restaurants, err := h.loadAll(ctx)
	if err != nil {
		return ListRestaurantsQueryResponse{}, err
	}

	page := pagination.Paginate(restaurants, query.Page(), query.Limit())

	if cacheable {
		_ = h.cache.Set(ctx, generation, query.Page(), query.Limit(), page)
	}

	return page, nil
}

func (h ListRestaurantsQueryHandler) loadAll(ctx context.Context) ([]RestaurantSummary, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			slug,
			location_latitude,
			location_longitude,
			prep_minutes,
			email,
			phone
		FROM restaurants
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantSummary, 0)
	for rows.Next() {
		var (
			r         RestaurantSummary
			id        uuid.UUID
			latitude  float64
			longitude float64
		)

		if err = rows.Scan(
			&id,
			&r.Name,
			&r.Slug,
			&latitude,
			&longitude,
			&r.PrepMinutes,
			&r.Email,
			&r.Phone,
		); err != nil {
			return nil, err
		}

		r.ID = kernel.UUIDFromGoogle(id)
		if r.Location, err = kernel.NewLocation(latitude, longitude); err != nil {
			return nil, err
		}

		restaurants = append(restaurants, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
