package restaurantcache

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
)

type PageDTO struct {
	Data       []RestaurantDTO `json:"data"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
	TotalItems int             `json:"totalItems"`
}

type RestaurantDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PrepMinutes int     `json:"prepMinutes"`
	Email       string  `json:"email,omitempty"`
	Phone       string  `json:"phone,omitempty"`
}

func fromResponse(page queries.ListRestaurantsQueryResponse) PageDTO {
	dto := PageDTO{
		Data:       make([]RestaurantDTO, 0, len(page.Data)),
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
	for _, r := range page.Data {
		dto.Data = append(dto.Data, RestaurantDTO{
			ID:          r.ID.String(),
			Name:        r.Name,
			Slug:        r.Slug,
			Latitude:    r.Location.Latitude(),
			Longitude:   r.Location.Longitude(),
			PrepMinutes: r.PrepMinutes,
			Email:       r.Email,
			Phone:       r.Phone,
		})
	}
	return dto
}

func toResponse(dto PageDTO) (queries.ListRestaurantsQueryResponse, error) {
	page := queries.ListRestaurantsQueryResponse{
		Data:       make([]queries.RestaurantSummary, 0, len(dto.Data)),
		Page:       dto.Page,
		Limit:      dto.Limit,
		TotalPages: dto.TotalPages,
		TotalItems: dto.TotalItems,
	}
	for _, r := range dto.Data {
		id, err := kernel.UUIDFromString(r.ID)
		if err != nil {
			return queries.ListRestaurantsQueryResponse{}, err
		}
		location, err := kernel.NewLocation(r.Latitude, r.Longitude)
		if err != nil {
			return queries.ListRestaurantsQueryResponse{}, err
		}
		page.Data = append(page.Data, queries.RestaurantSummary{
			ID:          id,
			Name:        r.Name,
			Slug:        r.Slug,
			Location:    location,
			PrepMinutes: r.PrepMinutes,
			Email:       r.Email,
			Phone:       r.Phone,
		})
	}
	return page, nil
}
