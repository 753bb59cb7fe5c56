package http

import (
	"context"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/loyalty"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateRestaurantHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRestaurantCommand) (commands.CreateRestaurantResult, error)
	}

	CreateDriverHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDriverCommand) error
	}

	AddDriverBagHandler interface {
		Handle(ctx context.Context, cmd commands.AddDriverBagCommand) error
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	ListRestaurantsHandler interface {
		Handle(ctx context.Context, query queries.ListRestaurantsQuery) (queries.ListRestaurantsQueryResponse, error)
	}

	GetDeliveryQuoteHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryQuoteQuery) (queries.GetDeliveryQuoteQueryResponse, error)
	}

	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) (queries.GetActiveOrdersQueryResponse, error)
	}

	GetAllDriversHandler interface {
		Handle(ctx context.Context, query queries.GetAllDriversQuery) ([]queries.GetAllDriversQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateRestaurant CreateRestaurantHandler
	CreateDriver     CreateDriverHandler
	AddDriverBag     AddDriverBagHandler
	CreateOrder      CreateOrderHandler
	ListRestaurants  ListRestaurantsHandler
	GetDeliveryQuote GetDeliveryQuoteHandler
	GetActiveOrders  GetActiveOrdersHandler
	GetAllDrivers    GetAllDriversHandler
}

// Server implements ServerInterface on top of the application use cases.
// Errors are returned to echo and rendered by ErrorHandler.
type Server struct {
	handlers Handlers
	metrics  *Metrics

	defaultLocale   string
	defaultCurrency string
}

// NewServer creates the HTTP server. defaultLocale and defaultCurrency apply when a
// request names neither.
func NewServer(handlers Handlers, metrics *Metrics, defaultLocale, defaultCurrency string) *Server {
	return &Server{
		handlers:        handlers,
		metrics:         metrics,
		defaultLocale:   defaultLocale,
		defaultCurrency: defaultCurrency,
	}
}

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context, params ListRestaurantsParams) error {
	query := queries.NewListRestaurantsQuery(valueOr(params.Page, 1), valueOr(params.Limit, 0))

	page, err := s.handlers.ListRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := RestaurantPage{
		Data:       make([]Restaurant, len(page.Data)),
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
	for i, r := range page.Data {
		response.Data[i] = Restaurant{
			Id:          r.ID.Bytes(),
			Name:        r.Name,
			Slug:        r.Slug,
			Location:    toLocation(r.Location),
			PrepMinutes: r.PrepMinutes,
			Email:       r.Email,
			Phone:       r.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), body.Name, body.Latitude, body.Longitude, body.PrepMinutes, body.Email, body.Phone,
	)
	if err != nil {
		return err
	}

	result, err := s.handlers.CreateRestaurant.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.RestaurantCreated()

	return ctx.JSON(http.StatusCreated, CreatedRestaurant{
		Id:   result.RestaurantID.Bytes(),
		Slug: result.Slug,
	})
}

// GetDeliveryQuote handles GET /api/v1/restaurants/{restaurantId}/quote.
func (s *Server) GetDeliveryQuote(
	ctx echo.Context,
	restaurantId openapi_types.UUID,
	params GetDeliveryQuoteParams,
) error {
	query, err := queries.NewGetDeliveryQuoteQuery(kernel.UUIDFromGoogle(restaurantId), params.Latitude, params.Longitude)
	if err != nil {
		return err
	}

	quote, err := s.handlers.GetDeliveryQuote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Quote{
		RestaurantId:     quote.RestaurantID.Bytes(),
		RestaurantName:   quote.RestaurantName,
		DistanceMeters:   quote.DistanceMeters,
		DistanceText:     quote.DistanceText,
		PrepMinutes:      quote.PrepMinutes,
		EstimatedMinutes: quote.EstimatedMinutes,
		EstimatedText:    quote.EstimatedText,
	})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return err
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			Id:       d.ID.Bytes(),
			Name:     d.Name,
			SpeedKmh: d.SpeedKmh,
			Location: toLocation(d.Location),
			Bags:     d.Bags,
			BusyBags: d.BusyBags,
			Free:     d.IsFree(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body NewDriver
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, body.Name, body.SpeedKmh, body.Latitude, body.Longitude)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, CreatedDriver{Id: driverID.Bytes()})
}

// AddDriverBag handles POST /api/v1/drivers/{driverId}/bags.
func (s *Server) AddDriverBag(ctx echo.Context, driverId openapi_types.UUID) error {
	var body NewBag
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddDriverBagCommand(kernel.UUIDFromGoogle(driverId), body.Name, body.Capacity)
	if err != nil {
		return err
	}

	if err = s.handlers.AddDriverBag.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.UUIDFromGoogle(body.RestaurantId), body.Latitude, body.Longitude, body.Items, body.Total,
	)
	if err != nil {
		return err
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.OrderCreated()

	return ctx.JSON(http.StatusCreated, CreatedOrder{
		Id:               result.OrderID.Bytes(),
		Number:           result.Number,
		DistanceMeters:   result.DistanceMeters,
		EstimatedMinutes: result.EstimatedMinutes,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active. Totals and dates follow the
// Accept-Language header.
func (s *Server) GetActiveOrders(ctx echo.Context, params GetActiveOrdersParams) error {
	query := queries.NewGetActiveOrdersQuery(
		valueOr(params.Page, 1),
		valueOr(params.Limit, 0),
		RequestLocale(valueOr(params.AcceptLanguage, ""), s.defaultLocale),
		valueOr(params.Currency, s.defaultCurrency),
	)

	page, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := ActiveOrderPage{
		Data:       make([]ActiveOrder, len(page.Data)),
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
	for i, o := range page.Data {
		item := ActiveOrder{
			Id:               o.ID.Bytes(),
			Number:           o.Number,
			RestaurantId:     o.RestaurantID.Bytes(),
			RestaurantName:   o.RestaurantName,
			Status:           o.Status.String(),
			Delivery:         toLocation(o.Delivery),
			Items:            o.Volume,
			Total:            o.Total,
			TotalText:        o.TotalText,
			CreatedAt:        o.CreatedAt,
			CreatedText:      o.CreatedText,
			Age:              o.Age,
			DistanceMeters:   o.DistanceMeters,
			DistanceText:     o.DistanceText,
			EstimatedMinutes: o.EstimatedMinutes,
		}
		if o.DriverID != nil {
			driverID := o.DriverID.Bytes()
			item.DriverId = &driverID
		}
		response.Data[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLoyaltyProgress handles GET /api/v1/loyalty/progress.
func (s *Server) GetLoyaltyProgress(ctx echo.Context, params GetLoyaltyProgressParams) error {
	progress := loyalty.Progress(params.Points)

	response := LoyaltyProgress{
		Points:       progress.Points,
		Tier:         progress.Current.Name,
		Percent:      progress.Percent,
		PointsToNext: progress.PointsToNext,
	}
	if progress.Next != nil {
		response.NextTier = &progress.Next.Name
	}

	return ctx.JSON(http.StatusOK, response)
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

func toLocation(l kernel.Location) Location {
	return Location{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
