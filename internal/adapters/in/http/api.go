package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type NewRestaurant struct {
	Name        string  `json:"name"                validate:"required"`
	Latitude    float64 `json:"latitude"            validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude"           validate:"gte=-180,lte=180"`
	PrepMinutes int     `json:"prepMinutes"         validate:"gte=1,lte=180"`
	Email       string  `json:"email,omitempty"     validate:"omitempty,email"`
	Phone       string  `json:"phone,omitempty"     validate:"omitempty,phone"`
}

type CreatedRestaurant struct {
	Id   openapi_types.UUID `json:"id"`
	Slug string             `json:"slug"`
}

type Restaurant struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Location    Location           `json:"location"`
	PrepMinutes int                `json:"prepMinutes"`
	Email       string             `json:"email,omitempty"`
	Phone       string             `json:"phone,omitempty"`
}

type RestaurantPage struct {
	Data       []Restaurant `json:"data"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
	TotalItems int          `json:"totalItems"`
}

type Quote struct {
	RestaurantId     openapi_types.UUID `json:"restaurantId"`
	RestaurantName   string             `json:"restaurantName"`
	DistanceMeters   float64            `json:"distanceMeters"`
	DistanceText     string             `json:"distanceText"`
	PrepMinutes      int                `json:"prepMinutes"`
	EstimatedMinutes int                `json:"estimatedMinutes"`
	EstimatedText    string             `json:"estimatedText"`
}

type NewDriver struct {
	Name      string  `json:"name"               validate:"required"`
	SpeedKmh  float64 `json:"speedKmh,omitempty" validate:"gte=0,lte=150"`
	Latitude  float64 `json:"latitude"           validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude"          validate:"gte=-180,lte=180"`
}

type CreatedDriver struct {
	Id openapi_types.UUID `json:"id"`
}

type Driver struct {
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	SpeedKmh float64            `json:"speedKmh"`
	Location Location           `json:"location"`
	Bags     int                `json:"bags"`
	BusyBags int                `json:"busyBags"`
	Free     bool               `json:"free"`
}

type NewBag struct {
	Name     string `json:"name"     validate:"required"`
	Capacity int    `json:"capacity" validate:"gte=1"`
}

type NewOrder struct {
	RestaurantId openapi_types.UUID `json:"restaurantId" validate:"required"`
	Latitude     float64            `json:"latitude"     validate:"gte=-90,lte=90"`
	Longitude    float64            `json:"longitude"    validate:"gte=-180,lte=180"`
	Items        int                `json:"items"        validate:"gte=1"`
	Total        float64            `json:"total"        validate:"gte=0"`
}

type CreatedOrder struct {
	Id               openapi_types.UUID `json:"id"`
	Number           string             `json:"number"`
	DistanceMeters   float64            `json:"distanceMeters"`
	EstimatedMinutes int                `json:"estimatedMinutes"`
}

type ActiveOrder struct {
	Id               openapi_types.UUID  `json:"id"`
	Number           string              `json:"number"`
	RestaurantId     openapi_types.UUID  `json:"restaurantId"`
	RestaurantName   string              `json:"restaurantName"`
	Status           string              `json:"status"`
	DriverId         *openapi_types.UUID `json:"driverId,omitempty"`
	Delivery         Location            `json:"delivery"`
	Items            int                 `json:"items"`
	Total            float64             `json:"total"`
	TotalText        string              `json:"totalText"`
	CreatedAt        time.Time           `json:"createdAt"`
	CreatedText      string              `json:"createdText"`
	Age              string              `json:"age"`
	DistanceMeters   float64             `json:"distanceMeters"`
	DistanceText     string              `json:"distanceText"`
	EstimatedMinutes int                 `json:"estimatedMinutes"`
}

type ActiveOrderPage struct {
	Data       []ActiveOrder `json:"data"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

type LoyaltyProgress struct {
	Points       int     `json:"points"`
	Tier         string  `json:"tier"`
	NextTier     *string `json:"nextTier,omitempty"`
	Percent      int     `json:"percent"`
	PointsToNext int     `json:"pointsToNext"`
}

type ListRestaurantsParams struct {
	Page  *int `form:"page,omitempty"  json:"page,omitempty"`
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

type GetDeliveryQuoteParams struct {
	Latitude  float64 `form:"latitude"  json:"latitude"`
	Longitude float64 `form:"longitude" json:"longitude"`
}

type GetActiveOrdersParams struct {
	Page           *int    `form:"page,omitempty"     json:"page,omitempty"`
	Limit          *int    `form:"limit,omitempty"    json:"limit,omitempty"`
	Currency       *string `form:"currency,omitempty" json:"currency,omitempty"`
	AcceptLanguage *string `json:"Accept-Language,omitempty"`
}

type GetLoyaltyProgressParams struct {
	Points int `form:"points" json:"points"`
}

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/restaurants)
	ListRestaurants(ctx echo.Context, params ListRestaurantsParams) error
	// (POST /api/v1/restaurants)
	CreateRestaurant(ctx echo.Context) error
	// (GET /api/v1/restaurants/{restaurantId}/quote)
	GetDeliveryQuote(ctx echo.Context, restaurantId openapi_types.UUID, params GetDeliveryQuoteParams) error
	// (GET /api/v1/drivers)
	GetDrivers(ctx echo.Context) error
	// (POST /api/v1/drivers)
	CreateDriver(ctx echo.Context) error
	// (POST /api/v1/drivers/{driverId}/bags)
	AddDriverBag(ctx echo.Context, driverId openapi_types.UUID) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/active)
	GetActiveOrders(ctx echo.Context, params GetActiveOrdersParams) error
	// (GET /api/v1/loyalty/progress)
	GetLoyaltyProgress(ctx echo.Context, params GetLoyaltyProgressParams) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListRestaurants(ctx echo.Context) error {
	var params ListRestaurantsParams

	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return invalidParameter("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return invalidParameter("limit", err)
	}

	return w.Handler.ListRestaurants(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateRestaurant(ctx echo.Context) error {
	return w.Handler.CreateRestaurant(ctx)
}

func (w *ServerInterfaceWrapper) GetDeliveryQuote(ctx echo.Context) error {
	var restaurantId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "restaurantId", ctx.Param("restaurantId"), &restaurantId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return invalidParameter("restaurantId", err)
	}

	var params GetDeliveryQuoteParams

	if err = runtime.BindQueryParameter("form", true, true, "latitude", ctx.QueryParams(), &params.Latitude); err != nil {
		return invalidParameter("latitude", err)
	}
	if err = runtime.BindQueryParameter("form", true, true, "longitude", ctx.QueryParams(), &params.Longitude); err != nil {
		return invalidParameter("longitude", err)
	}

	return w.Handler.GetDeliveryQuote(ctx, restaurantId, params)
}

func (w *ServerInterfaceWrapper) GetDrivers(ctx echo.Context) error {
	return w.Handler.GetDrivers(ctx)
}

func (w *ServerInterfaceWrapper) CreateDriver(ctx echo.Context) error {
	return w.Handler.CreateDriver(ctx)
}

func (w *ServerInterfaceWrapper) AddDriverBag(ctx echo.Context) error {
	var driverId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "driverId", ctx.Param("driverId"), &driverId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return invalidParameter("driverId", err)
	}

	return w.Handler.AddDriverBag(ctx, driverId)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	var params GetActiveOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return invalidParameter("page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return invalidParameter("limit", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "currency", ctx.QueryParams(), &params.Currency); err != nil {
		return invalidParameter("currency", err)
	}

	if values, found := ctx.Request().Header[http.CanonicalHeaderKey("Accept-Language")]; found && len(values) > 0 {
		var acceptLanguage string
		err := runtime.BindStyledParameterWithOptions("simple", "Accept-Language", values[0], &acceptLanguage,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return invalidParameter("Accept-Language", err)
		}
		params.AcceptLanguage = &acceptLanguage
	}

	return w.Handler.GetActiveOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetLoyaltyProgress(ctx echo.Context) error {
	var params GetLoyaltyProgressParams

	if err := runtime.BindQueryParameter("form", true, true, "points", ctx.QueryParams(), &params.Points); err != nil {
		return invalidParameter("points", err)
	}

	return w.Handler.GetLoyaltyProgress(ctx, params)
}

func invalidParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/restaurants", wrapper.ListRestaurants)
	router.POST(baseURL+"/api/v1/restaurants", wrapper.CreateRestaurant)
	router.GET(baseURL+"/api/v1/restaurants/:restaurantId/quote", wrapper.GetDeliveryQuote)
	router.GET(baseURL+"/api/v1/drivers", wrapper.GetDrivers)
	router.POST(baseURL+"/api/v1/drivers", wrapper.CreateDriver)
	router.POST(baseURL+"/api/v1/drivers/:driverId/bags", wrapper.AddDriverBag)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/active", wrapper.GetActiveOrders)
	router.GET(baseURL+"/api/v1/loyalty/progress", wrapper.GetLoyaltyProgress)
}
