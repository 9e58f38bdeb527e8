package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feastly/backend/internal/domain/menu"
	"github.com/feastly/backend/internal/domain/restaurantsearch"
	apperrors "github.com/feastly/backend/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	searchSvc restaurantsearch.Service
	menuSvc   menu.Service
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler constructs the root HTTP handler.
func NewHandler(searchSvc restaurantsearch.Service, menuSvc menu.Service, logger *slog.Logger) *Handler {
	return &Handler{
		searchSvc: searchSvc,
		menuSvc:   menuSvc,
		logger:    logger.With("component", "http.handler"),
		now:       time.Now,
	}
}

// GetRestaurants lists open restaurants near a coordinate, optionally
// filtered by a free-text query.
// GET /api/v1/restaurants?latitude=28.49&longitude=77.53&searchFor=tamil
func (h *Handler) GetRestaurants(c *gin.Context) {
	coord, ok := parseCoordinate(c)
	if !ok {
		return
	}
	now := restaurantsearch.TimeOfDayFrom(h.now())
	searchFor := c.Query("searchFor")

	var (
		restaurants []restaurantsearch.Restaurant
		err         error
	)
	if searchFor != "" {
		restaurants, err = h.searchSvc.Search(c.Request.Context(), restaurantsearch.SearchRequest{
			Coordinate: coord,
			Query:      searchFor,
			Now:        now,
		})
	} else {
		restaurants, err = h.searchSvc.FindNearby(c.Request.Context(), restaurantsearch.NearbyRequest{
			Coordinate: coord,
			Now:        now,
		})
	}
	if err != nil {
		status := http.StatusInternalServerError
		if apperrors.IsCode(err, "search_error") {
			status = http.StatusBadGateway
		}
		abortWithError(c, NewHTTPError(status, "restaurants_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GetMenu returns the menu of a single restaurant.
// GET /api/v1/menu?restaurantId=11
func (h *Handler) GetMenu(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	m, err := h.menuSvc.GetMenu(c.Request.Context(), restaurantID)
	if err != nil {
		status := http.StatusInternalServerError
		code := "menu_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "menu_not_found"):
			status = http.StatusNotFound
			code = "menu_not_found"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": m})
}

// parseCoordinate extracts and range-validates the latitude/longitude query
// params. The domain assumes pre-validated input, so rejection happens here.
func parseCoordinate(c *gin.Context) (restaurantsearch.Coordinate, bool) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "latitude must be a number", err))
		return restaurantsearch.Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "longitude must be a number", err))
		return restaurantsearch.Coordinate{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "coordinate out of range", nil))
		return restaurantsearch.Coordinate{}, false
	}
	return restaurantsearch.Coordinate{Latitude: lat, Longitude: lon}, true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
