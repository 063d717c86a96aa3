package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// RegionHandler holds dependencies for region-related handlers.
type RegionHandler struct {
	uc     usecase.RegionUsecase
	logger *slog.Logger
}

// NewRegionHandler is the constructor for RegionHandler, injected by Fx.
func NewRegionHandler(uc usecase.RegionUsecase, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the region creation request.
func (h *RegionHandler) Create(c echo.Context) error {
	var input *usecase.CreateRegionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}

	region, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRegionDTO(region), "Region created successfully")
}

// Get handles the single-region read request.
func (h *RegionHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	region, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRegionDTO(region), "")
}

// List handles the paginated region listing request.
func (h *RegionHandler) List(c echo.Context) error {
	page, limit, offset := parsePagination(c)

	result, err := h.uc.List(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{
		Rows:  toRegionDTOs(result.Rows),
		Page:  page,
		Limit: limit,
		Total: result.Total,
	}, "")
}

// Update handles the region update request. The body must carry the owner id,
// which has to match the stored owner.
func (h *RegionHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateRegionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}

	region, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRegionDTO(region), "Region updated successfully")
}

// Delete handles the region deletion request. The caller identifies itself
// through the ownerId query parameter.
func (h *RegionHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	ownerID, err := uuid.Parse(c.QueryParam("ownerId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ownerId")
	}

	if err := h.uc.Delete(c.Request().Context(), id, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Region deleted successfully")
}

// Contains handles the point containment query.
func (h *RegionHandler) Contains(c echo.Context) error {
	point, err := parsePoint(c)
	if err != nil {
		return err
	}

	ownerID, err := parseOptionalOwner(c)
	if err != nil {
		return err
	}

	regions, err := h.uc.FindContaining(c.Request().Context(), point, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRegionDTOs(regions), "")
}

// Near handles the proximity query, nearest region first.
func (h *RegionHandler) Near(c echo.Context) error {
	point, err := parsePoint(c)
	if err != nil {
		return err
	}

	distance, err := strconv.ParseFloat(c.QueryParam("distance"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid distance")
	}

	ownerID, err := parseOptionalOwner(c)
	if err != nil {
		return err
	}

	regions, err := h.uc.FindNear(c.Request().Context(), point, distance, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toRegionDTOs(regions), "")
}

// parsePoint reads the longitude/latitude query parameters.
func parsePoint(c echo.Context) (orb.Point, error) {
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return orb.Point{}, echo.NewHTTPError(http.StatusBadRequest, "invalid longitude")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return orb.Point{}, echo.NewHTTPError(http.StatusBadRequest, "invalid latitude")
	}

	return orb.Point{lng, lat}, nil
}

// parseOptionalOwner reads the optional ownerId query parameter.
func parseOptionalOwner(c echo.Context) (*uuid.UUID, error) {
	raw := c.QueryParam("ownerId")
	if raw == "" {
		return nil, nil
	}

	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid ownerId")
	}

	return &ownerID, nil
}
