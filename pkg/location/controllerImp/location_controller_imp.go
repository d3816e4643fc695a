package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/location/service"
	"beetguru/pkg/location/serviceImp"
)

type LocationCtrl struct {
	svc      service.LocationService
	validate *validator.Validate
}

func New(svc service.LocationService) *LocationCtrl {
	return &LocationCtrl{svc: svc, validate: validator.New()}
}

type createReq struct {
	Name       string   `json:"name" validate:"required"`
	AreaHa     float64  `json:"area_ha" validate:"gt=0"`
	CustomerID *uint    `json:"customer_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (h *LocationCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	owner := uid
	if req.CustomerID != nil {
		// retailer creating a paddock on behalf of a customer
		owner = *req.CustomerID
	}
	l := &entities.Location{
		UserID: owner, CustomerID: req.CustomerID,
		Name: req.Name, AreaHa: req.AreaHa,
		Latitude: req.Latitude, Longitude: req.Longitude,
	}
	out, err := h.svc.Create(l)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LocationCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	l, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LocationCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	if v := c.QueryParam("user_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			uid = uint(id)
		}
	}
	withStatus := c.QueryParam("with_status") == "1"
	out, err := h.svc.ListForUser(uid, withStatus)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LocationCtrl) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch service.LocationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	out, err := h.svc.Update(uint(id), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LocationCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrLocationInUse):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
