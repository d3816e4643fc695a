package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/assessment/service"
	"beetguru/pkg/assessment/serviceImp"
	"beetguru/pkg/assessment/wizard"
)

type AssessmentCtrl struct{ svc service.AssessmentService }

func New(svc service.AssessmentService) *AssessmentCtrl { return &AssessmentCtrl{svc: svc} }

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func (h *AssessmentCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	if v := c.QueryParam("user_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			uid = uint(id)
		}
	}
	status := c.QueryParam("status")
	switch status {
	case "", entities.AssessmentStatusDraft, entities.AssessmentStatusCompleted:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	out, err := h.svc.List(status, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AssessmentCtrl) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.svc.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AssessmentCtrl) Create(c echo.Context) error {
	var a entities.Assessment
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if a.LocationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "location_id is required"})
	}
	out, err := h.svc.Create(&a)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AssessmentCtrl) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch service.AssessmentPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	out, err := h.svc.Update(id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AssessmentCtrl) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// --- wizard endpoints ---

func (h *AssessmentCtrl) StartDraft(c echo.Context) error {
	var body struct {
		LocationID uint `json:"location_id"`
	}
	if err := c.Bind(&body); err != nil || body.LocationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "location_id required"})
	}
	a, err := h.svc.StartDraft(body.LocationID)
	if err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrDraftExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AssessmentCtrl) stepResponse(c echo.Context, a *entities.Assessment, fieldErrs map[string]string, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrNotDraft):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	if len(fieldErrs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fieldErrs})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AssessmentCtrl) CropDetails(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	values := map[string]string{}
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	a, fieldErrs, err := h.svc.ApplyCropDetails(id, values)
	return h.stepResponse(c, a, fieldErrs, err)
}

func (h *AssessmentCtrl) FieldSetup(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	values := map[string]string{}
	if err := c.Bind(&values); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	a, fieldErrs, err := h.svc.ApplyFieldSetup(id, values)
	return h.stepResponse(c, a, fieldErrs, err)
}

func (h *AssessmentCtrl) Measurements(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Measurements []wizard.CropCountInput  `json:"measurements"`
		SampleAreas  []wizard.SampleAreaInput `json:"sample_areas"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	a, fieldErrs, err := h.svc.ApplyMeasurements(id, body.Measurements, body.SampleAreas)
	return h.stepResponse(c, a, fieldErrs, err)
}

func (h *AssessmentCtrl) Review(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.svc.GetReview(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AssessmentCtrl) Complete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		ReportType string `json:"report_type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.ReportType == "" {
		body.ReportType = entities.ReportTypeBasic
	}
	a, rep, err := h.svc.Complete(id, body.ReportType)
	if err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrNotDraft):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"assessment": a, "report": rep})
}

func (h *AssessmentCtrl) Discard(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.svc.Discard(id); err != nil {
		switch {
		case errors.Is(err, serviceImp.ErrNotDraft):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
