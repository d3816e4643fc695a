package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"beetguru/pkg/report/service"
	"beetguru/pkg/report/serviceImp"
)

type ReportCtrl struct{ svc service.ReportService }

func New(svc service.ReportService) *ReportCtrl { return &ReportCtrl{svc: svc} }

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

func (h *ReportCtrl) List(c echo.Context) error {
	if v := c.QueryParam("assessment_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid assessment_id"})
		}
		out, err := h.svc.ListForAssessment(uint(id))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportCtrl) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.svc.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Report not found"})
	}
	return c.JSON(http.StatusOK, out)
}

type generateReq struct {
	AssessmentID uint   `json:"assessment_id" validate:"required"`
	Type         string `json:"type"`
}

func (h *ReportCtrl) Generate(c echo.Context) error {
	var req generateReq
	if err := c.Bind(&req); err != nil || req.AssessmentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "assessment_id is required"})
	}
	rep, err := h.svc.GenerateByID(req.AssessmentID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Assessment not found"})
		case errors.Is(err, serviceImp.ErrNotCompleted):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rep)
}

type sendReq struct {
	Recipients []string `json:"recipients" validate:"required,min=1"`
}

func (h *ReportCtrl) Send(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req sendReq
	if err := c.Bind(&req); err != nil || len(req.Recipients) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "recipients are required"})
	}
	rep, err := h.svc.Send(id, req.Recipients)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Report not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *ReportCtrl) Export(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rep, err := h.svc.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Report not found"})
	}
	x, err := h.svc.Export(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Report not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	defer x.Close()

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, rep.ShareID))
	c.Response().WriteHeader(http.StatusOK)
	return x.Write(c.Response())
}
