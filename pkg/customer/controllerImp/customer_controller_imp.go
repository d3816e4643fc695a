package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/customer/repository"
)

type CustomerCtrl struct{ repo repository.CustomerRepository }

func New(repo repository.CustomerRepository) *CustomerCtrl { return &CustomerCtrl{repo: repo} }

// CustomerSummary is one row of a retailer's customer list.
type CustomerSummary struct {
	entities.User
	RelationshipStart  time.Time  `json:"relationship_start"`
	RelationshipStatus string     `json:"relationship_status"`
	PaddockCount       int64      `json:"paddock_count"`
	LastAssessmentDate *time.Time `json:"last_assessment_date,omitempty"`
}

func (h *CustomerCtrl) summarize(rel entities.CustomerRelationship) (*CustomerSummary, error) {
	u, err := h.repo.FindUser(rel.CustomerID)
	if err != nil {
		return nil, err
	}
	paddocks, err := h.repo.PaddockCount(rel.CustomerID)
	if err != nil {
		return nil, err
	}
	last, err := h.repo.LastAssessmentDate(rel.CustomerID)
	if err != nil {
		return nil, err
	}
	return &CustomerSummary{
		User:               *u,
		RelationshipStart:  rel.RelationshipStart,
		RelationshipStatus: rel.Status,
		PaddockCount:       paddocks,
		LastAssessmentDate: last,
	}, nil
}

func (h *CustomerCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	rels, err := h.repo.ListByRetailer(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	out := make([]CustomerSummary, 0, len(rels))
	for _, rel := range rels {
		s, err := h.summarize(rel)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		out = append(out, *s)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rel, err := h.repo.FindRelationship(uid, uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
	}
	s, err := h.summarize(*rel)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

type createRelationshipReq struct {
	CustomerID uint `json:"customer_id" validate:"required"`
}

func (h *CustomerCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req createRelationshipReq
	if err := c.Bind(&req); err != nil || req.CustomerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_id is required"})
	}
	if _, err := h.repo.FindUser(req.CustomerID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
	}
	if _, err := h.repo.FindRelationship(uid, req.CustomerID); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "Relationship already exists"})
	}
	rel := &entities.CustomerRelationship{
		RetailerID:        uid,
		CustomerID:        req.CustomerID,
		RelationshipStart: time.Now(),
		Status:            "active",
	}
	if err := h.repo.CreateRelationship(rel); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rel)
}
