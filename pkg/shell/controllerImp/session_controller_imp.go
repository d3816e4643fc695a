package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"beetguru/entities"
	"beetguru/pkg/shell"
)

type SessionCtrl struct{ db *gorm.DB }

func New(db *gorm.DB) *SessionCtrl { return &SessionCtrl{db: db} }

func (h *SessionCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var s entities.UISession
	err := h.db.First(&s, "user_id = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entities.UISession{UserID: uid, ActiveScreen: shell.ScreenHome.String()}
		return c.JSON(http.StatusOK, s)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

type putReq struct {
	ActiveScreen       string `json:"active_screen"`
	SelectedCustomerID *uint  `json:"selected_customer_id"`
}

func (h *SessionCtrl) Put(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req putReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	screen, err := shell.ParseScreen(req.ActiveScreen)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s := entities.UISession{
		UserID:             uid,
		ActiveScreen:       screen.String(),
		SelectedCustomerID: req.SelectedCustomerID,
	}
	if err := h.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
