package controllerImp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"beetguru/entities"
	"beetguru/pkg/cultivar/repository"
)

type CultivarCtrl struct {
	repo     repository.CultivarRepository
	allow    map[string]bool
	maxBytes int
}

// New builds the controller; allowedDomains is the comma separated host
// allow-list for catalogue page imports.
func New(repo repository.CultivarRepository, allowedDomains string) *CultivarCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	return &CultivarCtrl{repo: repo, allow: allow, maxBytes: 1500000}
}

func (h *CultivarCtrl) ListCropTypes(c echo.Context) error {
	out, err := h.repo.ListCropTypes()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CultivarCtrl) List(c echo.Context) error {
	var ctID uint
	if v := c.QueryParam("crop_type_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid crop_type_id"})
		}
		ctID = uint(id)
	}
	out, err := h.repo.List(ctID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type createReq struct {
	CropTypeID  uint   `json:"crop_type_id"`
	Name        string `json:"name"`
	DryMatter   string `json:"dry_matter"`
	Yield       string `json:"yield"`
	GrowingTime string `json:"growing_time"`
	Description string `json:"description"`
	IsPGG       bool   `json:"is_pgg_cultivar"`
}

func (h *CultivarCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.CropTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "crop_type_id is required"})
	}
	cv := &entities.Cultivar{
		CropTypeID: req.CropTypeID, Name: strings.TrimSpace(req.Name),
		DryMatter: req.DryMatter, Yield: req.Yield, GrowingTime: req.GrowingTime,
		Description: req.Description, IsPGG: req.IsPGG,
	}
	if err := h.repo.Create(cv); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cv)
}

// ImportURL pulls one cultivar off a vendor catalogue page: page title
// becomes the cultivar name, lead paragraphs the description.
func (h *CultivarCtrl) ImportURL(c echo.Context) error {
	var body struct {
		URL        string `json:"url"`
		CropTypeID uint   `json:"crop_type_id"`
		Name       string `json:"name"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url required"})
	}
	if body.CropTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "crop_type_id is required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad url"})
	}
	if !h.allow[strings.ToLower(u.Host)] {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "domain not allowed"})
	}

	name, desc, err := fetchCultivarPage(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	if body.Name != "" {
		name = body.Name
	}
	if name == "" {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "page has no usable cultivar name"})
	}
	cv := &entities.Cultivar{
		CropTypeID:  body.CropTypeID,
		Name:        name,
		Description: desc,
		SourceURL:   body.URL,
	}
	if err := h.repo.Create(cv); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cv)
}

func fetchCultivarPage(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := strings.TrimSpace(s.Text())
		if t != "" {
			parts = append(parts, t)
		}
		return len(parts) < 3
	})
	return title, strings.Join(parts, "\n"), nil
}
