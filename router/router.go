package router

import (
	"github.com/labstack/echo/v4"
)

type Controllers struct {
	Location interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	}
	Cultivar interface {
		ListCropTypes(echo.Context) error
		List(echo.Context) error
		Create(echo.Context) error
		ImportURL(echo.Context) error
	}
	Assessment interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		StartDraft(echo.Context) error
		CropDetails(echo.Context) error
		FieldSetup(echo.Context) error
		Measurements(echo.Context) error
		Review(echo.Context) error
		Complete(echo.Context) error
		Discard(echo.Context) error
	}
	Report interface {
		List(echo.Context) error
		Get(echo.Context) error
		Generate(echo.Context) error
		Send(echo.Context) error
		Export(echo.Context) error
	}
	Customer interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
	}
	Auth interface {
		Login(echo.Context) error
		GenerateCode(echo.Context) error
		Verify(echo.Context) error
		CheckEmail(echo.Context) error
		WhoAmI(echo.Context) error
	}
	Session interface {
		Get(echo.Context) error
		Put(echo.Context) error
	}
	Health interface{ Health(echo.Context) error }
}

// New mounts every route. authMW guards everything except /health and the
// login endpoints.
func New(e *echo.Echo, c Controllers, authMW echo.MiddlewareFunc) *echo.Echo {
	e.GET("/health", c.Health.Health)

	e.POST("/auth/login", c.Auth.Login)
	e.POST("/auth/code", c.Auth.GenerateCode)
	e.POST("/auth/verify", c.Auth.Verify)
	e.POST("/auth/check-email", c.Auth.CheckEmail)

	api := e.Group("", authMW)
	api.GET("/whoami", c.Auth.WhoAmI)

	api.GET("/locations", c.Location.List)
	api.POST("/locations", c.Location.Create)
	api.GET("/locations/:id", c.Location.Get)
	api.PUT("/locations/:id", c.Location.Update)
	api.DELETE("/locations/:id", c.Location.Delete)

	api.GET("/croptypes", c.Cultivar.ListCropTypes)
	api.GET("/cultivars", c.Cultivar.List)
	api.POST("/cultivars", c.Cultivar.Create)
	api.POST("/cultivars/import", c.Cultivar.ImportURL)

	api.GET("/assessments", c.Assessment.List)
	api.POST("/assessments", c.Assessment.Create)
	api.GET("/assessments/:id", c.Assessment.Get)
	api.PUT("/assessments/:id", c.Assessment.Update)
	api.DELETE("/assessments/:id", c.Assessment.Delete)

	api.POST("/assessments/drafts", c.Assessment.StartDraft)
	api.PUT("/assessments/drafts/:id/crop-details", c.Assessment.CropDetails)
	api.PUT("/assessments/drafts/:id/field-setup", c.Assessment.FieldSetup)
	api.PUT("/assessments/drafts/:id/measurements", c.Assessment.Measurements)
	api.GET("/assessments/drafts/:id/review", c.Assessment.Review)
	api.POST("/assessments/drafts/:id/complete", c.Assessment.Complete)
	api.DELETE("/assessments/drafts/:id", c.Assessment.Discard)

	api.GET("/reports", c.Report.List)
	api.GET("/reports/:id", c.Report.Get)
	api.POST("/reports/generate", c.Report.Generate)
	api.POST("/reports/:id/send", c.Report.Send)
	api.GET("/reports/:id/export", c.Report.Export)

	api.GET("/customers", c.Customer.List)
	api.GET("/customers/:id", c.Customer.Get)
	api.POST("/customers/relationships", c.Customer.Create)

	api.GET("/session/ui", c.Session.Get)
	api.PUT("/session/ui", c.Session.Put)

	return e
}
