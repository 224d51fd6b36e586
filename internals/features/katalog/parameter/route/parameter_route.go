// file: internals/features/katalog/parameter/route/parameter_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	parameterCtl "silabku_backend/internals/features/katalog/parameter/controller"
)

// ParameterPublicRoutes: katalog parameter read-only (filter + search).
func ParameterPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := parameterCtl.NewParameterController(db, v)

	grp := r.Group("/parameter")
	grp.Get("/", ctl.GetAll)
	grp.Get("/:id", ctl.GetByID)
}

// ParameterAdminRoutes: CRUD parameter + penggantian set peralatan (staff).
func ParameterAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := parameterCtl.NewParameterController(db, v)

	grp := r.Group("/parameter")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Put("/:id/peralatan", ctl.ReplacePeralatan)
	grp.Delete("/:id", ctl.Delete)
}
