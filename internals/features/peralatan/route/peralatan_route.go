// file: internals/features/peralatan/route/peralatan_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	peralatanCtl "silabku_backend/internals/features/peralatan/controller"
)

// PeralatanPublicRoutes: daftar & detail alat (termasuk proyeksi pemakaian).
func PeralatanPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := peralatanCtl.NewPeralatanController(db, v)

	grp := r.Group("/peralatan")
	grp.Get("/", ctl.GetAll)
	grp.Get("/:id", ctl.GetByID)
}

// PeralatanAdminRoutes: CRUD alat (staff).
func PeralatanAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := peralatanCtl.NewPeralatanController(db, v)

	grp := r.Group("/peralatan")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
