// file: internals/features/katalog/klaster/route/klaster_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	klasterCtl "silabku_backend/internals/features/katalog/klaster/controller"
)

// KlasterPublicRoutes: katalog klaster read-only.
func KlasterPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := klasterCtl.NewKlasterController(db, v)

	grp := r.Group("/klaster")
	grp.Get("/", ctl.GetAll)
	grp.Get("/:id", ctl.GetByID)
}

// KlasterAdminRoutes: CRUD klaster (staff).
func KlasterAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := klasterCtl.NewKlasterController(db, v)

	grp := r.Group("/klaster")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
