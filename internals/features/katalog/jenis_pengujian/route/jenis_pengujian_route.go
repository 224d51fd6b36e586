// file: internals/features/katalog/jenis_pengujian/route/jenis_pengujian_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jenisCtl "silabku_backend/internals/features/katalog/jenis_pengujian/controller"
)

// JenisPengujianPublicRoutes: katalog jenis pengujian read-only.
func JenisPengujianPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := jenisCtl.NewJenisPengujianController(db, v)

	grp := r.Group("/jenis-pengujian")
	grp.Get("/", ctl.GetAll)
	grp.Get("/:id", ctl.GetByID)
}

// JenisPengujianAdminRoutes: CRUD jenis pengujian (staff).
func JenisPengujianAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := jenisCtl.NewJenisPengujianController(db, v)

	grp := r.Group("/jenis-pengujian")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
