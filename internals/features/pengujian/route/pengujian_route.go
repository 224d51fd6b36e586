// file: internals/features/pengujian/route/pengujian_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	pengujianCtl "silabku_backend/internals/features/pengujian/controller"
	"silabku_backend/internals/middlewares"
)

// PengujianUserRoutes: lifecycle order milik customer. Customer hanya bisa
// melihat miliknya dan membatalkan; pembatasan diputuskan di service dari
// Actor, bukan di route.
func PengujianUserRoutes(r fiber.Router, ctl *pengujianCtl.PengujianController) {
	grp := r.Group("/pengujian")
	grp.Post("/quote", ctl.Quote)
	grp.Post("/", middlewares.CreatePengujianRateLimiter(), ctl.Create)
	grp.Get("/", ctl.GetAll)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id/status", ctl.UpdateStatus)
	grp.Delete("/:id", ctl.Delete)
}

// PengujianAdminRoutes: endpoint yang sama untuk staff — staff melihat semua
// order dan menggerakkan status maju.
func PengujianAdminRoutes(r fiber.Router, ctl *pengujianCtl.PengujianController) {
	grp := r.Group("/pengujian")
	grp.Get("/", ctl.GetAll)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id/status", ctl.UpdateStatus)
	grp.Delete("/:id", ctl.Delete)
}
