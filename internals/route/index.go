// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"silabku_backend/internals/configs"
	"silabku_backend/internals/events"
	authMiddleware "silabku_backend/internals/middlewares/auth"

	jenisRoute "silabku_backend/internals/features/katalog/jenis_pengujian/route"
	klasterRoute "silabku_backend/internals/features/katalog/klaster/route"
	parameterRoute "silabku_backend/internals/features/katalog/parameter/route"
	peralatanRoute "silabku_backend/internals/features/peralatan/route"

	pengujianCtl "silabku_backend/internals/features/pengujian/controller"
	pengujianRepo "silabku_backend/internals/features/pengujian/repository"
	pengujianRoute "silabku_backend/internals/features/pengujian/route"
	pengujianSvc "silabku_backend/internals/features/pengujian/service"
)

// SetupRoutes merakit seluruh grup endpoint:
//   - /api/public → katalog & peralatan read-only, tanpa auth
//   - /api/u      → customer (JWT)
//   - /api/a      → staff (JWT + role check)
func SetupRoutes(app *fiber.App, db *gorm.DB, publisher events.Publisher) {
	v := validator.New()

	repo := pengujianRepo.NewPengujianRepository(db)
	svc := pengujianSvc.NewPengujianService(repo, publisher,
		configs.GetEnv("KAFKA_TOPIC", "silab.pengujian"))
	pengujian := pengujianCtl.NewPengujianController(svc, v)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	klasterRoute.KlasterPublicRoutes(public, db, v)
	jenisRoute.JenisPengujianPublicRoutes(public, db, v)
	parameterRoute.ParameterPublicRoutes(public, db, v)
	peralatanRoute.PeralatanPublicRoutes(public, db, v)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	pengujianRoute.PengujianUserRoutes(user, pengujian)

	// ===================== ADMIN (STAFF) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireStaff("manajemen lab"),
	)
	klasterRoute.KlasterAdminRoutes(admin, db, v)
	jenisRoute.JenisPengujianAdminRoutes(admin, db, v)
	parameterRoute.ParameterAdminRoutes(admin, db, v)
	peralatanRoute.PeralatanAdminRoutes(admin, db, v)
	pengujianRoute.PengujianAdminRoutes(admin, pengujian)
}
