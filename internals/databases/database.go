package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	jenisModel "silabku_backend/internals/features/katalog/jenis_pengujian/model"
	klasterModel "silabku_backend/internals/features/katalog/klaster/model"
	parameterModel "silabku_backend/internals/features/katalog/parameter/model"
	pengujianModel "silabku_backend/internals/features/pengujian/model"
	peralatanModel "silabku_backend/internals/features/peralatan/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=silabku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan auto-migration seluruh tabel inti.
// Unik komposit (nama per parent) ditegakkan lewat uniqueIndex di model,
// bukan cek-lalu-insert di aplikasi.
func Migrate() {
	log.Println("Running database migrations...")
	if err := DB.AutoMigrate(
		&klasterModel.Klaster{},
		&jenisModel.JenisPengujian{},
		&parameterModel.Parameter{},
		&peralatanModel.Peralatan{},
		&parameterModel.ParameterPeralatan{},
		&pengujianModel.Pengujian{},
		&pengujianModel.PengujianItem{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("Database migration complete.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool terisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
