package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sertifikatku_backend/internals/configs"
	activityModel "sertifikatku_backend/internals/features/activitylogs/model"
	attendeeModel "sertifikatku_backend/internals/features/attendees/model"
	certificateModel "sertifikatku_backend/internals/features/certificates/model"
	clubModel "sertifikatku_backend/internals/features/clubs/model"
	templateModel "sertifikatku_backend/internals/features/templates/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ Gunakan URL/DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, arahkan host/port ke PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sertifikatku&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
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

// MigrateIfEnabled menjalankan AutoMigrate semua model kalau DB_AUTOMIGRATE=true.
// Di production kita pakai migration SQL manual, ini untuk dev/preview saja.
func MigrateIfEnabled() {
	if getenv("DB_AUTOMIGRATE", "false") != "true" {
		return
	}
	log.Println("🛠 AutoMigrate aktif...")
	if err := DB.AutoMigrate(
		&clubModel.ClubModel{},
		&clubModel.ClubAdminModel{},
		&templateModel.TemplateModel{},
		&attendeeModel.AttendeeImportModel{},
		&attendeeModel.AttendeeModel{},
		&certificateModel.CertificateModel{},
		&activityModel.ActivityLogModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool terisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
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
