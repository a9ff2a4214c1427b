package db

import (
	"fmt"
	"log"

	"github.com/carebridge/careworker-go/internal/config"
	"github.com/carebridge/careworker-go/internal/domain/assignment"
	"github.com/carebridge/careworker-go/internal/domain/document"
	"github.com/carebridge/careworker-go/internal/domain/notification"
	"github.com/carebridge/careworker-go/internal/domain/payroll"
	"github.com/carebridge/careworker-go/internal/domain/template"
	"github.com/carebridge/careworker-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'care_worker'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE user_status AS ENUM ('active', 'inactive', 'pending'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE form_category AS ENUM ('template', 'client'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE assignment_status AS ENUM ('assigned', 'in_progress', 'submitted', 'signature_pending', 'completed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func migrate() {
	if err := DB.AutoMigrate(
		&user.User{},
		&user.CareWorkerProfile{},
		&template.FormTemplate{},
		&assignment.FormAssignment{},
		&assignment.Signature{},
		&notification.Notification{},
		&document.Document{},
		&payroll.Payroll{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()
	migrate()
}

// InitWithGormDB wires an externally created connection; used by the
// integration tests.
func InitWithGormDB(gdb *gorm.DB) {
	DB = gdb
	createEnums()
	migrate()
}
