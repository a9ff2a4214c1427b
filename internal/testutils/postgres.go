package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/carebridge/careworker-go/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration yields a migrated GORM handle backed either by
// TEST_DB_DSN or a throwaway postgres container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb := openGorm(dsn)
		db.InitWithGormDB(gdb)
		return gdb, func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "careworker",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/careworker?sslmode=disable", host, port.Port())
	waitForPostgres(dsn)

	gdb := openGorm(dsn)
	db.InitWithGormDB(gdb)

	cleanup := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pg.Terminate(ctx)
	}
	return gdb, cleanup
}

func waitForPostgres(dsn string) {
	var err error
	for i := 0; i < 10; i++ {
		var conn *sql.DB
		conn, err = sql.Open("postgres", dsn)
		if err == nil {
			err = conn.Ping()
			_ = conn.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
}

func openGorm(dsn string) *gorm.DB {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	return gdb
}
