package dao

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB is shared by every test in the package. TestMain starts a
// throwaway Postgres container for it and tears it down afterwards.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("dockertest.NewPool -> %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("pool.Client.Ping -> %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=toybridge",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=toybridge_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("pool.RunWithOptions -> %v", err)
	}
	_ = resource.Expire(120) // hard stop in case a run leaks the container

	dsn := fmt.Sprintf("postgres://toybridge:secret@%v/toybridge_test?sslmode=disable",
		resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if openErr != nil {
			return openErr
		}
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			return pingErr
		}
		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("dao.InitTables -> %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("pool.Purge -> %v", err)
	}

	os.Exit(code)
}
