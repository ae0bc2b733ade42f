package testutils

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"coffee-shop-backend/internal/config"
	"coffee-shop-backend/internal/database"
	"coffee-shop-backend/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "coffee"
	pgPassword = "coffee"
	pgDatabase = "coffee_shop_test"
)

// container is the Postgres instance shared by every integration suite of one test binary
var container struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
	tables   []string
}

// BaseTestSuite hands a migrated database to repository suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a wrapper around it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	container.once.Do(func() { container.err = startPostgres() })
	if container.err != nil {
		t.Fatalf("failed to start test database: %v", container.err)
	}
	return &BaseTestSuite{DB: container.db, Config: container.cfg}
}

// CleanupSharedContainer closes the pool and purges the container; call it from TestMain
func CleanupSharedContainer() {
	log := logger.New().WithField("component", "testutils")
	if container.db != nil {
		if sqlDB, err := container.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		container.db = nil
	}
	if container.pool == nil || container.resource == nil {
		return
	}
	if err := container.pool.Purge(container.resource); err != nil {
		log.WithError(err).Warn("could not purge postgres container")
		return
	}
	log.WithField("container", container.resource.Container.Name).Info("postgres container purged")
	container.resource = nil
	container.pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives individual suites.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every migrated table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(container.tables) == 0 {
		return
	}
	s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(container.tables, ", ") + ` RESTART IDENTITY CASCADE`)
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	container.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
			"TZ=UTC",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	container.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// The container accepts TCP before it accepts logins; wait on a real connection.
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)
		return conn.Ping(ctx)
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent, MaxOpenConns: 5})
	if err != nil {
		return err
	}
	container.db = db

	tables, err := migratedTables(db)
	if err != nil {
		return err
	}
	container.tables = tables

	container.cfg = &config.Config{
		Environment:       "test",
		DatabaseURL:       dsn,
		LogLevel:          "debug",
		Timezone:          "UTC",
		MaxGenerationDays: 366,
	}

	logger.New().WithFields(map[string]interface{}{
		"component": "testutils",
		"tables":    tables,
	}).Info("test database ready")
	return nil
}

func migratedTables(db *gorm.DB) ([]string, error) {
	tables := make([]string, 0, len(database.Models()))
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		tables = append(tables, `"`+stmt.Schema.Table+`"`)
	}
	return tables, nil
}
