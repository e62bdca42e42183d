package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/domain/repository"
	"github.com/timetable-editor/internal/repository/postgres"
)

// Harness - подключение к тестовой БД с применённой схемой расписания
type Harness struct {
	DB    *postgres.DB
	Store repository.TimetableStore

	raw *sqlx.DB
}

// testDSN собирается из TEST_DB_* или берется целиком из TEST_DATABASE_URL
func testDSN() string {
	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		env("TEST_DB_HOST", "localhost"),
		env("TEST_DB_PORT", "5433"),
		env("TEST_DB_USER", "postgres"),
		env("TEST_DB_PASSWORD", "postgres"),
		env("TEST_DB_NAME", "timetable_test"),
	)
}

// Open подключается через lib/pq и мигрирует схему.
// Без доступного PostgreSQL тест пропускается.
func Open(t *testing.T) *Harness {
	t.Helper()

	var (
		raw *sqlx.DB
		err error
	)
	delay := 200 * time.Millisecond
	for attempt := 1; attempt <= 3; attempt++ {
		if raw, err = sqlx.Connect("postgres", testDSN()); err == nil {
			break
		}
		t.Logf("postgres not ready (attempt %d): %v", attempt, err)
		time.Sleep(delay)
		delay *= 2
	}
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	db := postgres.NewDBForTest(raw, zap.NewNop())
	if err := db.Migrate(context.Background()); err != nil {
		_ = raw.Close()
		t.Fatalf("migrate: %v", err)
	}

	return &Harness{DB: db, Store: postgres.NewStore(db), raw: raw}
}

// Reset очищает поезда и станции и засевает переданный каталог
func (h *Harness) Reset(ctx context.Context, stations []domain.Station) (int, error) {
	if _, err := h.raw.ExecContext(ctx, "TRUNCATE TABLE trains, stations"); err != nil {
		return 0, fmt.Errorf("truncate: %w", err)
	}
	return postgres.SeedStations(ctx, h.DB, stations)
}

func (h *Harness) Close() {
	if h.raw != nil {
		_ = h.raw.Close()
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
