package pricing

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jawa-agence/core/internal/database"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db)
}

func seedService(t *testing.T, db *gorm.DB, title string) *models.ServiceModel {
	t.Helper()
	svc := models.ServiceModel{Title: title}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("seed service %q: %v", title, err)
	}
	return &svc
}

func TestResolveForServiceMatchesByTitle(t *testing.T) {
	svc := newTestService(t)

	web := seedService(t, svc.db, "Sites Web")
	seedService(t, svc.db, "SEO")

	if _, err := svc.Create(&CreatePlanDTO{Title: "Starter", Category: "Sites Web"}); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if _, err := svc.Create(&CreatePlanDTO{Title: "Pro", Category: "Sites Web"}); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if _, err := svc.Create(&CreatePlanDTO{Title: "Audit", Category: "SEO"}); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	plans, err := svc.ResolveForServiceID(web.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("resolved %d plans, want 2", len(plans))
	}
	for _, p := range plans {
		if p.Category != "Sites Web" {
			t.Fatalf("plan %q has category %q", p.Title, p.Category)
		}
	}
}

func TestResolveForServiceWithNoPlansIsEmptyNotError(t *testing.T) {
	svc := newTestService(t)

	lonely := seedService(t, svc.db, "Branding")

	plans, err := svc.ResolveForServiceID(lonely.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("resolved %d plans, want 0", len(plans))
	}
}

func TestResolveForUnknownServiceIsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ResolveForServiceID("does-not-exist")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestServicesSharingATitleShareTheirPlans(t *testing.T) {
	svc := newTestService(t)

	first := seedService(t, svc.db, "Consulting")
	second := seedService(t, svc.db, "Consulting")

	if _, err := svc.Create(&CreatePlanDTO{Title: "Hourly", Category: "Consulting"}); err != nil {
		t.Fatalf("create plan: %v", err)
	}

	a, err := svc.ResolveForServiceID(first.ID)
	if err != nil {
		t.Fatalf("resolve first: %v", err)
	}
	b, err := svc.ResolveForServiceID(second.ID)
	if err != nil {
		t.Fatalf("resolve second: %v", err)
	}
	if len(a) != 1 || len(b) != 1 || a[0].ID != b[0].ID {
		t.Fatal("duplicate-titled services must resolve the same plans")
	}
}

func TestFeaturesRoundTrip(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreatePlanDTO{
		Title:    "Full",
		Features: []string{"design", "hosting", "support"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Features) != 3 || got.Features[1] != "hosting" {
		t.Fatalf("features = %v", got.Features)
	}
}
