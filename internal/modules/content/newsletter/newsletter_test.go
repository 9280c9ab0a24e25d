package newsletter

import (
	"strings"
	"testing"
	"time"

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

func TestSubscribeNormalizesAndRejectsDuplicates(t *testing.T) {
	svc := newTestService(t)

	sub, err := svc.Subscribe(&SubscribeDTO{Email: "  Alice@Example.COM ", Name: "Alice"})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if sub.Email != "alice@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", sub.Email)
	}
	if !sub.IsActive {
		t.Fatal("new subscriber should be active")
	}

	_, err = svc.Subscribe(&SubscribeDTO{Email: "ALICE@example.com"})
	if !apperr.IsConflict(err) {
		t.Fatalf("duplicate subscribe: got %v, want conflict", err)
	}
}

func TestSetActiveToggle(t *testing.T) {
	svc := newTestService(t)

	sub, err := svc.Subscribe(&SubscribeDTO{Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	got, err := svc.SetActive(sub.ID, false)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if got.IsActive {
		t.Fatal("subscriber should be inactive")
	}

	if _, err := svc.SetActive("missing", true); err == nil {
		t.Fatal("unknown id should fail")
	}
}

func TestExportCSVFormat(t *testing.T) {
	when := time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)
	subs := []models.SubscriberModel{
		{
			Base:     models.Base{CreatedAt: when},
			Email:    "alice@example.com",
			Name:     "Alice Dupont",
			IsActive: true,
			Source:   "footer",
		},
		{
			Base:     models.Base{CreatedAt: when.AddDate(0, 1, 2)},
			Email:    "bob@example.com",
			Name:     "Bob",
			IsActive: false,
			Source:   "",
		},
	}

	got := ExportCSV(subs)
	want := "Email,Nom,Date,Statut,Source\n" +
		"alice@example.com,Alice Dupont,07/03/2025,Actif,footer\n" +
		"bob@example.com,Bob,09/04/2025,Inactif,\n"
	if got != want {
		t.Fatalf("csv mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportCSVStripsSeparatorsFromFreeText(t *testing.T) {
	subs := []models.SubscriberModel{
		{
			Email:    "eve@example.com",
			Name:     "Eve, la maligne",
			IsActive: true,
		},
	}

	got := ExportCSV(subs)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if n := strings.Count(lines[1], ","); n != 4 {
		t.Fatalf("data row has %d commas, want 4: %q", n, lines[1])
	}
}
