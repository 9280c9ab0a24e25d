package testimonial

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jawa-agence/core/internal/database"
	"github.com/jawa-agence/core/internal/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testPage() pagination.Query { return pagination.Query{Page: 1, Size: 20} }

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

func TestPublicSubmissionStartsUnapproved(t *testing.T) {
	svc := newTestService(t)

	approved := true
	item, err := svc.Create(&CreateTestimonialDTO{
		Quote:    "Great work",
		Name:     "Mallory",
		Approved: &approved, // public callers cannot self-approve
	}, false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Approved {
		t.Fatal("public submission must start unapproved")
	}

	visible, err := svc.ListVisible()
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("unapproved testimonial leaked to public list: %d items", len(visible))
	}
}

func TestAdminCreateDefaultsToApproved(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.Create(&CreateTestimonialDTO{Quote: "q", Name: "Admin"}, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !item.Approved {
		t.Fatal("admin-created testimonial should default to approved")
	}
}

func TestApprovalMakesTestimonialVisible(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.Create(&CreateTestimonialDTO{Quote: "q", Name: "Visitor"}, false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SetApproved(item.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}

	visible, err := svc.ListVisible()
	if err != nil {
		t.Fatalf("list visible: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != item.ID {
		t.Fatalf("approved testimonial missing from public list")
	}
}

func TestAdminListFiltersByApproval(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(&CreateTestimonialDTO{Quote: "a", Name: "A"}, false); err != nil {
		t.Fatalf("create pending: %v", err)
	}
	if _, err := svc.Create(&CreateTestimonialDTO{Quote: "b", Name: "B"}, true); err != nil {
		t.Fatalf("create approved: %v", err)
	}

	pending := false
	items, _, err := svc.ListAll(testPage(), &pending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(items) != 1 || items[0].Name != "A" {
		t.Fatalf("pending filter returned %d items", len(items))
	}

	all, _, err := svc.ListAll(testPage(), nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered list returned %d items, want 2", len(all))
	}
}
