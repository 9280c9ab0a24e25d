package company

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jawa-agence/core/internal/database"
	"github.com/jawa-agence/core/internal/models"
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

func strPtr(s string) *string { return &s }

func TestCompanyInfoStaysASingleRow(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.GetCompanyInfo()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.ID != models.SingletonID {
		t.Fatalf("id = %d, want %d", first.ID, models.SingletonID)
	}

	if _, err := svc.UpdateCompanyInfo(&UpdateCompanyInfoDTO{Name: strPtr("Jawa")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.UpdateCompanyInfo(&UpdateCompanyInfoDTO{Phone: strPtr("+33 1 23 45 67 89")}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	var count int64
	svc.db.Model(&models.CompanyInfoModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("company_info holds %d rows, want exactly 1", count)
	}

	got, err := svc.GetCompanyInfo()
	if err != nil {
		t.Fatalf("get after updates: %v", err)
	}
	if got.Name != "Jawa" || got.Phone != "+33 1 23 45 67 89" {
		t.Fatalf("partial updates lost: %+v", got)
	}
}

func TestAboutSectionPartialUpdate(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.UpdateAboutSection(&UpdateAboutSectionDTO{Title: strPtr("Qui sommes-nous")}); err != nil {
		t.Fatalf("update title: %v", err)
	}
	if _, err := svc.UpdateAboutSection(&UpdateAboutSectionDTO{Content: strPtr("Notre histoire...")}); err != nil {
		t.Fatalf("update content: %v", err)
	}

	got, err := svc.GetAboutSection()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Qui sommes-nous" || got.Content != "Notre histoire..." {
		t.Fatalf("fields lost across updates: %+v", got)
	}

	var count int64
	svc.db.Model(&models.AboutSectionModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("about_section holds %d rows, want exactly 1", count)
	}
}
