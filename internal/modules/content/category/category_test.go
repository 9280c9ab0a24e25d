package category

import (
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

func TestCreateRejectsDuplicateNameOrSlug(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(&CreateCategoryDTO{Name: "Conseils"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Create(&CreateCategoryDTO{Name: "Conseils"}); !apperr.IsConflict(err) {
		t.Fatalf("duplicate name: got %v, want conflict", err)
	}
	if _, err := svc.Create(&CreateCategoryDTO{Name: "Autre", Slug: "conseils"}); !apperr.IsConflict(err) {
		t.Fatalf("duplicate slug: got %v, want conflict", err)
	}
}

func TestCreateSurfacesConflictCheckFailure(t *testing.T) {
	svc := newTestService(t)

	if err := svc.db.Migrator().DropTable(&models.BlogCategoryModel{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	_, err := svc.Create(&CreateCategoryDTO{Name: "Ghost"})
	if err == nil {
		t.Fatal("create must fail when the conflict check cannot run")
	}
	if apperr.IsConflict(err) {
		t.Fatalf("a failed count must not read as a conflict: %v", err)
	}
}

func TestDeleteDetachesPosts(t *testing.T) {
	svc := newTestService(t)

	cat, err := svc.Create(&CreateCategoryDTO{Name: "Tech"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	post := models.BlogPostModel{Title: "p", Slug: "p", CategoryID: &cat.ID}
	if err := svc.db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	if err := svc.Delete(cat.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var got models.BlogPostModel
	if err := svc.db.First(&got, "id = ?", post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if got.CategoryID != nil {
		t.Fatalf("post still references deleted category %q", *got.CategoryID)
	}
}
