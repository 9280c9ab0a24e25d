package post

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jawa-agence/core/internal/database"
	"github.com/jawa-agence/core/internal/models"
	"github.com/jawa-agence/core/internal/pkg/apperr"
	"github.com/jawa-agence/core/internal/pkg/pagination"
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

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreatePostDTO{Title: "Création de Sites Web"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "creation-de-sites-web" {
		t.Fatalf("slug = %q, want %q", created.Slug, "creation-de-sites-web")
	}
	if created.IsPublished {
		t.Fatal("new post should start as a draft")
	}
	if created.PublishedAt != nil {
		t.Fatal("draft should have no publication date")
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Create(&CreatePostDTO{Title: "Hello World"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(&CreatePostDTO{Title: "Autre titre", Slug: "hello-world"})
	if !apperr.IsConflict(err) {
		t.Fatalf("duplicate slug: got %v, want conflict", err)
	}
}

func TestCreateRejectsEmptySlug(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&CreatePostDTO{Title: "!!!"})
	if !apperr.IsValidation(err) {
		t.Fatalf("empty-deriving slug: got %v, want validation error", err)
	}
}

func TestPublishStampsDateOnceAndKeepsItAcrossUnpublish(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreatePostDTO{Title: "Draft"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published, err := svc.SetPublished(created.ID, true)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished || published.PublishedAt == nil {
		t.Fatal("publishing must set the flag and the date")
	}
	firstPublish := *published.PublishedAt

	unpublished, err := svc.SetPublished(created.ID, false)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if unpublished.IsPublished {
		t.Fatal("unpublish must clear the flag")
	}
	if unpublished.PublishedAt == nil {
		t.Fatal("unpublish must keep the original publication date")
	}

	republished, err := svc.SetPublished(created.ID, true)
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if !republished.PublishedAt.Equal(firstPublish) {
		t.Fatalf("republish changed the date: %v != %v", republished.PublishedAt, firstPublish)
	}
}

func TestPartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreatePostDTO{
		Title:   "Original",
		Excerpt: "excerpt",
		Content: "content",
		Author:  "Jane",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(created.ID, &UpdatePostDTO{Content: strPtr("new content")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.GetByIdentifier(created.ID, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "new content" {
		t.Fatalf("content = %q", got.Content)
	}
	if got.Title != "Original" || got.Excerpt != "excerpt" || got.Author != "Jane" {
		t.Fatal("untouched fields must survive a partial update")
	}
	if got.Slug != created.Slug {
		t.Fatal("slug must not change unless explicitly edited")
	}
}

func TestUpdateSlugConflictExcludesSelf(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Create(&CreatePostDTO{Title: "First"})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := svc.Create(&CreatePostDTO{Title: "Second"}); err != nil {
		t.Fatalf("create b: %v", err)
	}

	// re-submitting its own slug is a no-op, not a conflict
	if _, err := svc.Update(a.ID, &UpdatePostDTO{Slug: strPtr("first")}); err != nil {
		t.Fatalf("self slug: %v", err)
	}

	_, err = svc.Update(a.ID, &UpdatePostDTO{Slug: strPtr("second")})
	if !apperr.IsConflict(err) {
		t.Fatalf("stealing a slug: got %v, want conflict", err)
	}
}

func TestPublicVisibilityGate(t *testing.T) {
	svc := newTestService(t)

	draft, err := svc.Create(&CreatePostDTO{Title: "Hidden Draft"})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := svc.Create(&CreatePostDTO{Title: "Live Post", IsPublished: boolPtr(true)}); err != nil {
		t.Fatalf("create published: %v", err)
	}

	q := pagination.Query{Page: 1, Size: 20}

	public, _, err := svc.List(q, ListQuery{}, false)
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	if len(public) != 1 || public[0].Title != "Live Post" {
		t.Fatalf("public list = %d posts, want only the published one", len(public))
	}

	admin, _, err := svc.List(q, ListQuery{}, true)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(admin) != 2 {
		t.Fatalf("admin list = %d posts, want 2", len(admin))
	}

	if _, err := svc.GetByIdentifier(draft.ID, false); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("public draft read: got %v, want not found", err)
	}
	if _, err := svc.GetByIdentifier(draft.ID, true); err != nil {
		t.Fatalf("admin draft read: %v", err)
	}
}

func TestGetByIdentifierFallsBackToSlug(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreatePostDTO{Title: "Slug Lookup", IsPublished: boolPtr(true)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bySlug, err := svc.GetByIdentifier("slug-lookup", false)
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if bySlug.ID != created.ID {
		t.Fatalf("slug lookup returned %q, want %q", bySlug.ID, created.ID)
	}
}

func TestDeleteRemovesPostAndComments(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreatePostDTO{Title: "Doomed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	comment := models.BlogCommentModel{PostID: created.ID, AuthorName: "v", Content: "c"}
	if err := svc.db.Create(&comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	svc.db.Model(&models.BlogCommentModel{}).Where("post_id = ?", created.ID).Count(&count)
	if count != 0 {
		t.Fatalf("orphan comments left: %d", count)
	}

	if err := svc.Delete(created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("double delete: got %v, want not found", err)
	}
}

func TestDeleteRollsBackWhenCommentCascadeFails(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&CreatePostDTO{Title: "Sticky"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.db.Migrator().DropTable(&models.BlogCommentModel{}); err != nil {
		t.Fatalf("drop comments table: %v", err)
	}

	if err := svc.Delete(created.ID); err == nil {
		t.Fatal("delete must surface a failed comment cascade")
	}

	var count int64
	svc.db.Model(&models.BlogPostModel{}).Where("id = ?", created.ID).Count(&count)
	if count != 1 {
		t.Fatal("post must survive a rolled-back delete")
	}
}
