package service

import (
	"testing"

	"github.com/modahaus-api/internal/constants"
	"github.com/modahaus-api/internal/repository"

	"gorm.io/gorm"
)

func newTestCommentService(t *testing.T) (*CommentService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t)
	svc := NewCommentService(repository.NewCommentRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestCreateComment(t *testing.T) {
	svc, db := newTestCommentService(t)
	seller := createTestUser(t, db, "seller@example.com", constants.RoleSeller)
	buyer := createTestUser(t, db, "buyer@example.com", constants.RoleBuyer)
	product := createTestProduct(t, db, seller.ID, "Ankara Dress", "2499.00", 10)

	comment, err := svc.Create(buyer.ID, product.ID, "  Fits perfectly, fabric is great.  ")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if comment.Text != "Fits perfectly, fabric is great." {
		t.Fatalf("expected trimmed text, got %q", comment.Text)
	}

	if _, err := svc.Create(buyer.ID, product.ID, "   "); err != ErrCommentTextRequired {
		t.Fatalf("expected ErrCommentTextRequired, got %v", err)
	}
	if _, err := svc.Create(buyer.ID, product.ID+99, "nice"); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteComment_Ownership(t *testing.T) {
	svc, db := newTestCommentService(t)
	seller := createTestUser(t, db, "seller@example.com", constants.RoleSeller)
	author := createTestUser(t, db, "author@example.com", constants.RoleBuyer)
	stranger := createTestUser(t, db, "stranger@example.com", constants.RoleBuyer)
	admin := createTestUser(t, db, "admin@example.com", constants.RoleAdmin)
	product := createTestProduct(t, db, seller.ID, "Ankara Dress", "2499.00", 10)

	first, err := svc.Create(author.ID, product.ID, "first")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	second, err := svc.Create(author.ID, product.ID, "second")
	if err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	if err := svc.Delete(first.ID, stranger.ID, constants.RoleBuyer); err != ErrCommentNotOwned {
		t.Fatalf("expected ErrCommentNotOwned, got %v", err)
	}
	if err := svc.Delete(first.ID, author.ID, constants.RoleBuyer); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := svc.Delete(second.ID, admin.ID, constants.RoleAdmin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := svc.Delete(second.ID, admin.ID, constants.RoleAdmin); err != ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound after delete, got %v", err)
	}

	comments, total, err := svc.ListByProduct(product.ID, 1, 20)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if total != 0 || len(comments) != 0 {
		t.Fatalf("expected empty comment list, got total=%d len=%d", total, len(comments))
	}
}
