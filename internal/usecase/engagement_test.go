package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	testhelpers "github.com/pawmart/pawmart/internal/test"
)

func newEngagementFixture(t *testing.T) (*EngagementUseCase, *testhelpers.CommentRepositoryStub, *testhelpers.ContactRepositoryStub, *model.Product) {
	t.Helper()
	comments := testhelpers.NewCommentRepositoryStub()
	contacts := testhelpers.NewContactRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	product := &model.Product{ID: "prod-1", Name: "Chew Toy"}
	if err := products.Create(context.Background(), product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return NewEngagementUseCase(comments, contacts, products), comments, contacts, product
}

func TestEngagementUseCaseAddComment(t *testing.T) {
	uc, _, _, product := newEngagementFixture(t)

	comment, err := uc.AddComment(context.Background(), "user-1", product.ID, "great toy", 5)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if comment.Status != model.CommentStatusPending {
		t.Fatalf("new comments must await moderation, got %q", comment.Status)
	}
}

func TestEngagementUseCaseAddCommentRejects(t *testing.T) {
	uc, comments, _, product := newEngagementFixture(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		if _, err := uc.AddComment(ctx, "user-1", product.ID, "x", rating); !errors.Is(err, domainErrors.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus for rating %d, got %v", rating, err)
		}
	}
	if _, err := uc.AddComment(ctx, "user-1", "ghost", "x", 3); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown product, got %v", err)
	}
	if len(comments.Comments) != 0 {
		t.Fatal("no comment may be stored for invalid input")
	}
}

func TestEngagementUseCaseModeration(t *testing.T) {
	uc, _, _, product := newEngagementFixture(t)
	ctx := context.Background()

	comment, err := uc.AddComment(ctx, "user-1", product.ID, "great toy", 5)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	public, err := uc.ProductComments(ctx, product.ID, false)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(public) != 0 {
		t.Fatal("pending comments must be hidden from the public listing")
	}

	moderated, err := uc.ProductComments(ctx, product.ID, true)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(moderated) != 1 {
		t.Fatalf("moderators should see pending comments, got %d", len(moderated))
	}

	if _, err := uc.UpdateCommentStatus(ctx, comment.ID, "Starred"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if _, err := uc.UpdateCommentStatus(ctx, comment.ID, model.CommentStatusApproved); err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	public, err = uc.ProductComments(ctx, product.ID, false)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("approved comment should be public, got %d", len(public))
	}

	if err := uc.DeleteComment(ctx, comment.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
}

func TestEngagementUseCaseContacts(t *testing.T) {
	uc, _, contacts, _ := newEngagementFixture(t)
	ctx := context.Background()

	contact, err := uc.SubmitContact(ctx, "Dana", "dana@example.com", "Hours", "Open Sunday?")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if contact.ID == "" {
		t.Fatal("expected generated contact id")
	}

	listed, err := uc.Contacts(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one message, got %d", len(listed))
	}

	if err := uc.DeleteContact(ctx, contact.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if len(contacts.Contacts) != 0 {
		t.Fatal("message not removed")
	}
}
