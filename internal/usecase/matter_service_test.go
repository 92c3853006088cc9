package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/domain/mocks"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

type matterFixture struct {
	principal  *domain.Principal
	membership *domain.Membership
	binder     *mocks.MockBinder
	matters    *mocks.MockMatterRepository
	documents  *mocks.MockDocumentRepository
	svc        MatterUseCase
}

func newMatterFixture() *matterFixture {
	principal := &domain.Principal{ID: uuid.New(), Email: "lawyer@firm.law"}
	tenantID := uuid.New()
	membership := &domain.Membership{
		ID:       principal.ID,
		TenantID: tenantID,
		Role:     domain.RoleLawyer,
	}
	dir := &mocks.MockDirectory{
		Memberships: map[uuid.UUID]*domain.Membership{principal.ID: membership},
	}
	binder := &mocks.MockBinder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoper := tenancy.NewScoper(&mocks.MockResolver{Principal: principal}, dir, binder, logger, nil)
	matters := &mocks.MockMatterRepository{}
	documents := &mocks.MockDocumentRepository{}
	return &matterFixture{
		principal:  principal,
		membership: membership,
		binder:     binder,
		matters:    matters,
		documents:  documents,
		svc:        NewMatterService(scoper, matters, documents),
	}
}

func TestMatterService_Create(t *testing.T) {
	f := newMatterFixture()

	matter, err := f.svc.Create(context.Background(), CreateMatterInput{
		Title:      "Estate of Kowalski",
		ClientName: "Jan Kowalski",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if matter.Status != domain.MatterActive {
		t.Errorf("expected default status active, got %q", matter.Status)
	}

	if len(f.matters.Channels) != 1 {
		t.Fatalf("expected 1 repository call, got %d", len(f.matters.Channels))
	}
	if got := f.matters.Channels[0].TenantID(); got != f.membership.TenantID {
		t.Errorf("operation ran on tenant %s, want %s", got, f.membership.TenantID)
	}
	if len(f.binder.Channels) != 1 || !f.binder.Channels[0].Released {
		t.Error("scoped channel was not released after the operation")
	}
	if f.binder.Channels[0].ReleasedWith != nil {
		t.Errorf("channel released with error %v, want nil", f.binder.Channels[0].ReleasedWith)
	}
}

func TestMatterService_Get(t *testing.T) {
	f := newMatterFixture()
	matterID := uuid.New()
	f.matters.Matters = []domain.Matter{{ID: matterID, Title: "Estate of Kowalski"}}
	f.documents.Documents = []domain.Document{
		{ID: uuid.New(), MatterID: matterID, Title: "Will"},
		{ID: uuid.New(), MatterID: uuid.New(), Title: "Unrelated"},
	}

	detail, err := f.svc.Get(context.Background(), matterID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Title != "Estate of Kowalski" {
		t.Errorf("unexpected matter: %+v", detail.Matter)
	}
	if len(detail.Documents) != 1 || detail.Documents[0].Title != "Will" {
		t.Errorf("expected only the matter's documents, got %+v", detail.Documents)
	}

	// Matter and document reads share a single bound channel.
	if len(f.binder.Channels) != 1 {
		t.Fatalf("expected 1 bound channel, got %d", len(f.binder.Channels))
	}
	if f.documents.Channels[0] != f.matters.Channels[0] {
		t.Error("document read used a different channel than the matter read")
	}
}

func TestMatterService_Get_NotFound(t *testing.T) {
	f := newMatterFixture()

	_, err := f.svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !f.binder.Channels[0].Released {
		t.Error("channel must be released even when the operation fails")
	}
	if !errors.Is(f.binder.Channels[0].ReleasedWith, domain.ErrNotFound) {
		t.Error("release must see the operation error so the transaction rolls back")
	}
}

func TestMatterService_Delete(t *testing.T) {
	f := newMatterFixture()
	matterID := uuid.New()
	f.matters.Matters = []domain.Matter{{ID: matterID}}

	if err := f.svc.Delete(context.Background(), matterID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(f.matters.Matters) != 0 {
		t.Error("matter was not deleted")
	}
}

func TestMatterService_FreshChannelPerCall(t *testing.T) {
	f := newMatterFixture()

	if _, err := f.svc.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := f.svc.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(f.binder.Channels) != 2 {
		t.Fatalf("expected 2 bound channels, got %d", len(f.binder.Channels))
	}
	if f.binder.Channels[0] == f.binder.Channels[1] {
		t.Error("channels must not be reused across operations")
	}
}
