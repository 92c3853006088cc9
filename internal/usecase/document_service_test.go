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

func newDocumentFixture() (*matterFixture, DocumentUseCase) {
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
	f := &matterFixture{
		principal:  principal,
		membership: membership,
		binder:     binder,
		matters:    matters,
		documents:  documents,
	}
	return f, NewDocumentService(scoper, documents, matters)
}

func TestDocumentService_Create(t *testing.T) {
	f, svc := newDocumentFixture()
	matterID := uuid.New()
	f.matters.Matters = []domain.Matter{{ID: matterID}}

	doc, err := svc.Create(context.Background(), CreateDocumentInput{
		MatterID: matterID,
		Title:    "Power of Attorney",
		FileName: "poa.pdf",
		FileSize: 1024,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if doc.Status != domain.DocumentUploaded {
		t.Errorf("expected status uploaded, got %q", doc.Status)
	}
	if doc.UploadedBy != f.principal.ID {
		t.Error("uploader not stamped from the caller's membership")
	}

	// Matter check and insert share the bound channel.
	if len(f.binder.Channels) != 1 {
		t.Fatalf("expected 1 bound channel, got %d", len(f.binder.Channels))
	}
	if f.matters.Channels[0] != f.documents.Channels[0] {
		t.Error("matter check ran on a different channel than the insert")
	}
}

func TestDocumentService_Create_UnknownMatter(t *testing.T) {
	f, svc := newDocumentFixture()

	// A matter id from another tenant is invisible on the scoped channel, so
	// this is indistinguishable from an id that never existed.
	_, err := svc.Create(context.Background(), CreateDocumentInput{
		MatterID: uuid.New(),
		Title:    "Stray",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(f.documents.Stored) != 0 {
		t.Error("document must not be stored when the matter lookup fails")
	}
}

func TestDocumentService_List_FilterByMatter(t *testing.T) {
	f, svc := newDocumentFixture()
	matterID := uuid.New()
	f.documents.Documents = []domain.Document{
		{ID: uuid.New(), MatterID: matterID},
		{ID: uuid.New(), MatterID: uuid.New()},
	}

	docs, err := svc.List(context.Background(), &matterID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("expected 1 document, got %d", len(docs))
	}

	all, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 documents, got %d", len(all))
	}
}
