package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// DocumentUseCase metadatos de documentos archivados. No está en el espejo.
type DocumentUseCase struct {
	repo    repository.DocumentRepository
	journal *Journal
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, journal *Journal) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, journal: journal}
}

// List documentos, más recientes primero.
func (uc *DocumentUseCase) List(ctx context.Context) ([]dto.DocumentResponse, error) {
	docs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// Add registra un documento ya subido al storage.
func (uc *DocumentUseCase) Add(ctx context.Context, actor access.Grant, in dto.DocumentRequest) (*dto.DocumentResponse, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.FileURL) == "" {
		return nil, domain.ErrInvalidInput
	}
	d, err := uc.repo.Create(ctx, &entity.Document{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		FileURL:     in.FileURL,
		FileType:    in.FileType,
		UserID:      actor.UserID,
	})
	if err != nil {
		return nil, err
	}
	resp := toDocumentResponse(d)
	return &resp, nil
}

// Delete borra los metadatos del documento. Solo con capacidad delete_documents.
func (uc *DocumentUseCase) Delete(ctx context.Context, actor access.Grant, id string) error {
	if !actor.Can(access.DeleteDocuments) {
		return domain.ErrForbidden
	}
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.journal.Record(ctx, actor, ActionDocumentDeleted, map[string]any{"document_id": id, "title": d.Title})
	return nil
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		FileURL:     d.FileURL,
		FileType:    d.FileType,
		UserID:      d.UserID,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
