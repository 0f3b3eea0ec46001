package postgres

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, title, COALESCE(description, ''), file_url, COALESCE(file_type, ''),
	COALESCE(user_id::text, ''), created_at`

// DocumentRepo metadatos de documentos. No pasa por el espejo.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

func scanDocument(s pgxScanner) (*entity.Document, error) {
	var d entity.Document
	if err := s.Scan(&d.ID, &d.Title, &d.Description, &d.FileURL, &d.FileType, &d.UserID, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// List devuelve los documentos del más reciente al más antiguo.
func (r *DocumentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.q.Query(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC`)
	if err != nil {
		return nil, readError("list documents", err)
	}
	return collect(rows, scanDocument)
}

func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	d, err := scanDocument(r.q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		return nil, readError("get document", err)
	}
	return d, nil
}

func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	query := `
		INSERT INTO documents (title, description, file_url, file_type, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + documentColumns
	out, err := scanDocument(r.q.QueryRow(ctx, query,
		d.Title, textArg(d.Description), d.FileURL, textArg(d.FileType), textArg(d.UserID),
	))
	if err != nil {
		return nil, writeError("insert document", err)
	}
	return out, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return execOne(tag, err, "delete document")
}
