package repository

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// DocumentRepository puerto de metadatos de documentos (el binario vive en el storage remoto).
// No forma parte del espejo: se consulta bajo demanda.
type DocumentRepository interface {
	TableReader[entity.Document]
	Create(ctx context.Context, d *entity.Document) (*entity.Document, error)
	Delete(ctx context.Context, id string) error
}
