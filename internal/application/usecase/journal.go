package usecase

import (
	"context"

	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
	"github.com/jhoicas/eno-livraison-api/pkg/logger"
)

// Acciones registradas en el journal.
const (
	ActionPartnerCreated       = "partner_created"
	ActionPartnerDeleted       = "partner_deleted"
	ActionPartnerCodesReassign = "partner_codes_reassigned"
	ActionProductCreated       = "product_created"
	ActionProductDeleted       = "product_deleted"
	ActionStockAdjusted        = "stock_adjusted"
	ActionAccountingReset      = "accounting_reset"
	ActionDocumentDeleted      = "document_deleted"
	ActionUserUpdated          = "user_updated"
	ActionUserDeleted          = "user_deleted"
	ActionPermissionsUpdated   = "permissions_updated"
)

// Journal escribe entradas en activity_log. Un fallo se registra en el log
// y no interrumpe la operación que ya se confirmó.
type Journal struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewJournal construye el journal. repo nil = no se registra nada.
func NewJournal(repo repository.ActivityLogRepository, log *logger.Logger) *Journal {
	if log == nil {
		log = logger.Nop()
	}
	return &Journal{repo: repo, log: log}
}

// Record agrega una entrada a nombre del actor.
func (j *Journal) Record(ctx context.Context, actor access.Grant, action string, details map[string]any) {
	if j == nil || j.repo == nil {
		return
	}
	e := &entity.ActivityLogEntry{
		UserFullName: actor.FullName,
		Action:       action,
		Details:      details,
	}
	if actor.UserID != "" {
		uid := actor.UserID
		e.UserID = &uid
	}
	if err := j.repo.Append(ctx, e); err != nil {
		j.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar la actividad")
	}
}
