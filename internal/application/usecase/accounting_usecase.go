package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/accounting"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
	"github.com/jhoicas/eno-livraison-api/pkg/logger"
)

// AccountingUseCase resúmenes contables calculados sobre el espejo.
type AccountingUseCase struct {
	mirror    MirrorReader
	refresher Refresher
	procs     repository.Procedures
	journal   *Journal
	log       *logger.Logger
	now       func() time.Time
}

// NewAccountingUseCase construye el caso de uso.
func NewAccountingUseCase(mirror MirrorReader, refresher Refresher, procs repository.Procedures, journal *Journal, log *logger.Logger) *AccountingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AccountingUseCase{mirror: mirror, refresher: refresher, procs: procs, journal: journal, log: log, now: time.Now}
}

// Summary resumen del periodo (preset o fechas; vacío = todo).
func (uc *AccountingUseCase) Summary(q dto.RangeQuery) (*dto.AccountingSummaryDTO, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	r, err := accounting.Resolve(q.Preset, q.From, q.To, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.AccountingSummaryDTO{
		From:    r.From.String(),
		To:      r.To.String(),
		Summary: accounting.Summarize(r, uc.ledger()),
	}, nil
}

// PartnerStats acumulados por partenaire en el periodo, ordenados por sortKey.
func (uc *AccountingUseCase) PartnerStats(q dto.RangeQuery, sortKey string, desc bool) ([]accounting.PartnerStat, error) {
	if err := requireLoaded(uc.mirror); err != nil {
		return nil, err
	}
	r, err := accounting.Resolve(q.Preset, q.From, q.To, uc.now())
	if err != nil {
		return nil, err
	}
	stats := accounting.PartnerStats(uc.mirror.Partners(), uc.mirror.PartnerDeliveryFees(), r)
	accounting.SortPartnerStats(stats, sortKey, desc)
	return stats, nil
}

// Reset vacía los datos contables en el servidor y refresca el espejo.
// Un fallo del refresco se registra; el reset ya está confirmado.
func (uc *AccountingUseCase) Reset(ctx context.Context, actor access.Grant) error {
	if err := uc.procs.ResetAccountingData(ctx); err != nil {
		return err
	}
	uc.journal.Record(ctx, actor, ActionAccountingReset, nil)
	if uc.refresher != nil {
		if err := uc.refresher.Refresh(ctx); err != nil {
			uc.log.Warn().Err(err).Msg("refresco tras reset contable fallido")
		}
	}
	return nil
}

func (uc *AccountingUseCase) ledger() accounting.Ledger {
	return accounting.Ledger{
		StandardOrders: uc.mirror.StandardOrders(),
		Fees:           uc.mirror.PartnerDeliveryFees(),
		Transactions:   uc.mirror.Transactions(),
		Salaries:       uc.mirror.Salaries(),
	}
}
