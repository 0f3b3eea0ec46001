package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/accounting"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

// Formatos de salida.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

const documentTitle = "Eno Livraison - Export des données"

// Source colecciones del espejo que se exportan.
type Source interface {
	Loaded() bool
	Partners() []*entity.Partner
	Products() []*entity.Product
	StockMovements() []*entity.StockMovement
	Transactions() []*entity.Transaction
	StandardOrders() []*entity.StandardOrder
	PartnerDeliveryFees() []*entity.PartnerDeliveryFee
	Salaries() []*entity.Salary
	Deliveries() []*entity.Delivery
	BankDeposits() []*entity.BankDeposit
}

// Renderer convierte un Dataset en los bytes de un archivo.
type Renderer interface {
	Render(ctx context.Context, ds *Dataset) ([]byte, error)
	ContentType() string
}

// File archivo listo para descargar.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportUseCase exporta categorías del espejo a PDF o XLSX.
type ExportUseCase struct {
	src       Source
	renderers map[string]Renderer
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso con un renderer por formato.
func NewExportUseCase(src Source, pdf, xlsx Renderer) *ExportUseCase {
	return &ExportUseCase{
		src:       src,
		renderers: map[string]Renderer{FormatPDF: pdf, FormatXLSX: xlsx},
		now:       time.Now,
	}
}

// FileName nombre del archivo: export_eno_livraison_YYYY-MM-DD.<formato>.
func FileName(format string, at time.Time) string {
	return fmt.Sprintf("export_eno_livraison_%s.%s", at.Format(entity.DateLayout), format)
}

// Export valida la petición, arma el dataset y lo renderiza.
func (uc *ExportUseCase) Export(ctx context.Context, actor access.Grant, req dto.ExportRequest) (*File, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	renderer, ok := uc.renderers[format]
	if !ok || renderer == nil {
		return nil, fmt.Errorf("%w: formato %q", domain.ErrInvalidInput, req.Format)
	}
	r, err := accounting.NewRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	ds, err := uc.Build(actor, req.Categories, r)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(ctx, ds)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}
	return &File{
		Name:        FileName(format, ds.GeneratedAt),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

// Build arma una sección por categoría seleccionada, en el orden pedido y sin repetidos.
// Una selección vacía es un error.
func (uc *ExportUseCase) Build(actor access.Grant, categories []string, r accounting.DateRange) (*Dataset, error) {
	if !uc.src.Loaded() {
		return nil, domain.ErrNotLoaded
	}
	selected := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if _, ok := categoryTitles[c]; !ok {
			return nil, fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, c)
		}
		if seen[c] {
			continue
		}
		if actor.ScopedToPartner() && financeCategories[c] {
			return nil, domain.ErrForbidden
		}
		seen[c] = true
		selected = append(selected, c)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: ninguna categoría seleccionada", domain.ErrInvalidInput)
	}

	ds := &Dataset{Title: documentTitle, GeneratedAt: uc.now(), Range: r}
	for _, c := range selected {
		ds.Sections = append(ds.Sections, uc.section(actor, c, r))
	}
	return ds, nil
}
