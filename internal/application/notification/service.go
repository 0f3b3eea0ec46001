// Package notification deriva alertas de stock bajo a partir de los productos del
// espejo y las guarda en una bandeja en memoria por usuario (no se persiste).
package notification

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/stock"
	"github.com/jhoicas/eno-livraison-api/pkg/logger"
)

// KindLowStock tipo de alerta de stock bajo.
const KindLowStock = "low_stock"

// maxPerInbox límite de notificaciones retenidas por bandeja (se descartan las más viejas).
const maxPerInbox = 200

// Notification alerta mostrada a un usuario.
type Notification struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	PartnerID   string    `json:"partner_id"`
	Stock       int       `json:"stock"`
	Threshold   int       `json:"threshold"`
	Message     string    `json:"message"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductSource colección de productos (el espejo).
type ProductSource interface {
	Products() []*entity.Product
}

type inbox struct {
	grant   access.Grant
	alerted map[string]struct{} // productos ya alertados y aún en stock bajo
	items   []*Notification     // más reciente primero
}

// Service bandejas de notificaciones de las sesiones abiertas.
type Service struct {
	src ProductSource
	log *logger.Logger
	now func() time.Time

	mu      sync.Mutex
	inboxes map[string]*inbox
}

// NewService construye el servicio.
func NewService(src ProductSource, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{src: src, log: log, now: time.Now, inboxes: map[string]*inbox{}}
}

// StartSession abre (o reinicia) la bandeja del usuario con el conjunto de
// alertados vacío y hace un primer barrido.
func (s *Service) StartSession(g access.Grant) {
	if g.UserID == "" {
		return
	}
	products := s.src.Products()
	s.mu.Lock()
	defer s.mu.Unlock()
	ib := &inbox{grant: g, alerted: map[string]struct{}{}}
	s.inboxes[g.UserID] = ib
	s.scanInbox(ib, products)
}

// EndSession descarta la bandeja.
func (s *Service) EndSession(userID string) {
	s.mu.Lock()
	delete(s.inboxes, userID)
	s.mu.Unlock()
}

// HasSession indica si el usuario tiene bandeja abierta.
func (s *Service) HasSession(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inboxes[userID]
	return ok
}

// OnTableChange observador del espejo: re-barre cuando cambian los productos.
func (s *Service) OnTableChange(table string) {
	if table != entity.TableProducts {
		return
	}
	s.Scan()
}

// Scan recorre los productos para todas las bandejas abiertas.
func (s *Service) Scan() {
	products := s.src.Products()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ib := range s.inboxes {
		s.scanInbox(ib, products)
	}
}

func (s *Service) scanInbox(ib *inbox, products []*entity.Product) {
	if ib.grant.Role == access.RoleCEO {
		return
	}
	for _, p := range products {
		if !ib.grant.SeesPartner(p.PartnerID) {
			continue
		}
		_, already := ib.alerted[p.ID]
		if !stock.ProductIsLow(p) {
			if already {
				delete(ib.alerted, p.ID) // salió de la condición: un nuevo cruce vuelve a alertar
			}
			continue
		}
		if already {
			continue
		}
		ib.alerted[p.ID] = struct{}{}
		n := &Notification{
			ID:          uuid.NewString(),
			Kind:        KindLowStock,
			ProductID:   p.ID,
			ProductName: p.Name,
			PartnerID:   p.PartnerID,
			Stock:       p.Stock,
			Threshold:   p.AlertThreshold,
			Message:     fmt.Sprintf("Stock faible : %s (%d restant(s), seuil %d)", p.Name, p.Stock, p.AlertThreshold),
			CreatedAt:   s.now(),
		}
		ib.items = append([]*Notification{n}, ib.items...)
		if len(ib.items) > maxPerInbox {
			ib.items = ib.items[:maxPerInbox]
		}
		s.log.Debug().Str("user_id", ib.grant.UserID).Str("product_id", p.ID).Msg("alerta de stock bajo")
	}
}

// List devuelve copias de las notificaciones del usuario, más recientes primero.
func (s *Service) List(userID string) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	ib, ok := s.inboxes[userID]
	if !ok {
		return []Notification{}
	}
	out := make([]Notification, 0, len(ib.items))
	for _, n := range ib.items {
		out = append(out, *n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// UnreadCount número de notificaciones no leídas.
func (s *Service) UnreadCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ib, ok := s.inboxes[userID]
	if !ok {
		return 0
	}
	n := 0
	for _, it := range ib.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// MarkRead marca una notificación como leída.
func (s *Service) MarkRead(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ib, ok := s.inboxes[userID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, it := range ib.items {
		if it.ID == id {
			it.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// MarkAllRead marca todas como leídas.
func (s *Service) MarkAllRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ib, ok := s.inboxes[userID]; ok {
		for _, it := range ib.items {
			it.Read = true
		}
	}
}

// Clear vacía la bandeja sin reiniciar el conjunto de alertados.
func (s *Service) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ib, ok := s.inboxes[userID]; ok {
		ib.items = nil
	}
}
