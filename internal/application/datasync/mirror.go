// Package datasync mantiene en memoria una copia de las tablas remotas durante
// la vida del proceso: carga masiva concurrente, refresco periódico o manual y
// aplicación de los eventos de cambio publicados por el servidor.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
	"github.com/jhoicas/eno-livraison-api/pkg/logger"
)

// Sources lectores de las nueve tablas espejadas.
type Sources struct {
	Partners            repository.TableReader[entity.Partner]
	Products            repository.TableReader[entity.Product]
	Transactions        repository.TableReader[entity.Transaction]
	Deliveries          repository.TableReader[entity.Delivery]
	StockMovements      repository.TableReader[entity.StockMovement]
	BankDeposits        repository.TableReader[entity.BankDeposit]
	StandardOrders      repository.TableReader[entity.StandardOrder]
	PartnerDeliveryFees repository.TableReader[entity.PartnerDeliveryFee]
	Salaries            repository.TableReader[entity.Salary]
}

// Status estado visible del espejo.
type Status struct {
	Loading      bool           `json:"loading"`    // carga inicial en curso
	Refreshing   bool           `json:"refreshing"` // refresco manual en curso
	Loaded       bool           `json:"loaded"`
	LastError    string         `json:"last_error,omitempty"`
	LastLoadedAt *time.Time     `json:"last_loaded_at,omitempty"` // nil hasta la primera carga completa
	Counts       map[string]int `json:"counts"`
}

// Mirror copia en memoria de las tablas remotas. Las escrituras no pasan por aquí:
// una mutación confirmada se refleja cuando llega su evento de cambio.
type Mirror struct {
	log      *logger.Logger
	feed     repository.ChangeFeed
	interval time.Duration

	partners       *table[entity.Partner]
	products       *table[entity.Product]
	transactions   *table[entity.Transaction]
	deliveries     *table[entity.Delivery]
	movements      *table[entity.StockMovement]
	bankDeposits   *table[entity.BankDeposit]
	standardOrders *table[entity.StandardOrder]
	fees           *table[entity.PartnerDeliveryFee]
	salaries       *table[entity.Salary]
	tables         []binding
	byName         map[string]binding

	loadMu sync.Mutex // serializa cargas completas

	mu           sync.RWMutex
	loading      bool
	refreshing   bool
	loaded       bool
	lastErr      error
	lastLoadedAt time.Time
	capturing    bool     // hay una carga en vuelo
	replay       []func() // eventos aplicados durante la carga en vuelo

	obsMu     sync.RWMutex
	observers []func(table string)

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMirror construye el espejo. feed puede ser nil (sin eventos; solo refrescos).
func NewMirror(src Sources, feed repository.ChangeFeed, interval time.Duration, log *logger.Logger) *Mirror {
	if log == nil {
		log = logger.Nop()
	}
	m := &Mirror{
		log:      log,
		feed:     feed,
		interval: interval,

		partners:       newTable(entity.TablePartners, src.Partners, func(p *entity.Partner) string { return p.ID }, false),
		products:       newTable(entity.TableProducts, src.Products, func(p *entity.Product) string { return p.ID }, false),
		transactions:   newTable(entity.TableTransactions, src.Transactions, func(t *entity.Transaction) string { return t.ID }, false),
		deliveries:     newTable(entity.TableDeliveries, src.Deliveries, func(d *entity.Delivery) string { return d.ID }, false),
		movements:      newTable(entity.TableStockMovements, src.StockMovements, func(s *entity.StockMovement) string { return s.ID }, true),
		bankDeposits:   newTable(entity.TableBankDeposits, src.BankDeposits, func(b *entity.BankDeposit) string { return b.ID }, false),
		standardOrders: newTable(entity.TableStandardOrders, src.StandardOrders, func(o *entity.StandardOrder) string { return o.ID }, false),
		fees:           newTable(entity.TablePartnerDeliveryFees, src.PartnerDeliveryFees, func(f *entity.PartnerDeliveryFee) string { return f.ID }, false),
		salaries:       newTable(entity.TableSalaries, src.Salaries, func(s *entity.Salary) string { return s.ID }, false),
	}
	m.tables = []binding{
		m.partners, m.products, m.transactions, m.deliveries, m.movements,
		m.bankDeposits, m.standardOrders, m.fees, m.salaries,
	}
	m.byName = make(map[string]binding, len(m.tables))
	for _, t := range m.tables {
		m.byName[t.name()] = t
	}
	return m
}

// Start establece la sesión de datos: se suscribe al flujo de cambios, hace la
// carga inicial y arranca el refresco periódico. Un error en la carga inicial se
// devuelve pero el espejo sigue activo y reintenta en el siguiente tick.
func (m *Mirror) Start(ctx context.Context) error {
	m.runMu.Lock()
	if m.cancel != nil {
		m.runMu.Unlock()
		return errors.New("datasync: el espejo ya está iniciado")
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.runMu.Unlock()

	// Suscribir antes de cargar: los eventos que lleguen durante la carga se reaplican.
	if m.feed != nil {
		m.wg.Add(1)
		go m.listen(runCtx)
	}

	m.setFlag(&m.loading, true)
	err := m.load(runCtx)
	m.setFlag(&m.loading, false)

	m.wg.Add(1)
	go m.refreshLoop(runCtx)
	return err
}

// Stop cancela la suscripción y el refresco, y espera a que terminen.
func (m *Mirror) Stop() {
	m.runMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.runMu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	m.wg.Wait()
}

// Refresh refresco manual: marca Refreshing mientras dura, sin vaciar los datos actuales.
func (m *Mirror) Refresh(ctx context.Context) error {
	m.setFlag(&m.refreshing, true)
	defer m.setFlag(&m.refreshing, false)
	return m.load(ctx)
}

// Status devuelve el estado actual.
func (m *Mirror) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := Status{
		Loading:      m.loading,
		Refreshing:   m.refreshing,
		Loaded:       m.loaded,
		Counts:       make(map[string]int, len(m.tables)),
	}
	if !m.lastLoadedAt.IsZero() {
		at := m.lastLoadedAt
		s.LastLoadedAt = &at
	}
	if m.lastErr != nil {
		s.LastError = m.lastErr.Error()
	}
	for _, t := range m.tables {
		s.Counts[t.name()] = t.count()
	}
	return s
}

// Loaded indica si al menos una carga completa terminó bien.
func (m *Mirror) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// OnChange registra un observador; se llama tras cada carga (una vez por tabla) y cada evento aplicado.
func (m *Mirror) OnChange(fn func(table string)) {
	m.obsMu.Lock()
	m.observers = append(m.observers, fn)
	m.obsMu.Unlock()
}

// Apply aplica un evento de cambio. Eventos de tablas no espejadas se ignoran.
func (m *Mirror) Apply(ctx context.Context, ev repository.ChangeEvent) error {
	t, ok := m.byName[ev.Table]
	if !ok {
		return nil
	}
	mutate, err := t.prepare(ctx, ev)
	if err != nil {
		return err
	}
	m.mu.Lock()
	mutate()
	if m.capturing {
		m.replay = append(m.replay, mutate)
	}
	m.mu.Unlock()
	m.notify(ev.Table)
	return nil
}

// load lectura completa y concurrente de todas las tablas; todo o nada.
func (m *Mirror) load(ctx context.Context) error {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	m.mu.Lock()
	m.capturing = true
	m.replay = nil
	m.mu.Unlock()

	commits := make([]func(), len(m.tables))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range m.tables {
		g.Go(func() error {
			commit, err := t.fetch(gctx)
			if err != nil {
				return fmt.Errorf("cargar %s: %w", t.name(), err)
			}
			commits[i] = commit
			return nil
		})
	}
	err := g.Wait()

	m.mu.Lock()
	if err != nil {
		// Se conserva el estado anterior (datos viejos pero disponibles).
		m.lastErr = err
		m.capturing = false
		m.replay = nil
		m.mu.Unlock()
		m.log.Error().Err(err).Msg("datasync: fallo la carga de tablas, se conservan los datos anteriores")
		return err
	}
	for _, commit := range commits {
		commit()
	}
	// Reaplicar eventos llegados mientras se leía: la lectura pudo ser anterior a ellos.
	for _, mutate := range m.replay {
		mutate()
	}
	m.capturing = false
	m.replay = nil
	m.loaded = true
	m.lastErr = nil
	m.lastLoadedAt = time.Now()
	m.mu.Unlock()

	m.log.Debug().Msg("datasync: tablas cargadas")
	for _, t := range m.tables {
		m.notify(t.name())
	}
	return nil
}

func (m *Mirror) listen(ctx context.Context) {
	defer m.wg.Done()
	err := m.feed.Listen(ctx, func(ev repository.ChangeEvent) {
		if err := m.Apply(ctx, ev); err != nil {
			m.log.Warn().Err(err).Str("table", ev.Table).Str("id", ev.ID).Msg("datasync: evento descartado")
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		m.log.Error().Err(err).Msg("datasync: flujo de cambios terminado")
	}
}

// refreshLoop refresco periódico; no levanta ninguna bandera.
func (m *Mirror) refreshLoop(ctx context.Context) {
	defer m.wg.Done()
	if m.interval <= 0 {
		return
	}
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = m.load(ctx)
		}
	}
}

func (m *Mirror) setFlag(flag *bool, v bool) {
	m.mu.Lock()
	*flag = v
	m.mu.Unlock()
}

func (m *Mirror) notify(table string) {
	m.obsMu.RLock()
	obs := make([]func(string), len(m.observers))
	copy(obs, m.observers)
	m.obsMu.RUnlock()
	for _, fn := range obs {
		fn(table)
	}
}
