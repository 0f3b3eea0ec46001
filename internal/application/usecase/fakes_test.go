package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
	"github.com/jhoicas/eno-livraison-api/internal/domain/repository"
)

// fakeMirror colecciones fijas en memoria.
type fakeMirror struct {
	notLoaded      bool
	partners       []*entity.Partner
	products       []*entity.Product
	transactions   []*entity.Transaction
	deliveries     []*entity.Delivery
	movements      []*entity.StockMovement
	deposits       []*entity.BankDeposit
	standardOrders []*entity.StandardOrder
	fees           []*entity.PartnerDeliveryFee
	salaries       []*entity.Salary
	refreshes      int
}

func (m *fakeMirror) Loaded() bool {
	return !m.notLoaded
}

func (m *fakeMirror) Partners() []*entity.Partner {
	return m.partners
}

func (m *fakeMirror) Products() []*entity.Product {
	return m.products
}

func (m *fakeMirror) Transactions() []*entity.Transaction {
	return m.transactions
}

func (m *fakeMirror) Deliveries() []*entity.Delivery {
	return m.deliveries
}

func (m *fakeMirror) StockMovements() []*entity.StockMovement {
	return m.movements
}

func (m *fakeMirror) BankDeposits() []*entity.BankDeposit {
	return m.deposits
}

func (m *fakeMirror) StandardOrders() []*entity.StandardOrder {
	return m.standardOrders
}

func (m *fakeMirror) PartnerDeliveryFees() []*entity.PartnerDeliveryFee {
	return m.fees
}

func (m *fakeMirror) Salaries() []*entity.Salary {
	return m.salaries
}

func (m *fakeMirror) Partner(id string) (*entity.Partner, bool) {
	for _, p := range m.partners {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (m *fakeMirror) Product(id string) (*entity.Product, bool) {
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (m *fakeMirror) Refresh(context.Context) error {
	m.refreshes++
	return nil
}

// fakeProcs registra las llamadas a procedimientos remotos.
type fakeProcs struct {
	code           string
	err            error
	deletedPartner string
	deletedUser    string
	resets         int
	reassigned     int
}

func (p *fakeProcs) GeneratePartnerCode(context.Context) (string, error) {
	return p.code, p.err
}

func (p *fakeProcs) DeletePartnerAndDependents(_ context.Context, id string) error {
	p.deletedPartner = id
	return p.err
}

func (p *fakeProcs) ResetAccountingData(context.Context) error {
	p.resets++
	return p.err
}

func (p *fakeProcs) ReassignPartnerCodes(context.Context) (int, error) {
	return p.reassigned, p.err
}

func (p *fakeProcs) DeleteUserByID(_ context.Context, id string) error {
	p.deletedUser = id
	return p.err
}

// fakePartnerRepo repositorio de partenaires en memoria.
type fakePartnerRepo struct {
	rows    map[string]*entity.Partner
	updated *entity.Partner
}

func newFakePartnerRepo(ps ...*entity.Partner) *fakePartnerRepo {
	r := &fakePartnerRepo{rows: map[string]*entity.Partner{}}
	for _, p := range ps {
		r.rows[p.ID] = p
	}
	return r
}

func (r *fakePartnerRepo) List(context.Context) ([]*entity.Partner, error) {
	out := []*entity.Partner{}
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartnerRepo) GetByID(_ context.Context, id string) (*entity.Partner, error) {
	if p, ok := r.rows[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakePartnerRepo) Create(_ context.Context, p *entity.Partner) (*entity.Partner, error) {
	cp := *p
	cp.CreatedAt = time.Now()
	r.rows[cp.ID] = &cp
	return &cp, nil
}

func (r *fakePartnerRepo) Update(_ context.Context, p *entity.Partner) error {
	r.updated = p
	r.rows[p.ID] = p
	return nil
}

func (r *fakePartnerRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

// fakeProductRepo productos en memoria con GetForUpdate/UpdateStock.
type fakeProductRepo struct {
	rows map[string]*entity.Product
	seq  int
}

func newFakeProductRepo(ps ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{rows: map[string]*entity.Product{}}
	for _, p := range ps {
		r.rows[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) List(context.Context) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.rows[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	r.seq++
	cp := *p
	cp.ID = fmt.Sprintf("prod-%d", r.seq)
	r.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cur, ok := r.rows[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Stock = cur.Stock // Update no toca el stock
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stock int) error {
	p, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Stock = stock
	r.rows[id] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

// fakeMovementRepo movimientos en memoria; tamper (si no es nil) altera la fila guardada.
type fakeMovementRepo struct {
	rows   []*entity.StockMovement
	tamper func(*entity.StockMovement)
}

func (r *fakeMovementRepo) List(context.Context) ([]*entity.StockMovement, error) {
	return r.rows, nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.StockMovement, error) {
	for _, m := range r.rows {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	cp := *m
	cp.ID = fmt.Sprintf("mov-%d", len(r.rows)+1)
	cp.CreatedAt = time.Now()
	if r.tamper != nil {
		r.tamper(&cp)
	}
	r.rows = append([]*entity.StockMovement{&cp}, r.rows...)
	return &cp, nil
}

// fakeTx ejecuta fn con los repositorios en memoria (sin rollback).
type fakeTx struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (t *fakeTx) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockMovementRepository) error) error {
	return fn(t.products, t.movements)
}

// fakeInviter captura la última invitación.
type fakeInviter struct {
	email     string
	role      access.Role
	partnerID string
}

func (f *fakeInviter) Invite(_ context.Context, _ access.Grant, email string, role access.Role, partnerID string) (*dto.InviteResponse, error) {
	f.email, f.role, f.partnerID = email, role, partnerID
	return &dto.InviteResponse{Email: email, Link: "http://localhost/signup?token=x"}, nil
}

// fakeActivity journal en memoria.
type fakeActivity struct {
	entries []*entity.ActivityLogEntry
	filter  repository.ActivityFilter
}

func (a *fakeActivity) Append(_ context.Context, e *entity.ActivityLogEntry) error {
	a.entries = append(a.entries, e)
	return nil
}

func (a *fakeActivity) List(_ context.Context, f repository.ActivityFilter) ([]*entity.ActivityLogEntry, error) {
	a.filter = f
	return a.entries, nil
}

func (a *fakeActivity) actions() []string {
	out := []string{}
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

// fakeProfiles perfiles en memoria.
type fakeProfiles struct {
	rows        map[string]*entity.Profile
	permissions map[string][]string
}

func newFakeProfiles(ps ...*entity.Profile) *fakeProfiles {
	r := &fakeProfiles{rows: map[string]*entity.Profile{}, permissions: map[string][]string{}}
	for _, p := range ps {
		r.rows[p.ID] = p
	}
	return r
}

func (r *fakeProfiles) Create(_ context.Context, p *entity.Profile) error {
	for _, x := range r.rows {
		if x.Email == p.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.rows[p.ID] = p
	return nil
}

func (r *fakeProfiles) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	if p, ok := r.rows[id]; ok {
		return p, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeProfiles) GetByEmail(_ context.Context, email string) (*entity.Profile, error) {
	for _, p := range r.rows {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeProfiles) List(context.Context) ([]*entity.Profile, error) {
	out := []*entity.Profile{}
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProfiles) Update(_ context.Context, p *entity.Profile) error {
	r.rows[p.ID] = p
	return nil
}

func (r *fakeProfiles) UpdatePassword(_ context.Context, id, hash string) error {
	p, ok := r.rows[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.PasswordHash = hash
	return nil
}

func (r *fakeProfiles) SetPermissions(_ context.Context, id string, perms []string) error {
	r.permissions[id] = perms
	return nil
}

// fakeSalaryRepo captura lo creado.
type fakeSalaryRepo struct {
	created *entity.Salary
}

func (r *fakeSalaryRepo) List(context.Context) ([]*entity.Salary, error) {
	return nil, nil
}

func (r *fakeSalaryRepo) GetByID(context.Context, string) (*entity.Salary, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeSalaryRepo) Create(_ context.Context, s *entity.Salary) (*entity.Salary, error) {
	cp := *s
	cp.ID = "sal-1"
	r.created = &cp
	return &cp, nil
}

func (r *fakeSalaryRepo) Update(context.Context, *entity.Salary) error {
	return nil
}

func (r *fakeSalaryRepo) Delete(context.Context, string) error {
	return nil
}


func userProfile(id, role string, partnerID *string) *entity.Profile {
	return &entity.Profile{ID: id, Email: id + "@example.com", FullName: id, Role: role, PartnerID: partnerID}
}
