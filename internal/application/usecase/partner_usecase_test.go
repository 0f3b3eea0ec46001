package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/entity"
)

var ceo = access.Grant{UserID: "u-ceo", FullName: "Koffi", Role: access.RoleCEO}

func newPartnerUC(code string) (*usecase.PartnerUseCase, *fakePartnerRepo, *fakeProcs, *fakeInviter, *fakeActivity) {
	existing := &entity.Partner{ID: "ENO0001", PartnerCode: "ENO0001", Name: "Boutique Awa", Email: "awa@example.com"}
	repo := newFakePartnerRepo(existing)
	mirror := &fakeMirror{partners: []*entity.Partner{existing, {ID: "ENO0002", PartnerCode: "ENO0002", Name: "Marché Plus"}}}
	procs := &fakeProcs{code: code}
	inv := &fakeInviter{}
	act := &fakeActivity{}
	uc := usecase.NewPartnerUseCase(repo, procs, mirror, inv, usecase.NewJournal(act, nil))
	return uc, repo, procs, inv, act
}

func TestPartnerAdd_UsaCodigoGeneradoComoID(t *testing.T) {
	uc, repo, _, _, act := newPartnerUC("ENO0003")

	p, err := uc.Add(context.Background(), ceo, dto.CreatePartnerRequest{Name: " Kiosque ", Email: "k@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ENO0003", p.ID)
	assert.Equal(t, "ENO0003", p.PartnerCode)
	assert.Equal(t, "Kiosque", p.Name)
	assert.Regexp(t, entity.PartnerCodePattern, p.PartnerCode)
	assert.False(t, p.CreatedAt.IsZero(), "se devuelve la fila confirmada")
	assert.Contains(t, repo.rows, "ENO0003")
	assert.Equal(t, []string{usecase.ActionPartnerCreated}, act.actions())
}

func TestPartnerAdd_CodigoInvalidoOEnUso(t *testing.T) {
	uc, _, _, _, _ := newPartnerUC("P-12")
	_, err := uc.Add(context.Background(), ceo, dto.CreatePartnerRequest{Name: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidPartnerCode)

	uc, _, _, _, _ = newPartnerUC("ENO0002")
	_, err = uc.Add(context.Background(), ceo, dto.CreatePartnerRequest{Name: "X", Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPartnerAdd_CamposObligatorios(t *testing.T) {
	uc, _, _, _, _ := newPartnerUC("ENO0003")
	_, err := uc.Add(context.Background(), ceo, dto.CreatePartnerRequest{Name: "Sans email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPartnerUpdate_ParcialNoTocaCodigo(t *testing.T) {
	uc, repo, _, _, _ := newPartnerUC("ENO0003")
	phone := "+225 07 00 00 00"
	require.NoError(t, uc.Update(context.Background(), "ENO0001", dto.UpdatePartnerRequest{Phone: &phone}))
	require.NotNil(t, repo.updated)
	assert.Equal(t, phone, repo.updated.Phone)
	assert.Equal(t, "Boutique Awa", repo.updated.Name)
	assert.Equal(t, "ENO0001", repo.updated.PartnerCode)

	err := uc.Update(context.Background(), "ENO0404", dto.UpdatePartnerRequest{Phone: &phone})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartnerDelete_UsaProcedimientoEnCascada(t *testing.T) {
	uc, _, procs, _, act := newPartnerUC("ENO0003")
	require.NoError(t, uc.Delete(context.Background(), ceo, "ENO0001"))
	assert.Equal(t, "ENO0001", procs.deletedPartner)
	assert.Equal(t, []string{usecase.ActionPartnerDeleted}, act.actions())
}

func TestPartnerInvite_UsaEmailDelPartenaire(t *testing.T) {
	uc, _, _, inv, _ := newPartnerUC("ENO0003")
	_, err := uc.Invite(context.Background(), ceo, "ENO0001", dto.InvitePartnerRequest{})
	require.NoError(t, err)
	assert.Equal(t, "awa@example.com", inv.email)
	assert.Equal(t, access.RolePartner, inv.role)
	assert.Equal(t, "ENO0001", inv.partnerID)
}

func TestPartnerList_AlcancePartenaire(t *testing.T) {
	uc, _, _, _, _ := newPartnerUC("ENO0003")
	list, err := uc.List(access.Grant{Role: access.RolePartner, PartnerID: "ENO0002"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ENO0002", list[0].ID)

	all, err := uc.List(ceo)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
