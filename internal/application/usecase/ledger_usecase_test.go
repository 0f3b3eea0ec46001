package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/application/dto"
	"github.com/jhoicas/eno-livraison-api/internal/application/usecase"
	"github.com/jhoicas/eno-livraison-api/internal/domain"
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
)

func TestSalaryAdd_RequiereBeneficiario(t *testing.T) {
	repo := &fakeSalaryRepo{}
	uc := usecase.NewSalaryUseCase(repo, &fakeMirror{})

	_, err := uc.Add(context.Background(), dto.SalaryRequest{Amount: decimal.NewFromInt(100), PaymentDate: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(context.Background(), dto.SalaryRequest{BeneficiaryName: "Yao", Amount: decimal.Zero, PaymentDate: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(context.Background(), dto.SalaryRequest{BeneficiaryName: "Yao", Amount: decimal.NewFromInt(100), PaymentDate: "01/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s, err := uc.Add(context.Background(), dto.SalaryRequest{UserID: "u-1", Amount: decimal.NewFromInt(150000), PaymentDate: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "sal-1", s.ID)
	require.NotNil(t, s.UserID)
	assert.Equal(t, "u-1", *s.UserID)
	assert.Equal(t, "2024-03-01", s.PaymentDate.String())
}

func TestAccountingReset_LlamaProcedimientoYRefresca(t *testing.T) {
	mirror := &fakeMirror{}
	procs := &fakeProcs{}
	act := &fakeActivity{}
	uc := usecase.NewAccountingUseCase(mirror, mirror, procs, usecase.NewJournal(act, nil), nil)

	require.NoError(t, uc.Reset(context.Background(), ceo))
	assert.Equal(t, 1, procs.resets)
	assert.Equal(t, 1, mirror.refreshes)
	assert.Equal(t, []string{usecase.ActionAccountingReset}, act.actions())
}

func TestAccountingSummary_RangoInvalido(t *testing.T) {
	uc := usecase.NewAccountingUseCase(&fakeMirror{}, nil, &fakeProcs{}, nil, nil)
	_, err := uc.Summary(dto.RangeQuery{From: "2024-03-31", To: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s, err := uc.Summary(dto.RangeQuery{})
	require.NoError(t, err)
	assert.True(t, s.Summary.NetProfit.IsZero())

	_, err = usecase.NewAccountingUseCase(&fakeMirror{notLoaded: true}, nil, &fakeProcs{}, nil, nil).Summary(dto.RangeQuery{})
	assert.ErrorIs(t, err, domain.ErrNotLoaded)
}

func TestUserSetPermissions_ValidaYDeduplica(t *testing.T) {
	profiles := newFakeProfiles(userProfile("u-1", "secretary", nil))
	uc := usecase.NewUserUseCase(profiles, &fakeProcs{}, &fakeInviter{}, nil)

	err := uc.SetPermissions(context.Background(), ceo, "u-1", []string{"export_data", "fly"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.SetPermissions(context.Background(), ceo, "u-1", []string{"view_statistics", "export_data", "export_data"}))
	assert.Equal(t, []string{"export_data", "view_statistics"}, profiles.permissions["u-1"])
}

func TestUserUpdate_RolPartenaireRequierePartnerID(t *testing.T) {
	profiles := newFakeProfiles(userProfile("u-1", "secretary", nil))
	uc := usecase.NewUserUseCase(profiles, &fakeProcs{}, &fakeInviter{}, nil)

	role := "partner"
	assert.ErrorIs(t, uc.Update(context.Background(), ceo, "u-1", dto.UpdateUserRequest{Role: &role}), domain.ErrInvalidInput)

	pid := "ENO0001"
	require.NoError(t, uc.Update(context.Background(), ceo, "u-1", dto.UpdateUserRequest{Role: &role, PartnerID: &pid}))
	assert.Equal(t, "partner", profiles.rows["u-1"].Role)
	require.NotNil(t, profiles.rows["u-1"].PartnerID)

	back := "accountant"
	require.NoError(t, uc.Update(context.Background(), ceo, "u-1", dto.UpdateUserRequest{Role: &back}))
	assert.Nil(t, profiles.rows["u-1"].PartnerID, "un rol de la agencia no conserva partner_id")
}

func TestUserDelete_NoPropiaCuenta(t *testing.T) {
	procs := &fakeProcs{}
	uc := usecase.NewUserUseCase(newFakeProfiles(), procs, &fakeInviter{}, nil)
	assert.ErrorIs(t, uc.Delete(context.Background(), ceo, ceo.UserID), domain.ErrConflict)
	require.NoError(t, uc.Delete(context.Background(), ceo, "u-2"))
	assert.Equal(t, "u-2", procs.deletedUser)
}

func TestUserInvite_RolAgenciaDescartaPartenaire(t *testing.T) {
	inv := &fakeInviter{}
	uc := usecase.NewUserUseCase(newFakeProfiles(), &fakeProcs{}, inv, nil)
	_, err := uc.Invite(context.Background(), ceo, dto.InviteUserRequest{Email: "a@example.com", Role: "accountant", PartnerID: "ENO0001"})
	require.NoError(t, err)
	assert.Equal(t, access.RoleAccountant, inv.role)
	assert.Empty(t, inv.partnerID)

	_, err = uc.Invite(context.Background(), ceo, dto.InviteUserRequest{Email: "p@example.com", Role: "partner"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActivityList_FiltrosYLimite(t *testing.T) {
	act := &fakeActivity{}
	uc := usecase.NewActivityUseCase(act)
	page, err := uc.List(context.Background(), dto.ActivityQuery{UserID: "u-1", From: "2024-03-01", To: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", act.filter.UserID)
	assert.Equal(t, 100, act.filter.Limit)
	assert.Equal(t, 100, page.Page.Limit)
	assert.NotNil(t, page.Items)
	assert.Equal(t, "2024-03-02", act.filter.To.Format("2006-01-02"), "to incluye el día completo")

	q := dto.ActivityQuery{PageRequest: dto.PageRequest{Limit: 20, Offset: 40}}
	_, err = uc.List(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 20, act.filter.Limit)
	assert.Equal(t, 40, act.filter.Offset)

	_, err = uc.List(context.Background(), dto.ActivityQuery{From: "hier"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
