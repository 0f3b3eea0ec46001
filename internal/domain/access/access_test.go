package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
)

func TestParseRole(t *testing.T) {
	r, err := access.ParseRole(" CEO ")
	require.NoError(t, err)
	assert.Equal(t, access.RoleCEO, r)

	_, err = access.ParseRole("admin")
	assert.Error(t, err)
}

func TestRoleCan_Tabla(t *testing.T) {
	cases := []struct {
		role access.Role
		cap  access.Capability
		want bool
	}{
		{access.RoleCEO, access.ManageUsers, true},
		{access.RoleCEO, access.DeleteDocuments, true},
		{access.RoleCEO, access.ViewPartnerDashboard, false},
		{access.RoleAccountant, access.ManageAccounting, true},
		{access.RoleAccountant, access.DeleteDocuments, false},
		{access.RoleAccountant, access.InvitePartners, false},
		{access.RoleSecretary, access.ManagePartners, true},
		{access.RoleSecretary, access.ManageAccounting, false},
		{access.RolePartner, access.ManageStock, true},
		{access.RolePartner, access.ViewPartnerDashboard, true},
		{access.RolePartner, access.ManageSalaries, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, access.RoleCan(tc.role, tc.cap), "%s/%s", tc.role, tc.cap)
	}
}

func TestGrant_PermisosAuxiliares(t *testing.T) {
	g := access.Grant{Role: access.RoleSecretary, Permissions: []string{"export_data"}}
	assert.True(t, g.Can(access.ExportData), "un permiso individual amplía el rol")
	assert.False(t, g.Can(access.ManageUsers))
	assert.True(t, g.CanAny(access.ManageUsers, access.ManagePartners))
}

func TestGrant_AlcancePartenaire(t *testing.T) {
	p := access.Grant{Role: access.RolePartner, PartnerID: "ENO0001"}
	assert.True(t, p.ScopedToPartner())
	assert.True(t, p.SeesPartner("ENO0001"))
	assert.False(t, p.SeesPartner("ENO0002"))

	sinVinculo := access.Grant{Role: access.RolePartner}
	assert.False(t, sinVinculo.SeesPartner(""), "partner sin partner_id no ve nada")

	staff := access.Grant{Role: access.RoleAccountant}
	assert.True(t, staff.SeesPartner("ENO0002"))
}

func TestMenu_AccueilPrimeroYCapacidadesCoherentes(t *testing.T) {
	for _, r := range access.Roles {
		items := access.Menu(r)
		require.NotEmpty(t, items)
		assert.Equal(t, "/dashboard", items[0].Path)
		for _, it := range items {
			assert.True(t, access.RoleCan(r, it.Capability), "%s no debería ver %s", r, it.Path)
		}
	}
	assert.Len(t, access.Menu(access.RoleSecretary), 3)
}
