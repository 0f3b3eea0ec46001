package access

// Capability acción o vista permitida.
type Capability string

const (
	ViewDashboard        Capability = "view_dashboard"
	ViewStatistics       Capability = "view_statistics"
	ManageAccounting     Capability = "manage_accounting"
	ViewDocuments        Capability = "view_documents"
	ManageDocuments      Capability = "manage_documents"
	DeleteDocuments      Capability = "delete_documents"
	ManageSalaries       Capability = "manage_salaries"
	ManageUsers          Capability = "manage_users"
	ManagePartners       Capability = "manage_partners"
	InvitePartners       Capability = "invite_partners"
	ManageStock          Capability = "manage_stock"
	ViewNotifications    Capability = "view_notifications"
	ViewActivityLog      Capability = "view_activity_log"
	ExportData           Capability = "export_data"
	ManageSettings       Capability = "manage_settings"
	ViewPartnerDashboard Capability = "view_partner_dashboard"
)

// AllCapabilities catálogo completo (para la pantalla de permisos).
var AllCapabilities = []Capability{
	ViewDashboard, ViewStatistics, ManageAccounting, ViewDocuments, ManageDocuments,
	DeleteDocuments, ManageSalaries, ManageUsers, ManagePartners, InvitePartners,
	ManageStock, ViewNotifications, ViewActivityLog, ExportData, ManageSettings,
	ViewPartnerDashboard,
}

// capabilityTable se calcula una sola vez; no se modifica en runtime.
var capabilityTable = buildTable()

func buildTable() map[Role]map[Capability]struct{} {
	set := func(caps ...Capability) map[Capability]struct{} {
		m := make(map[Capability]struct{}, len(caps))
		for _, c := range caps {
			m[c] = struct{}{}
		}
		return m
	}
	return map[Role]map[Capability]struct{}{
		RoleCEO: set(
			ViewDashboard, ViewStatistics, ManageAccounting, ViewDocuments, ManageDocuments,
			DeleteDocuments, ManageSalaries, ManageUsers, ManagePartners, InvitePartners,
			ManageStock, ViewNotifications, ViewActivityLog, ExportData, ManageSettings,
		),
		RoleAccountant: set(
			ViewDashboard, ManageAccounting, ViewDocuments, ManageDocuments, ManageSalaries,
			ManagePartners, ManageStock, ViewNotifications,
		),
		RoleSecretary: set(
			ViewDashboard, ManagePartners, ManageStock, ViewNotifications,
		),
		RolePartner: set(
			ViewDashboard, ManageStock, ViewPartnerDashboard, ViewNotifications,
		),
	}
}

// RoleCan indica si el rol, por sí solo, tiene la capacidad.
func RoleCan(r Role, c Capability) bool {
	_, ok := capabilityTable[r][c]
	return ok
}

// ParseCapability valida un string de permiso.
func ParseCapability(s string) (Capability, bool) {
	for _, c := range AllCapabilities {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Grant capacidades efectivas de un usuario autenticado: las del rol más
// las otorgadas individualmente. PartnerID limita las filas visibles del rol partner.
type Grant struct {
	UserID      string
	FullName    string
	Role        Role
	PartnerID   string
	Permissions []string
}

// Can indica si el usuario tiene la capacidad.
func (g Grant) Can(c Capability) bool {
	if RoleCan(g.Role, c) {
		return true
	}
	for _, p := range g.Permissions {
		if p == string(c) {
			return true
		}
	}
	return false
}

// CanAny indica si el usuario tiene al menos una de las capacidades.
func (g Grant) CanAny(caps ...Capability) bool {
	for _, c := range caps {
		if g.Can(c) {
			return true
		}
	}
	return false
}

// ScopedToPartner indica si las filas visibles se restringen al partenaire del usuario.
func (g Grant) ScopedToPartner() bool {
	return g.Role == RolePartner
}

// SeesPartner indica si el usuario puede ver filas del partenaire indicado.
func (g Grant) SeesPartner(partnerID string) bool {
	if !g.ScopedToPartner() {
		return true
	}
	return g.PartnerID != "" && g.PartnerID == partnerID
}
