package access

// MenuItem entrada de navegación.
type MenuItem struct {
	Label      string     `json:"label"`
	Path       string     `json:"path"`
	Capability Capability `json:"capability"`
	Badge      bool       `json:"badge,omitempty"` // muestra el contador de no leídas
}

var homeItem = MenuItem{Label: "Accueil", Path: "/dashboard", Capability: ViewDashboard}

// roleMenus orden de la barra lateral por rol.
var roleMenus = map[Role][]MenuItem{
	RoleCEO: {
		{Label: "Statistiques", Path: "/dashboard/statistics", Capability: ViewStatistics},
		{Label: "Comptabilité", Path: "/dashboard/accounting", Capability: ManageAccounting},
		{Label: "Dossiers", Path: "/dashboard/documents", Capability: ViewDocuments},
		{Label: "Salaires", Path: "/dashboard/salaries", Capability: ManageSalaries},
		{Label: "Utilisateurs", Path: "/dashboard/users", Capability: ManageUsers},
		{Label: "Partenaires", Path: "/dashboard/partners", Capability: ManagePartners},
		{Label: "Stock", Path: "/dashboard/stock", Capability: ManageStock},
		{Label: "Notifications", Path: "/dashboard/notifications", Capability: ViewNotifications, Badge: true},
		{Label: "Journal", Path: "/dashboard/activity-log", Capability: ViewActivityLog},
		{Label: "Exporter", Path: "/dashboard/export", Capability: ExportData},
		{Label: "Paramètres", Path: "/dashboard/settings", Capability: ManageSettings},
	},
	RoleAccountant: {
		{Label: "Comptabilité", Path: "/dashboard/accounting", Capability: ManageAccounting},
		{Label: "Dossiers", Path: "/dashboard/documents", Capability: ViewDocuments},
		{Label: "Salaires", Path: "/dashboard/salaries", Capability: ManageSalaries},
		{Label: "Stock", Path: "/dashboard/stock", Capability: ManageStock},
		{Label: "Notifications", Path: "/dashboard/notifications", Capability: ViewNotifications, Badge: true},
	},
	RoleSecretary: {
		{Label: "Partenaires", Path: "/dashboard/partners", Capability: ManagePartners},
		{Label: "Notifications", Path: "/dashboard/notifications", Capability: ViewNotifications, Badge: true},
	},
	RolePartner: {
		{Label: "Mon Stock", Path: "/dashboard/partner-view", Capability: ViewPartnerDashboard},
		{Label: "Notifications", Path: "/dashboard/notifications", Capability: ViewNotifications, Badge: true},
	},
}

// Menu devuelve la navegación del rol, con Accueil primero.
func Menu(r Role) []MenuItem {
	items := roleMenus[r]
	out := make([]MenuItem, 0, len(items)+1)
	out = append(out, homeItem)
	return append(out, items...)
}
