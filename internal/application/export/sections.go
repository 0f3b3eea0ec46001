package export

import (
	"github.com/jhoicas/eno-livraison-api/internal/domain/access"
	"github.com/jhoicas/eno-livraison-api/internal/domain/accounting"
)

func (uc *ExportUseCase) section(actor access.Grant, category string, r accounting.DateRange) Section {
	s := Section{Category: category, Title: categoryTitles[category], Rows: [][]any{}}
	switch category {
	case CategoryPartners:
		s.Columns = []Column{{"Code", KindText}, {"Nom", KindText}, {"Contact", KindText}, {"Email", KindText}, {"Téléphone", KindText}, {"Adresse", KindText}}
		for _, p := range uc.src.Partners() {
			if actor.SeesPartner(p.ID) {
				s.Rows = append(s.Rows, []any{p.PartnerCode, p.Name, p.ContactPerson, p.Email, p.Phone, p.Address})
			}
		}
	case CategoryProducts:
		s.Columns = []Column{{"Partenaire", KindText}, {"Produit", KindText}, {"Stock", KindInt}, {"Seuil", KindInt}, {"Prix", KindMoney}}
		for _, p := range uc.src.Products() {
			if actor.SeesPartner(p.PartnerID) {
				s.Rows = append(s.Rows, []any{p.PartnerID, p.Name, p.Stock, p.AlertThreshold, p.Price})
			}
		}
	case CategoryStockMovements:
		s.Columns = []Column{{"Date", KindTime}, {"Produit", KindText}, {"Type", KindText}, {"Quantité", KindInt}, {"Avant", KindInt}, {"Après", KindInt}, {"Motif", KindText}}
		owner := make(map[string]string)
		names := make(map[string]string)
		for _, p := range uc.src.Products() {
			owner[p.ID] = p.PartnerID
			names[p.ID] = p.Name
		}
		for _, m := range uc.src.StockMovements() {
			if !actor.SeesPartner(owner[m.ProductID]) || !r.ContainsTime(m.CreatedAt) {
				continue
			}
			name, ok := names[m.ProductID]
			if !ok {
				name = m.ProductID
			}
			s.Rows = append(s.Rows, []any{m.CreatedAt, name, m.Type, m.Quantity, m.PreviousStock, m.NewStock, m.Reason})
		}
	case CategoryTransactions:
		s.Columns = []Column{{"Date", KindDate}, {"Type", KindText}, {"Catégorie", KindText}, {"Description", KindText}, {"Montant", KindMoney}}
		for _, t := range uc.src.Transactions() {
			if r.Contains(t.OperationDate) {
				s.Rows = append(s.Rows, []any{t.OperationDate, t.Type, t.Category, t.Description, t.Amount})
			}
		}
	case CategoryStandardOrders:
		s.Columns = []Column{{"Date", KindDate}, {"Enlèvement", KindText}, {"Livraison", KindText}, {"Montant", KindMoney}}
		for _, o := range uc.src.StandardOrders() {
			if r.Contains(o.OperationDate) {
				s.Rows = append(s.Rows, []any{o.OperationDate, o.PickupLocation, o.DeliveryLocation, o.DeliveryAmount})
			}
		}
	case CategoryPartnerDeliveryFees:
		s.Columns = []Column{{"Date", KindDate}, {"Partenaire", KindText}, {"Chiffre d'affaires", KindMoney}, {"Frais de livraison", KindMoney}, {"Colis", KindInt}}
		for _, f := range uc.src.PartnerDeliveryFees() {
			if actor.SeesPartner(f.PartnerID) && r.Contains(f.OperationDate) {
				s.Rows = append(s.Rows, []any{f.OperationDate, f.PartnerID, f.Turnover, f.TotalDeliveryFee, f.TotalPackagesDelivered})
			}
		}
	case CategorySalaries:
		s.Columns = []Column{{"Date", KindDate}, {"Bénéficiaire", KindText}, {"Montant", KindMoney}, {"Notes", KindText}}
		for _, sal := range uc.src.Salaries() {
			if !r.Contains(sal.PaymentDate) {
				continue
			}
			who := sal.BeneficiaryName
			if who == "" && sal.UserID != nil {
				who = *sal.UserID
			}
			s.Rows = append(s.Rows, []any{sal.PaymentDate, who, sal.Amount, sal.Notes})
		}
	case CategoryDeliveries:
		s.Columns = []Column{{"Date", KindTime}, {"Partenaire", KindText}, {"Enlèvement", KindText}, {"Livraison", KindText}, {"Statut", KindText}, {"Frais", KindMoney}}
		for _, d := range uc.src.Deliveries() {
			if actor.SeesPartner(d.PartnerID) && r.ContainsTime(d.CreatedAt) {
				s.Rows = append(s.Rows, []any{d.CreatedAt, d.PartnerID, d.PickupAddress, d.DeliveryAddress, d.Status, d.Fee})
			}
		}
	case CategoryBankDeposits:
		s.Columns = []Column{{"Date", KindDate}, {"Référence", KindText}, {"Montant", KindMoney}, {"Reçu", KindText}}
		for _, b := range uc.src.BankDeposits() {
			if r.Contains(b.Date) {
				s.Rows = append(s.Rows, []any{b.Date, b.Reference, b.Amount, b.ReceiptPhotoURL})
			}
		}
	}
	return s
}
