package repository

import "context"

// Procedures funciones remotas (RPC) con lógica de varios pasos del lado del servidor.
type Procedures interface {
	// GeneratePartnerCode devuelve el siguiente código libre (ENO0001, ENO0002, ...).
	GeneratePartnerCode(ctx context.Context) (string, error)
	// DeletePartnerAndDependents borra el partenaire y sus productos, movimientos,
	// entregas y liquidaciones.
	DeletePartnerAndDependents(ctx context.Context, partnerID string) error
	// ResetAccountingData vacía transacciones, pedidos estándar, liquidaciones y salarios.
	ResetAccountingData(ctx context.Context) error
	// ReassignPartnerCodes renumera los códigos por orden de creación; devuelve cuántos cambiaron.
	ReassignPartnerCodes(ctx context.Context) (int, error)
	DeleteUserByID(ctx context.Context, userID string) error
}
