package repository

import "github.com/jhoicas/eno-livraison-api/internal/domain/entity"

// PartnerRepository puerto de persistencia para Partner.
// El borrado en cascada va por Procedures.DeletePartnerAndDependents.
type PartnerRepository interface {
	TableReader[entity.Partner]
	TableWriter[entity.Partner]
}
