package dto

// ExportRequest body para POST /api/export.
type ExportRequest struct {
	Format     string   `json:"format" validate:"required,oneof=pdf xlsx"`
	Categories []string `json:"categories" validate:"required,min=1,dive,required"`
	From       string   `json:"from"`
	To         string   `json:"to"`
}
