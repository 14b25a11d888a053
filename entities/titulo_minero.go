package entities

import "time"

// TituloMinero is the legal concession every report and activity point
// hangs off. Joined into report rows for display only.
type TituloMinero struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	NumeroTitulo    string `gorm:"index" json:"numero_titulo"`
	Municipio       string `json:"municipio"`
	CodigoMunicipio string `json:"codigo_municipio"`
	CreatedAt       time.Time
}
