package dto

import "time"

type ThresholdResultDTO struct {
	Event      string   `json:"evento" example:"suscripcion_vence_hoy"`
	TargetDate *string  `json:"fecha_objetivo,omitempty" example:"2025-06-10"`
	Found      *int     `json:"usuarios_encontrados,omitempty" example:"3"`
	Sent       int      `json:"enviados" example:"3"`
	Skipped    int      `json:"omitidos" example:"0"`
	Errors     []string `json:"errores"`
}

type ScanResponseDTO struct {
	OK        bool                 `json:"ok" example:"true"`
	Timestamp time.Time            `json:"timestamp" example:"2025-06-10T08:00:00Z"`
	Results   []ThresholdResultDTO `json:"results"`
}
