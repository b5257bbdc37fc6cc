package dto

type IngestResponseDTO struct {
	Success bool `json:"success" example:"true"`
}
