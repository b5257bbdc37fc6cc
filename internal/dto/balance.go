package dto

import "time"

type BalanceResponseDTO struct {
	Available float64 `json:"available" example:"100"`
	Pending   float64 `json:"pending" example:"25.5"`
	Withdrawn float64 `json:"withdrawn" example:"40"`
	Total     float64 `json:"total" example:"165.5"`
}

type WithdrawRequestDTO struct {
	Amount float64 `json:"amount" example:"50"`
}

type WithdrawResponseDTO struct {
	ID        string    `json:"id" example:"0b2f8f4e-3c9d-4a77-9f7b-58f0e1d3b0a1"`
	Amount    float64   `json:"amount" example:"50"`
	Status    string    `json:"status" example:"pendiente"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-10T16:09:57Z"`
}
