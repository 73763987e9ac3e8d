package domain

import "time"

// TrackedAccount é uma conta acompanhada pelo agendador de sincronização
// diária de análises.
type TrackedAccount struct {
	ID        string    `json:"id"`
	Platform  Platform  `json:"platform"`
	Username  string    `json:"username"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnalysisSnapshot é o resultado de uma análise persistido por (conta, dia),
// usado como histórico consultável pelo dashboard.
type AnalysisSnapshot struct {
	ID        int             `json:"id"`
	Platform  Platform        `json:"platform"`
	Username  string          `json:"username"`
	Date      time.Time       `json:"date"`
	Result    *AnalysisResult `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
