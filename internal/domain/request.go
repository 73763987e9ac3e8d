package domain

// AnalysisRequest é a requisição de análise recebida do dashboard ou de
// qualquer outro cliente. Os valores chegam crus e são validados pelo
// orquestrador antes de qualquer busca.
type AnalysisRequest struct {
	Platform      string   `json:"platform"`
	Username      string   `json:"username"`
	Period        string   `json:"period"` // preset: 7d, 30d ou 90d
	AnalysisTypes []string `json:"analysis_types"`
}
