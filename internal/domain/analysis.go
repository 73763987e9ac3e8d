package domain

import "time"

// AnalysisType é uma categoria de análise solicitada pelo cliente. Apenas os
// tipos solicitados são calculados e populados no resultado.
type AnalysisType string

const (
	AnalysisEngagement AnalysisType = "engagement"
	AnalysisTiming     AnalysisType = "timing"
	AnalysisHashtags   AnalysisType = "hashtags"
)

// Valid verifica se o tipo de análise é conhecido
func (t AnalysisType) Valid() bool {
	switch t {
	case AnalysisEngagement, AnalysisTiming, AnalysisHashtags:
		return true
	}
	return false
}

// AnalysisTypeSet é o conjunto de tipos de análise de uma requisição
type AnalysisTypeSet map[AnalysisType]struct{}

// NewAnalysisTypeSet monta o conjunto a partir dos tipos informados
func NewAnalysisTypeSet(types ...AnalysisType) AnalysisTypeSet {
	set := make(AnalysisTypeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// Has verifica se o tipo foi solicitado
func (s AnalysisTypeSet) Has(t AnalysisType) bool {
	_, ok := s[t]
	return ok
}

// SummaryStats são as estatísticas gerais da conta no período analisado.
// A ordem dos campos define a ordem das linhas na exportação.
type SummaryStats struct {
	TotalPosts        int     `json:"total_posts"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"` // percentual, 2 casas
	TotalImpressions  int     `json:"total_impressions"`
	FollowerCount     int     `json:"follower_count"`
	TotalLikes        int     `json:"total_likes"`
	TotalComments     int     `json:"total_comments"`
}

// SeriesPoint é um ponto da série temporal de engajamento (um por dia com posts)
type SeriesPoint struct {
	Label string  `json:"label"` // data no formato 2006-01-02
	Value float64 `json:"value"` // percentual, 2 casas
}

// TimingBucket é um balde do histograma de horário de publicação
type TimingBucket struct {
	Label string `json:"label"` // hora no formato "HH:00"
	Count int    `json:"count"`
}

// HashtagStat é uma posição do ranking de hashtags
type HashtagStat struct {
	Tag           string  `json:"tag"`
	Count         int     `json:"count"`
	AvgEngagement float64 `json:"avg_engagement"` // percentual, 2 casas
}

// TimingDisplayBuckets é a quantidade de baldes exibidos no dashboard. O
// histograma completo é mantido no resultado para exportação.
const TimingDisplayBuckets = 8

// AnalysisResult é o resultado imutável de uma agregação. Seções nulas
// significam "não solicitado", que é diferente de "calculado como zero".
type AnalysisResult struct {
	Platform         Platform        `json:"platform"`
	Username         string          `json:"username"`
	Period           Period          `json:"period"`
	Stats            *SummaryStats   `json:"stats,omitempty"`
	EngagementSeries []SeriesPoint   `json:"engagement_series,omitempty"`
	TimingHistogram  []TimingBucket  `json:"timing_histogram,omitempty"`
	HashtagRanking   []HashtagStat   `json:"hashtag_ranking,omitempty"`
	Warnings         []Warning       `json:"warnings,omitempty"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// ChartData são os pares rótulo/valor paralelos consumidos pelos gráficos do
// dashboard. Os nomes dos campos fazem parte do contrato com o front.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// HashtagData é a seção de hashtags da resposta do dashboard
type HashtagData struct {
	Ranking []HashtagStat `json:"ranking"`
}

// AnalysisResponse é o formato de resposta consumido pelo dashboard
type AnalysisResponse struct {
	Platform          Platform      `json:"platform"`
	Username          string        `json:"username"`
	Stats             *SummaryStats `json:"stats,omitempty"`
	EngagementData    *ChartData    `json:"engagement_data,omitempty"`
	TimingData        *ChartData    `json:"timing_data,omitempty"`
	HashtagData       *HashtagData  `json:"hashtag_data,omitempty"`
	Warnings          []Warning     `json:"warnings,omitempty"`
	AnalysisTimestamp time.Time     `json:"analysis_timestamp"`
}

// ToResponse converte o resultado para o contrato do dashboard. O histograma
// de horários é truncado para os TimingDisplayBuckets mais frequentes; as
// demais seções são repassadas integralmente.
func (r *AnalysisResult) ToResponse() *AnalysisResponse {
	if r == nil {
		return nil
	}

	response := &AnalysisResponse{
		Platform:          r.Platform,
		Username:          r.Username,
		Stats:             r.Stats,
		Warnings:          r.Warnings,
		AnalysisTimestamp: r.GeneratedAt,
	}

	if r.EngagementSeries != nil {
		data := &ChartData{
			Labels: make([]string, 0, len(r.EngagementSeries)),
			Values: make([]float64, 0, len(r.EngagementSeries)),
		}
		for _, point := range r.EngagementSeries {
			data.Labels = append(data.Labels, point.Label)
			data.Values = append(data.Values, point.Value)
		}
		response.EngagementData = data
	}

	if r.TimingHistogram != nil {
		buckets := r.TimingHistogram
		if len(buckets) > TimingDisplayBuckets {
			buckets = buckets[:TimingDisplayBuckets]
		}

		data := &ChartData{
			Labels: make([]string, 0, len(buckets)),
			Values: make([]float64, 0, len(buckets)),
		}
		for _, bucket := range buckets {
			data.Labels = append(data.Labels, bucket.Label)
			data.Values = append(data.Values, float64(bucket.Count))
		}
		response.TimingData = data
	}

	if r.HashtagRanking != nil {
		response.HashtagData = &HashtagData{Ranking: r.HashtagRanking}
	}

	return response
}
