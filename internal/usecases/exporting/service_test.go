package exporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

func fullResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Platform: domain.PlatformTwitter,
		Username: "empresa_x",
		Stats: &domain.SummaryStats{
			TotalPosts:        2,
			AvgEngagementRate: 1.85,
			TotalImpressions:  14800,
			FollowerCount:     50000,
			TotalLikes:        200,
			TotalComments:     24,
		},
		EngagementSeries: []domain.SeriesPoint{
			{Label: "2025-06-10", Value: 1.70},
			{Label: "2025-06-11", Value: 2.00},
		},
		TimingHistogram: []domain.TimingBucket{
			{Label: "09:00", Count: 2},
			{Label: "18:00", Count: 1},
		},
		HashtagRanking: []domain.HashtagStat{
			{Tag: "moda", Count: 2, AvgEngagement: 20.0},
		},
		GeneratedAt: time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC),
	}
}

func TestToRows_OrdemDasSecoes(t *testing.T) {
	rows, err := ToRows(fullResult())
	require.NoError(t, err)

	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label)
	}

	assert.Equal(t, []string{
		"Total de Posts",
		"Taxa Média de Engajamento",
		"Total de Impressões",
		"Seguidores",
		"Total de Curtidas",
		"Total de Comentários",
		"",
		"Engajamento Diário",
		"2025-06-10",
		"2025-06-11",
		"",
		"Posts por Horário",
		"09:00",
		"18:00",
		"",
		"Ranking de Hashtags",
		"#moda",
	}, labels)

	assert.Equal(t, "1.85%", rows[1].Value)
	assert.Equal(t, "2 posts (20.00%)", rows[len(rows)-1].Value)
}

func TestToRows_SecaoUnica(t *testing.T) {
	result := &domain.AnalysisResult{
		TimingHistogram: []domain.TimingBucket{{Label: "09:00", Count: 1}},
	}

	rows, err := ToRows(result)
	require.NoError(t, err)

	// Sem linha em branco antes da primeira seção
	require.Len(t, rows, 2)
	assert.Equal(t, "Posts por Horário", rows[0].Label)
	assert.Equal(t, "09:00", rows[1].Label)
}

func TestToRows_ResultadoVazio(t *testing.T) {
	_, err := ToRows(&domain.AnalysisResult{})
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = ToRows(nil)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestToCSV(t *testing.T) {
	data, err := ToCSV(fullResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, "Tipo de Dado,Valor", lines[0])
	assert.Equal(t, "Total de Posts,2", lines[1])
	assert.Equal(t, "Taxa Média de Engajamento,1.85%", lines[2])
	assert.Contains(t, lines, "Engajamento Diário,")
	assert.Contains(t, lines, "#moda,2 posts (20.00%)")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "sns_analise_2025-06-30.csv", FileName(fullResult()))
}

func TestToSpreadsheetPayload(t *testing.T) {
	payload, err := ToSpreadsheetPayload(fullResult())
	require.NoError(t, err)

	assert.Equal(t, "Análise twitter @empresa_x", payload.Title)
	assert.Equal(t, "2025-06-30", payload.SheetName)
	assert.Equal(t, []string{"Tipo de Dado", "Valor"}, payload.Header)
	assert.Equal(t, []string{"Total de Posts", "2"}, payload.Rows[0])
}
