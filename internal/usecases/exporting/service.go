package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

// ErrEmptyResult indica um resultado sem nenhuma seção calculada, que não
// tem o que exportar
var ErrEmptyResult = errors.New("resultado de análise vazio, nada a exportar")

// Row é uma linha da exportação tabular, comum ao CSV e à planilha
type Row struct {
	Label string
	Value string
}

// csvHeader é o cabeçalho fixo das exportações
var csvHeader = [2]string{"Tipo de Dado", "Valor"}

// ToRows achata o resultado da análise em linhas rótulo/valor, sempre na
// mesma ordem: estatísticas gerais, série de engajamento, histograma de
// horários e ranking de hashtags. Seções nulas são omitidas por inteiro.
func ToRows(result *domain.AnalysisResult) ([]Row, error) {
	if result == nil {
		return nil, ErrEmptyResult
	}

	if result.Stats == nil && result.EngagementSeries == nil &&
		result.TimingHistogram == nil && result.HashtagRanking == nil {
		return nil, ErrEmptyResult
	}

	var rows []Row

	if result.Stats != nil {
		rows = append(rows,
			Row{Label: "Total de Posts", Value: strconv.Itoa(result.Stats.TotalPosts)},
			Row{Label: "Taxa Média de Engajamento", Value: formatPercent(result.Stats.AvgEngagementRate)},
			Row{Label: "Total de Impressões", Value: strconv.Itoa(result.Stats.TotalImpressions)},
			Row{Label: "Seguidores", Value: strconv.Itoa(result.Stats.FollowerCount)},
			Row{Label: "Total de Curtidas", Value: strconv.Itoa(result.Stats.TotalLikes)},
			Row{Label: "Total de Comentários", Value: strconv.Itoa(result.Stats.TotalComments)},
		)
	}

	if result.EngagementSeries != nil {
		rows = appendSection(rows, "Engajamento Diário")
		for _, point := range result.EngagementSeries {
			rows = append(rows, Row{Label: point.Label, Value: formatPercent(point.Value)})
		}
	}

	if result.TimingHistogram != nil {
		rows = appendSection(rows, "Posts por Horário")
		for _, bucket := range result.TimingHistogram {
			rows = append(rows, Row{Label: bucket.Label, Value: strconv.Itoa(bucket.Count)})
		}
	}

	if result.HashtagRanking != nil {
		rows = appendSection(rows, "Ranking de Hashtags")
		for _, stat := range result.HashtagRanking {
			rows = append(rows, Row{
				Label: "#" + stat.Tag,
				Value: fmt.Sprintf("%d posts (%s)", stat.Count, formatPercent(stat.AvgEngagement)),
			})
		}
	}

	return rows, nil
}

// ToCSV serializa o resultado em CSV com o cabeçalho padrão
func ToCSV(result *domain.AnalysisResult) ([]byte, error) {
	rows, err := ToRows(result)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(csvHeader[:]); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho do CSV")
	}

	for _, row := range rows {
		if err := writer.Write([]string{row.Label, row.Value}); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return buffer.Bytes(), nil
}

// FileName monta o nome do arquivo de exportação a partir do resultado
func FileName(result *domain.AnalysisResult) string {
	return fmt.Sprintf("sns_analise_%s.csv", result.GeneratedAt.UTC().Format("2006-01-02"))
}

// SpreadsheetPayload é o corpo enviado ao webhook de planilhas
type SpreadsheetPayload struct {
	Title     string     `json:"title"`
	SheetName string     `json:"sheet_name"`
	Header    []string   `json:"header"`
	Rows      [][]string `json:"rows"`
}

// ToSpreadsheetPayload monta o payload de planilha com as mesmas linhas do CSV
func ToSpreadsheetPayload(result *domain.AnalysisResult) (*SpreadsheetPayload, error) {
	rows, err := ToRows(result)
	if err != nil {
		return nil, err
	}

	payload := &SpreadsheetPayload{
		Title:     fmt.Sprintf("Análise %s @%s", result.Platform, result.Username),
		SheetName: result.GeneratedAt.UTC().Format("2006-01-02"),
		Header:    csvHeader[:],
		Rows:      make([][]string, 0, len(rows)),
	}

	for _, row := range rows {
		payload.Rows = append(payload.Rows, []string{row.Label, row.Value})
	}

	return payload, nil
}

// appendSection insere uma linha em branco seguida do título da seção
func appendSection(rows []Row, title string) []Row {
	if len(rows) > 0 {
		rows = append(rows, Row{})
	}
	return append(rows, Row{Label: title})
}

// formatPercent formata taxas com duas casas e o sinal de porcento
func formatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
