package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/database/postgres"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
)

const (
	analysisSnapshotsTable = "analysis_snapshots s"
)

type AnalysisSnapshotRepository interface {
	GetByAccountAndDate(platform domain.Platform, username string, date time.Time) (*domain.AnalysisSnapshot, error)
	GetByDateRange(platform domain.Platform, username string, startDate, endDate time.Time) ([]*domain.AnalysisSnapshot, error)
	SaveOrUpdate(snapshot *domain.AnalysisSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type analysisSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAnalysisSnapshotRepository(conn *postgres.Connection) AnalysisSnapshotRepository {
	return &analysisSnapshotRepository{
		conn: conn,
	}
}

func (r *analysisSnapshotRepository) GetByAccountAndDate(platform domain.Platform, username string, date time.Time) (*domain.AnalysisSnapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.platform, s.username, s.date, s.result, s.created_at, s.updated_at").
		From(analysisSnapshotsTable).
		Where(squirrel.Eq{
			"s.platform": platform,
			"s.username": username,
			"s.date":     date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *analysisSnapshotRepository) GetByDateRange(platform domain.Platform, username string, startDate, endDate time.Time) ([]*domain.AnalysisSnapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.platform, s.username, s.date, s.result, s.created_at, s.updated_at").
		From(analysisSnapshotsTable).
		Where(squirrel.Eq{"s.platform": platform, "s.username": username}).
		Where(squirrel.GtOrEq{"s.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"s.date": endDate.Format("2006-01-02")}).
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AnalysisSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *analysisSnapshotRepository) SaveOrUpdate(snapshot *domain.AnalysisSnapshot) error {
	var resultJSON []byte
	var err error

	if snapshot.Result != nil {
		resultJSON, err = json.Marshal(snapshot.Result)
		if err != nil {
			return fmt.Errorf("erro ao serializar o resultado para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("analysis_snapshots").
		Columns("platform", "username", "date", "result").
		Values(
			snapshot.Platform,
			snapshot.Username,
			snapshot.Date.Format("2006-01-02"),
			resultJSON,
		).
		Suffix(`
			ON CONFLICT (platform, username, date) DO UPDATE SET
				result = EXCLUDED.result,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *analysisSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("analysis_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *analysisSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.AnalysisSnapshot, error) {
	snapshot := &domain.AnalysisSnapshot{}
	var resultJSON []byte
	var dateStr string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Platform,
		&snapshot.Username,
		&dateStr,
		&resultJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	snapshot.Date = date

	if resultJSON != nil {
		result := &domain.AnalysisResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
		}
		snapshot.Result = result
	}

	return snapshot, nil
}

func (r *analysisSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.AnalysisSnapshot, error) {
	snapshot := &domain.AnalysisSnapshot{}
	var resultJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.Platform,
		&snapshot.Username,
		&snapshot.Date,
		&resultJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if resultJSON != nil {
		result := &domain.AnalysisResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
		}
		snapshot.Result = result
	}

	return snapshot, nil
}
