package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sns-analyzer-api/infrastructure/database/postgres"
	"github.com/vfg2006/sns-analyzer-api/internal/domain"
	"github.com/vfg2006/sns-analyzer-api/pkg/utils"
)

const trackedAccountsTable = "tracked_accounts t"

type TrackedAccountRepository interface {
	GetByPlatformAndUsername(platform domain.Platform, username string) (*domain.TrackedAccount, error)
	ListActive() ([]*domain.TrackedAccount, error)
	SaveOrUpdate(account *domain.TrackedAccount) error
	Deactivate(accountID string) error
}

type trackedAccountRepository struct {
	conn *postgres.Connection
}

func NewTrackedAccountRepository(conn *postgres.Connection) TrackedAccountRepository {
	return &trackedAccountRepository{
		conn: conn,
	}
}

func (r *trackedAccountRepository) GetByPlatformAndUsername(platform domain.Platform, username string) (*domain.TrackedAccount, error) {
	query, args, err := squirrel.
		Select("t.id, t.platform, t.username, t.active, t.created_at, t.updated_at").
		From(trackedAccountsTable).
		Where(squirrel.Eq{"t.platform": platform, "t.username": username}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.TrackedAccount{}
	err = r.conn.QueryRow(query, args...).Scan(
		&account.ID,
		&account.Platform,
		&account.Username,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear conta acompanhada: %w", err)
	}

	return account, nil
}

func (r *trackedAccountRepository) ListActive() ([]*domain.TrackedAccount, error) {
	query, args, err := squirrel.
		Select("t.id, t.platform, t.username, t.active, t.created_at, t.updated_at").
		From(trackedAccountsTable).
		Where(squirrel.Eq{"t.active": true}).
		OrderBy("t.username ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.TrackedAccount, 0)
	for rows.Next() {
		account := &domain.TrackedAccount{}
		if err := rows.Scan(
			&account.ID,
			&account.Platform,
			&account.Username,
			&account.Active,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear contas acompanhadas: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *trackedAccountRepository) SaveOrUpdate(account *domain.TrackedAccount) error {
	if account.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador da conta: %w", err)
		}
		account.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert("tracked_accounts").
		Columns("id", "platform", "username", "active").
		Values(account.ID, account.Platform, account.Username, account.Active).
		Suffix(`
			ON CONFLICT (platform, username) DO UPDATE SET
				active = EXCLUDED.active,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *trackedAccountRepository) Deactivate(accountID string) error {
	query, args, err := squirrel.
		Update("tracked_accounts").
		Set("active", false).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
