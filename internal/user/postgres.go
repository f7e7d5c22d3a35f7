package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/yourusername/custom-auth/internal/user/migrations"
)

// Postgresのユニーク制約違反コード
const pgUniqueViolation = "23505"

// PostgresStore はPostgresをバックエンドとするユーザストアです。
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore は接続プールを作成し、マイグレーションを適用します。
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if err := runMigrations(ctx, databaseURL); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close は接続プールを解放します。
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func runMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// FindByUsername はユーザ名の完全一致でユーザを検索します。
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	const query = `
		SELECT id, username, password, is_admin FROM m_user
		WHERE username = $1
		`
	return s.scanOne(s.pool.QueryRow(ctx, query, username))
}

// FindByID はIDでユーザを検索します。
func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*User, error) {
	const query = `
		SELECT id, username, password, is_admin FROM m_user
		WHERE id = $1
		`
	return s.scanOne(s.pool.QueryRow(ctx, query, id))
}

// Create はユーザを登録します。ユニーク制約違反は ErrUsernameTaken に変換します。
func (s *PostgresStore) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*User, error) {
	const query = `
		INSERT INTO m_user (username, password, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id
		`
	u := &User{
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}
	if err := s.pool.QueryRow(ctx, query, username, passwordHash, isAdmin).Scan(&u.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) scanOne(row pgx.Row) (*User, error) {
	u := &User{}
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}
