package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/domain"
	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, phone, password, tier, created_at, updated_at`

func (r *PostgresRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1 LIMIT 1`, userColumns, column)
	row := r.db.QueryRow(ctx, query, value)

	var (
		user         domain.User
		email, phone *string
	)
	err := row.Scan(&user.ID, &email, &phone, &user.PasswordHash, &user.Tier, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	if email != nil {
		user.Email = *email
	}
	if phone != nil {
		user.Phone = *phone
	}

	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getBy(ctx, "phone", phone)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, phone, password, tier, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, nullable(user.Email), nullable(user.Phone), user.PasswordHash,
		user.Tier, user.CreatedAt, user.UpdatedAt)

	return mapUniqueViolation(err)
}

func (r *PostgresRepository) Update(ctx context.Context, id string, update domain.UserUpdate) error {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Email != nil {
		addSet("email", *update.Email)
	}
	if update.Phone != nil {
		addSet("phone", *update.Phone)
	}
	if update.PasswordHash != nil {
		addSet("password", *update.PasswordHash)
	}
	if update.Tier != nil {
		addSet("tier", *update.Tier)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1`, strings.Join(sets, ", "))
	_, err := r.db.Exec(ctx, query, args...)

	return mapUniqueViolation(err)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO refresh_tokens (id, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4)
    `, rt.ID, rt.UserID, rt.ExpiresAt, rt.CreatedAt)
	return err
}

func (r *PostgresRepository) GetRefreshToken(ctx context.Context, id string) (*domain.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, user_id, expires_at, created_at
        FROM refresh_tokens
        WHERE id = $1
        LIMIT 1
    `, id)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

// DeleteRefreshToken is the rotation commit point: two concurrent rotations
// of the same token both reach here, but only one sees a row deleted.
func (r *PostgresRepository) DeleteRefreshToken(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) DeleteAllRefreshTokens(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

func (r *PostgresRepository) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, time.Now())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// mapUniqueViolation converts a 23505 on the users table into a
// FieldTakenError naming the colliding column.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return &apperrors.FieldTakenError{Field: "Email"}
		case strings.Contains(pgErr.ConstraintName, "phone"):
			return &apperrors.FieldTakenError{Field: "Phone"}
		default:
			return &apperrors.FieldTakenError{Field: "Account"}
		}
	}

	return err
}
