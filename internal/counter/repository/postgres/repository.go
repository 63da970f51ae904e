package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/michaelgreenl/tally-tracker-server/internal/counter/domain"
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

const counterColumns = `id, title, count, color, type, invite_code, user_id, created_at, updated_at`

// ownerOrShare authorizes access as the owner or an ACCEPTED sharer.
// Placeholders $1 = counter id, $2 = user id.
const ownerOrShare = `(c.user_id = $2 OR EXISTS (
        SELECT 1 FROM counter_shares s
        WHERE s.counter_id = c.id AND s.user_id = $2 AND s.status = 'ACCEPTED'))`

func scanCounter(row pgx.Row) (*domain.Counter, error) {
	var (
		c                 domain.Counter
		color, inviteCode *string
	)
	err := row.Scan(&c.ID, &c.Title, &c.Count, &color, &c.Type, &inviteCode,
		&c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if color != nil {
		c.Color = *color
	}
	if inviteCode != nil {
		c.InviteCode = *inviteCode
	}

	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, counter *domain.Counter) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO counters (id, title, count, color, type, invite_code, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, counter.ID, counter.Title, counter.Count, nullable(counter.Color), counter.Type,
		nullable(counter.InviteCode), counter.UserID, counter.CreatedAt, counter.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "pkey") {
			return apperrors.ErrDuplicateCounterID
		}
		return apperrors.ErrInviteCodeTaken
	}

	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, counterID, ownerID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM counters WHERE id = $1 AND user_id = $2`, counterID, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) GetByIDOrShare(ctx context.Context, counterID, userID string) (*domain.Counter, error) {
	row := r.db.QueryRow(ctx, `
        SELECT c.id, c.title, c.count, c.color, c.type, c.invite_code, c.user_id, c.created_at, c.updated_at
        FROM counters c
        WHERE c.id = $1 AND `+ownerOrShare+`
        LIMIT 1
    `, counterID, userID)

	counter, err := scanCounter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get counter: %w", err)
	}

	return counter, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*domain.CounterWithShares, error) {
	rows, err := r.db.Query(ctx, `
        SELECT c.id, c.title, c.count, c.color, c.type, c.invite_code, c.user_id, c.created_at, c.updated_at,
               u.id, u.email, u.phone
        FROM counters c
        JOIN users u ON u.id = c.user_id
        WHERE c.user_id = $1 OR EXISTS (
            SELECT 1 FROM counter_shares s
            WHERE s.counter_id = c.id AND s.user_id = $1 AND s.status = 'ACCEPTED')
        ORDER BY c.updated_at DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}
	defer rows.Close()

	var (
		counters []*domain.CounterWithShares
		ids      []string
	)

	for rows.Next() {
		var (
			cw                     domain.CounterWithShares
			color, inviteCode      *string
			ownerEmail, ownerPhone *string
		)
		err := rows.Scan(&cw.ID, &cw.Title, &cw.Count, &color, &cw.Type, &inviteCode,
			&cw.UserID, &cw.CreatedAt, &cw.UpdatedAt,
			&cw.Owner.ID, &ownerEmail, &ownerPhone)
		if err != nil {
			return nil, err
		}

		if color != nil {
			cw.Color = *color
		}
		if inviteCode != nil {
			cw.InviteCode = *inviteCode
		}
		if ownerEmail != nil {
			cw.Owner.Email = *ownerEmail
		}
		if ownerPhone != nil {
			cw.Owner.Phone = *ownerPhone
		}

		cw.Shares = []domain.CounterShare{}
		counters = append(counters, &cw)
		ids = append(ids, cw.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(counters) == 0 {
		return []*domain.CounterWithShares{}, nil
	}

	shares, err := r.sharesForCounters(ctx, ids)
	if err != nil {
		return nil, err
	}

	byCounter := make(map[string][]domain.CounterShare, len(counters))
	for _, s := range shares {
		byCounter[s.CounterID] = append(byCounter[s.CounterID], s)
	}
	for _, cw := range counters {
		if list, ok := byCounter[cw.ID]; ok {
			cw.Shares = list
		}
	}

	return counters, nil
}

func (r *PostgresRepository) sharesForCounters(ctx context.Context, counterIDs []string) ([]domain.CounterShare, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, counter_id, user_id, status, created_at, updated_at
        FROM counter_shares
        WHERE counter_id = ANY($1)
    `, counterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load shares: %w", err)
	}
	defer rows.Close()

	var shares []domain.CounterShare
	for rows.Next() {
		var s domain.CounterShare
		if err := rows.Scan(&s.ID, &s.CounterID, &s.UserID, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		shares = append(shares, s)
	}

	return shares, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, counterID, userID string, patch domain.UpdatePatch) (*domain.Counter, error) {
	sets := []string{"updated_at = now()"}
	args := []any{counterID, userID}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Count != nil {
		addSet("count", *patch.Count)
	}
	if patch.Color != nil {
		addSet("color", nullable(*patch.Color))
	}
	if patch.Type != nil {
		addSet("type", *patch.Type)
	}

	query := fmt.Sprintf(`
        UPDATE counters c SET %s
        WHERE c.id = $1 AND %s
        RETURNING %s
    `, strings.Join(sets, ", "), ownerOrShare, counterColumns)

	counter, err := scanCounter(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update counter: %w", err)
	}

	return counter, nil
}

// Increment is a store-level atomic add: concurrent incrementers never lose
// updates because the read-modify-write happens inside the UPDATE.
func (r *PostgresRepository) Increment(ctx context.Context, counterID, userID string, amount int) (*domain.Counter, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE counters c SET count = count + $3, updated_at = now()
        WHERE c.id = $1 AND `+ownerOrShare+`
        RETURNING `+counterColumns+`
    `, counterID, userID, amount)

	counter, err := scanCounter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to increment counter: %w", err)
	}

	return counter, nil
}

func (r *PostgresRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*domain.CounterWithShares, error) {
	row := r.db.QueryRow(ctx, `
        SELECT c.id, c.title, c.count, c.color, c.type, c.invite_code, c.user_id, c.created_at, c.updated_at,
               u.id, u.email, u.phone
        FROM counters c
        JOIN users u ON u.id = c.user_id
        WHERE c.invite_code = $1
        LIMIT 1
    `, inviteCode)

	var (
		cw                     domain.CounterWithShares
		color, code            *string
		ownerEmail, ownerPhone *string
	)
	err := row.Scan(&cw.ID, &cw.Title, &cw.Count, &color, &cw.Type, &code,
		&cw.UserID, &cw.CreatedAt, &cw.UpdatedAt,
		&cw.Owner.ID, &ownerEmail, &ownerPhone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get counter by invite code: %w", err)
	}

	if color != nil {
		cw.Color = *color
	}
	if code != nil {
		cw.InviteCode = *code
	}
	if ownerEmail != nil {
		cw.Owner.Email = *ownerEmail
	}
	if ownerPhone != nil {
		cw.Owner.Phone = *ownerPhone
	}

	shares, err := r.sharesForCounters(ctx, []string{cw.ID})
	if err != nil {
		return nil, err
	}
	if shares == nil {
		shares = []domain.CounterShare{}
	}
	cw.Shares = shares

	return &cw, nil
}

func (r *PostgresRepository) GetShare(ctx context.Context, counterID, userID string) (*domain.CounterShare, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, counter_id, user_id, status, created_at, updated_at
        FROM counter_shares
        WHERE counter_id = $1 AND user_id = $2
        LIMIT 1
    `, counterID, userID)

	var s domain.CounterShare
	err := row.Scan(&s.ID, &s.CounterID, &s.UserID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get share: %w", err)
	}

	return &s, nil
}

// UpsertShareAccepted leans on the (counter_id, user_id) unique constraint:
// concurrent joins by the same user collapse into one ACCEPTED row.
func (r *PostgresRepository) UpsertShareAccepted(ctx context.Context, counterID, userID string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO counter_shares (id, counter_id, user_id, status, created_at, updated_at)
        VALUES ($1, $2, $3, 'ACCEPTED', $4, $4)
        ON CONFLICT (counter_id, user_id)
        DO UPDATE SET status = 'ACCEPTED', updated_at = now()
    `, newShareID(), counterID, userID, time.Now())
	return err
}

func (r *PostgresRepository) SetShareStatus(ctx context.Context, counterID, userID string, status domain.ShareStatus) error {
	_, err := r.db.Exec(ctx, `
        UPDATE counter_shares SET status = $3, updated_at = now()
        WHERE counter_id = $1 AND user_id = $2
    `, counterID, userID, status)
	return err
}

func (r *PostgresRepository) Participants(ctx context.Context, counterID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
        SELECT user_id FROM counters WHERE id = $1
        UNION
        SELECT user_id FROM counter_shares WHERE counter_id = $1 AND status = 'ACCEPTED'
    `, counterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newShareID() string {
	return uuid.NewString()
}
