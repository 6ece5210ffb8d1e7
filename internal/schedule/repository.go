package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	InsertDateLock(ctx context.Context, ld *LockedDate) error
	DeleteDateLock(ctx context.Context, date string) error
	DateLocked(ctx context.Context, date string) (bool, error)
	ListDateLocks(ctx context.Context) ([]*LockedDate, error)

	InsertSlotLock(ctx context.Context, ls *LockedSlot) error
	DeleteSlotLock(ctx context.Context, date, slot string) error
	SlotLocked(ctx context.Context, date, slot string) (bool, error)
	ListSlotLocks(ctx context.Context, date string) ([]*LockedSlot, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, which the UNIQUE keys on both lock tables turn into the
// Conflict outcome for double-lock attempts.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *pgxRepository) InsertDateLock(ctx context.Context, ld *LockedDate) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.locked_dates").
		Columns("date", "reason").
		Values(ld.Date, ld.Reason).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert date lock query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ld.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDateAlreadyLocked
		}
		return fmt.Errorf("insert date lock failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) DeleteDateLock(ctx context.Context, date string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.locked_dates").
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete date lock query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete date lock failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrDateLockNotFound
	}
	return nil
}

func (r *pgxRepository) DateLocked(ctx context.Context, date string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub, args, err := psql.Select("1").
		From("public.locked_dates").
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build date locked query failed: %w", err)
	}

	var locked bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&locked); err != nil {
		return false, fmt.Errorf("check date locked failed: %w", err)
	}
	return locked, nil
}

func (r *pgxRepository) ListDateLocks(ctx context.Context) ([]*LockedDate, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("date", "reason", "created_at").
		From("public.locked_dates").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list date locks query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list date locks failed: %w", err)
	}
	defer rows.Close()

	var locks []*LockedDate
	for rows.Next() {
		var ld LockedDate
		if err := rows.Scan(&ld.Date, &ld.Reason, &ld.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan date lock failed: %w", err)
		}
		locks = append(locks, &ld)
	}
	return locks, rows.Err()
}

func (r *pgxRepository) InsertSlotLock(ctx context.Context, ls *LockedSlot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.locked_time_slots").
		Columns("date", "time", "reason").
		Values(ls.Date, ls.Time, ls.Reason).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert slot lock query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ls.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrSlotAlreadyLocked
		}
		return fmt.Errorf("insert slot lock failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) DeleteSlotLock(ctx context.Context, date, slot string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.locked_time_slots").
		Where(squirrel.Eq{"date": date, "time": slot}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete slot lock query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete slot lock failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrSlotLockNotFound
	}
	return nil
}

func (r *pgxRepository) SlotLocked(ctx context.Context, date, slot string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sub, args, err := psql.Select("1").
		From("public.locked_time_slots").
		Where(squirrel.Eq{"date": date, "time": slot}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build slot locked query failed: %w", err)
	}

	var locked bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sub+")", args...).Scan(&locked); err != nil {
		return false, fmt.Errorf("check slot locked failed: %w", err)
	}
	return locked, nil
}

func (r *pgxRepository) ListSlotLocks(ctx context.Context, date string) ([]*LockedSlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("date", "time", "reason", "created_at").
		From("public.locked_time_slots")

	if date != "" {
		query = query.Where(squirrel.Eq{"date": date})
	}
	query = query.OrderBy("date ASC", "time ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slot locks query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list slot locks failed: %w", err)
	}
	defer rows.Close()

	var locks []*LockedSlot
	for rows.Next() {
		var ls LockedSlot
		if err := rows.Scan(&ls.Date, &ls.Time, &ls.Reason, &ls.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot lock failed: %w", err)
		}
		locks = append(locks, &ls)
	}
	return locks, rows.Err()
}
