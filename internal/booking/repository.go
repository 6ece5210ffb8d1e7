package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateAdmitted persists the booking if and only if no date lock
	// and no slot lock exists for its (date, time) at the instant of
	// the write. The lock checks and the insert are one atomic
	// decision; there is no window in which a concurrently added lock
	// can be missed once it is committed.
	CreateAdmitted(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// CountActiveAt counts non-cancelled bookings in one slot.
	CountActiveAt(ctx context.Context, date, slot string) (int, error)
	// CountActiveByDay maps each slot with at least one non-cancelled
	// booking on the date to its count.
	CountActiveByDay(ctx context.Context, date string) (map[string]int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// admitSQL is a single conditional write: the insert only happens if no
// matching lock row exists when the statement executes. Doing this in
// one statement (rather than read-then-insert) is what makes the
// admission decision race-free against concurrent lock creation.
const admitSQL = `
INSERT INTO public.bookings
    (id, customer_name, customer_phone, customer_email, services,
     date, time, notes, status, total_price, total_duration)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
WHERE NOT EXISTS (SELECT 1 FROM public.locked_dates WHERE date = $6)
  AND NOT EXISTS (SELECT 1 FROM public.locked_time_slots WHERE date = $6 AND time = $7)
RETURNING created_at`

func (r *pgxRepository) CreateAdmitted(ctx context.Context, b *Booking) error {
	servicesJSON, err := json.Marshal(b.Services)
	if err != nil {
		return fmt.Errorf("marshal booking services failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, admitSQL,
		b.ID, b.CustomerName, b.CustomerPhone, b.CustomerEmail, servicesJSON,
		b.Date, b.Time, b.Notes, b.Status, b.TotalPrice, b.TotalDuration,
	).Scan(&b.CreatedAt)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrDuplicateID
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("insert booking failed: %w", err)
	}

	// No row inserted: a lock blocked admission. Classify it so the
	// customer gets a targeted message. The follow-up read can race a
	// concurrent unlock; when neither lock is visible anymore we still
	// report the slot as locked, since the rejection itself stands.
	var dateLocked bool
	if err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM public.locked_dates WHERE date = $1)", b.Date,
	).Scan(&dateLocked); err != nil {
		return fmt.Errorf("classify admission rejection failed: %w", err)
	}
	if dateLocked {
		return ErrDateLocked
	}
	return ErrSlotLocked
}

const bookingColumns = "id, customer_name, customer_phone, customer_email, services, date, time, notes, status, total_price, total_duration, created_at"

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var servicesJSON []byte
	if err := row.Scan(
		&b.ID, &b.CustomerName, &b.CustomerPhone, &b.CustomerEmail, &servicesJSON,
		&b.Date, &b.Time, &b.Notes, &b.Status, &b.TotalPrice, &b.TotalDuration, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(servicesJSON, &b.Services); err != nil {
		return nil, fmt.Errorf("unmarshal booking services failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns).From("public.bookings")

	if filter.Date != "" {
		query = query.Where(squirrel.Eq{"date": filter.Date})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	query = query.OrderBy("date ASC", "time ASC", "created_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CountActiveAt(ctx context.Context, date, slot string) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("count(*)").
		From("public.bookings").
		Where(squirrel.Eq{"date": date, "time": slot}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count bookings query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) CountActiveByDay(ctx context.Context, date string) (map[string]int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("time", "count(*)").
		From("public.bookings").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		GroupBy("time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by day query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count bookings by day failed: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slot string
		var count int
		if err := rows.Scan(&slot, &count); err != nil {
			return nil, fmt.Errorf("scan slot count failed: %w", err)
		}
		counts[slot] = count
	}
	return counts, rows.Err()
}
