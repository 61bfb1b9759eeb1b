package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmbewe/bccargo/internal/types"
)

type Database struct {
	pool *pgxpool.Pool
}

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

func (d *Database) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *Database) Close() {
	d.pool.Close()
}

const orderColumns = `
	id, reference, customer_name, email, phone, description, weight_kg,
	delivery_option, priority, insurance, base_rate_label, base_rate_amount,
	add_on_total, grand_total, status, timeline, created_at, updated_at`

func (d *Database) InsertOrder(ctx context.Context, order types.Order) (*types.Order, error) {

	timeline, err := json.Marshal(order.Timeline)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize timeline %w", err)
	}

	query := `
		INSERT INTO orders (
			reference, customer_name, email, phone, description, weight_kg,
			delivery_option, priority, insurance, base_rate_label,
			base_rate_amount, add_on_total, grand_total, status, timeline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15::jsonb)
		RETURNING` + orderColumns

	rows, err := d.pool.Query(ctx, query,
		order.Reference, order.CustomerName, order.Email, order.Phone,
		order.Description, order.WeightKg, order.DeliveryOption,
		order.Priority, order.Insurance, order.BaseRateLabel,
		order.BaseRateAmount, order.AddOnTotal, order.GrandTotal,
		order.Status, string(timeline))
	if err != nil {
		return nil, fmt.Errorf("failed inserting order %w", err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w", ErrReferenceTaken)
		}
		return nil, fmt.Errorf("failed unpacking row %w", err)
	}
	return &created, nil
}

func (d *Database) GetOrders(ctx context.Context, status types.Status, limit int) ([]types.Order, error) {

	query := `
		SELECT` + orderColumns + `
		FROM orders`

	args := []any{limit}
	if status != "" {
		query += `
		WHERE status = $2`
		args = append(args, status)
	}
	query += `
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets the new status and appends one timeline entry in a
// single statement, so concurrent updates cannot lose each other's entries.
func (d *Database) UpdateOrderStatus(ctx context.Context, orderID string, newStatus types.Status, event types.TimelineEvent) (*types.Order, error) {

	entry, err := json.Marshal([]types.TimelineEvent{event})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize timeline entry %w", err)
	}

	query := `
		UPDATE orders
		SET status = $1,
		    timeline = COALESCE(timeline, '[]'::jsonb) || $2::jsonb,
		    updated_at = now()
		WHERE id = $3
		RETURNING` + orderColumns

	rows, err := d.pool.Query(ctx, query, newStatus, string(entry), orderID)
	if err != nil {
		return nil, fmt.Errorf("failed updating order %w", err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &OrderNotFoundError{ID: orderID})
		}
		return nil, fmt.Errorf("failed unpacking row %w", err)
	}
	return &updated, nil
}

func (d *Database) CreateAccount(ctx context.Context, email string, passwordHash string, apiToken string) error {

	query := `
		INSERT INTO admin_account (email, password_hash, api_token)
		VALUES ($1, $2, $3)
		`
	_, err := d.pool.Exec(ctx, query, email, passwordHash, apiToken)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return fmt.Errorf("%w", &AccountExistsError{Email: email})
		}
		return err
	}
	return nil
}

func (d *Database) GetAccount(ctx context.Context, email string) (*types.Account, error) {

	query := `
		SELECT id, email, password_hash, api_token, created_at
		FROM admin_account
		WHERE email = $1`

	rows, err := d.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", &AccountNotFoundError{Email: email})
		}
		return nil, fmt.Errorf("failed unpacking row %w", err)
	}
	return &account, nil
}

// TokenExists reports whether some account holds the given API token. Used
// by the admin gate to honour tokens handed out at registration.
func (d *Database) TokenExists(ctx context.Context, token string) (bool, error) {

	query := `
		SELECT 1
		FROM admin_account
		WHERE api_token = $1`

	row := d.pool.QueryRow(ctx, query, token)

	var one int
	err := row.Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
