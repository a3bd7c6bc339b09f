package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage. Declared
// as an interface so tests can substitute pgxmock.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository backed by this storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            package TEXT NOT NULL,
            template TEXT NOT NULL,
            price BIGINT NOT NULL,
            client_data JSONB NOT NULL,
            status TEXT NOT NULL,
            artifact_url TEXT,
            attempts INT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            paid_at TIMESTAMPTZ,
            pdf_generated_at TIMESTAMPTZ,
            completed_at TIMESTAMPTZ,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, package, template, price, client_data, status, artifact_url, attempts,
                      created_at, paid_at, pdf_generated_at, completed_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o          model.Order
		pkg        string
		clientData []byte
	)
	err := row.Scan(&o.ID, &pkg, &o.Template, &o.Price, &clientData, &o.Status, &o.ArtifactURL,
		&o.Attempts, &o.CreatedAt, &o.PaidAt, &o.PDFGeneratedAt, &o.CompletedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Package = model.Package(pkg)
	if err := json.Unmarshal(clientData, &o.ClientData); err != nil {
		return nil, fmt.Errorf("decode client data: %w", err)
	}
	return &o, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (id, package, template, price, client_data, status, paid_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`

	clientData, err := json.Marshal(order.ClientData)
	if err != nil {
		return fmt.Errorf("encode client data: %w", err)
	}

	return r.storage.pool.QueryRow(ctx, query,
		order.ID, string(order.Package), order.Template, order.Price, clientData,
		string(order.Status), order.PaidAt,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	const query = `UPDATE orders SET status=$1, paid_at=$2, updated_at=NOW()
                   WHERE id=$3 AND status=$4`
	return r.guardedUpdate(ctx, id, query,
		string(model.OrderStatusProcessing), paidAt, id, string(model.OrderStatusPending))
}

func (r *orderRepository) Complete(ctx context.Context, id, artifactURL string, at time.Time) error {
	const query = `UPDATE orders SET status=$1, artifact_url=$2, pdf_generated_at=$3, completed_at=$3, updated_at=NOW()
                   WHERE id=$4 AND status=$5`
	return r.guardedUpdate(ctx, id, query,
		string(model.OrderStatusCompleted), artifactURL, at, id, string(model.OrderStatusProcessing))
}

func (r *orderRepository) MarkFailed(ctx context.Context, id string, attempts int) error {
	const query = `UPDATE orders SET status=$1, attempts=$2, updated_at=NOW()
                   WHERE id=$3 AND status=$4`
	return r.guardedUpdate(ctx, id, query,
		string(model.OrderStatusFailed), attempts, id, string(model.OrderStatusProcessing))
}

func (r *orderRepository) Retry(ctx context.Context, id string) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status=$3`
	return r.guardedUpdate(ctx, id, query,
		string(model.OrderStatusProcessing), id, string(model.OrderStatusFailed))
}

func (r *orderRepository) Cancel(ctx context.Context, id string) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id=$2 AND status = ANY($3)`
	nonTerminal := []string{
		string(model.OrderStatusPending),
		string(model.OrderStatusProcessing),
		string(model.OrderStatusFailed),
	}
	return r.guardedUpdate(ctx, id, query, string(model.OrderStatusCancelled), id, nonTerminal)
}

// guardedUpdate runs a transition UPDATE whose WHERE clause encodes the
// state machine guard. Zero affected rows means either the order does
// not exist or the transition is illegal from its current status.
func (r *orderRepository) guardedUpdate(ctx context.Context, id, query string, args ...any) error {
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	const existsQuery = `SELECT status FROM orders WHERE id=$1`
	var status string
	if err := r.storage.pool.QueryRow(ctx, existsQuery, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return fmt.Errorf("%w: order %s is %s", domainErrors.ErrInvalidTransition, id, status)
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
