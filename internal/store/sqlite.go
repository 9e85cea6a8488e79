package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"shopassist/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and seeds default data when
// the database is empty.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			order_date DATETIME NOT NULL,
			shipping_date DATETIME,
			delivery_date DATETIME,
			tracking_number TEXT,
			customer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			items TEXT NOT NULL,
			subtotal REAL NOT NULL,
			tax REAL NOT NULL,
			shipping_cost REAL NOT NULL,
			total REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(email COLLATE NOCASE)`,
		`CREATE TABLE IF NOT EXISTS faqs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL,
			answer TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// seed populates default orders and FAQ entries when the tables are empty.
func (s *SQLiteStore) seed() error {
	ctx := context.Background()

	var orderCount int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&orderCount); err != nil {
		return err
	}
	if orderCount == 0 {
		orders := generateMockOrders(seedOrderCount)
		for i := range orders {
			if err := s.CreateOrder(ctx, &orders[i]); err != nil {
				return fmt.Errorf("failed to seed order %s: %w", orders[i].OrderID, err)
			}
		}
		log.Info().Int("count", len(orders)).Msg("seeded mock orders")
	}

	var faqCount int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&faqCount); err != nil {
		return err
	}
	if faqCount == 0 {
		for i := range defaultFAQs {
			if err := s.CreateFAQ(ctx, &defaultFAQs[i]); err != nil {
				return fmt.Errorf("failed to seed faq: %w", err)
			}
		}
		log.Info().Int("count", len(defaultFAQs)).Msg("seeded default FAQs")
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateOrder inserts an order record.
func (s *SQLiteStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orders (order_id, status, order_date, shipping_date, delivery_date, tracking_number,
			customer_name, email, items, subtotal, tax, shipping_cost, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderID, string(order.Status), order.OrderDate, order.ShippingDate, order.DeliveryDate,
		nullIfEmpty(order.TrackingNumber), order.CustomerName, order.Email, string(items),
		order.Subtotal, order.Tax, order.ShippingCost, order.Total)
	return err
}

// GetOrder retrieves an order by ID. Exact match is tried first, then a
// case-insensitive lookup over all IDs.
func (s *SQLiteStore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.queryOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = ?`, orderID)
	if err == nil {
		return order, nil
	}
	if err != ErrOrderNotFound {
		return nil, err
	}
	return s.queryOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = ? COLLATE NOCASE`, orderID)
}

// SearchOrdersByEmail returns all orders for the given email address,
// case-insensitively, in storage order.
func (s *SQLiteStore) SearchOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE email = ? COLLATE NOCASE ORDER BY rowid`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// ListFAQs returns all FAQ entries in insertion order.
func (s *SQLiteStore) ListFAQs(ctx context.Context) ([]domain.FAQEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT question, answer FROM faqs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []domain.FAQEntry
	for rows.Next() {
		var entry domain.FAQEntry
		if err := rows.Scan(&entry.Question, &entry.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, entry)
	}
	return faqs, rows.Err()
}

// CreateFAQ appends an FAQ entry.
func (s *SQLiteStore) CreateFAQ(ctx context.Context, entry *domain.FAQEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO faqs (question, answer) VALUES (?, ?)`, entry.Question, entry.Answer)
	return err
}

const orderColumns = `order_id, status, order_date, shipping_date, delivery_date, tracking_number,
	customer_name, email, items, subtotal, tax, shipping_cost, total`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteStore) queryOrder(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	order, err := scanOrder(s.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var status string
	var shippingDate, deliveryDate sql.NullTime
	var trackingNumber sql.NullString
	var items string

	err := row.Scan(&order.OrderID, &status, &order.OrderDate, &shippingDate, &deliveryDate,
		&trackingNumber, &order.CustomerName, &order.Email, &items,
		&order.Subtotal, &order.Tax, &order.ShippingCost, &order.Total)
	if err != nil {
		return nil, err
	}

	order.Status = domain.OrderStatus(status)
	if shippingDate.Valid {
		t := shippingDate.Time
		order.ShippingDate = &t
	}
	if deliveryDate.Valid {
		t := deliveryDate.Time
		order.DeliveryDate = &t
	}
	if trackingNumber.Valid {
		order.TrackingNumber = trackingNumber.String
	}
	if err := json.Unmarshal([]byte(items), &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items for %s: %w", order.OrderID, err)
	}
	return &order, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
