package records

import (
	"context"
	"fmt"

	"github.com/Tharusha999/isdn-sub001/internal/db"
)

const defaultListLimit = 200

// Repository serves the read-only record lists behind the dashboard
// pages. Every method is a direct query; results are returned as-is.
type Repository struct {
	db *db.DB
}

func NewRepository(db *db.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, sku, category, quantity, unit_price, created_at
		FROM products
		ORDER BY name
		LIMIT $1
	`, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("records: list products: %w", err)
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.SKU, &p.Category,
			&p.Quantity, &p.UnitPrice, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("records: scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reference, customer_name, status, total, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("records: list orders: %w", err)
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.Reference, &o.CustomerName,
			&o.Status, &o.Total, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("records: scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListUndeliveredOrders is the driver's delivery queue: everything not
// yet marked delivered or cancelled, oldest first.
func (r *Repository) ListUndeliveredOrders(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, reference, customer_name, status, total, created_at
		FROM orders
		WHERE status NOT IN ('delivered', 'cancelled')
		ORDER BY created_at
		LIMIT $1
	`, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("records: list undelivered orders: %w", err)
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.Reference, &o.CustomerName,
			&o.Status, &o.Total, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("records: scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repository) ListStaff(ctx context.Context) ([]StaffMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, full_name, position, phone
		FROM staff
		ORDER BY full_name
		LIMIT $1
	`, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("records: list staff: %w", err)
	}
	defer rows.Close()

	out := []StaffMember{}
	for rows.Next() {
		var s StaffMember
		if err := rows.Scan(&s.ID, &s.FullName, &s.Position, &s.Phone); err != nil {
			return nil, fmt.Errorf("records: scan staff: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) ListPartners(ctx context.Context) ([]Partner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, contact, service_type
		FROM partners
		ORDER BY name
		LIMIT $1
	`, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("records: list partners: %w", err)
	}
	defer rows.Close()

	out := []Partner{}
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Contact, &p.ServiceType); err != nil {
			return nil, fmt.Errorf("records: scan partner: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) ListActivity(ctx context.Context) ([]Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, actor, action, detail, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1
	`, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("records: list activity: %w", err)
	}
	defer rows.Close()

	out := []Activity{}
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Actor, &a.Action, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("records: scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Metrics gathers the dashboard card counts in one round trip.
func (r *Repository) Metrics(ctx context.Context) (Metrics, error) {
	var m Metrics
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM staff),
			(SELECT COUNT(*) FROM partners),
			(SELECT COUNT(*) FROM activity_log WHERE created_at >= NOW() - INTERVAL '1 day')
	`).Scan(&m.Products, &m.Orders, &m.Staff, &m.Partners, &m.ActivityToday)
	if err != nil {
		return Metrics{}, fmt.Errorf("records: metrics: %w", err)
	}
	return m, nil
}
