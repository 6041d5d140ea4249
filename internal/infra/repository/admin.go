package repository

import (
	"context"

	"schnittwerk-api/internal/infra/db"
	"schnittwerk-api/internal/usecase/queries"
)

// AdminReadStore serves the back-office snapshot listings and the flat
// per-record stats the analytics rollup runs over. The aggregation itself
// happens in the usecase layer so it stays testable without a database.
type AdminReadStore struct {
	db db.Querier
}

func NewAdminReadStore(q db.Querier) *AdminReadStore {
	return &AdminReadStore{db: q}
}

func (s *AdminReadStore) OrderStats(ctx context.Context) ([]queries.OrderStat, error) {
	rows, err := s.db.Query(ctx, `SELECT customer_id, total_cents, created_at FROM orders`)
	if err != nil {
		return nil, wrapQueryErr("failed to load order stats", err)
	}
	defer rows.Close()

	stats := []queries.OrderStat{}
	for rows.Next() {
		var stat queries.OrderStat
		if err := rows.Scan(&stat.CustomerID, &stat.TotalCents, &stat.CreatedAt); err != nil {
			return nil, wrapQueryErr("failed to scan order stat", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read order stats", err)
	}
	return stats, nil
}

func (s *AdminReadStore) AppointmentStats(ctx context.Context) ([]queries.AppointmentStat, error) {
	rows, err := s.db.Query(ctx, `SELECT customer_id, starts_at, status FROM appointments`)
	if err != nil {
		return nil, wrapQueryErr("failed to load appointment stats", err)
	}
	defer rows.Close()

	stats := []queries.AppointmentStat{}
	for rows.Next() {
		var stat queries.AppointmentStat
		if err := rows.Scan(&stat.CustomerID, &stat.StartsAt, &stat.Status); err != nil {
			return nil, wrapQueryErr("failed to scan appointment stat", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read appointment stats", err)
	}
	return stats, nil
}

func (s *AdminReadStore) CustomerStats(ctx context.Context) ([]queries.CustomerStat, error) {
	rows, err := s.db.Query(ctx, `SELECT id, marketing_consent FROM users WHERE role = 'customer'`)
	if err != nil {
		return nil, wrapQueryErr("failed to load customer stats", err)
	}
	defer rows.Close()

	stats := []queries.CustomerStat{}
	for rows.Next() {
		var stat queries.CustomerStat
		if err := rows.Scan(&stat.ID, &stat.MarketingConsent); err != nil {
			return nil, wrapQueryErr("failed to scan customer stat", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read customer stats", err)
	}
	return stats, nil
}

func (s *AdminReadStore) ListUsers(ctx context.Context) ([]queries.UserSummaryView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, email, name, role, marketing_consent, is_active
		FROM users
		ORDER BY name`)
	if err != nil {
		return nil, wrapQueryErr("failed to list users", err)
	}
	defer rows.Close()

	users := []queries.UserSummaryView{}
	for rows.Next() {
		var u queries.UserSummaryView
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.MarketingConsent, &u.IsActive); err != nil {
			return nil, wrapQueryErr("failed to scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read users", err)
	}
	return users, nil
}

func (s *AdminReadStore) ListAllAppointments(ctx context.Context) ([]queries.AppointmentView, error) {
	rows, err := s.db.Query(ctx, appointmentViewSelect+`
		ORDER BY a.starts_at DESC`)
	if err != nil {
		return nil, wrapQueryErr("failed to list appointments", err)
	}
	defer rows.Close()

	views := []queries.AppointmentView{}
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, wrapQueryErr("failed to scan appointment view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read appointments", err)
	}
	return views, nil
}

func (s *AdminReadStore) ListAllOrders(ctx context.Context) ([]queries.OrderSummaryView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT o.id, o.customer_id, o.status, o.total_cents, o.currency,
		       (SELECT count(*) FROM order_items i WHERE i.order_id = o.id), o.created_at
		FROM orders o
		ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, wrapQueryErr("failed to list orders", err)
	}
	defer rows.Close()

	views := []queries.OrderSummaryView{}
	for rows.Next() {
		var v queries.OrderSummaryView
		err := rows.Scan(&v.ID, &v.CustomerID, &v.Status, &v.TotalCents, &v.Currency, &v.ItemCount, &v.CreatedAt)
		if err != nil {
			return nil, wrapQueryErr("failed to scan order", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read orders", err)
	}
	return views, nil
}

func (s *AdminReadStore) ProductStats(ctx context.Context) ([]queries.ProductStat, error) {
	rows, err := s.db.Query(ctx, `SELECT name, stock, active FROM products`)
	if err != nil {
		return nil, wrapQueryErr("failed to load product stats", err)
	}
	defer rows.Close()

	stats := []queries.ProductStat{}
	for rows.Next() {
		var stat queries.ProductStat
		if err := rows.Scan(&stat.Name, &stat.Stock, &stat.Active); err != nil {
			return nil, wrapQueryErr("failed to scan product stat", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to read product stats", err)
	}
	return stats, nil
}
