//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "Str0ng-Passw0rd", precomputed so fixtures stay fast.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// SalonID returns the reference salon inserted by SeedReferenceData.
func SalonID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var salonID uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM salons WHERE name = 'SCHNITTWERK' LIMIT 1").Scan(&salonID)
	require.NoError(t, err)
	return salonID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, name, marketing_consent, is_active)
		VALUES ($1, $2, $3, $4, $5, false, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role, "Test "+role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCategory(t *testing.T, db DBLike, salonID uuid.UUID, name string, position int) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO service_categories (id, salon_id, name, position)
		VALUES ($1, $2, $3, $4)`,
		categoryID, salonID, name, position)
	require.NoError(t, err)

	return categoryID
}

func CreateTestService(t *testing.T, db DBLike, salonID, categoryID uuid.UUID, name string, durationMinutes, bufferMinutes int, priceCents int64, active bool) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO services (id, salon_id, category_id, name, duration_minutes, buffer_minutes, price_cents, currency, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'CHF', $8)`,
		serviceID, salonID, categoryID, name, durationMinutes, bufferMinutes, priceCents, active)
	require.NoError(t, err)

	return serviceID
}

func CreateTestProduct(t *testing.T, db DBLike, name, slug string, priceCents int64, stock int, active bool) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO products (id, name, slug, description, price_cents, currency, stock, featured, active)
		VALUES ($1, $2, $3, '', $4, 'CHF', $5, false, $6)`,
		productID, name, slug, priceCents, stock, active)
	require.NoError(t, err)

	return productID
}

func CreateTestVoucher(t *testing.T, db DBLike, code, kind string, value int64, minSpendCents *int64, expiresAt *time.Time, remainingUses *int32, active *bool) uuid.UUID {
	t.Helper()

	voucherID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO vouchers (id, code, kind, value, min_spend_cents, expires_at, remaining_uses, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		voucherID, code, kind, value, minSpendCents, expiresAt, remainingUses, active)
	require.NoError(t, err)

	return voucherID
}

// inserts basic reference data needed by tests: the salon row and its
// weekly hours (Tuesday through Saturday open, Sunday and Monday closed).
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	var salonID uuid.UUID
	err := pool.QueryRow(ctx, `
		INSERT INTO salons (name, tagline, street_address, postal_code, city, phone, email, timezone)
		VALUES ('SCHNITTWERK', 'Dein Salon in St. Gallen', 'Rorschacherstrasse 152', '9000', 'St. Gallen',
		        '+41 71 000 00 00', 'hallo@schnittwerk.ch', 'Europe/Zurich')
		RETURNING id`).Scan(&salonID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO opening_hours (salon_id, day_of_week, opens_at, closes_at, closed) VALUES
		    ($1, 1, NULL, NULL, true),
		    ($1, 2, '09:00', '18:30', false),
		    ($1, 3, '09:00', '18:30', false),
		    ($1, 4, '09:00', '18:30', false),
		    ($1, 5, '09:00', '20:00', false),
		    ($1, 6, '08:00', '16:00', false),
		    ($1, 7, NULL, NULL, true)
		ON CONFLICT (salon_id, day_of_week) DO NOTHING`, salonID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
