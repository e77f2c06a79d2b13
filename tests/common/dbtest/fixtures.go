//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "secret1", precomputed so fixtures stay cheap.
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestCustomer(t *testing.T, db DBLike, email string, quota int) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO customers (id, name, email, password_hash, phone, address, quota)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		customerID, "Test Customer", email, testPasswordHash, "9876543210", "12 Gandhi Road, Pune", quota)
	require.NoError(t, err)

	return customerID
}

func CreateTestAdmin(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	adminID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO admins (id, email, password_hash) VALUES ($1, $2, $3)",
		adminID, email, testPasswordHash)
	require.NoError(t, err)

	return adminID
}

func GetCustomerQuota(t *testing.T, db DBLike, customerID uuid.UUID) int {
	t.Helper()

	var quota int
	err := db.QueryRow(context.Background(),
		"SELECT quota FROM customers WHERE id = $1", customerID).Scan(&quota)
	require.NoError(t, err)

	return quota
}

func CountBookings(t *testing.T, db DBLike, customerID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE customer_id = $1", customerID).Scan(&count)
	require.NoError(t, err)

	return count
}

func GetBookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)

	return status
}

func CountAuditEntries(t *testing.T, db DBLike, action string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM audit_logs WHERE action = $1", action).Scan(&count)
	require.NoError(t, err)

	return count
}

// ResetDB truncates all business tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"TRUNCATE bookings, notices, audit_logs, customers, admins CASCADE")
	return err
}
