package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/attendance"
)

// fakeTx satisfies pgx.Tx through the embedded interface; only the Querier
// methods are overridden. Tests bind it to the context the same way
// WithTransaction does, so GetQuerier hands it to the repository.
type fakeTx struct {
	pgx.Tx
	queries     []string
	queryRowErr error
	queryErr    error
	execTag     pgconn.CommandTag
	execErr     error
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	f.queries = append(f.queries, sql)
	return fakeRow{err: f.queryRowErr}
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	f.queries = append(f.queries, sql)
	return nil, f.queryErr
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	return f.execTag, f.execErr
}

type fakeRow struct{ err error }

func (r fakeRow) Scan(dest ...interface{}) error { return r.err }

func txContext(tx pgx.Tx) context.Context {
	return context.WithValue(context.Background(), txContextKey{}, tx)
}

func TestAttendanceCreateDuplicateDay(t *testing.T) {
	repo := NewAttendanceRepository(nil)

	t.Run("unique violation means already checked in", func(t *testing.T) {
		tx := &fakeTx{queryRowErr: &pgconn.PgError{Code: "23505", ConstraintName: "attendances_user_id_work_date_key"}}

		_, err := repo.Create(txContext(tx), attendance.Attendance{UserID: "user-1"})

		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("other database errors pass through", func(t *testing.T) {
		tx := &fakeTx{queryRowErr: errors.New("connection reset")}

		_, err := repo.Create(txContext(tx), attendance.Attendance{UserID: "user-1"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})
}

func TestListOpenForAutoCheckoutQuery(t *testing.T) {
	repo := NewAttendanceRepository(nil)
	tx := &fakeTx{queryErr: errors.New("sentinel")}

	_, err := repo.ListOpenForAutoCheckout(txContext(tx), time.Now())
	require.Error(t, err)

	require.Len(t, tx.queries, 1)
	query := tx.queries[0]
	assert.Contains(t, query, "a.check_in IS NOT NULL")
	assert.Contains(t, query, "a.check_out IS NULL")
	assert.Contains(t, query, "a.is_auto_checkout = false")
}
