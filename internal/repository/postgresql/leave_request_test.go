package postgresql

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamcong-app/attendance-backend-go/internal/domain/leave"
)

func TestUpdateStatusOnlyTransitionsPending(t *testing.T) {
	repo := NewLeaveRequestRepository(nil)

	t.Run("pending row transitions", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("UPDATE 1")}

		err := repo.UpdateStatus(txContext(tx), leave.LeaveRequest{ID: "req-1", Status: leave.StatusApproved})

		require.NoError(t, err)
		require.Len(t, tx.queries, 1)
		assert.Contains(t, tx.queries[0], "status = 'pending'")
	})

	t.Run("already processed row matches nothing", func(t *testing.T) {
		tx := &fakeTx{execTag: pgconn.NewCommandTag("UPDATE 0")}

		err := repo.UpdateStatus(txContext(tx), leave.LeaveRequest{ID: "req-1", Status: leave.StatusApproved})

		assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
	})
}
