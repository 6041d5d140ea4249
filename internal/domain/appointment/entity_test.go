//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"schnittwerk-api/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedAppointment(t *testing.T, start time.Time) *appointment.Appointment {
	t.Helper()
	slot, err := appointment.NewSlot(start, start.Add(45*time.Minute))
	require.NoError(t, err)
	price, err := appointment.NewMoney(12000)
	require.NoError(t, err)
	return appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(), nil, slot, price, appointment.NewNote(""))
}

func TestNewSlot(t *testing.T) {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("start must precede end", func(t *testing.T) {
		_, err := appointment.NewSlot(start, start)
		assert.ErrorIs(t, err, appointment.ErrInvalidSlot)

		_, err = appointment.NewSlot(start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, appointment.ErrInvalidSlot)
	})

	t.Run("duration is end minus start", func(t *testing.T) {
		slot, err := appointment.NewSlot(start, start.Add(45*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 45*time.Minute, slot.Duration())
	})
}

func TestNewMoney(t *testing.T) {
	_, err := appointment.NewMoney(-1)
	assert.ErrorIs(t, err, appointment.ErrNegativeMoney)

	m, err := appointment.NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Cents())
}

func TestCancel(t *testing.T) {
	start := time.Date(2024, 3, 8, 14, 0, 0, 0, time.UTC)

	t.Run("cancels with enough notice", func(t *testing.T) {
		appt := confirmedAppointment(t, start)

		err := appt.Cancel(start.Add(-48*time.Hour), 24)

		require.NoError(t, err)
		assert.Equal(t, appointment.StatusCanceled, appt.Status())
		assert.False(t, appt.IsActive())
	})

	t.Run("cancellation exactly at the deadline is allowed", func(t *testing.T) {
		appt := confirmedAppointment(t, start)

		err := appt.Cancel(start.Add(-24*time.Hour), 24)

		require.NoError(t, err)
	})

	t.Run("rejects cancellation inside the notice period", func(t *testing.T) {
		appt := confirmedAppointment(t, start)

		err := appt.Cancel(start.Add(-2*time.Hour), 24)

		assert.ErrorIs(t, err, appointment.ErrCancellationNotice)
		assert.Equal(t, appointment.StatusConfirmed, appt.Status())
	})

	t.Run("rejects double cancellation", func(t *testing.T) {
		appt := confirmedAppointment(t, start)
		require.NoError(t, appt.Cancel(start.Add(-48*time.Hour), 24))

		err := appt.Cancel(start.Add(-48*time.Hour), 24)

		assert.ErrorIs(t, err, appointment.ErrAlreadyCanceled)
	})
}
