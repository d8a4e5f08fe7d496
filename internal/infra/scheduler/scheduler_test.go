//go:build unit

package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-core/internal/pkg/config"
	commandsmock "rental-core/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		MarkOverdueRentals:    "0 */15 * * * *",
		SendReturnReminders:   "0 0 8 * * *",
		DispatchNotifications: "*/30 * * * * *",
		ReminderWindowDays:    2,
		DispatchBatchSize:     25,
	}
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := commandsmock.NewMockJobCommands(ctrl)

	t.Run("registers every configured job", func(t *testing.T) {
		s, err := New(jobs, testConfig())
		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 4)
	})

	t.Run("empty schedule disables a job", func(t *testing.T) {
		cfg := testConfig()
		cfg.SendReturnReminders = ""
		s, err := New(jobs, cfg)
		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 3)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		cfg := testConfig()
		cfg.MarkOverdueRentals = "every quarter hour"
		_, err := New(jobs, cfg)
		assert.Error(t, err)
	})
}

func TestJobAdapters(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := commandsmock.NewMockJobCommands(ctrl)
	s, err := New(jobs, testConfig())
	require.NoError(t, err)
	ctx := context.Background()

	jobs.EXPECT().MarkOverdue(gomock.Any()).Return(3, nil)
	n, err := s.markOverdue(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	jobs.EXPECT().QueueReturnReminders(gomock.Any(), 48*time.Hour).Return(1, nil)
	n, err = s.sendReturnReminders(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	jobs.EXPECT().DispatchNotifications(gomock.Any(), 25).Return(0, errors.New("db down"))
	_, err = s.dispatchNotifications(ctx)
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, err := New(commandsmock.NewMockJobCommands(ctrl), testConfig())
	require.NoError(t, err)

	var deadline time.Time
	s.wrap("probe", func(ctx context.Context) (int64, error) {
		d, ok := ctx.Deadline()
		require.True(t, ok)
		deadline = d
		return 0, errors.New("ignored")
	})()

	assert.WithinDuration(t, time.Now().Add(jobTimeout), deadline, 5*time.Second)
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, err := New(commandsmock.NewMockJobCommands(ctrl), config.SchedulerConfig{})
	require.NoError(t, err)

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
