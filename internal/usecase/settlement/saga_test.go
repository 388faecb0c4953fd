package settlement

import (
	"context"
	"errors"
	"testing"

	"nexus_settlement/internal/domain/entities"
	mock_interfaces "nexus_settlement/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorder struct{ calls []string }

func (r *recorder) step(name string, applyErr, compErr error) Step {
	return Step{
		Name: name,
		Apply: func(context.Context) error {
			r.calls = append(r.calls, "apply "+name)
			return applyErr
		},
		Compensate: func(context.Context) error {
			r.calls = append(r.calls, "undo "+name)
			return compErr
		},
	}
}

func TestSaga_Run(t *testing.T) {
	t.Run("all steps applied", func(t *testing.T) {
		rec := &recorder{}
		s := New("test", nil)

		err := s.Run(context.Background(), rec.step("a", nil, nil), rec.step("b", nil, nil))

		require.NoError(t, err)
		assert.Equal(t, []string{"apply a", "apply b"}, rec.calls)
		assert.Equal(t, []string{"a", "b"}, s.Applied())
	})

	t.Run("failure compensates applied steps in reverse", func(t *testing.T) {
		rec := &recorder{}
		s := New("test", nil)
		boom := errors.New("boom")

		err := s.Run(context.Background(), rec.step("a", nil, nil), rec.step("b", nil, nil), rec.step("c", boom, nil))

		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, "c", stepErr.Step)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"apply a", "apply b", "apply c", "undo b", "undo a"}, rec.calls)
		assert.Empty(t, s.Applied())
	})

	t.Run("failure unwinds steps from earlier runs", func(t *testing.T) {
		rec := &recorder{}
		s := New("test", nil)
		require.NoError(t, s.Run(context.Background(), rec.step("a", nil, nil)))

		err := s.Run(context.Background(), rec.step("b", errors.New("x"), nil))

		require.Error(t, err)
		assert.Equal(t, []string{"apply a", "apply b", "undo a"}, rec.calls)
	})
}

func TestSaga_Compensate(t *testing.T) {
	t.Run("continues after a failed compensation", func(t *testing.T) {
		rec := &recorder{}
		s := New("test", nil)
		require.NoError(t, s.Run(context.Background(), rec.step("a", nil, nil), rec.step("b", nil, errors.New("stuck"))))

		err := s.Compensate(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "compensate b")
		assert.Equal(t, []string{"apply a", "apply b", "undo b", "undo a"}, rec.calls)
	})

	t.Run("skips steps without compensation", func(t *testing.T) {
		s := New("test", nil)
		applied := false
		require.NoError(t, s.Run(context.Background(), Step{Name: "persist", Apply: func(context.Context) error {
			applied = true
			return nil
		}}))

		assert.NoError(t, s.Compensate(context.Background()))
		assert.True(t, applied)
	})

	t.Run("runs with a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		s := New("test", nil)
		var seen error
		require.NoError(t, s.Run(ctx, Step{
			Name:  "a",
			Apply: func(context.Context) error { return nil },
			Compensate: func(c context.Context) error {
				seen = c.Err()
				return nil
			},
		}))
		cancel()

		require.NoError(t, s.Compensate(ctx))
		assert.NoError(t, seen)
	})
}

func TestWalletStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ledger := mock_interfaces.NewMockIWalletLedger(ctrl)

	adj := entities.WalletAdjustment{
		Account:          entities.InvestorAccount("inv-1"),
		Delta:            decimal.RequireFromString("-250.50"),
		FundingRequestID: "fr-1",
	}
	step := WalletStep(ledger, adj)
	assert.Equal(t, "debit investor:inv-1 250.50", step.Name)

	gomock.InOrder(
		ledger.EXPECT().Adjust(gomock.Any(), adj).Return(nil),
		ledger.EXPECT().Adjust(gomock.Any(), adj.Inverse()).Return(nil),
	)

	require.NoError(t, step.Apply(context.Background()))
	require.NoError(t, step.Compensate(context.Background()))
}
