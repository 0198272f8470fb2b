//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"campus-barter/internal/domain/credit"
	"campus-barter/internal/domain/item"
	"campus-barter/internal/domain/match"
	"campus-barter/internal/usecase/commands"
	"campus-barter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingDirectMatch(t *testing.T) (*builder.MatchBuilder, *match.Match) {
	t.Helper()
	b := builder.NewMatchBuilder()
	m, err := b.BuildDomain()
	require.NoError(t, err)
	return b, m
}

func uowWithMatch(m *match.Match) *fakeUoW {
	uow := &fakeUoW{}
	uow.tx.matches.matches = map[uuid.UUID]*match.Match{m.ID(): m}
	return uow
}

func TestAcceptMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("first acceptance leaves the match pending", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uc := commands.NewMatchCommands(uow)

		result, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[0].UserID)
		require.NoError(t, err)

		assert.Equal(t, string(match.StatusPending), result.Status)
		assert.Equal(t, commands.MatchAcceptedMessage, result.Message)
		assert.Len(t, result.AcceptedBy, 1)
		assert.Empty(t, uow.tx.credits.entries)
		assert.Empty(t, uow.tx.items.statuses)
	})

	t.Run("final acceptance completes and pays out", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uc := commands.NewMatchCommands(uow)

		_, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[0].UserID)
		require.NoError(t, err)
		result, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[1].UserID)
		require.NoError(t, err)

		assert.Equal(t, string(match.StatusCompleted), result.Status)
		assert.Equal(t, commands.MatchCompletedMessage, result.Message)

		// one fixed reward per participant
		require.Len(t, uow.tx.credits.entries, 2)
		rewarded := map[uuid.UUID]bool{}
		for _, e := range uow.tx.credits.entries {
			assert.Equal(t, credit.SwapRewardAmount, e.Amount())
			assert.Equal(t, "Completed direct swap", e.Reason())
			require.NotNil(t, e.MatchID())
			assert.Equal(t, m.ID(), *e.MatchID())
			rewarded[e.UserID()] = true
		}
		assert.Len(t, rewarded, 2)

		// every offered item swapped, every intent on those items retired
		for _, p := range b.Participants {
			assert.Equal(t, item.StatusSwapped, uow.tx.items.statuses[p.ItemID])
		}
		assert.ElementsMatch(t, m.ParticipantItemIDs(), uow.tx.intents.deactivated)
	})

	t.Run("re-accepting after completion returns current state", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uc := commands.NewMatchCommands(uow)

		_, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[0].UserID)
		require.NoError(t, err)
		_, err = uc.AcceptMatch(ctx, m.ID(), b.Participants[1].UserID)
		require.NoError(t, err)

		result, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[0].UserID)
		require.NoError(t, err)

		assert.Equal(t, string(match.StatusCompleted), result.Status)
		// no double payout
		assert.Len(t, uow.tx.credits.entries, 2)
	})

	t.Run("accepting a rejected match returns current state", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uc := commands.NewMatchCommands(uow)

		require.NoError(t, uc.RejectMatch(ctx, m.ID(), b.Participants[1].UserID))

		result, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[0].UserID)
		require.NoError(t, err)

		assert.Equal(t, string(match.StatusRejected), result.Status)
		assert.Equal(t, commands.MatchResolvedMessage, result.Message)
		assert.Empty(t, result.AcceptedBy)
		assert.Empty(t, uow.tx.credits.entries)
	})

	t.Run("non-participant is rejected", func(t *testing.T) {
		_, m := pendingDirectMatch(t)
		uc := commands.NewMatchCommands(uowWithMatch(m))

		_, err := uc.AcceptMatch(ctx, m.ID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrNotParticipant)
	})

	t.Run("unknown match", func(t *testing.T) {
		uc := commands.NewMatchCommands(&fakeUoW{})

		_, err := uc.AcceptMatch(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrMatchNotFound)
	})

	t.Run("completion failure is reported as such", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uow.tx.credits.appendErr = errors.New("disk full")
		uc := commands.NewMatchCommands(uow)

		_, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[0].UserID)
		require.NoError(t, err)
		_, err = uc.AcceptMatch(ctx, m.ID(), b.Participants[1].UserID)
		assert.ErrorIs(t, err, commands.ErrCompletionTransaction)
	})

	t.Run("non-final acceptance failure is a plain database error", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uow.tx.matches.updateErr = errors.New("connection reset")
		uc := commands.NewMatchCommands(uow)

		_, err := uc.AcceptMatch(ctx, m.ID(), b.Participants[0].UserID)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		assert.NotErrorIs(t, err, commands.ErrCompletionTransaction)
	})
}

func TestRejectMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("participant rejects a pending match", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uc := commands.NewMatchCommands(uow)

		require.NoError(t, uc.RejectMatch(ctx, m.ID(), b.Participants[1].UserID))
		assert.Equal(t, match.StatusRejected, m.Status())
		assert.Equal(t, 1, uow.tx.matches.updated)
	})

	t.Run("non-participant cannot reject", func(t *testing.T) {
		_, m := pendingDirectMatch(t)
		uc := commands.NewMatchCommands(uowWithMatch(m))

		err := uc.RejectMatch(ctx, m.ID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrNotParticipant)
	})

	t.Run("resolved match cannot be rejected", func(t *testing.T) {
		b, m := pendingDirectMatch(t)
		uow := uowWithMatch(m)
		uc := commands.NewMatchCommands(uow)

		require.NoError(t, uc.RejectMatch(ctx, m.ID(), b.Participants[0].UserID))
		err := uc.RejectMatch(ctx, m.ID(), b.Participants[1].UserID)
		assert.ErrorIs(t, err, commands.ErrMatchNotPending)
	})

	t.Run("unknown match", func(t *testing.T) {
		uc := commands.NewMatchCommands(&fakeUoW{})

		err := uc.RejectMatch(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrMatchNotFound)
	})
}
