//go:build unit

package match_test

import (
	"testing"

	"campus-barter/internal/domain/match"
	"campus-barter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, match.StatusPending, actual.Status())
		assert.Equal(t, match.KindDirect, actual.Kind())
		assert.Empty(t, actual.AcceptedBy())
		require.NotNil(t, actual.Score())
		assert.InDelta(t, 0.85, *actual.Score(), 1e-9)
	})

	t.Run("direct match requires exactly two participants", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		_, err := b.WithParticipants(b.Participants[0]).BuildDomain()
		assert.ErrorIs(t, err, match.ErrWrongParticipantSize)
	})

	t.Run("three-way match requires exactly three participants", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		b.Kind = match.KindThreeWay
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, match.ErrWrongParticipantSize)
	})

	t.Run("duplicate participant is rejected", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		dup := b.Participants[0]
		dup.ItemID = uuid.New()
		_, err := b.WithParticipants(b.Participants[0], dup).BuildDomain()
		assert.ErrorIs(t, err, match.ErrDuplicateParticipant)
	})

	t.Run("participant with missing fields is rejected", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		broken := b.Participants[1]
		broken.ItemName = ""
		_, err := b.WithParticipants(b.Participants[0], broken).BuildDomain()
		assert.ErrorIs(t, err, match.ErrInvalidParticipant)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		b.Kind = match.Kind("bilateral")
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, match.ErrInvalidKind)
	})
}

func TestMatchAccept(t *testing.T) {
	t.Run("completes exactly when every participant has accepted", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		m, err := b.BuildDomain()
		require.NoError(t, err)

		first := b.Participants[0].UserID
		second := b.Participants[1].UserID

		require.NoError(t, m.Accept(first))
		assert.Equal(t, match.StatusPending, m.Status())
		assert.Len(t, m.AcceptedBy(), 1)

		require.NoError(t, m.Accept(second))
		assert.Equal(t, match.StatusCompleted, m.Status())
		assert.Len(t, m.AcceptedBy(), 2)
	})

	t.Run("re-accepting is a no-op", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		m, err := b.BuildDomain()
		require.NoError(t, err)

		first := b.Participants[0].UserID
		require.NoError(t, m.Accept(first))
		require.NoError(t, m.Accept(first))

		assert.Len(t, m.AcceptedBy(), 1)
		assert.Equal(t, match.StatusPending, m.Status())
	})

	t.Run("accepting a resolved match is a no-op", func(t *testing.T) {
		b := builder.NewMatchBuilder().WithStatus(match.StatusRejected)
		m := b.BuildReconstructed()

		require.NoError(t, m.Accept(b.Participants[0].UserID))
		assert.Equal(t, match.StatusRejected, m.Status())
		assert.Empty(t, m.AcceptedBy())
	})

	t.Run("non-participant cannot accept", func(t *testing.T) {
		m, err := builder.NewMatchBuilder().BuildDomain()
		require.NoError(t, err)

		err = m.Accept(uuid.New())
		assert.ErrorIs(t, err, match.ErrNotParticipant)
	})

	t.Run("three-way match needs all three acceptances", func(t *testing.T) {
		third := builder.NewMatchBuilder().Participants[0]
		third.UserID = uuid.New()
		third.ItemID = uuid.New()
		third.UserName = "Meera Nair"
		third.ItemName = "Study Table"

		b := builder.NewMatchBuilder().WithThreeWay(third)
		m, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, m.Accept(b.Participants[0].UserID))
		require.NoError(t, m.Accept(b.Participants[1].UserID))
		assert.Equal(t, match.StatusPending, m.Status())

		require.NoError(t, m.Accept(b.Participants[2].UserID))
		assert.Equal(t, match.StatusCompleted, m.Status())
	})
}

func TestMatchReject(t *testing.T) {
	t.Run("participant rejects a pending match", func(t *testing.T) {
		b := builder.NewMatchBuilder()
		m, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, m.Reject(b.Participants[1].UserID))
		assert.Equal(t, match.StatusRejected, m.Status())
	})

	t.Run("non-participant cannot reject", func(t *testing.T) {
		m, err := builder.NewMatchBuilder().BuildDomain()
		require.NoError(t, err)

		err = m.Reject(uuid.New())
		assert.ErrorIs(t, err, match.ErrNotParticipant)
	})

	t.Run("resolved match cannot be rejected", func(t *testing.T) {
		b := builder.NewMatchBuilder().WithStatus(match.StatusCompleted)
		m := b.BuildReconstructed()

		err := m.Reject(b.Participants[0].UserID)
		assert.ErrorIs(t, err, match.ErrNotPending)
	})
}
