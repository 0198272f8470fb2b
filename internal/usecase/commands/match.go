package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"campus-barter/internal/domain/credit"
	"campus-barter/internal/domain/item"
	"campus-barter/internal/domain/match"
	"campus-barter/internal/infra"
	"campus-barter/internal/pkg/errs"
	"campus-barter/internal/usecase/shared"
)

var (
	ErrMatchNotFound         = errs.New("match not found")
	ErrNotParticipant        = errs.New("user is not part of this match")
	ErrMatchNotPending       = errs.New("match is not pending")
	ErrCompletionTransaction = errs.New("completion transaction failed")
)

const (
	MatchCompletedMessage = "Match completed! Eco-credits awarded."
	MatchAcceptedMessage  = "Match accepted. Waiting for other participants."
	MatchResolvedMessage  = "Match already resolved."
)

type AcceptMatchResult struct {
	MatchID    uuid.UUID
	Status     string
	AcceptedBy []uuid.UUID
	Message    string
}

type MatchCommands interface {
	AcceptMatch(ctx context.Context, matchID, userID uuid.UUID) (*AcceptMatchResult, error)
	RejectMatch(ctx context.Context, matchID, userID uuid.UUID) error
}

type matchCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewMatchCommands(uow shared.UnitOfWork) MatchCommands {
	return &matchCommandsImpl{uow: uow}
}

// AcceptMatch records userID's acceptance under a row lock on the match, so
// two participants accepting at once serialize and only one of them runs
// the completion block. Repeat calls are safe: re-accepting and accepting a
// resolved match return the current state unchanged.
func (uc *matchCommandsImpl) AcceptMatch(ctx context.Context, matchID, userID uuid.UUID) (*AcceptMatchResult, error) {
	var (
		result     *AcceptMatchResult
		completing bool
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, txErr := tx.Matches().FindByIDForUpdate(ctx, matchID)
		if txErr != nil {
			return txErr
		}

		wasPending := m.Status() == match.StatusPending

		if txErr = m.Accept(userID); txErr != nil {
			return txErr
		}

		if wasPending && m.Status() == match.StatusCompleted {
			completing = true
			if txErr = uc.complete(ctx, tx, m); txErr != nil {
				return txErr
			}
		}

		if txErr = tx.Matches().UpdateAcceptance(ctx, m); txErr != nil {
			return txErr
		}

		result = acceptResult(m)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, match.ErrNotParticipant):
			return nil, errs.Mark(err, ErrNotParticipant)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrMatchNotFound)
		case completing:
			// Rolled back whole: the match is still pending and the accept
			// can be retried.
			return nil, errs.Mark(err, ErrCompletionTransaction)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return result, nil
}

func (uc *matchCommandsImpl) RejectMatch(ctx context.Context, matchID, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, txErr := tx.Matches().FindByIDForUpdate(ctx, matchID)
		if txErr != nil {
			return txErr
		}
		if txErr = m.Reject(userID); txErr != nil {
			return txErr
		}
		return tx.Matches().UpdateAcceptance(ctx, m)
	})
	if err != nil {
		switch {
		case errors.Is(err, match.ErrNotParticipant):
			return errs.Mark(err, ErrNotParticipant)
		case errors.Is(err, match.ErrNotPending):
			return errs.Mark(err, ErrMatchNotPending)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrMatchNotFound)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

// complete applies the side effects of the final acceptance: one fixed
// reward per participant, every offered item marked swapped, and every
// intent offering one of those items deactivated. Runs inside the same
// transaction as the status flip; any failure rolls all of it back.
func (uc *matchCommandsImpl) complete(ctx context.Context, tx shared.Tx, m *match.Match) error {
	matchID := m.ID()
	reason := fmt.Sprintf("Completed %s swap", m.Kind())

	for _, p := range m.Participants() {
		entry, err := credit.NewEntry(p.UserID, credit.SwapRewardAmount, reason, &matchID)
		if err != nil {
			return err
		}
		if err = tx.Credits().Append(ctx, entry); err != nil {
			return err
		}
		if err = tx.Items().SetStatus(ctx, p.ItemID, item.StatusSwapped); err != nil {
			return err
		}
	}

	return tx.Intents().DeactivateByItemIDs(ctx, m.ParticipantItemIDs())
}

func acceptResult(m *match.Match) *AcceptMatchResult {
	var message string
	switch m.Status() {
	case match.StatusCompleted:
		message = MatchCompletedMessage
	case match.StatusRejected:
		message = MatchResolvedMessage
	default:
		message = MatchAcceptedMessage
	}
	return &AcceptMatchResult{
		MatchID:    m.ID(),
		Status:     string(m.Status()),
		AcceptedBy: m.AcceptedBy(),
		Message:    message,
	}
}
