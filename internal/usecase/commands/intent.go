package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"campus-barter/internal/domain/intent"
	"campus-barter/internal/domain/match"
	"campus-barter/internal/domain/matching"
	"campus-barter/internal/infra"
	"campus-barter/internal/pkg/errs"
	"campus-barter/internal/usecase/queries"
	"campus-barter/internal/usecase/shared"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrItemNotFound            = errs.New("item not found")
	ErrItemNotOwned            = errs.New("item does not belong to user")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// NoMatchMessage is returned when an intent is registered but no exchange
// cycle exists yet.
const NoMatchMessage = "No matches found yet. We'll notify you when a match is available!"

type SubmitIntentRequest struct {
	ItemID          uuid.UUID
	WantCategory    string
	WantDescription *string
	Emergency       bool
}

// FoundMatch carries the freshly persisted match back to the caller in the
// same response as the intent that triggered it.
type FoundMatch struct {
	ID           uuid.UUID
	Kind         string
	Participants []queries.ParticipantView
	Score        *float64
	Explanation  string
	Flow         string
}

type SubmitIntentResult struct {
	Intent *queries.IntentView
	Match  *FoundMatch
}

type IntentCommands interface {
	SubmitIntent(ctx context.Context, req SubmitIntentRequest, userID uuid.UUID) (*SubmitIntentResult, error)
}

type intentCommandsImpl struct {
	uow           shared.UnitOfWork
	userReadStore queries.UserReadStore
	itemReadStore queries.ItemReadStore
	engine        *matching.Engine
}

func NewIntentCommands(
	uow shared.UnitOfWork,
	userReadStore queries.UserReadStore,
	itemReadStore queries.ItemReadStore,
	engine *matching.Engine,
) IntentCommands {
	return &intentCommandsImpl{
		uow:           uow,
		userReadStore: userReadStore,
		itemReadStore: itemReadStore,
		engine:        engine,
	}
}

// SubmitIntent registers a new barter intent and immediately searches for an
// exchange cycle from the caller's perspective. The intent is committed
// before the search runs, so a search failure never loses the intent.
func (uc *intentCommandsImpl) SubmitIntent(ctx context.Context, req SubmitIntentRequest, userID uuid.UUID) (*SubmitIntentResult, error) {
	if _, err := uc.userReadStore.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	itemView, err := uc.itemReadStore.FindByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if itemView.OwnerID != userID {
		return nil, ErrItemNotOwned
	}

	newIntent, err := intent.NewIntent(userID, req.ItemID, req.WantCategory, req.WantDescription, req.Emergency)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Intents().Create(ctx, newIntent)
		return txErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := &SubmitIntentResult{Intent: intentToView(newIntent)}

	found, err := uc.engine.Run(ctx, userID)
	if err != nil {
		// The intent is already committed; report it without a match rather
		// than failing the whole request.
		slog.Error("matching search failed", "user_id", userID, "error", err.Error())
		return result, nil
	}
	if found == nil {
		return result, nil
	}

	persisted, err := uc.persistMatch(ctx, userID, found)
	if err != nil {
		return nil, err
	}
	result.Match = persisted
	return result, nil
}

func (uc *intentCommandsImpl) persistMatch(ctx context.Context, userID uuid.UUID, found *matching.Result) (*FoundMatch, error) {
	participants := make([]match.Participant, len(found.Participants))
	views := make([]queries.ParticipantView, len(found.Participants))
	for i, p := range found.Participants {
		participants[i] = match.Participant{
			UserID:       p.UserID,
			UserName:     p.UserName,
			ItemID:       p.ItemID,
			ItemName:     p.ItemName,
			WantCategory: p.WantCategory,
		}
		views[i] = queries.ParticipantView{
			UserID:       p.UserID,
			UserName:     p.UserName,
			ItemID:       p.ItemID,
			ItemName:     p.ItemName,
			WantCategory: p.WantCategory,
		}
	}

	newMatch, err := match.NewMatch(userID, match.Kind(found.Kind), participants, found.Score)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var matchID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Matches().Create(ctx, newMatch)
		if txErr != nil {
			return txErr
		}
		matchID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &FoundMatch{
		ID:           matchID,
		Kind:         string(found.Kind),
		Participants: views,
		Score:        found.Score,
		Explanation:  found.Explanation,
		Flow:         found.Flow,
	}, nil
}

func intentToView(i *intent.Intent) *queries.IntentView {
	return &queries.IntentView{
		ID:              i.ID(),
		OwnerID:         i.OwnerID(),
		ItemID:          i.ItemID(),
		WantCategory:    i.WantCategory(),
		WantDescription: i.WantDescription(),
		Emergency:       i.Emergency(),
		Active:          i.Active(),
		CreatedAt:       i.CreatedAt(),
	}
}
