package commands

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/domain/lostfound"
	"campus-barter/internal/pkg/errs"
	"campus-barter/internal/usecase/shared"
)

type CreatePostingRequest struct {
	ItemName    string
	Category    string
	Description *string
	Kind        string
	PhotoURL    *string
}

type CreatePostingResult struct {
	PostingID uuid.UUID
}

type LostFoundCommands interface {
	CreatePosting(ctx context.Context, req CreatePostingRequest, userID uuid.UUID) (*CreatePostingResult, error)
}

type lostFoundCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewLostFoundCommands(uow shared.UnitOfWork) LostFoundCommands {
	return &lostFoundCommandsImpl{uow: uow}
}

func (uc *lostFoundCommandsImpl) CreatePosting(ctx context.Context, req CreatePostingRequest, userID uuid.UUID) (*CreatePostingResult, error) {
	kind, err := lostfound.NewKind(req.Kind)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	posting, err := lostfound.NewPosting(userID, req.ItemName, req.Category, req.Description, kind, req.PhotoURL)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.LostFound().Create(ctx, posting)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreatePostingResult{PostingID: createdID}, nil
}
