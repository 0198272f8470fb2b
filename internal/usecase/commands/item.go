package commands

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/domain/item"
	"campus-barter/internal/pkg/errs"
	"campus-barter/internal/usecase/shared"
)

type CreateItemRequest struct {
	Name       string
	Category   string
	Condition  string
	Department *string
	PhotoURL   *string
}

type CreateItemResult struct {
	ItemID uuid.UUID
}

type ItemCommands interface {
	CreateItem(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*CreateItemResult, error)
}

type itemCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemCommandsImpl{uow: uow}
}

func (uc *itemCommandsImpl) CreateItem(ctx context.Context, req CreateItemRequest, ownerID uuid.UUID) (*CreateItemResult, error) {
	newItem, err := item.NewItem(ownerID, req.Name, req.Category, req.Condition, req.Department, req.PhotoURL)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Items().Create(ctx, newItem)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateItemResult{ItemID: createdID}, nil
}
