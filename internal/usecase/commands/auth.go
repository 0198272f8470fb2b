package commands

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/domain/user"
	"campus-barter/internal/infra"
	"campus-barter/internal/pkg/errs"
	"campus-barter/internal/pkg/jwt"
	"campus-barter/internal/pkg/password"
	"campus-barter/internal/usecase/queries"
	"campus-barter/internal/usecase/shared"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterRequest struct {
	Name       string
	Email      string
	Password   string
	Semester   int
	Department string
	Hostel     string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	newUser, err := user.NewUser(req.Name, req.Email, req.Semester, req.Department, req.Hostel)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Users().Create(ctx, newUser, hash)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &RegisterResult{UserID: createdID}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	userReadModel, hashedPassword, err := a.readStore.FindAuthByEmail(ctx, email)
	if err != nil {
		// Same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, ErrInvalidCredentials
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := a.jwtService.GenerateToken(userReadModel.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      userReadModel.ID,
		AccessToken: accessToken,
	}, nil
}
