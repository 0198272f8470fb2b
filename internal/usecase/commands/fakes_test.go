//go:build unit

package commands_test

import (
	"context"
	"errors"

	"campus-barter/internal/domain/credit"
	"campus-barter/internal/domain/intent"
	"campus-barter/internal/domain/item"
	"campus-barter/internal/domain/lostfound"
	"campus-barter/internal/domain/match"
	"campus-barter/internal/domain/user"
	"campus-barter/internal/infra"
	"campus-barter/internal/usecase/queries"
	"campus-barter/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory transaction state shared by all fake repositories. Commands under
// test read and write through the shared ports exactly as they would against
// postgres, minus rollback: tests assert on the error paths instead.

type fakeTx struct {
	users     fakeUserRepo
	items     fakeItemRepo
	intents   fakeIntentRepo
	matches   fakeMatchRepo
	credits   fakeCreditRepo
	lostFound fakeLostFoundRepo
}

func (t *fakeTx) Users() shared.UserRepository          { return &t.users }
func (t *fakeTx) Items() shared.ItemRepository          { return &t.items }
func (t *fakeTx) Intents() shared.IntentRepository      { return &t.intents }
func (t *fakeTx) Matches() shared.MatchRepository       { return &t.matches }
func (t *fakeTx) Credits() shared.CreditRepository      { return &t.credits }
func (t *fakeTx) LostFound() shared.LostFoundRepository { return &t.lostFound }

type fakeUoW struct {
	tx        fakeTx
	withinErr error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.withinErr != nil {
		return u.withinErr
	}
	return fn(ctx, &u.tx)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

type fakeUserRepo struct {
	created   []*user.User
	createErr error
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User, _ string) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, u)
	return u.ID(), nil
}

type fakeItemRepo struct {
	created      []*item.Item
	statuses     map[uuid.UUID]item.Status
	setStatusErr error
}

func (r *fakeItemRepo) Create(_ context.Context, i *item.Item) (uuid.UUID, error) {
	r.created = append(r.created, i)
	return i.ID(), nil
}

func (r *fakeItemRepo) SetStatus(_ context.Context, itemID uuid.UUID, status item.Status) error {
	if r.setStatusErr != nil {
		return r.setStatusErr
	}
	if r.statuses == nil {
		r.statuses = map[uuid.UUID]item.Status{}
	}
	r.statuses[itemID] = status
	return nil
}

type fakeIntentRepo struct {
	created     []*intent.Intent
	deactivated []uuid.UUID
	createErr   error
}

func (r *fakeIntentRepo) Create(_ context.Context, i *intent.Intent) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, i)
	return i.ID(), nil
}

func (r *fakeIntentRepo) DeactivateByItemIDs(_ context.Context, itemIDs []uuid.UUID) error {
	r.deactivated = append(r.deactivated, itemIDs...)
	return nil
}

type fakeMatchRepo struct {
	matches   map[uuid.UUID]*match.Match
	created   []*match.Match
	createErr error
	updateErr error
	updated   int
}

func (r *fakeMatchRepo) Create(_ context.Context, m *match.Match) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, m)
	return m.ID(), nil
}

func (r *fakeMatchRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*match.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, notFoundErr("match not found")
	}
	return m, nil
}

func (r *fakeMatchRepo) UpdateAcceptance(_ context.Context, _ *match.Match) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated++
	return nil
}

type fakeCreditRepo struct {
	entries   []*credit.Entry
	appendErr error
}

func (r *fakeCreditRepo) Append(_ context.Context, e *credit.Entry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, e)
	return nil
}

type fakeLostFoundRepo struct {
	created []*lostfound.Posting
}

func (r *fakeLostFoundRepo) Create(_ context.Context, p *lostfound.Posting) (uuid.UUID, error) {
	r.created = append(r.created, p)
	return p.ID(), nil
}

// Read-side fakes for the submit-intent preconditions.

type fakeUserReadStore struct {
	users        map[uuid.UUID]*queries.UserView
	authByEmail  map[string]*queries.AuthUserView
	passwordHash string
}

func (s *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	v, ok := s.users[id]
	if !ok {
		return nil, notFoundErr("user not found")
	}
	return v, nil
}

func (s *fakeUserReadStore) FindAuthByID(_ context.Context, _ uuid.UUID) (*queries.AuthUserView, error) {
	return nil, notFoundErr("user not found")
}

func (s *fakeUserReadStore) FindAuthByEmail(_ context.Context, email string) (*queries.AuthUserView, string, error) {
	v, ok := s.authByEmail[email]
	if !ok {
		return nil, "", notFoundErr("user not found")
	}
	return v, s.passwordHash, nil
}

func (s *fakeUserReadStore) FindStats(_ context.Context, _ uuid.UUID) (*queries.UserStatsView, error) {
	return nil, notFoundErr("user not found")
}

type fakeItemReadStore struct {
	items map[uuid.UUID]*queries.ItemView
}

func (s *fakeItemReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	v, ok := s.items[id]
	if !ok {
		return nil, notFoundErr("item not found")
	}
	return v, nil
}

func (s *fakeItemReadStore) FindAll(_ context.Context, _ queries.ItemFilter) ([]*queries.ItemView, error) {
	return nil, nil
}

func (s *fakeItemReadStore) FindByOwnerID(_ context.Context, _ uuid.UUID) ([]*queries.ItemView, error) {
	return nil, nil
}
