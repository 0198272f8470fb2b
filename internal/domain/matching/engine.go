package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindDirect   Kind = "direct"
	KindThreeWay Kind = "three_way"
)

// IntentView is the engine's read model of one active intent joined with its
// offered item. Sources must return views in creation order (created_at,
// then id) so that first-fit search stays deterministic.
type IntentView struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	OwnerName    string
	ItemID       uuid.UUID
	ItemName     string
	ItemCategory string
	WantCategory string
	Emergency    bool
	CreatedAt    time.Time
}

// Source is the engine's window onto the active-intent set. The engine holds
// no state of its own; every Run reads fresh.
type Source interface {
	ActiveIntentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]IntentView, error)
	ActiveIntents(ctx context.Context) ([]IntentView, error)
	TraitsByUser(ctx context.Context, userID uuid.UUID) (Traits, error)
}

type Participant struct {
	UserID       uuid.UUID
	UserName     string
	ItemID       uuid.UUID
	ItemName     string
	WantCategory string
}

// Result describes one discovered exchange cycle. Score is informational
// only and absent for three-way cycles.
type Result struct {
	Kind         Kind
	Participants []Participant
	Score        *float64
	Explanation  string
	Flow         string
}

type Engine struct {
	src Source
}

func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Run searches from the given user's perspective: direct pairs first, then
// three-way cycles. It never rescans on behalf of other users, so an intent
// that would complete someone else's cycle is found only when that someone
// triggers their own search.
func (e *Engine) Run(ctx context.Context, userID uuid.UUID) (*Result, error) {
	direct, err := e.findDirect(ctx, userID)
	if err != nil {
		return nil, err
	}
	if direct != nil {
		return direct, nil
	}

	return e.findCycle(ctx, userID)
}

// findDirect scans the requester's intents against every other active
// intent and returns the first pair where both directions clear the
// threshold. First fit under creation order, not best fit.
func (e *Engine) findDirect(ctx context.Context, userID uuid.UUID) (*Result, error) {
	mine, all, err := e.load(ctx, userID)
	if err != nil || len(mine) == 0 {
		return nil, err
	}

	for _, my := range mine {
		for _, other := range all {
			if other.OwnerID == userID {
				continue
			}

			if !satisfies(other.ItemCategory, my.WantCategory) {
				continue
			}
			if !satisfies(my.ItemCategory, other.WantCategory) {
				continue
			}

			score, err := e.pairScore(ctx, my, other)
			if err != nil {
				return nil, err
			}

			return &Result{
				Kind:         KindDirect,
				Participants: []Participant{toParticipant(my), toParticipant(other)},
				Score:        &score,
				Explanation: fmt.Sprintf(
					"Perfect 2-way match found! %s and %s have what each other wants.",
					my.OwnerName, other.OwnerName,
				),
				Flow: fmt.Sprintf("%s (%s) ↔ %s (%s)",
					my.OwnerName, my.ItemName, other.OwnerName, other.ItemName),
			}, nil
		}
	}

	return nil, nil
}

// findCycle looks for A→B→C→A: B offers what A wants, C offers what B
// wants, and A offers what C wants. No user appears twice.
func (e *Engine) findCycle(ctx context.Context, userID uuid.UUID) (*Result, error) {
	mine, all, err := e.load(ctx, userID)
	if err != nil || len(mine) == 0 {
		return nil, err
	}

	for _, a := range mine {
		for _, b := range all {
			if b.OwnerID == userID {
				continue
			}
			if !satisfies(b.ItemCategory, a.WantCategory) {
				continue
			}

			for _, c := range all {
				if c.OwnerID == userID || c.OwnerID == b.OwnerID {
					continue
				}
				if !satisfies(c.ItemCategory, b.WantCategory) {
					continue
				}
				if !satisfies(a.ItemCategory, c.WantCategory) {
					continue
				}

				return &Result{
					Kind:         KindThreeWay,
					Participants: []Participant{toParticipant(a), toParticipant(b), toParticipant(c)},
					Explanation: fmt.Sprintf(
						"Amazing 3-way circular swap detected! %s, %s, and %s form a perfect cycle.",
						a.OwnerName, b.OwnerName, c.OwnerName,
					),
					Flow: fmt.Sprintf("%s (%s) → %s (%s) → %s (%s) → %s",
						a.OwnerName, a.ItemName, b.OwnerName, b.ItemName, c.OwnerName, c.ItemName, a.OwnerName),
				}, nil
			}
		}
	}

	return nil, nil
}

func (e *Engine) load(ctx context.Context, userID uuid.UUID) (mine, all []IntentView, err error) {
	mine, err = e.src.ActiveIntentsByOwner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if len(mine) == 0 {
		return nil, nil, nil
	}

	all, err = e.src.ActiveIntents(ctx)
	if err != nil {
		return nil, nil, err
	}
	return mine, all, nil
}

func (e *Engine) pairScore(ctx context.Context, my, other IntentView) (float64, error) {
	myTraits, err := e.src.TraitsByUser(ctx, my.OwnerID)
	if err != nil {
		return 0, err
	}
	otherTraits, err := e.src.TraitsByUser(ctx, other.OwnerID)
	if err != nil {
		return 0, err
	}

	emergency := my.Emergency || other.Emergency
	return Score(myTraits, otherTraits, my, other, emergency), nil
}

func toParticipant(v IntentView) Participant {
	return Participant{
		UserID:       v.OwnerID,
		UserName:     v.OwnerName,
		ItemID:       v.ItemID,
		ItemName:     v.ItemName,
		WantCategory: v.WantCategory,
	}
}
