package match

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotParticipant       = errors.New("user is not part of this match")
	ErrInvalidKind          = errors.New("invalid match kind")
	ErrInvalidStatus        = errors.New("invalid match status")
	ErrWrongParticipantSize = errors.New("participant count does not fit match kind")
	ErrDuplicateParticipant = errors.New("participants must be distinct users")
	ErrInvalidParticipant   = errors.New("participant snapshot has missing fields")
	ErrNotPending           = errors.New("match is not pending")
)

type Kind string

const (
	KindDirect   Kind = "direct"
	KindThreeWay Kind = "three_way"
)

func NewKind(value string) (Kind, error) {
	switch k := Kind(value); k {
	case KindDirect, KindThreeWay:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

func NewStatus(value string) (Status, error) {
	switch s := Status(value); s {
	case StatusPending, StatusCompleted, StatusRejected:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Participant is an immutable snapshot taken at match creation. It does not
// follow later changes to the underlying intent or item.
type Participant struct {
	UserID       uuid.UUID
	UserName     string
	ItemID       uuid.UUID
	ItemName     string
	WantCategory string
}

func (p Participant) validate() error {
	if p.UserID == uuid.Nil || p.ItemID == uuid.Nil || p.UserName == "" || p.ItemName == "" || p.WantCategory == "" {
		return ErrInvalidParticipant
	}
	return nil
}

// Match owns the pending -> completed/rejected state machine. Participants
// are fixed at creation; acceptedBy only grows, and the completed transition
// happens exactly when every participant has accepted.
type Match struct {
	id           uuid.UUID
	createdBy    uuid.UUID
	kind         Kind
	participants []Participant
	status       Status
	acceptedBy   []uuid.UUID
	score        *float64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMatch(createdBy uuid.UUID, kind Kind, participants []Participant, score *float64) (*Match, error) {
	switch kind {
	case KindDirect:
		if len(participants) != 2 {
			return nil, ErrWrongParticipantSize
		}
	case KindThreeWay:
		if len(participants) != 3 {
			return nil, ErrWrongParticipantSize
		}
	default:
		return nil, ErrInvalidKind
	}

	seen := make(map[uuid.UUID]struct{}, len(participants))
	for _, p := range participants {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.UserID]; dup {
			return nil, ErrDuplicateParticipant
		}
		seen[p.UserID] = struct{}{}
	}

	return &Match{
		id:           uuid.New(),
		createdBy:    createdBy,
		kind:         kind,
		participants: append([]Participant(nil), participants...),
		status:       StatusPending,
		acceptedBy:   nil,
		score:        score,
	}, nil
}

func ReconstructMatch(
	id, createdBy uuid.UUID,
	kind Kind,
	participants []Participant,
	status Status,
	acceptedBy []uuid.UUID,
	score *float64,
	createdAt, updatedAt time.Time,
) *Match {
	return &Match{
		id:           id,
		createdBy:    createdBy,
		kind:         kind,
		participants: participants,
		status:       status,
		acceptedBy:   acceptedBy,
		score:        score,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Accept registers userID's acceptance. Re-accepting and accepting an
// already resolved match are no-ops; only unknown users are an error.
// When the final participant accepts, the match flips to completed.
func (m *Match) Accept(userID uuid.UUID) error {
	if !m.IsParticipant(userID) {
		return ErrNotParticipant
	}
	if m.status != StatusPending {
		return nil
	}
	if m.HasAccepted(userID) {
		return nil
	}

	m.acceptedBy = append(m.acceptedBy, userID)
	if len(m.acceptedBy) == len(m.participants) {
		m.status = StatusCompleted
	}
	return nil
}

// Reject moves a pending match to rejected. Only participants may reject.
func (m *Match) Reject(userID uuid.UUID) error {
	if !m.IsParticipant(userID) {
		return ErrNotParticipant
	}
	if m.status != StatusPending {
		return ErrNotPending
	}
	m.status = StatusRejected
	return nil
}

func (m *Match) IsParticipant(userID uuid.UUID) bool {
	for _, p := range m.participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

func (m *Match) HasAccepted(userID uuid.UUID) bool {
	for _, id := range m.acceptedBy {
		if id == userID {
			return true
		}
	}
	return false
}

func (m *Match) ParticipantUserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.participants))
	for i, p := range m.participants {
		ids[i] = p.UserID
	}
	return ids
}

func (m *Match) ParticipantItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.participants))
	for i, p := range m.participants {
		ids[i] = p.ItemID
	}
	return ids
}

func (m *Match) ID() uuid.UUID              { return m.id }
func (m *Match) CreatedBy() uuid.UUID       { return m.createdBy }
func (m *Match) Kind() Kind                 { return m.kind }
func (m *Match) Participants() []Participant {
	return append([]Participant(nil), m.participants...)
}
func (m *Match) Status() Status       { return m.status }
func (m *Match) AcceptedBy() []uuid.UUID {
	return append([]uuid.UUID(nil), m.acceptedBy...)
}
func (m *Match) Score() *float64      { return m.score }
func (m *Match) CreatedAt() time.Time { return m.createdAt }
func (m *Match) UpdatedAt() time.Time { return m.updatedAt }
