package converter

import (
	"encoding/json"

	"github.com/google/uuid"

	"campus-barter/internal/domain/match"
)

// ParticipantRecord is the JSONB shape of one match participant.
type ParticipantRecord struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	ItemID   uuid.UUID `json:"item_id"`
	ItemName string    `json:"item_name"`
	Wants    string    `json:"wants"`
}

func MarshalParticipants(participants []match.Participant) ([]byte, error) {
	records := make([]ParticipantRecord, len(participants))
	for i, p := range participants {
		records[i] = ParticipantRecord{
			UserID:   p.UserID,
			UserName: p.UserName,
			ItemID:   p.ItemID,
			ItemName: p.ItemName,
			Wants:    p.WantCategory,
		}
	}
	return json.Marshal(records)
}

func UnmarshalParticipants(data []byte) ([]match.Participant, error) {
	var records []ParticipantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	participants := make([]match.Participant, len(records))
	for i, rec := range records {
		participants[i] = match.Participant{
			UserID:       rec.UserID,
			UserName:     rec.UserName,
			ItemID:       rec.ItemID,
			ItemName:     rec.ItemName,
			WantCategory: rec.Wants,
		}
	}
	return participants, nil
}

func MarshalAcceptedBy(ids []uuid.UUID) ([]byte, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return json.Marshal(ids)
}

func UnmarshalAcceptedBy(data []byte) ([]uuid.UUID, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
