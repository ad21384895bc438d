package recorder

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Match is one recorded session, from world start or reset until the next reset or shutdown
type Match struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Pawn      string     `json:"pawn" gorm:"size:32"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt"`
}

// TableName overrides the default table name
func (*Match) TableName() string {
	return "matches"
}

// CombatEvent is one gameplay notification
// Entity and Other hold the acting and affected entity per kind; Detail holds the full payload
type CombatEvent struct {
	ID         uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	MatchID    uuid.UUID      `json:"matchId" gorm:"type:uuid;index"`
	Frame      int64          `json:"frame"`
	Kind       string         `json:"kind" gorm:"size:48;index"`
	Entity     uint64         `json:"entity"`
	Other      uint64         `json:"other"`
	Value      float64        `json:"value"`
	Detail     datatypes.JSON `json:"detail"`
	RecordedAt time.Time      `json:"recordedAt"`
}

// TableName overrides the default table name
func (*CombatEvent) TableName() string {
	return "combat_events"
}
