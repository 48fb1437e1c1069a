package hellhub

import (
	"encoding/json"
	"time"
)

// Pagination describes the paging block HellHub attaches to list responses.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
	PageCount int `json:"pageCount"`
}

// Response is the wrapper HellHub puts around every payload.
type Response[T any] struct {
	Data       T           `json:"data"`
	Error      *string     `json:"error"`
	Pagination *Pagination `json:"pagination"`
}

// War is the current galactic war record.
type War struct {
	ID        int       `json:"id"`
	Index     int       `json:"index"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Time      time.Time `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Position is a planet's galaxy-map coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Biome describes a planetary biome.
type Biome struct {
	ID          int    `json:"id,omitempty"`
	Index       int    `json:"index,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Hazard is an environmental hazard present on a planet.
type Hazard struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Planet is a single planet record. Status is kept as raw JSON: its shape
// varies by war state and the server forwards it untouched.
type Planet struct {
	Index    int             `json:"index"`
	Name     string          `json:"name"`
	Sector   string          `json:"sector"`
	Position Position        `json:"position"`
	Biome    *Biome          `json:"biome,omitempty"`
	Hazards  []Hazard        `json:"hazards,omitempty"`
	Status   json.RawMessage `json:"status,omitempty"`
}

// Statistics holds the global war statistics record.
type Statistics struct {
	ID                 int       `json:"id"`
	MissionsWon        int64     `json:"missionsWon"`
	MissionsLost       int64     `json:"missionsLost"`
	MissionTime        int64     `json:"missionTime"`
	BugKills           int64     `json:"bugKills"`
	AutomatonKills     int64     `json:"automatonKills"`
	IlluminateKills    int64     `json:"illuminateKills"`
	BulletsFired       int64     `json:"bulletsFired"`
	BulletsHit         int64     `json:"bulletsHit"`
	TimePlayed         int64     `json:"timePlayed"`
	Deaths             int64     `json:"deaths"`
	Revives            int64     `json:"revives"`
	FriendlyKills      int64     `json:"friendlyKills"`
	MissionSuccessRate int       `json:"missionSuccessRate"`
	Accuracy           int       `json:"accuracy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Faction is one of the war's combatants.
type Faction struct {
	ID    int    `json:"id,omitempty"`
	Index int    `json:"index,omitempty"`
	Name  string `json:"name"`
}

// Campaign is a campaign record. The HellHub API does not currently serve
// campaigns; the type is kept for the day it does.
type Campaign struct {
	ID        int       `json:"id"`
	Planet    int       `json:"planet"`
	Type      int       `json:"type"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
