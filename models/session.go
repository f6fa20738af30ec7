package models

import "time"

// RegistrationStep — состояния анкеты регистрации команды.
type RegistrationStep string

const (
	StepAwaitingTeamName RegistrationStep = "awaiting_team_name"
	StepAwaitingPlayers  RegistrationStep = "awaiting_players"
)

// RegistrationSession — транзиентное состояние анкеты для одного чата.
// Живёт от /register до коммита команды или отмены, рестарт процесса
// её не переживает.
type RegistrationSession struct {
	ChatID    int64            `json:"chat_id"`
	Step      RegistrationStep `json:"step"`
	TeamName  string           `json:"team_name,omitempty"`
	StartedAt time.Time        `json:"started_at"`
}
