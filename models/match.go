package models

import "time"

// Match — пара команд первого раунда. ID последовательный, начиная с 1,
// в порядке жеребьёвки.
type Match struct {
	ID    int  `json:"id"`
	Round int  `json:"round"`
	TeamA Team `json:"team_a"`
	TeamB Team `json:"team_b"`
}

// MatchResult хранит победителя матча. Winner и Loser — имена команд,
// победитель нормализован в нижний регистр. Запись неизменяема.
type MatchResult struct {
	MatchID    int       `json:"match_id"`
	Winner     string    `json:"winner"`
	Loser      string    `json:"loser"`
	ReportedBy int64     `json:"reported_by"`
	ReportedAt time.Time `json:"reported_at"`
}
