package models

import "time"

// TeamQuota — фиксированное число команд в турнире. Размер сетки
// первого раунда (8 матчей) напрямую зависит от этого значения.
const TeamQuota = 16

// TeamSize — состав команды, ровно 5 игроков.
const TeamSize = 5

type Player struct {
	Handle string `json:"handle"`
	GameID string `json:"game_id"`
	Rating int    `json:"rating"`
}

type Team struct {
	Name      string    `json:"name"`
	Players   []Player  `json:"players"`
	AvgRating int       `json:"avg_rating"`
	CaptainID int64     `json:"captain_id"`
	CreatedAt time.Time `json:"created_at"`
}
