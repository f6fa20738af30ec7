package repositories

import "errors"

// Ошибки хранилищ. Сервисный слой пробрасывает их наверх как есть,
// обработчики (чат и HTTP) мапят на пользовательские сообщения.
var (
	// Ошибки реестра команд
	ErrRegistrationClosed = errors.New("registration is closed: all slots are taken")
	ErrTeamNameTaken      = errors.New("team name is already taken")
	ErrPlayerTaken        = errors.New("player is already registered in another team")
	ErrDuplicateInTeam    = errors.New("duplicate player within the submitted team")
	ErrTeamNameRequired   = errors.New("team name must not be empty")
	ErrInvalidTeamSize    = errors.New("a team must have exactly five players")

	// Ошибки трекера результатов (порядок проверок фиксирован:
	// наличие турнира → наличие матча → победитель из пары →
	// повторная отправка → авторизация капитана)
	ErrNoActiveTournament    = errors.New("no active tournament: bracket has not been generated")
	ErrMatchNotFound         = errors.New("match not found")
	ErrWinnerNotInMatch      = errors.New("winner must be one of the two teams in the match")
	ErrResultAlreadyReported = errors.New("result for this match has already been reported")
	ErrNotMatchCaptain       = errors.New("only a captain of a participating team can report the result")
)
