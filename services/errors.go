package services

import (
	"errors"
	"fmt"
)

// Ошибки сервисного слоя. Ошибки хранилищ (repositories) пробрасываются
// без обёртки, здесь живут ошибки самой анкеты и внешних проверок.
var (
	// Анкета регистрации
	ErrNoActiveSession = errors.New("no active registration session")
	ErrTeamNameEmpty   = errors.New("team name must not be empty")
	ErrPlayerLineCount = errors.New("exactly five player lines are required")
	ErrNotSubscribed   = errors.New("user is not subscribed to the tournament channel")

	// Дашборд
	ErrInvalidCredentials = errors.New("invalid organizer password")
)

// Причины отказа по конкретной строке заявки.
const (
	ReasonBadLineFormat = "expected format: @user GameID Rating"
	ReasonNonNumeric    = "GameID and Rating must be numeric"
)

// PlayerLineError указывает на конкретную строку заявки (нумерация с 1).
type PlayerLineError struct {
	Line   int
	Reason string
}

func (e *PlayerLineError) Error() string {
	return fmt.Sprintf("player line %d: %s", e.Line, e.Reason)
}
