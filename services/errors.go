package services

import "errors"

// Общие ошибки сервисного слоя; handlers маппят их в HTTP-статусы.
var (
	// Ресурс не найден
	ErrNotFound       = errors.New("requested resource not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")

	// Аутентификация и авторизация
	ErrAuthInvalidCredentials = errors.New("invalid login credentials")
	ErrUnauthorized           = errors.New("unauthorized access")

	// Валидация
	ErrPercentileOutOfRange = errors.New("percentile value should be between 0 and 100")
	ErrGameWinnerInvalid    = errors.New("winner must be one of the two participating teams")
	ErrGameTypeInvalid      = errors.New("unknown game type")
	ErrLogoContentType      = errors.New("logo must be a png or jpeg image")

	// Статистика не определена: нет ни одной сыгранной игры
	ErrInsufficientData = errors.New("not enough game data to compute this statistic")

	// Конфликты
	ErrPlayerGameConflict = errors.New("player already has a score recorded for this game")
	ErrTeamNameConflict   = errors.New("team with this name already exists")
)
