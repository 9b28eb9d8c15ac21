package repositories

import "errors"

// Сигнальные ошибки слоя репозиториев.
// Сервисы мапят их в apperrors с нужным HTTP статусом.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already taken")
	ErrDuplicatePhone = errors.New("phone already taken")
	ErrDuplicateName  = errors.New("name already taken")
)
