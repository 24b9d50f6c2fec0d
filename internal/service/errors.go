package service

import "errors"

var (
	// ErrAliasConflict возвращается, когда запрошенный алиас уже занят.
	// Текст ошибки отдаётся клиенту без изменений
	ErrAliasConflict = errors.New("This Alias Already Exist")

	// ErrGenerationExhausted возвращается когда не удалось сгенерировать уникальный код
	// после максимального количества попыток
	ErrGenerationExhausted = errors.New("max retries exceeded for code generation")
)
