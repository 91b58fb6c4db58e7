package queue

import "errors"

// Ошибки уровня сервиса очереди. Обработчики переводят их в HTTP-коды.
var (
	ErrNotFound               = errors.New("запись в очереди не найдена")
	ErrDuplicateActiveBooking = errors.New("у пациента уже есть активная запись")
	ErrInvalidTransition      = errors.New("недопустимый переход статуса")
	ErrNoWaitingPatient       = errors.New("нет ожидающих пациентов")
	ErrTimeout                = errors.New("превышено время ожидания хранилища")
)
