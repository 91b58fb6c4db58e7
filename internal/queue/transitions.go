package queue

import "hospital_queue/internal/models"

// События, меняющие статус записи в очереди.
const (
	EventOrderLab         = "order_lab"         // врач назначает анализы
	EventLabCompleted     = "lab_completed"     // лаборатория завершила анализы
	EventComplete         = "complete"          // врач завершает приём
	EventEmergencyDelay   = "emergency_delay"   // экстренная политика сдвигает первого ожидающего
	EventEmergencyResolve = "emergency_resolve" // направление просмотрено, пациент возвращается в очередь
	EventCancel           = "cancel"            // пациент отменяет запись
)

// Для каждого события — статусы, из которых оно разрешено.
var transitionMap = map[string][]string{
	EventOrderLab:         {models.StatusWaiting},
	EventLabCompleted:     {models.StatusLabPending},
	EventComplete:         {models.StatusWaiting, models.StatusCompleted15Min},
	EventEmergencyDelay:   {models.StatusWaiting},
	EventEmergencyResolve: {models.StatusDelayedEmergency},
	EventCancel:           {models.StatusWaiting},
}

// Целевой статус события. Для EventCancel запись удаляется, целевого статуса нет.
var targetMap = map[string]string{
	EventOrderLab:         models.StatusLabPending,
	EventLabCompleted:     models.StatusWaiting,
	EventComplete:         models.StatusCompleted,
	EventEmergencyDelay:   models.StatusDelayedEmergency,
	EventEmergencyResolve: models.StatusWaiting,
}

// Роль, которой разрешено инициировать событие.
var actorMap = map[string]string{
	EventOrderLab:         models.RoleDoctor,
	EventLabCompleted:     models.RoleLab,
	EventComplete:         models.RoleDoctor,
	EventEmergencyDelay:   models.RoleDoctor,
	EventEmergencyResolve: models.RoleDoctor,
	EventCancel:           models.RolePatient,
}

// ValidTransition проверяет, допустимо ли событие из текущего статуса.
func ValidTransition(event, fromStatus string) bool {
	allowed, ok := transitionMap[event]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}

// TargetStatus возвращает статус, в который переводит событие.
func TargetStatus(event string) (string, bool) {
	to, ok := targetMap[event]
	return to, ok
}

// AllowedActor проверяет, что роль имеет право на событие.
func AllowedActor(event, role string) bool {
	return actorMap[event] == role
}
