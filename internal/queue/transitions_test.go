package queue

import (
	"testing"

	"hospital_queue/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	// Разрешённые переходы
	assert.True(t, ValidTransition(EventOrderLab, models.StatusWaiting))
	assert.True(t, ValidTransition(EventLabCompleted, models.StatusLabPending))
	assert.True(t, ValidTransition(EventComplete, models.StatusWaiting))
	assert.True(t, ValidTransition(EventComplete, models.StatusCompleted15Min))
	assert.True(t, ValidTransition(EventEmergencyDelay, models.StatusWaiting))
	assert.True(t, ValidTransition(EventEmergencyResolve, models.StatusDelayedEmergency))
	assert.True(t, ValidTransition(EventCancel, models.StatusWaiting))

	// Запрещённые переходы
	assert.False(t, ValidTransition(EventCancel, models.StatusLabPending), "отмена после отправки в лабораторию запрещена")
	assert.False(t, ValidTransition(EventCancel, models.StatusDelayedEmergency))
	assert.False(t, ValidTransition(EventOrderLab, models.StatusLabPending))
	assert.False(t, ValidTransition(EventOrderLab, models.StatusCompleted))
	assert.False(t, ValidTransition(EventComplete, models.StatusLabPending))
	assert.False(t, ValidTransition(EventComplete, models.StatusCompleted))
	assert.False(t, ValidTransition(EventEmergencyDelay, models.StatusDelayedEmergency))
	assert.False(t, ValidTransition(EventEmergencyDelay, models.StatusLabPending))
	assert.False(t, ValidTransition(EventEmergencyResolve, models.StatusWaiting))

	// Неизвестное событие
	assert.False(t, ValidTransition("unknown_event", models.StatusWaiting))
}

func TestTargetStatus(t *testing.T) {
	to, ok := TargetStatus(EventOrderLab)
	assert.True(t, ok)
	assert.Equal(t, models.StatusLabPending, to)

	to, ok = TargetStatus(EventLabCompleted)
	assert.True(t, ok)
	assert.Equal(t, models.StatusWaiting, to)

	to, ok = TargetStatus(EventComplete)
	assert.True(t, ok)
	assert.Equal(t, models.StatusCompleted, to)

	// У отмены нет целевого статуса: запись удаляется
	_, ok = TargetStatus(EventCancel)
	assert.False(t, ok)
}

func TestAllowedActor(t *testing.T) {
	assert.True(t, AllowedActor(EventOrderLab, models.RoleDoctor))
	assert.True(t, AllowedActor(EventLabCompleted, models.RoleLab))
	assert.True(t, AllowedActor(EventCancel, models.RolePatient))

	assert.False(t, AllowedActor(EventOrderLab, models.RolePatient))
	assert.False(t, AllowedActor(EventLabCompleted, models.RoleDoctor))
	assert.False(t, AllowedActor(EventCancel, models.RoleDoctor))
	assert.False(t, AllowedActor("unknown_event", models.RoleDoctor))
}
