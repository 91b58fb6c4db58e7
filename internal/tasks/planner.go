package tasks

import (
	"log"
	"time"

	"hospital_queue/internal/models"
	"hospital_queue/internal/storage"

	"github.com/robfig/cron/v3"
)

// PurgeCompletedEntries удаляет завершённые записи очереди старше 30 дней.
// Активную очередь они и так не засоряют, но исторические выборки со временем тяжелеют.
func PurgeCompletedEntries() {
	threshold := time.Now().Add(-30 * 24 * time.Hour)
	result := storage.DB.
		Where("status = ? AND updated_at < ?", models.StatusCompleted, threshold).
		Delete(&models.QueueEntry{})
	if result.Error != nil {
		log.Println("Ошибка при удалении завершённых записей очереди:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Удалено завершённых записей очереди: %d\n", result.RowsAffected)
	}
}

// PurgeHandledAssignments удаляет обработанные направления старше 7 дней.
func PurgeHandledAssignments() {
	threshold := time.Now().Add(-7 * 24 * time.Hour)
	result := storage.DB.
		Where("handled = ? AND updated_at < ?", true, threshold).
		Delete(&models.AssistantAssignment{})
	if result.Error != nil {
		log.Println("Ошибка при удалении обработанных направлений:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Удалено обработанных направлений: %d\n", result.RowsAffected)
	}
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Очистка завершённых записей каждый день в 03:00.
	_, err := c.AddFunc("0 0 3 * * *", PurgeCompletedEntries)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи PurgeCompletedEntries:", err)
	}

	// Очистка обработанных направлений каждый день в 03:30.
	_, err = c.AddFunc("0 30 3 * * *", PurgeHandledAssignments)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи PurgeHandledAssignments:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
