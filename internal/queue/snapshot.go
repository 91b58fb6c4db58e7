package queue

import (
	"context"
	"time"

	"hospital_queue/internal/models"
)

// Размер окна, в котором пациент видит своё актуальное место.
const myPositionWindow = 10

// ActiveQueueItem — элемент снимка активной очереди для обработчиков и рассылки.
// Поле position хранит позицию, назначенную при записи; live_position — текущее
// место в очереди, выведенное из порядка по created_at. После завершений и
// экстренных сдвигов они расходятся, это ожидаемо.
type ActiveQueueItem struct {
	EntryID        uint      `json:"entry_id"`
	PatientID      uint      `json:"patient_id"`
	PatientName    string    `json:"patient_name"`
	Status         string    `json:"status"`
	Position       int       `json:"position"`
	LivePosition   int       `json:"live_position"`
	EmergencyLevel string    `json:"emergency_level"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToItems превращает записи ListActive в снимок с живыми позициями.
func (s *Service) ToItems(entries []models.QueueEntry) []ActiveQueueItem {
	items := make([]ActiveQueueItem, 0, len(entries))
	for i, entry := range entries {
		items = append(items, ActiveQueueItem{
			EntryID:        entry.ID,
			PatientID:      entry.PatientID,
			PatientName:    entry.Patient.Name,
			Status:         entry.Status,
			Position:       entry.Position,
			LivePosition:   i + 1,
			EmergencyLevel: entry.EmergencyLevel,
			CreatedAt:      entry.CreatedAt,
		})
	}
	return items
}

// MyQueueStatus — положение конкретного пациента в очереди врача.
type MyQueueStatus struct {
	Entry                models.QueueEntry `json:"entry"`
	LivePosition         int               `json:"live_position"` // 0, если пациент за пределами окна
	EstimatedWaitMinutes int               `json:"estimated_wait_minutes"`
	InWindow             bool              `json:"in_window"`
}

// MyStatus ищет пациента в первой десятке активной очереди и считает
// ожидание от живого места, а не от сохранённой позиции.
func (s *Service) MyStatus(ctx context.Context, doctorID, patientID uint) (*MyQueueStatus, error) {
	entries, err := s.ListActive(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	status := &MyQueueStatus{}
	found := false
	for i, entry := range entries {
		if entry.PatientID != patientID {
			continue
		}
		status.Entry = entry
		found = true
		if i < myPositionWindow {
			status.LivePosition = i + 1
			status.EstimatedWaitMinutes = i * s.cfg.WaitPerPatientMin
			status.InWindow = true
		}
		break
	}
	if !found {
		return nil, ErrNotFound
	}
	return status, nil
}
