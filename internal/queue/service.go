package queue

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"hospital_queue/internal/models"
	"hospital_queue/internal/storage"
	"hospital_queue/internal/ws"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service — единственная точка изменения очереди. Мутации существующих
// записей (экстренный сдвиг, возврат из лаборатории, завершение) блокируют
// строки через SELECT ... FOR UPDATE; запись в очередь дополнительно
// сериализуется advisory-блокировками по врачу и по пациенту, потому что
// блокировка строк не защищает подсчёт по пустому или совпадающему набору.
type Service struct {
	db  *gorm.DB
	cfg Config
}

var Svc *Service

// Init создаёт глобальный сервис поверх storage.DB.
func Init() {
	Svc = NewService(storage.DB, LoadConfig())
}

func NewService(db *gorm.DB, cfg Config) *Service {
	return &Service{db: db, cfg: cfg}
}

func (s *Service) Config() Config {
	return s.cfg
}

func (s *Service) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.OpTimeout)
}

// translateErr переводит ошибки gorm и контекста в ошибки сервиса.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	default:
		return err
	}
}

type BookingInput struct {
	DoctorID             uint
	PatientID            uint
	EmergencyLevel       string
	IsNewPatient         bool
	PrescriptionImageURL string
}

type BookingResult struct {
	Entry                models.QueueEntry
	EstimatedWaitMinutes int
}

// Классы advisory-блокировок для pg_advisory_xact_lock(int, int).
const (
	lockClassPatientBooking = 1 // ключ — ID пациента
	lockClassDoctorQueue    = 2 // ключ — ID врача
)

// Book записывает пациента в очередь врача. Позиция назначается как
// количество активных записей врача плюс один. Подсчёт выполняется под
// advisory-блокировкой врача: две одновременные записи к одному врачу
// считают по очереди и не получают одинаковую позицию даже на пустой
// очереди, где FOR UPDATE блокировать нечего. Блокировка пациента так же
// сериализует проверку повторной записи.
func (s *Service) Book(ctx context.Context, in BookingInput) (*BookingResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var res BookingResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Порядок взятия блокировок фиксированный: сначала пациент, потом врач.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)",
			lockClassPatientBooking, int64(in.PatientID)).Error; err != nil {
			return err
		}
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)",
			lockClassDoctorQueue, int64(in.DoctorID)).Error; err != nil {
			return err
		}

		// Активная запись может быть только одна, у любого врача.
		var existing models.QueueEntry
		err := tx.Where("patient_id = ? AND status IN ?", in.PatientID, models.ActiveStatuses).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateActiveBooking
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var active int64
		if err := tx.Model(&models.QueueEntry{}).
			Where("doctor_id = ? AND status IN ?", in.DoctorID, models.ActiveStatuses).
			Count(&active).Error; err != nil {
			return err
		}

		position := int(active) + 1
		level := in.EmergencyLevel
		if level == "" {
			level = models.EmergencyLow
		}
		entry := models.QueueEntry{
			DoctorID:             in.DoctorID,
			PatientID:            in.PatientID,
			Status:               models.StatusWaiting,
			Position:             position,
			EmergencyLevel:       level,
			IsNewPatient:         in.IsNewPatient,
			PrescriptionImageURL: in.PrescriptionImageURL,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		res.Entry = entry
		res.EstimatedWaitMinutes = s.cfg.EstimatedWaitMinutes(position)
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	s.queueChanged(in.DoctorID)
	return &res, nil
}

// Get возвращает запись по идентификатору.
func (s *Service) Get(ctx context.Context, id uint) (*models.QueueEntry, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var entry models.QueueEntry
	if err := s.db.WithContext(ctx).Preload("Patient").First(&entry, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &entry, nil
}

// ListActive возвращает активные записи врача по возрастанию created_at
// (первый в списке — следующий на приём). Завершённые записи сюда не попадают.
func (s *Service) ListActive(ctx context.Context, doctorID uint) ([]models.QueueEntry, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var entries []models.QueueEntry
	if err := s.db.WithContext(ctx).Preload("Patient").
		Where("doctor_id = ? AND status IN ?", doctorID, models.ActiveStatuses).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, translateErr(err)
	}
	return entries, nil
}

// Cancel удаляет запись пациента, пока тот ещё ожидает.
// Отмена уже отсутствующей записи не считается ошибкой.
func (s *Service) Cancel(ctx context.Context, id, patientID uint) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var doctorID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.QueueEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if entry.PatientID != patientID {
			return ErrNotFound
		}
		if !ValidTransition(EventCancel, entry.Status) {
			return ErrInvalidTransition
		}
		doctorID = entry.DoctorID
		return tx.Delete(&entry).Error
	})
	if err != nil {
		return translateErr(err)
	}
	if doctorID != 0 {
		s.queueChanged(doctorID)
	}
	return nil
}

// Complete завершает приём: терминальный статус, запись уходит из активной очереди.
func (s *Service) Complete(ctx context.Context, id, doctorID uint) (*models.QueueEntry, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var result models.QueueEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.QueueEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, id).Error; err != nil {
			return err
		}
		if entry.DoctorID != doctorID {
			return ErrNotFound
		}
		if err := applyEvent(tx, &entry, EventComplete); err != nil {
			return err
		}
		result = entry
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	s.queueChanged(doctorID)
	return &result, nil
}

// OrderLab назначает анализы: статус lab_pending и лабораторная заявка
// создаются в одной транзакции, либо не создаются вовсе.
func (s *Service) OrderLab(ctx context.Context, entryID, doctorID uint, labName string, tests []string) (*models.LabRequest, error) {
	if labName == "" || len(tests) == 0 {
		return nil, ErrInvalidTransition
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var request models.LabRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.QueueEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, entryID).Error; err != nil {
			return err
		}
		if entry.DoctorID != doctorID {
			return ErrNotFound
		}
		if err := applyEvent(tx, &entry, EventOrderLab); err != nil {
			return err
		}
		request = models.LabRequest{
			QueueEntryID: entry.ID,
			PatientID:    entry.PatientID,
			DoctorID:     entry.DoctorID,
			LabName:      labName,
			TestsOrdered: strings.Join(tests, ","),
			Status:       models.LabStatusPending,
		}
		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, translateErr(err)
	}
	s.queueChanged(doctorID)
	return &request, nil
}

// UpdateLabStatus двигает лабораторную заявку. Завершение заявки атомарно
// возвращает пациента в очередь (lab_pending -> waiting), позиция при этом
// не пересчитывается.
func (s *Service) UpdateLabStatus(ctx context.Context, requestID uint, newStatus string) (*models.LabRequest, error) {
	if newStatus != models.LabStatusInProgress && newStatus != models.LabStatusCompleted {
		return nil, ErrInvalidTransition
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var request models.LabRequest
	var doctorID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, requestID).Error; err != nil {
			return err
		}
		if request.Status == models.LabStatusCompleted {
			return ErrInvalidTransition
		}
		if newStatus == models.LabStatusInProgress {
			if request.Status != models.LabStatusPending {
				return ErrInvalidTransition
			}
			request.Status = newStatus
			return tx.Model(&request).Update("status", newStatus).Error
		}

		now := time.Now()
		request.Status = models.LabStatusCompleted
		request.CompletedAt = &now
		if err := tx.Model(&request).Updates(map[string]interface{}{
			"status":       models.LabStatusCompleted,
			"completed_at": now,
		}).Error; err != nil {
			return err
		}

		var entry models.QueueEntry
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entry, request.QueueEntryID).Error; err != nil {
			return err
		}
		doctorID = entry.DoctorID
		return applyEvent(tx, &entry, EventLabCompleted)
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if doctorID != 0 {
		s.queueChanged(doctorID)
	}
	return &request, nil
}

// Prescribe создаёт рецепт и заявку в аптеку одной транзакцией.
// Статус записи в очереди не меняется: приём завершается отдельным действием.
func (s *Service) Prescribe(ctx context.Context, entryID, doctorID uint, medicine string) (*models.Prescription, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var prescription models.Prescription
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.QueueEntry
		if err := tx.First(&entry, entryID).Error; err != nil {
			return err
		}
		if entry.DoctorID != doctorID {
			return ErrNotFound
		}
		if entry.Status == models.StatusCompleted {
			return ErrInvalidTransition
		}
		prescription = models.Prescription{
			QueueEntryID: entry.ID,
			PatientID:    entry.PatientID,
			DoctorID:     entry.DoctorID,
			Medicine:     medicine,
			Status:       models.PharmacyStatusPending,
		}
		if err := tx.Create(&prescription).Error; err != nil {
			return err
		}
		pharmacyReq := models.PharmacyRequest{
			PrescriptionID: prescription.ID,
			PatientID:      entry.PatientID,
			Status:         models.PharmacyStatusPending,
		}
		return tx.Create(&pharmacyReq).Error
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return &prescription, nil
}

// TriggerEmergency — экстренная политика: самый старый строго ожидающий
// пациент врача сдвигается на фиксированный интервал вперёд и помечается
// delayed_emergency. Остальные записи не трогаются.
func (s *Service) TriggerEmergency(ctx context.Context, doctorID uint) (*models.QueueEntry, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var result models.QueueEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.QueueEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND status = ?", doctorID, models.StatusWaiting).
			Order("created_at ASC").
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoWaitingPatient
		}
		if err != nil {
			return err
		}
		if !ValidTransition(EventEmergencyDelay, entry.Status) {
			return ErrInvalidTransition
		}
		delayed := entry.CreatedAt.Add(time.Duration(s.cfg.EmergencyDelayMin) * time.Minute)
		if err := tx.Model(&entry).Updates(map[string]interface{}{
			"created_at": delayed,
			"status":     models.StatusDelayedEmergency,
		}).Error; err != nil {
			return err
		}
		entry.CreatedAt = delayed
		entry.Status = models.StatusDelayedEmergency
		result = entry
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	s.queueChanged(doctorID)
	return &result, nil
}

// ResolveEmergency возвращает задержанного пациента врача в статус waiting.
// Сдвинутый created_at намеренно не восстанавливается, как в исходной системе.
// Если задержанных нет, операция ничего не делает.
func (s *Service) ResolveEmergency(ctx context.Context, doctorID uint) (*models.QueueEntry, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var result *models.QueueEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry models.QueueEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND status = ?", doctorID, models.StatusDelayedEmergency).
			Order("created_at ASC").
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := applyEvent(tx, &entry, EventEmergencyResolve); err != nil {
			return err
		}
		result = &entry
		return nil
	})
	if err != nil {
		return nil, translateErr(err)
	}
	if result != nil {
		s.queueChanged(doctorID)
	}
	return result, nil
}

// applyEvent меняет статус записи, если переход разрешён таблицей переходов.
func applyEvent(tx *gorm.DB, entry *models.QueueEntry, event string) error {
	if !ValidTransition(event, entry.Status) {
		return ErrInvalidTransition
	}
	to, ok := TargetStatus(event)
	if !ok {
		return ErrInvalidTransition
	}
	if err := tx.Model(entry).Update("status", to).Error; err != nil {
		return err
	}
	entry.Status = to
	return nil
}

// queueChanged вызывается после каждой успешной мутации: сбрасывает кэш
// снимка и рассылает подписчикам врача полный новый снимок очереди.
// Подписчики всегда получают замену целиком, а не диф.
func (s *Service) queueChanged(doctorID uint) {
	InvalidateSnapshot(doctorID)

	entries, err := s.ListActive(context.Background(), doctorID)
	if err != nil {
		log.Println("Не удалось собрать снимок очереди для рассылки:", err)
		return
	}
	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
		EventType: ws.EventQueueSnapshot,
		DoctorID:  doctorID,
		Data:      s.ToItems(entries),
	})
}
