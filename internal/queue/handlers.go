package queue

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hospital_queue/internal/models"
	"hospital_queue/internal/response"
	"hospital_queue/internal/storage"

	"github.com/gin-gonic/gin"
)

type BookRequest struct {
	DoctorID             uint   `json:"doctor_id" binding:"required"`
	EmergencyLevel       string `json:"emergency_level" binding:"omitempty,oneof=low medium high"`
	IsNewPatient         bool   `json:"is_new_patient"`
	PrescriptionImageURL string `json:"prescription_image_url"`
}

type BookResponse struct {
	EntryID              uint   `json:"entry_id"`
	DoctorID             uint   `json:"doctor_id"`
	Position             int    `json:"position"`
	EstimatedWaitMinutes int    `json:"estimated_wait_minutes"`
	Status               string `json:"status"`
	CreatedAt            string `json:"created_at"`
}

type OrderLabRequest struct {
	LabName string   `json:"lab_name" binding:"required"`
	Tests   []string `json:"tests" binding:"required,min=1"`
}

type PrescribeRequest struct {
	Medicine string `json:"medicine" binding:"required"`
}

// RespondError переводит ошибки сервиса в ответ API.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDuplicateActiveBooking):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "DUPLICATE_ACTIVE_BOOKING",
			Message: "У пациента уже есть активная запись в очереди",
		})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "INVALID_TRANSITION",
			Message: "Действие недопустимо в текущем статусе записи",
		})
	case errors.Is(err, ErrNoWaitingPatient):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NO_WAITING_PATIENT",
			Message: "В очереди нет ожидающих пациентов",
		})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "ENTRY_NOT_FOUND",
			Message: "Запись в очереди не найдена",
		})
	case errors.Is(err, ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, response.ErrorResponse{
			Code:    "STORE_TIMEOUT",
			Message: "Хранилище не ответило вовремя",
		})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при работе с базой данных",
			Details: err.Error(),
		})
	}
}

// RequireActor пропускает только роль, которой таблица переходов разрешает
// событие. Маршруты переходов защищаются этим middleware, а не перечислением
// ролей вручную, так что таблица остаётся единственным источником правил.
func RequireActor(event string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !AllowedActor(event, c.GetString("role")) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{
				Code:    "FORBIDDEN_ROLE",
				Message: "Недостаточно прав для этого действия",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentDoctorID находит профиль врача по авторизованному пользователю.
func currentDoctorID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("userID")
	var doctor models.Doctor
	if err := storage.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "DOCTOR_PROFILE_NOT_FOUND",
			Message: "Профиль врача для пользователя не найден",
		})
		return 0, false
	}
	return doctor.ID, true
}

func entryIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_ENTRY_ID",
			Message: "Неверный идентификатор записи",
		})
		return 0, false
	}
	return uint(id), true
}

func doctorIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_DOCTOR_ID",
			Message: "Неверный идентификатор врача",
		})
		return 0, false
	}
	return uint(id), true
}

// BookHandler записывает пациента в очередь врача
// @Summary		Запись в очередь
// @Description	Создаёт запись пациента в очереди врача и возвращает позицию и оценку ожидания
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			booking	body		BookRequest	true	"Данные записи"
// @Security		BearerAuth
// @Success		201	{object}	BookResponse	"Запись создана"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR) или повторная запись (DUPLICATE_ACTIVE_BOOKING)"
// @Failure		504	{object}	response.ErrorResponse	"Хранилище недоступно (STORE_TIMEOUT)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/queue [post]
func BookHandler(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	result, err := Svc.Book(c.Request.Context(), BookingInput{
		DoctorID:             req.DoctorID,
		PatientID:            c.GetUint("userID"),
		EmergencyLevel:       req.EmergencyLevel,
		IsNewPatient:         req.IsNewPatient,
		PrescriptionImageURL: req.PrescriptionImageURL,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, BookResponse{
		EntryID:              result.Entry.ID,
		DoctorID:             result.Entry.DoctorID,
		Position:             result.Entry.Position,
		EstimatedWaitMinutes: result.EstimatedWaitMinutes,
		Status:               result.Entry.Status,
		CreatedAt:            result.Entry.CreatedAt.Format(time.RFC3339),
	})
}

// GetEntryHandler возвращает запись по идентификатору
// @Summary		Запись очереди по ID
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"ID записи"
// @Security		BearerAuth
// @Success		200	{object}	models.QueueEntry
// @Failure		404	{object}	response.ErrorResponse	"Запись не найдена (ENTRY_NOT_FOUND)"
// @Router			/api/queue/{id} [get]
func GetEntryHandler(c *gin.Context) {
	id, ok := entryIDParam(c)
	if !ok {
		return
	}
	entry, err := Svc.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CancelHandler удаляет запись пациента, пока он ожидает
// @Summary		Отмена записи
// @Description	Пациент может отменить только запись в статусе waiting
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"ID записи"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Запись отменена"
// @Failure		409	{object}	response.ErrorResponse	"Отмена невозможна (INVALID_TRANSITION)"
// @Router			/api/queue/{id} [delete]
func CancelHandler(c *gin.Context) {
	id, ok := entryIDParam(c)
	if !ok {
		return
	}
	if err := Svc.Cancel(c.Request.Context(), id, c.GetUint("userID")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Запись в очереди отменена"})
}

// DoctorQueueHandler возвращает активную очередь врача
// @Summary		Активная очередь врача
// @Description	Снимок активной очереди, упорядоченной по created_at; короткое время кэшируется
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"ID врача"
// @Security		BearerAuth
// @Success		200	{array}		ActiveQueueItem
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/doctors/{id}/queue [get]
func DoctorQueueHandler(c *gin.Context) {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return
	}
	items, err := Svc.CachedActiveQueue(c.Request.Context(), doctorID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// MyStatusHandler возвращает положение пациента в очереди врача
// @Summary		Моё место в очереди
// @Description	Живое место в первой десятке активной очереди и оценка ожидания
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"ID врача"
// @Security		BearerAuth
// @Success		200	{object}	MyQueueStatus
// @Failure		404	{object}	response.ErrorResponse	"Пациент не найден в очереди (ENTRY_NOT_FOUND)"
// @Router			/api/doctors/{id}/queue/me [get]
func MyStatusHandler(c *gin.Context) {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return
	}
	status, err := Svc.MyStatus(c.Request.Context(), doctorID, c.GetUint("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// OrderLabHandler назначает пациенту анализы
// @Summary		Назначение анализов
// @Description	Переводит запись в lab_pending и создаёт лабораторную заявку одной транзакцией
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		string			true	"ID записи"
// @Param			request	body		OrderLabRequest	true	"Лаборатория и список анализов"
// @Security		BearerAuth
// @Success		201	{object}	models.LabRequest
// @Failure		409	{object}	response.ErrorResponse	"Недопустимый переход (INVALID_TRANSITION)"
// @Router			/api/queue/{id}/lab [post]
func OrderLabHandler(c *gin.Context) {
	id, ok := entryIDParam(c)
	if !ok {
		return
	}
	doctorID, ok := currentDoctorID(c)
	if !ok {
		return
	}
	var req OrderLabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Нужно выбрать лабораторию и хотя бы один анализ",
			Details: err.Error(),
		})
		return
	}
	request, err := Svc.OrderLab(c.Request.Context(), id, doctorID, req.LabName, req.Tests)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// CompleteHandler завершает приём пациента
// @Summary		Завершение приёма
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"ID записи"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Приём завершён"
// @Failure		409	{object}	response.ErrorResponse	"Недопустимый переход (INVALID_TRANSITION)"
// @Router			/api/queue/{id}/complete [post]
func CompleteHandler(c *gin.Context) {
	id, ok := entryIDParam(c)
	if !ok {
		return
	}
	doctorID, ok := currentDoctorID(c)
	if !ok {
		return
	}
	if _, err := Svc.Complete(c.Request.Context(), id, doctorID); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Приём пациента завершён"})
}

// PrescribeHandler создаёт рецепт и заявку в аптеку
// @Summary		Назначение лечения
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id		path		string				true	"ID записи"
// @Param			request	body		PrescribeRequest	true	"Назначенные препараты"
// @Security		BearerAuth
// @Success		201	{object}	models.Prescription
// @Failure		409	{object}	response.ErrorResponse	"Рецепт по завершённой записи (INVALID_TRANSITION)"
// @Router			/api/queue/{id}/prescribe [post]
func PrescribeHandler(c *gin.Context) {
	id, ok := entryIDParam(c)
	if !ok {
		return
	}
	doctorID, ok := currentDoctorID(c)
	if !ok {
		return
	}
	var req PrescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}
	prescription, err := Svc.Prescribe(c.Request.Context(), id, doctorID, req.Medicine)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prescription)
}

// EmergencyHandler запускает экстренную политику для очереди врача
// @Summary		Экстренный случай
// @Description	Сдвигает самого старого ожидающего пациента на фиксированный интервал и помечает delayed_emergency
// @Tags			queue
// @Produce		json
// @Param			id	path		string	true	"ID врача"
// @Security		BearerAuth
// @Success		200	{object}	models.QueueEntry	"Задержанная запись"
// @Failure		404	{object}	response.ErrorResponse	"Нет ожидающих пациентов (NO_WAITING_PATIENT)"
// @Router			/api/doctors/{id}/emergency [post]
func EmergencyHandler(c *gin.Context) {
	doctorID, ok := doctorIDParam(c)
	if !ok {
		return
	}
	entry, err := Svc.TriggerEmergency(c.Request.Context(), doctorID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
