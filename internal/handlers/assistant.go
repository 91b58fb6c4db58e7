package handlers

import (
	"net/http"
	"strconv"

	"hospital_queue/internal/models"
	"hospital_queue/internal/queue"
	"hospital_queue/internal/response"
	"hospital_queue/internal/storage"

	"github.com/gin-gonic/gin"
)

type CreateAssignmentRequest struct {
	DoctorID    uint   `json:"doctor_id" binding:"required"`
	PatientName string `json:"patient_name" binding:"required"`
	RoomNo      string `json:"room_no" binding:"required"`
	Urgent      bool   `json:"urgent"`
}

// CreateAssignmentHandler создаёт направление от ассистента врачу
// @Summary		Новое направление
// @Description	Ассистент направляет пациента врачу; срочность решает врач кнопкой экстренного случая
// @Tags			assistant
// @Accept			json
// @Produce		json
// @Param			assignment	body		CreateAssignmentRequest	true	"Пациент и палата"
// @Security		BearerAuth
// @Success		201	{object}	models.AssistantAssignment
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/assignments [post]
func CreateAssignmentHandler(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Нужно указать имя пациента и номер палаты",
			Details: err.Error(),
		})
		return
	}

	assignment := models.AssistantAssignment{
		DoctorID:    req.DoctorID,
		PatientName: req.PatientName,
		RoomNo:      req.RoomNo,
		Urgent:      req.Urgent,
	}
	if err := storage.DB.Create(&assignment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при создании направления",
		})
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// ListAssignmentsHandler возвращает необработанные направления врача
// @Summary		Направления врача
// @Tags			assistant
// @Produce		json
// @Param			id	path		string	true	"ID врача"
// @Security		BearerAuth
// @Success		200	{array}		models.AssistantAssignment
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/doctors/{id}/assignments [get]
func ListAssignmentsHandler(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_DOCTOR_ID",
			Message: "Неверный идентификатор врача",
		})
		return
	}

	var assignments []models.AssistantAssignment
	if err := storage.DB.
		Where("doctor_id = ? AND handled = ?", doctorID, false).
		Order("created_at DESC").
		Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки направлений",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// MarkAssignmentSeenHandler отмечает направление просмотренным
// @Summary		Направление просмотрено
// @Description	Помечает направление как обработанное и возвращает задержанного пациента врача в статус waiting
// @Tags			assistant
// @Produce		json
// @Param			id	path		string	true	"ID направления"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Направление обработано"
// @Failure		404	{object}	response.ErrorResponse	"Направление не найдено (ASSIGNMENT_NOT_FOUND)"
// @Router			/api/assignments/{id}/seen [post]
func MarkAssignmentSeenHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_ASSIGNMENT_ID",
			Message: "Неверный идентификатор направления",
		})
		return
	}

	var assignment models.AssistantAssignment
	if err := storage.DB.First(&assignment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "ASSIGNMENT_NOT_FOUND",
			Message: "Направление не найдено",
		})
		return
	}

	if err := storage.DB.Model(&assignment).Update("handled", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении направления",
		})
		return
	}

	// Возвращаем задержанного пациента в очередь. Отсутствие такого — не ошибка.
	if _, err := queue.Svc.ResolveEmergency(c.Request.Context(), assignment.DoctorID); err != nil {
		queue.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Направление отмечено как просмотренное"})
}
