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

type UpdateLabStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress completed"`
}

// ListLabRequestsHandler возвращает незавершённые лабораторные заявки
// @Summary		Список лабораторных заявок
// @Description	Заявки в статусах pending и in_progress, новые первыми
// @Tags			lab
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.LabRequest
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/lab-requests [get]
func ListLabRequestsHandler(c *gin.Context) {
	var requests []models.LabRequest
	if err := storage.DB.
		Where("status IN ?", []string{models.LabStatusPending, models.LabStatusInProgress}).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки лабораторных заявок",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// UpdateLabStatusHandler двигает лабораторную заявку по статусам
// @Summary		Обновление статуса заявки
// @Description	Завершение заявки атомарно возвращает пациента в очередь (lab_pending -> waiting)
// @Tags			lab
// @Accept			json
// @Produce		json
// @Param			id		path		string					true	"ID заявки"
// @Param			request	body		UpdateLabStatusRequest	true	"Новый статус"
// @Security		BearerAuth
// @Success		200	{object}	models.LabRequest
// @Failure		409	{object}	response.ErrorResponse	"Недопустимый переход (INVALID_TRANSITION)"
// @Failure		404	{object}	response.ErrorResponse	"Заявка не найдена (ENTRY_NOT_FOUND)"
// @Router			/api/lab-requests/{id}/status [post]
func UpdateLabStatusHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REQUEST_ID",
			Message: "Неверный идентификатор заявки",
		})
		return
	}

	var req UpdateLabStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	request, err := queue.Svc.UpdateLabStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		queue.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
