package handlers

import (
	"net/http"

	"hospital_queue/internal/models"
	"hospital_queue/internal/response"
	"hospital_queue/internal/storage"

	"github.com/gin-gonic/gin"
)

// ListDoctorsHandler возвращает список врачей для записи
// @Summary		Список врачей
// @Tags			doctors
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.Doctor
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/doctors [get]
func ListDoctorsHandler(c *gin.Context) {
	var doctors []models.Doctor
	if err := storage.DB.Order("name ASC").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки списка врачей",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, doctors)
}
