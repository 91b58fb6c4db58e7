package handlers

import (
	"net/http"
	"strconv"

	"hospital_queue/internal/models"
	"hospital_queue/internal/response"
	"hospital_queue/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListPharmacyRequestsHandler возвращает ожидающие заявки аптеки
// @Summary		Заявки аптеки
// @Tags			pharmacy
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.PharmacyRequest
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/pharmacy-requests [get]
func ListPharmacyRequestsHandler(c *gin.Context) {
	var requests []models.PharmacyRequest
	if err := storage.DB.
		Preload("Prescription").
		Where("status = ?", models.PharmacyStatusPending).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки заявок аптеки",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// CompletePharmacyRequestHandler закрывает заявку аптеки
// @Summary		Выдача по заявке
// @Description	Закрывает заявку и соответствующий рецепт одной транзакцией
// @Tags			pharmacy
// @Produce		json
// @Param			id	path		string	true	"ID заявки"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Заявка закрыта"
// @Failure		404	{object}	response.ErrorResponse	"Заявка не найдена (PHARMACY_REQUEST_NOT_FOUND)"
// @Router			/api/pharmacy-requests/{id}/complete [post]
func CompletePharmacyRequestHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_REQUEST_ID",
			Message: "Неверный идентификатор заявки",
		})
		return
	}

	err = storage.DB.Transaction(func(tx *gorm.DB) error {
		var request models.PharmacyRequest
		if err := tx.First(&request, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&request).Update("status", models.PharmacyStatusCompleted).Error; err != nil {
			return err
		}
		return tx.Model(&models.Prescription{}).
			Where("id = ?", request.PrescriptionID).
			Update("status", models.PharmacyStatusCompleted).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "PHARMACY_REQUEST_NOT_FOUND",
				Message: "Заявка аптеки не найдена",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при закрытии заявки",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Заявка аптеки закрыта"})
}
