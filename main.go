package main

import (
	"fmt"
	"log"
	"os"

	_ "hospital_queue/docs"
	"hospital_queue/internal/auth"
	"hospital_queue/internal/handlers"
	"hospital_queue/internal/models"
	"hospital_queue/internal/queue"
	"hospital_queue/internal/storage"
	"hospital_queue/internal/tasks"
	"hospital_queue/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Электронная очередь поликлиники
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.QueueEntry{},
		&models.LabRequest{},
		&models.AssistantAssignment{},
		&models.Prescription{},
		&models.PharmacyRequest{},
	); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	queue.Init()

	tasks.InitScheduler()

	go ws.HubInstance.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	api := r.Group("/api", auth.AuthMiddleware())
	{
		api.GET("/doctors", handlers.ListDoctorsHandler)
		api.GET("/doctors/:id/queue", queue.DoctorQueueHandler)
		api.GET("/doctors/:id/queue/me", auth.RequireRole(models.RolePatient), queue.MyStatusHandler)
		api.POST("/doctors/:id/emergency", queue.RequireActor(queue.EventEmergencyDelay), queue.EmergencyHandler)
		api.GET("/doctors/:id/assignments", auth.RequireRole(models.RoleDoctor), handlers.ListAssignmentsHandler)

		api.POST("/queue", auth.RequireRole(models.RolePatient), queue.BookHandler)
		api.GET("/queue/:id", queue.GetEntryHandler)
		api.DELETE("/queue/:id", queue.RequireActor(queue.EventCancel), queue.CancelHandler)
		api.POST("/queue/:id/lab", queue.RequireActor(queue.EventOrderLab), queue.OrderLabHandler)
		api.POST("/queue/:id/complete", queue.RequireActor(queue.EventComplete), queue.CompleteHandler)
		api.POST("/queue/:id/prescribe", auth.RequireRole(models.RoleDoctor), queue.PrescribeHandler)

		api.POST("/assignments", auth.RequireRole(models.RoleAssistant), handlers.CreateAssignmentHandler)
		api.POST("/assignments/:id/seen", queue.RequireActor(queue.EventEmergencyResolve), handlers.MarkAssignmentSeenHandler)

		api.GET("/lab-requests", auth.RequireRole(models.RoleLab), handlers.ListLabRequestsHandler)
		api.POST("/lab-requests/:id/status", queue.RequireActor(queue.EventLabCompleted), handlers.UpdateLabStatusHandler)

		api.GET("/pharmacy-requests", auth.RequireRole(models.RolePharmacy), handlers.ListPharmacyRequestsHandler)
		api.POST("/pharmacy-requests/:id/complete", auth.RequireRole(models.RolePharmacy), handlers.CompletePharmacyRequestHandler)
	}

	// WebSocket-подписка на снимки очереди; авторизация по заголовку тут невозможна.
	r.GET("/api/doctors/:id/ws", ws.DoctorQueueWebSocketHandler)

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
