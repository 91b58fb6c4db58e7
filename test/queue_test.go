package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"hospital_queue/internal/auth"
	"hospital_queue/internal/handlers"
	"hospital_queue/internal/models"
	"hospital_queue/internal/queue"
	"hospital_queue/internal/storage"
	"hospital_queue/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Цикл хаба общий для всех тестов, запускаем один раз.
var hubOnce sync.Once

// AuthMiddlewareTest подставляет пользователя и роль из заголовков.
func AuthMiddlewareTest() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := uint(1)
		if idStr := c.Request.Header.Get("X-Test-UserID"); idStr != "" {
			if id, err := strconv.Atoi(idStr); err == nil {
				userID = uint(id)
			}
		}
		role := c.Request.Header.Get("X-Test-Role")
		if role == "" {
			role = models.RolePatient
		}
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

func setupTestServer() *httptest.Server {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load("../.env")
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectTestingDatabase()
	storage.DB.Exec("TRUNCATE TABLE users, doctors, queue_entries, lab_requests, assistant_assignments, prescriptions, pharmacy_requests RESTART IDENTITY CASCADE;")

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

	queue.Init()

	hubOnce.Do(func() {
		go ws.HubInstance.Run()
	})

	r := gin.Default()

	api := r.Group("/api", AuthMiddlewareTest())
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
	}

	r.GET("/api/doctors/:id/ws", ws.DoctorQueueWebSocketHandler)

	return httptest.NewServer(r)
}

// doJSON выполняет запрос от имени пользователя с ролью и разбирает JSON-ответ.
func doJSON(t *testing.T, ts *httptest.Server, method, path string, body interface{}, userID uint, role string) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-UserID", strconv.Itoa(int(userID)))
	req.Header.Set("X-Test-Role", role)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func createPatient(t *testing.T, name string) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@test.local", name),
		PasswordHash: "x",
		Role:         models.RolePatient,
	}
	require.NoError(t, storage.DB.Create(&user).Error)
	return user
}

func createDoctor(t *testing.T, name string) (models.User, models.Doctor) {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@test.local", name),
		PasswordHash: "x",
		Role:         models.RoleDoctor,
	}
	require.NoError(t, storage.DB.Create(&user).Error)
	doctor := models.Doctor{UserID: user.ID, Name: name, Specialization: "терапевт", RoomNo: "101"}
	require.NoError(t, storage.DB.Create(&doctor).Error)
	return user, doctor
}

func TestQueueFlow(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	docUser, doctor := createDoctor(t, "doctor-flow")
	p1 := createPatient(t, "patient-1")
	p2 := createPatient(t, "patient-2")
	p3 := createPatient(t, "patient-3")

	doctorPath := fmt.Sprintf("/api/doctors/%d", doctor.ID)

	// P1 записывается первым: позиция 1, ожидание 0.
	code, raw := doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID, "emergency_level": "low"}, p1.ID, models.RolePatient)
	require.Equal(t, http.StatusCreated, code, string(raw))
	var booked1 queue.BookResponse
	require.NoError(t, json.Unmarshal(raw, &booked1))
	assert.Equal(t, 1, booked1.Position)
	assert.Equal(t, 0, booked1.EstimatedWaitMinutes)
	assert.Equal(t, models.StatusWaiting, booked1.Status)
	p1CreatedAt, err := time.Parse(time.RFC3339, booked1.CreatedAt)
	require.NoError(t, err)

	// Повторная запись того же пациента отклоняется.
	code, raw = doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID}, p1.ID, models.RolePatient)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "DUPLICATE_ACTIVE_BOOKING")

	// P2 и P3: позиции 2 и 3, ожидание 15 и 30.
	code, raw = doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID, "emergency_level": "high"}, p2.ID, models.RolePatient)
	require.Equal(t, http.StatusCreated, code, string(raw))
	var booked2 queue.BookResponse
	require.NoError(t, json.Unmarshal(raw, &booked2))
	assert.Equal(t, 2, booked2.Position)
	assert.Equal(t, 15, booked2.EstimatedWaitMinutes)

	code, raw = doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID}, p3.ID, models.RolePatient)
	require.Equal(t, http.StatusCreated, code, string(raw))
	var booked3 queue.BookResponse
	require.NoError(t, json.Unmarshal(raw, &booked3))
	assert.Equal(t, 3, booked3.Position)
	assert.Equal(t, 30, booked3.EstimatedWaitMinutes)

	// Активная очередь: [P1, P2, P3] по created_at.
	code, raw = doJSON(t, ts, http.MethodGet, doctorPath+"/queue", nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code)
	var items []queue.ActiveQueueItem
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 3)
	assert.Equal(t, p1.ID, items[0].PatientID)
	assert.Equal(t, p2.ID, items[1].PatientID)
	assert.Equal(t, p3.ID, items[2].PatientID)

	// Экстренный случай: первый ожидающий (P1) задерживается на 30 минут.
	code, raw = doJSON(t, ts, http.MethodPost, doctorPath+"/emergency", nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code, string(raw))
	var delayed models.QueueEntry
	require.NoError(t, json.Unmarshal(raw, &delayed))
	assert.Equal(t, booked1.EntryID, delayed.ID)
	assert.Equal(t, models.StatusDelayedEmergency, delayed.Status)
	assert.WithinDuration(t, p1CreatedAt.Add(30*time.Minute), delayed.CreatedAt, 2*time.Second)

	// Очередь теперь [P2, P3, P1]; остальные записи не тронуты.
	code, raw = doJSON(t, ts, http.MethodGet, doctorPath+"/queue", nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 3)
	assert.Equal(t, p2.ID, items[0].PatientID)
	assert.Equal(t, models.StatusWaiting, items[0].Status)
	assert.Equal(t, p3.ID, items[1].PatientID)
	assert.Equal(t, p1.ID, items[2].PatientID)
	assert.Equal(t, models.StatusDelayedEmergency, items[2].Status)
	assert.Equal(t, 1, items[2].Position, "сохранённая позиция не пересчитывается")

	// Направление просмотрено: P1 возвращается в waiting, created_at остаётся сдвинутым.
	code, raw = doJSON(t, ts, http.MethodPost, "/api/assignments",
		gin.H{"doctor_id": doctor.ID, "patient_name": "Экстренный", "room_no": "7", "urgent": true},
		4, models.RoleAssistant)
	require.Equal(t, http.StatusCreated, code, string(raw))
	var assignment models.AssistantAssignment
	require.NoError(t, json.Unmarshal(raw, &assignment))

	code, raw = doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/assignments/%d/seen", assignment.ID),
		nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code, string(raw))

	var reverted models.QueueEntry
	require.NoError(t, storage.DB.First(&reverted, booked1.EntryID).Error)
	assert.Equal(t, models.StatusWaiting, reverted.Status)
	assert.WithinDuration(t, p1CreatedAt.Add(30*time.Minute), reverted.CreatedAt, 2*time.Second,
		"сдвинутое время не восстанавливается")

	// Врач отправляет P2 в лабораторию: статус и заявка меняются вместе.
	code, raw = doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/queue/%d/lab", booked2.EntryID),
		gin.H{"lab_name": "Центральная лаборатория", "tests": []string{"ОАК", "Глюкоза"}},
		docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusCreated, code, string(raw))
	var labReq models.LabRequest
	require.NoError(t, json.Unmarshal(raw, &labReq))
	assert.Equal(t, models.LabStatusPending, labReq.Status)

	var p2Entry models.QueueEntry
	require.NoError(t, storage.DB.First(&p2Entry, booked2.EntryID).Error)
	assert.Equal(t, models.StatusLabPending, p2Entry.Status)

	// Пациент не может отменить запись, ушедшую в лабораторию.
	code, raw = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/api/queue/%d", booked2.EntryID),
		nil, p2.ID, models.RolePatient)
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, string(raw), "INVALID_TRANSITION")

	// Лаборатория завершает анализы: P2 возвращается в очередь, позиция прежняя.
	code, raw = doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/lab-requests/%d/status", labReq.ID),
		gin.H{"status": "completed"}, 5, models.RoleLab)
	require.Equal(t, http.StatusOK, code, string(raw))

	require.NoError(t, storage.DB.First(&p2Entry, booked2.EntryID).Error)
	assert.Equal(t, models.StatusWaiting, p2Entry.Status)
	assert.Equal(t, 2, p2Entry.Position)

	// Живое место P2 — первое, несмотря на сохранённую позицию 2.
	code, raw = doJSON(t, ts, http.MethodGet, doctorPath+"/queue/me", nil, p2.ID, models.RolePatient)
	require.Equal(t, http.StatusOK, code, string(raw))
	var myStatus queue.MyQueueStatus
	require.NoError(t, json.Unmarshal(raw, &myStatus))
	assert.True(t, myStatus.InWindow)
	assert.Equal(t, 1, myStatus.LivePosition)
	assert.Equal(t, 0, myStatus.EstimatedWaitMinutes)
	assert.Equal(t, 2, myStatus.Entry.Position)

	// Завершение приёма убирает P2 из активной очереди.
	code, raw = doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/queue/%d/complete", booked2.EntryID),
		nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code, string(raw))

	code, raw = doJSON(t, ts, http.MethodGet, doctorPath+"/queue", nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, models.StatusCompleted, item.Status)
		assert.NotEqual(t, p2.ID, item.PatientID)
	}

	// Повторное завершение — недопустимый переход.
	code, raw = doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/queue/%d/complete", booked2.EntryID),
		nil, docUser.ID, models.RoleDoctor)
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, string(raw), "INVALID_TRANSITION")

	// P3 отменяет запись; повторная отмена идемпотентна.
	code, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/api/queue/%d", booked3.EntryID),
		nil, p3.ID, models.RolePatient)
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, ts, http.MethodDelete, fmt.Sprintf("/api/queue/%d", booked3.EntryID),
		nil, p3.ID, models.RolePatient)
	assert.Equal(t, http.StatusOK, code)
}

func TestEmergencyWithoutWaitingPatients(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	docUser, doctor := createDoctor(t, "doctor-empty")

	code, raw := doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/doctors/%d/emergency", doctor.ID),
		nil, docUser.ID, models.RoleDoctor)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(raw), "NO_WAITING_PATIENT")

	// Политика ничего не изменила.
	var count int64
	storage.DB.Model(&models.QueueEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRoundTripAndRoleChecks(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	docUser, doctor := createDoctor(t, "doctor-rt")
	p1 := createPatient(t, "patient-rt")

	code, raw := doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID, "emergency_level": "medium", "is_new_patient": true},
		p1.ID, models.RolePatient)
	require.Equal(t, http.StatusCreated, code, string(raw))
	var booked queue.BookResponse
	require.NoError(t, json.Unmarshal(raw, &booked))

	// Чтение по ID возвращает те же поля, server-side поля заполнены.
	code, raw = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/api/queue/%d", booked.EntryID),
		nil, p1.ID, models.RolePatient)
	require.Equal(t, http.StatusOK, code)
	var entry models.QueueEntry
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, booked.EntryID, entry.ID)
	assert.Equal(t, doctor.ID, entry.DoctorID)
	assert.Equal(t, p1.ID, entry.PatientID)
	assert.Equal(t, models.EmergencyMedium, entry.EmergencyLevel)
	assert.True(t, entry.IsNewPatient)
	assert.Equal(t, 1, entry.Position)
	assert.False(t, entry.CreatedAt.IsZero())

	// Пациент не может запустить экстренную политику.
	code, raw = doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/doctors/%d/emergency", doctor.ID),
		nil, p1.ID, models.RolePatient)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, string(raw), "FORBIDDEN_ROLE")

	// Несуществующая запись — ENTRY_NOT_FOUND.
	code, raw = doJSON(t, ts, http.MethodGet, "/api/queue/999999", nil, docUser.ID, models.RoleDoctor)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(raw), "ENTRY_NOT_FOUND")

	// Лаборатория не может завершить приём: событие разрешено только врачу.
	code, raw = doJSON(t, ts, http.MethodPost, fmt.Sprintf("/api/queue/%d/complete", booked.EntryID),
		nil, 99, models.RoleLab)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, string(raw), "FORBIDDEN_ROLE")
}

func TestConcurrentBookingsGetDistinctPositions(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	_, doctor := createDoctor(t, "doctor-conc")

	const patients = 5
	ids := make([]uint, 0, patients)
	for i := 0; i < patients; i++ {
		ids = append(ids, createPatient(t, fmt.Sprintf("patient-conc-%d", i)).ID)
	}

	// Все пациенты записываются одновременно к одному врачу: подсчёт позиций
	// сериализуется advisory-блокировкой врача, дубликатов позиций не бывает,
	// даже когда очередь в момент старта пуста.
	var wg sync.WaitGroup
	positions := make(chan int, patients)
	for _, patientID := range ids {
		wg.Add(1)
		go func(pid uint) {
			defer wg.Done()
			code, raw := doJSON(t, ts, http.MethodPost, "/api/queue",
				gin.H{"doctor_id": doctor.ID}, pid, models.RolePatient)
			if !assert.Equal(t, http.StatusCreated, code, string(raw)) {
				return
			}
			var booked queue.BookResponse
			if assert.NoError(t, json.Unmarshal(raw, &booked)) {
				positions <- booked.Position
			}
		}(patientID)
	}
	wg.Wait()
	close(positions)

	seen := map[int]bool{}
	for pos := range positions {
		assert.False(t, seen[pos], "позиция %d выдана дважды", pos)
		seen[pos] = true
	}
	require.Len(t, seen, patients)
	for i := 1; i <= patients; i++ {
		assert.True(t, seen[i], "позиция %d не выдана", i)
	}
}

func TestConcurrentDuplicateBooking(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	_, doctor := createDoctor(t, "doctor-dup")
	patient := createPatient(t, "patient-dup")

	// Две одновременные записи одного пациента: advisory-блокировка пациента
	// сериализует проверку, проходит ровно одна.
	var wg sync.WaitGroup
	codes := make(chan int, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, _ := doJSON(t, ts, http.MethodPost, "/api/queue",
				gin.H{"doctor_id": doctor.ID}, patient.ID, models.RolePatient)
			codes <- code
		}()
	}
	wg.Wait()
	close(codes)

	created, rejected := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusBadRequest:
			rejected++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, rejected)

	var count int64
	storage.DB.Model(&models.QueueEntry{}).
		Where("patient_id = ? AND status IN ?", patient.ID, models.ActiveStatuses).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestQueueSnapshotBroadcast(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	_, doctor := createDoctor(t, "doctor-ws")
	patient := createPatient(t, "patient-ws")

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + fmt.Sprintf("/api/doctors/%d/ws", doctor.ID)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Даём хабу зарегистрировать подписчика.
	time.Sleep(100 * time.Millisecond)

	code, raw := doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID}, patient.ID, models.RolePatient)
	require.Equal(t, http.StatusCreated, code, string(raw))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err, "подписчик не получил снимок после записи")

	var msg ws.WSMessage
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, ws.EventQueueSnapshot, msg.EventType)
	assert.Equal(t, doctor.ID, msg.DoctorID)

	// Data — полный снимок активной очереди, а не диф.
	rawItems, err := json.Marshal(msg.Data)
	require.NoError(t, err)
	var items []queue.ActiveQueueItem
	require.NoError(t, json.Unmarshal(rawItems, &items))
	require.Len(t, items, 1)
	assert.Equal(t, patient.ID, items[0].PatientID)
	assert.Equal(t, 1, items[0].LivePosition)
}

func TestSnapshotCacheInvalidation(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	storage.InitRedis()
	if err := storage.RedisClient.Ping(context.Background()).Err(); err != nil {
		storage.RedisClient = nil
		t.Skip("Redis недоступен: " + err.Error())
	}
	// Остальные тесты работают без кэша.
	defer func() { storage.RedisClient = nil }()

	docUser, doctor := createDoctor(t, "doctor-cache")
	p1 := createPatient(t, "patient-cache-1")
	p2 := createPatient(t, "patient-cache-2")

	ctx := context.Background()
	key := fmt.Sprintf("doctor_queue:%d", doctor.ID)
	require.NoError(t, storage.RedisClient.Del(ctx, key).Err())

	code, raw := doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID}, p1.ID, models.RolePatient)
	require.Equal(t, http.StatusCreated, code, string(raw))

	// Чтение очереди кладёт снимок в кэш.
	code, _ = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/api/doctors/%d/queue", doctor.ID),
		nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code)
	cached, err := storage.RedisClient.Get(ctx, key).Result()
	require.NoError(t, err, "снимок не закэширован после чтения")
	var items []queue.ActiveQueueItem
	require.NoError(t, json.Unmarshal([]byte(cached), &items))
	require.Len(t, items, 1)

	// Мутация очереди сбрасывает кэшированный снимок.
	code, raw = doJSON(t, ts, http.MethodPost, "/api/queue",
		gin.H{"doctor_id": doctor.ID}, p2.ID, models.RolePatient)
	require.Equal(t, http.StatusCreated, code, string(raw))
	err = storage.RedisClient.Get(ctx, key).Err()
	assert.ErrorIs(t, err, redis.Nil, "снимок не сброшен после мутации")

	// Следующее чтение собирает свежий снимок.
	code, raw = doJSON(t, ts, http.MethodGet, fmt.Sprintf("/api/doctors/%d/queue", doctor.ID),
		nil, docUser.ID, models.RoleDoctor)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
}
