package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Типы событий, рассылаемых подписчикам очереди врача.
// Каждое событие несёт полный снимок активной очереди, а не диф.
const (
	EventQueueSnapshot = "queue_snapshot"
)

// WSMessage — сообщение для подписчиков очереди конкретного врача.
type WSMessage struct {
	EventType string      `json:"event_type"`
	DoctorID  uint        `json:"doctor_id"`
	Data      interface{} `json:"data"`
}

// Hub хранит подключения клиентов, сгруппированные по doctorID.
type Hub struct {
	// Для каждого врача храним множество подключений.
	clients map[uint]map[*Client]bool
	// Канал для регистрации нового клиента.
	register chan *Client
	// Канал для удаления клиента.
	unregister chan *Client
	// Канал для трансляции сообщений подписчикам одного врача.
	broadcast chan BroadcastMessage
	// Mutex для защиты карты клиентов.
	mu sync.RWMutex
}

// BroadcastMessage представляет сообщение для рассылки подписчикам врача.
type BroadcastMessage struct {
	DoctorID uint
	Message  []byte
}

// Создаем глобальный экземпляр хаба.
var HubInstance = NewHub()

// NewHub создает новый Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		// Буфер, чтобы мутации очереди не ждали цикл хаба.
		broadcast: make(chan BroadcastMessage, 256),
	}
}

// Run запускает цикл обработки каналов хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.DoctorID] == nil {
				h.clients[client.DoctorID] = make(map[*Client]bool)
			}
			h.clients[client.DoctorID][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.DoctorID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.clients, client.DoctorID)
					}
				}
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			if clients, ok := h.clients[message.DoctorID]; ok {
				for client := range clients {
					select {
					case client.Send <- message.Message:
					default:
						close(client.Send)
						delete(clients, client)
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Client представляет одно подключение через WebSocket.
type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	DoctorID uint
}

// readPump читает сообщения из WebSocket-соединения.
// Входящие сообщения не обрабатываются, отслеживается только разрыв соединения.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump отправляет сообщения клиенту из канала Send.
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Канал закрыт.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			// Отправка ping-сообщения для поддержания соединения.
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Настраиваем апгрейдер для WebSocket с разрешением всех источников.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DoctorQueueWebSocketHandler обновляет соединение до WebSocket и регистрирует
// подписчика очереди врача. URL-пример: /api/doctors/{id}/ws
func DoctorQueueWebSocketHandler(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		http.Error(c.Writer, "Неверный идентификатор врача", http.StatusBadRequest)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.Error(c.Writer, "Ошибка обновления до WebSocket", http.StatusInternalServerError)
		return
	}
	client := &Client{
		Hub:      HubInstance,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		DoctorID: uint(doctorID),
	}
	HubInstance.register <- client

	go client.writePump()
	client.readPump()
}

// BroadcastWSMessage сериализует сообщение и отдаёт его в канал рассылки.
func (h *Hub) BroadcastWSMessage(msg WSMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		log.Println("Ошибка сериализации ws-сообщения:", err)
		return
	}
	select {
	case h.broadcast <- BroadcastMessage{DoctorID: msg.DoctorID, Message: raw}:
	default:
		log.Println("Канал рассылки переполнен, сообщение пропущено")
	}
}
