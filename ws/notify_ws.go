package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// NotificationHub pushes stored notifications to each user's open
// connections. Delivery is best-effort; a user with no connection just
// reads the notification list later.
type NotificationHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of connections
	push       chan pushMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type pushMessage struct {
	UserID       uint
	Notification *entity.Notification
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		push:       make(chan pushMessage, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			if len(h.clients[sub.UserID]) == 0 {
				delete(h.clients, sub.UserID)
			}
			h.mu.Unlock()

		case msg := <-h.push:
			h.mu.Lock()
			for conn := range h.clients[msg.UserID] {
				if err := conn.WriteJSON(msg.Notification); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Push queues a notification for the user's live connections. Never
// blocks the caller; a full queue drops the push.
func (h *NotificationHub) Push(userID uint, n *entity.Notification) {
	select {
	case h.push <- pushMessage{UserID: userID, Notification: n}:
	default:
		log.Printf("ws push queue full, dropping notification for user %d", userID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications
func (h *NotificationHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain discards client frames; the stream is one-way. Read errors
// signal disconnect.
func (h *NotificationHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
