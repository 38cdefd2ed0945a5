package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	"staff-portal-backend/models"
	wsmodels "staff-portal-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
	// Push fans a freshly added notification out to the connected targets.
	Push(userIDs []string, rec models.Notification)
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[userID]
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.Unlock()
	if ok {
		sess.sendCh <- msg
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) Push(userIDs []string, rec models.Notification) {
	for _, userID := range userIDs {
		if !i.IsConnected(userID) {
			continue
		}
		i.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
			Type:     string(rec.Type),
			Title:    rec.Title,
			Msg:      rec.Message,
		})
	}
}
