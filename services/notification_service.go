package services

import (
	"errors"
	"log"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

// Pusher delivers a stored notification to any live connection the
// user has open. Implemented by the websocket hub.
type Pusher interface {
	Push(userID uint, n *entity.Notification)
}

type NotificationService struct {
	Notes  *repository.NotificationRepository
	Pusher Pusher
}

func NewNotificationService(notes *repository.NotificationRepository, pusher Pusher) *NotificationService {
	return &NotificationService{Notes: notes, Pusher: pusher}
}

func (s *NotificationService) Create(n *entity.Notification) error {
	if n.Type == "" {
		n.Type = entity.NotificationSystem
	}
	if !n.Type.Valid() {
		return badRequest("Invalid notification type")
	}
	if err := s.Notes.Create(n); err != nil {
		return err
	}
	if s.Pusher != nil {
		s.Pusher.Push(n.UserID, n)
	}
	return nil
}

// Notify records a notification best-effort. Callers on the payment
// and delivery paths must not fail because a notification did.
func (s *NotificationService) Notify(userID uint, title, message string, typ entity.NotificationType, orderID *uint) {
	n := &entity.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
		OrderID: orderID,
	}
	if err := s.Create(n); err != nil {
		log.Printf("notification: create for user %d: %v", userID, err)
	}
}

func (s *NotificationService) ListForUser(userID uint, typ entity.NotificationType, isRead *bool, skip, limit int) ([]entity.Notification, error) {
	if typ != "" && !typ.Valid() {
		return nil, badRequest("Invalid notification type")
	}
	return s.Notes.List(repository.NotificationFilter{
		UserID: userID, Type: typ, IsRead: isRead, Skip: skip, Limit: limit,
	})
}

func (s *NotificationService) AdminList(f repository.NotificationFilter) ([]entity.Notification, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, badRequest("Invalid notification type")
	}
	return s.Notes.List(f)
}

func (s *NotificationService) MarkRead(userID, id uint) (*entity.Notification, error) {
	n, err := s.Notes.GetForUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Notification not found")
	}
	if err != nil {
		return nil, err
	}
	if err := s.Notes.MarkRead(n.ID); err != nil {
		return nil, err
	}
	n.IsRead = true
	return n, nil
}
