package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

func (ctl *NotificationController) List(c *gin.Context) {
	notes, err := ctl.Notifications.ListForUser(utils.CurrentUserID(c),
		entity.NotificationType(c.Query("type")),
		boolQuery(c, "isRead"), intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, notes)
}

// AdminList lists across users, optionally scoped to one.
func (ctl *NotificationController) AdminList(c *gin.Context) {
	var userID uint
	if raw := c.Query("userId"); raw != "" {
		id := intQuery(c, "userId", 0)
		if id <= 0 {
			resp.BadRequest(c, "invalid userId")
			return
		}
		userID = uint(id)
	}

	notes, err := ctl.Notifications.AdminList(repository.NotificationFilter{
		UserID: userID,
		Type:   entity.NotificationType(c.Query("type")),
		IsRead: boolQuery(c, "isRead"),
		Skip:   intQuery(c, "skip", 0),
		Limit:  intQuery(c, "limit", 100),
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, notes)
}

func (ctl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	note, err := ctl.Notifications.MarkRead(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, note)
}

// ---------------- Admin ----------------

type createNotificationRequest struct {
	UserID  uint                    `json:"userId" binding:"required"`
	Title   string                  `json:"title" binding:"required"`
	Message string                  `json:"message" binding:"required"`
	Type    entity.NotificationType `json:"type"`
	OrderID *uint                   `json:"orderId"`
}

func (ctl *NotificationController) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	n := &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		OrderID: req.OrderID,
	}
	if err := ctl.Notifications.Create(n); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, n)
}
