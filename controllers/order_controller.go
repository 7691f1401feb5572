package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func (ctl *OrderController) Create(c *gin.Context) {
	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Orders.CreateFromCart(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Orders.ListForUser(utils.CurrentUserID(c),
		entity.OrderStatus(c.Query("status")),
		intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ctl *OrderController) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	detail, err := ctl.Orders.Detail(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}

func (ctl *OrderController) Cancel(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	order, err := ctl.Orders.Cancel(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// ---------------- Admin ----------------

func (ctl *OrderController) AdminList(c *gin.Context) {
	var userID uint
	if raw := c.Query("userId"); raw != "" {
		id := intQuery(c, "userId", 0)
		if id <= 0 {
			resp.BadRequest(c, "invalid userId")
			return
		}
		userID = uint(id)
	}

	orders, err := ctl.Orders.AdminList(repository.OrderFilter{
		UserID:        userID,
		Status:        entity.OrderStatus(c.Query("status")),
		PaymentStatus: entity.PaymentStatus(c.Query("paymentStatus")),
		Skip:          intQuery(c, "skip", 0),
		Limit:         intQuery(c, "limit", 100),
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ctl *OrderController) AdminGet(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	detail, err := ctl.Orders.AdminDetail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}

type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

func (ctl *OrderController) AdminSetStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Orders.AdminSetStatus(id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
