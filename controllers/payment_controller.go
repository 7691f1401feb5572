package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

type initializeRequest struct {
	OrderID uint `json:"orderId" binding:"required"`
}

func (ctl *PaymentController) Initialize(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := ctl.Payments.Initialize(c.Request.Context(), utils.CurrentUserID(c), req.OrderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, payment)
}

func (ctl *PaymentController) Verify(c *gin.Context) {
	reference := c.Param("reference")
	payment, err := ctl.Payments.Verify(c.Request.Context(), utils.CurrentUserID(c), reference)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, payment)
}

// Callback receives Paystack's unauthenticated redirect after
// checkout.
func (ctl *PaymentController) Callback(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		resp.BadRequest(c, "missing reference")
		return
	}
	payment, err := ctl.Payments.HandleCallback(c.Request.Context(), reference)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, payment)
}

func (ctl *PaymentController) GetForOrder(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		return
	}
	payment, err := ctl.Payments.GetForOrder(utils.CurrentUserID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, payment)
}
