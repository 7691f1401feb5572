package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Delivery *services.DeliveryService
}

func NewDeliveryController(delivery *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Delivery: delivery}
}

func (ctl *DeliveryController) Track(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		return
	}
	d, err := ctl.Delivery.Track(utils.CurrentUserID(c), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

func (ctl *DeliveryController) Estimate(c *gin.Context) {
	resp.OK(c, ctl.Delivery.Estimate())
}

// ---------------- Admin ----------------

type deliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (ctl *DeliveryController) SetStatus(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		return
	}
	var req deliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := ctl.Delivery.UpdateStatus(orderID, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

type assignDriverRequest struct {
	DriverID    string `json:"driverId" binding:"required"`
	DriverName  string `json:"driverName" binding:"required"`
	DriverPhone string `json:"driverPhone"`
}

func (ctl *DeliveryController) AssignDriver(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		return
	}
	var req assignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	d, err := ctl.Delivery.AssignDriver(orderID, req.DriverID, req.DriverName, req.DriverPhone)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}
