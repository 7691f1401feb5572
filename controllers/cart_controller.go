package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

func (ctl *CartController) Get(c *gin.Context) {
	cart, err := ctl.Cart.Get(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

type addItemRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

func (ctl *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := ctl.Cart.AddItem(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

type updateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (ctl *CartController) UpdateItem(c *gin.Context) {
	lineID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := ctl.Cart.UpdateItem(utils.CurrentUserID(c), lineID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

func (ctl *CartController) RemoveItem(c *gin.Context) {
	lineID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	cart, err := ctl.Cart.RemoveItem(utils.CurrentUserID(c), lineID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

func (ctl *CartController) Clear(c *gin.Context) {
	cart, err := ctl.Cart.Clear(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}
