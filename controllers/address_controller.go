package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type AddressController struct {
	Addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{Addresses: addresses}
}

func (ctl *AddressController) List(c *gin.Context) {
	addrs, err := ctl.Addresses.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, addrs)
}

func (ctl *AddressController) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	addr, err := ctl.Addresses.Get(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, addr)
}

func (ctl *AddressController) Create(c *gin.Context) {
	var in services.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	addr, err := ctl.Addresses.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, addr)
}

func (ctl *AddressController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in services.AddressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	addr, err := ctl.Addresses.Update(utils.CurrentUserID(c), id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, addr)
}

func (ctl *AddressController) SetDefault(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	addr, err := ctl.Addresses.SetDefault(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, addr)
}

func (ctl *AddressController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Addresses.Delete(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
