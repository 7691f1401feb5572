package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (ctl *UserController) Me(c *gin.Context) {
	user, err := ctl.Users.Get(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// UpdateMe accepts multipart form data so the profile image can ride
// along with the text fields.
func (ctl *UserController) UpdateMe(c *gin.Context) {
	fullName := c.PostForm("fullName")
	phone := c.PostForm("phone")

	var image []byte
	if fh, err := c.FormFile("image"); err == nil {
		data, err := readUpload(fh)
		if err != nil {
			resp.BadRequest(c, "could not read image")
			return
		}
		image = data
	}

	user, err := ctl.Users.UpdateProfile(c.Request.Context(), utils.CurrentUserID(c), fullName, phone, image)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// ---------------- Admin ----------------

func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Users.List(intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}

func (ctl *UserController) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	user, err := ctl.Users.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}
