package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        *entity.User `json:"user,omitempty"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.Auth.Register(req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, user)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ctl.Auth.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tokenResponse{AccessToken: token, TokenType: "bearer", User: user})
}

func (ctl *AuthController) Refresh(c *gin.Context) {
	token, err := ctl.Auth.Refresh(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
