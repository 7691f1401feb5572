package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/Ah-ugo/Amber-Foods-backend/utils"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

func (ctl *ReviewController) Create(c *gin.Context) {
	var in services.CreateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := ctl.Reviews.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, review)
}

func (ctl *ReviewController) ListByItem(c *gin.Context) {
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	reviews, err := ctl.Reviews.ListByItem(itemID, intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}

func (ctl *ReviewController) ListMine(c *gin.Context) {
	reviews, err := ctl.Reviews.ListMine(utils.CurrentUserID(c),
		intQuery(c, "skip", 0), intQuery(c, "limit", 100))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, reviews)
}

func (ctl *ReviewController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in services.UpdateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := ctl.Reviews.Update(utils.CurrentUserID(c), id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, review)
}

func (ctl *ReviewController) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Reviews.Delete(utils.CurrentUserID(c), id, utils.IsAdmin(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
