package controllers

import (
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/resp"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"github.com/Ah-ugo/Amber-Foods-backend/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// ---------------- Categories ----------------

func (ctl *MenuController) ListCategories(c *gin.Context) {
	cats, err := ctl.Menu.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

func (ctl *MenuController) GetCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	cat, err := ctl.Menu.GetCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Menu.CreateCategory(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ctl.Menu.UpdateCategory(id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Menu.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// ---------------- Items ----------------

func (ctl *MenuController) ListItems(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("categoryId"); raw != "" {
		id := intQuery(c, "categoryId", 0)
		if id <= 0 {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		categoryID = uint(id)
	}

	items, err := ctl.Menu.ListItems(repository.ItemFilter{
		CategoryID: categoryID,
		Search:     c.Query("search"),
		Featured:   boolQuery(c, "featured"),
		Skip:       intQuery(c, "skip", 0),
		Limit:      intQuery(c, "limit", 100),
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (ctl *MenuController) GetItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	item, err := ctl.Menu.GetItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuController) Featured(c *gin.Context) {
	items, err := ctl.Menu.Featured(intQuery(c, "limit", 10))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (ctl *MenuController) CreateItem(c *gin.Context) {
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Menu.CreateItem(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in services.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Menu.UpdateItem(id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

func (ctl *MenuController) SetAvailability(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Menu.SetAvailability(id, *req.IsAvailable)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// UploadImages accepts one or more files under the "images" form
// field.
func (ctl *MenuController) UploadImages(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		resp.BadRequest(c, "expected multipart form")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		resp.BadRequest(c, "no images provided")
		return
	}

	var images [][]byte
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			resp.BadRequest(c, "could not read image")
			return
		}
		images = append(images, data)
	}

	item, err := ctl.Menu.AddItemImages(c.Request.Context(), id, images)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.Menu.DeleteItem(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
