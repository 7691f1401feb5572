package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/pkg/cloudinary"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

// MenuService manages the catalog: categories, items and their hosted
// images.
type MenuService struct {
	Menu   *repository.MenuRepository
	Images *cloudinary.Client
}

func NewMenuService(menu *repository.MenuRepository, images *cloudinary.Client) *MenuService {
	return &MenuService{Menu: menu, Images: images}
}

// ---------------- Categories ----------------

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *MenuService) ListCategories() ([]entity.Category, error) {
	return s.Menu.ListCategories()
}

func (s *MenuService) GetCategory(id uint) (*entity.Category, error) {
	cat, err := s.Menu.GetCategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Category not found")
	}
	return cat, err
}

func (s *MenuService) CreateCategory(in *CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	count, err := s.Menu.CountCategoriesByName(name, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, badRequest("Category with this name already exists")
	}

	cat := &entity.Category{Name: name, Description: in.Description}
	if err := s.Menu.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) UpdateCategory(id uint, in *CategoryInput) (*entity.Category, error) {
	cat, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	count, err := s.Menu.CountCategoriesByName(name, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, badRequest("Category with this name already exists")
	}

	cat.Name = name
	cat.Description = in.Description
	if err := s.Menu.SaveCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory refuses while menu items still reference the
// category.
func (s *MenuService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	count, err := s.Menu.CountItemsInCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return badRequest("Cannot delete category with menu items")
	}
	return s.Menu.DeleteCategory(id)
}

// ---------------- Items ----------------

type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryIDs []uint  `json:"categoryIds"`
	IsAvailable *bool   `json:"isAvailable"`
	IsFeatured  *bool   `json:"isFeatured"`
}

func (s *MenuService) ListItems(f repository.ItemFilter) ([]entity.MenuItem, error) {
	if f.CategoryID != 0 {
		if _, err := s.GetCategory(f.CategoryID); err != nil {
			return nil, err
		}
	}
	return s.Menu.ListItems(f)
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Menu.GetItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Menu item not found")
	}
	return item, err
}

// Featured returns the highlighted subset of the menu, used by the
// storefront's best-selling and recommended rails.
func (s *MenuService) Featured(limit int) ([]entity.MenuItem, error) {
	featured := true
	return s.Menu.ListItems(repository.ItemFilter{Featured: &featured, Limit: limit})
}

func (s *MenuService) CreateItem(in *MenuItemInput) (*entity.MenuItem, error) {
	if in.Price <= 0 {
		return nil, badRequest("Price must be greater than zero")
	}
	cats, err := s.resolveCategories(in.CategoryIDs)
	if err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		IsAvailable: true,
		Categories:  cats,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		item.IsFeatured = *in.IsFeatured
	}
	if err := s.Menu.CreateItem(item); err != nil {
		return nil, err
	}
	return s.GetItem(item.ID)
}

func (s *MenuService) UpdateItem(id uint, in *MenuItemInput) (*entity.MenuItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}
	if in.Price <= 0 {
		return nil, badRequest("Price must be greater than zero")
	}
	cats, err := s.resolveCategories(in.CategoryIDs)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"description": in.Description,
		"price":       in.Price,
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.IsFeatured != nil {
		updates["is_featured"] = *in.IsFeatured
	}
	if err := s.Menu.UpdateItemFields(id, updates); err != nil {
		return nil, err
	}
	if err := s.Menu.ReplaceItemCategories(item, cats); err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

// SetAvailability toggles the one field ops flip most often.
func (s *MenuService) SetAvailability(id uint, available bool) (*entity.MenuItem, error) {
	if _, err := s.GetItem(id); err != nil {
		return nil, err
	}
	if err := s.Menu.UpdateItemFields(id, map[string]any{"is_available": available}); err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

// AddItemImages uploads images and appends them after the item's
// existing ones.
func (s *MenuService) AddItemImages(ctx context.Context, id uint, images [][]byte) (*entity.MenuItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	uploaded := item.Images
	for _, data := range images {
		res, err := s.Images.Upload(ctx, data, "menu_items", "")
		if err != nil {
			return nil, upstream(err)
		}
		uploaded = append(uploaded, entity.MenuItemImage{
			MenuItemID: id,
			PublicID:   res.PublicID,
			URL:        res.URL,
			Width:      res.Width,
			Height:     res.Height,
			Position:   len(uploaded),
		})
	}
	if err := s.Menu.ReplaceItemImages(id, uploaded); err != nil {
		return nil, err
	}
	return s.GetItem(id)
}

// DeleteItem removes the item and best-effort deletes its hosted
// images. A failed remote delete only orphans a file on the host.
func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	item, err := s.GetItem(id)
	if err != nil {
		return err
	}
	for _, img := range item.Images {
		if img.PublicID == "" {
			continue
		}
		if err := s.Images.Destroy(ctx, img.PublicID); err != nil {
			log.Printf("menu: destroy image %s: %v", img.PublicID, err)
		}
	}
	return s.Menu.DeleteItem(item)
}

func (s *MenuService) resolveCategories(ids []uint) ([]entity.Category, error) {
	cats := make([]entity.Category, 0, len(ids))
	for _, id := range ids {
		cat, err := s.GetCategory(id)
		if err != nil {
			return nil, err
		}
		cats = append(cats, *cat)
	}
	return cats, nil
}
