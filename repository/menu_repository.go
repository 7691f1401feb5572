package repository

import (
	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"gorm.io/gorm"
)

// MenuRepository covers the catalog: categories, items and their
// images.
type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) GetCategory(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CountCategoriesByName(name string, excludeID uint) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) SaveCategory(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// CountItemsInCategory counts join rows; a category with any is not
// deletable.
func (r *MenuRepository) CountItemsInCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Table("menu_item_categories").
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

// ---------------- Items ----------------

type ItemFilter struct {
	CategoryID uint
	Search     string
	Featured   *bool
	Skip       int
	Limit      int
}

func (r *MenuRepository) ListItems(f ItemFilter) ([]entity.MenuItem, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}
	if f.Skip < 0 {
		f.Skip = 0
	}

	q := r.DB.Model(&entity.MenuItem{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Categories")

	if f.CategoryID != 0 {
		q = q.Joins("JOIN menu_item_categories mic ON mic.menu_item_id = menu_items.id").
			Where("mic.category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("menu_items.name LIKE ? OR menu_items.description LIKE ?", like, like)
	}
	if f.Featured != nil {
		q = q.Where("menu_items.is_featured = ?", *f.Featured)
	}

	var items []entity.MenuItem
	err := q.Order("menu_items.id").Offset(f.Skip).Limit(f.Limit).Find(&items).Error
	return items, err
}

func (r *MenuRepository) GetItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Categories").
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemForPricing loads just what cart/order math needs: price,
// availability and the thumbnail.
func (r *MenuRepository) GetItemForPricing(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position").Limit(1) }).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItemFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) ReplaceItemCategories(item *entity.MenuItem, cats []entity.Category) error {
	return r.DB.Model(item).Association("Categories").Replace(cats)
}

func (r *MenuRepository) ReplaceItemImages(itemID uint, images []entity.MenuItemImage) error {
	if err := r.DB.Where("menu_item_id = ?", itemID).Delete(&entity.MenuItemImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].MenuItemID = itemID
	}
	return r.DB.Create(&images).Error
}

func (r *MenuRepository) DeleteItem(item *entity.MenuItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&entity.MenuItemImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
}

// UpdateRatingAggregate persists a recomputed avg/count pair.
func (r *MenuRepository) UpdateRatingAggregate(itemID uint, avg float64, count int) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", itemID).
		Updates(map[string]any{"avg_rating": avg, "review_count": count}).Error
}
