package services

import (
	"errors"

	"github.com/Ah-ugo/Amber-Foods-backend/entity"
	"github.com/Ah-ugo/Amber-Foods-backend/repository"
	"gorm.io/gorm"
)

// AddressService keeps the default-address invariant: a user with any
// addresses has exactly one default.
type AddressService struct {
	DB        *gorm.DB
	Addresses *repository.AddressRepository
}

func NewAddressService(db *gorm.DB, addresses *repository.AddressRepository) *AddressService {
	return &AddressService{DB: db, Addresses: addresses}
}

type AddressInput struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country" binding:"required"`
	Label      string `json:"label"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"isDefault"`
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	return s.Addresses.ListForUser(userID)
}

func (s *AddressService) Get(userID, id uint) (*entity.Address, error) {
	a, err := s.Addresses.GetForUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Address not found")
	}
	return a, err
}

// Create stores a new address. The user's first address becomes the
// default regardless of the flag sent.
func (s *AddressService) Create(userID uint, in *AddressInput) (*entity.Address, error) {
	count, err := s.Addresses.CountForUser(userID)
	if err != nil {
		return nil, err
	}

	a := &entity.Address{
		UserID:     userID,
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Label:      in.Label,
		Phone:      in.Phone,
		IsDefault:  in.IsDefault || count == 0,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := s.Addresses.UnsetDefaults(tx, userID, 0); err != nil {
				return err
			}
		}
		return s.Addresses.Create(tx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Update(userID, id uint, in *AddressInput) (*entity.Address, error) {
	a, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	a.Line1 = in.Line1
	a.Line2 = in.Line2
	a.City = in.City
	a.State = in.State
	a.PostalCode = in.PostalCode
	a.Country = in.Country
	a.Label = in.Label
	a.Phone = in.Phone

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if in.IsDefault && !a.IsDefault {
			if err := s.Addresses.UnsetDefaults(tx, userID, a.ID); err != nil {
				return err
			}
			a.IsDefault = true
		}
		return s.Addresses.Save(tx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SetDefault makes the address the user's single default.
func (s *AddressService) SetDefault(userID, id uint) (*entity.Address, error) {
	a, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Addresses.UnsetDefaults(tx, userID, a.ID); err != nil {
			return err
		}
		a.IsDefault = true
		return s.Addresses.Save(tx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the address. Deleting the default promotes another
// address, when one remains, so the invariant holds.
func (s *AddressService) Delete(userID, id uint) error {
	a, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Addresses.Delete(tx, a.ID); err != nil {
			return err
		}
		if !a.IsDefault {
			return nil
		}
		next, err := s.Addresses.FindAnother(tx, userID, a.ID)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		next.IsDefault = true
		return s.Addresses.Save(tx, next)
	})
}
