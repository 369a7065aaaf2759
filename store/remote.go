package store

import (
	"errors"
	"time"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RemoteStore is the database branch: table-scoped queries filtered by the
// owning user id.
type RemoteStore struct {
	db *gorm.DB
}

func NewRemoteStore(db *gorm.DB) *RemoteStore {
	return &RemoteStore{db: db}
}

func (s *RemoteStore) DB() *gorm.DB { return s.db }

// GetCart loads the user's lines and refreshes each snapshot from the live
// product row, so price edits show up in the cart.
func (s *RemoteStore) GetCart(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		var product models.Product
		if err := s.db.First(&product, "id = ?", items[i].ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // product deleted since add; keep the stored snapshot
			}
			return nil, err
		}
		items[i].Snapshot(&product)
	}
	return items, nil
}

func (s *RemoteStore) AddCartItem(userID string, product *models.Product, size string, quantity int) (*models.CartItem, error) {
	var existing models.CartItem
	err := s.db.Where("user_id = ? AND product_id = ? AND selected_size = ?", userID, product.ID, size).
		First(&existing).Error
	if err == nil {
		existing.Quantity += quantity
		existing.UpdatedAt = time.Now()
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := models.CartItem{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProductID:    product.ID,
		SelectedSize: size,
		Quantity:     quantity,
	}
	item.Snapshot(product)
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *RemoteStore) UpdateCartQuantity(userID, itemID string, quantity int) error {
	result := s.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RemoteStore) RemoveCartItem(userID, itemID string) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RemoteStore) ClearCart(userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func (s *RemoteStore) GetOrders(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *RemoteStore) GetOrder(userID, orderID string) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// PlaceOrder writes the order, its lines and the cart clear in a single
// transaction so a half-placed order cannot be left behind.
func (s *RemoteStore) PlaceOrder(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error
	})
}

func (s *RemoteStore) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	result := s.db.Model(&models.Order{}).Where("id = ?", orderID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
