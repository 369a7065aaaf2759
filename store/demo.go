package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/google/uuid"
)

// DemoStore is the local branch: one JSON file per collection under dataDir,
// mirroring the browser demo mode's key/value blobs. A mutex serializes the
// read-modify-write cycles.
type DemoStore struct {
	mu      sync.Mutex
	dataDir string
}

const demoFilePrefix = "chikankari_demo_"

func NewDemoStore(dataDir string) (*DemoStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &DemoStore{dataDir: dataDir}, nil
}

func (s *DemoStore) path(key string) string {
	return filepath.Join(s.dataDir, demoFilePrefix+key+".json")
}

func (s *DemoStore) read(key string, out interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *DemoStore) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

// ---- Cart ----

func (s *DemoStore) GetCart(userID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCart()
}

func (s *DemoStore) loadCart() ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := s.read("cart", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *DemoStore) AddCartItem(userID string, product *models.Product, size string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadCart()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ProductID == product.ID && items[i].SelectedSize == size {
			items[i].Quantity += quantity
			items[i].UpdatedAt = time.Now()
			if err := s.write("cart", items); err != nil {
				return nil, err
			}
			return &items[i], nil
		}
	}

	now := time.Now()
	item := models.CartItem{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProductID:    product.ID,
		SelectedSize: size,
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	item.Snapshot(product)
	items = append(items, item)
	if err := s.write("cart", items); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *DemoStore) UpdateCartQuantity(userID, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadCart()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			items[i].UpdatedAt = time.Now()
			return s.write("cart", items)
		}
	}
	return ErrNotFound
}

func (s *DemoStore) RemoveCartItem(userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadCart()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == itemID {
			items = append(items[:i], items[i+1:]...)
			return s.write("cart", items)
		}
	}
	return ErrNotFound
}

func (s *DemoStore) ClearCart(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path("cart"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ---- Orders ----

func (s *DemoStore) GetOrders(userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrders()
}

func (s *DemoStore) loadOrders() ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.read("orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *DemoStore) GetOrder(userID, orderID string) (*models.Order, error) {
	orders, err := s.GetOrders(userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *DemoStore) PlaceOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders()
	if err != nil {
		return err
	}
	// newest first, matching the remote branch's read order
	orders = append([]models.Order{*order}, orders...)
	if err := s.write("orders", orders); err != nil {
		return err
	}
	err = os.Remove(s.path("cart"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *DemoStore) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.loadOrders()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			orders[i].UpdatedAt = time.Now()
			return s.write("orders", orders)
		}
	}
	return ErrNotFound
}

// ---- Bypass profile ----

// Profile returns the saved demo profile, or nil when the demo identity has
// not completed sign-up yet.
func (s *DemoStore) Profile() (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile *models.UserProfile
	if err := s.read("profile", &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *DemoStore) SaveProfile(profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write("profile", profile)
}

// ClearProfile drops the bypass identity; cart and order files are kept.
func (s *DemoStore) ClearProfile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path("profile"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
