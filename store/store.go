package store

import (
	"errors"

	"github.com/chikankari-studio/storefront-api/models"
	"gorm.io/gorm"
)

// Reserved demo identity. Anything persisted for it lives in the local file
// store, never in the database.
const (
	DemoUserID = "demo-user-7268991581"
	DemoPhone  = "7268991581"
	DemoOTP    = "123456"
)

var ErrNotFound = errors.New("store: record not found")

func IsDemoUser(userID string) bool {
	return userID == DemoUserID
}

// Store is the per-identity persistence surface. Cart and order logic above
// this interface is written once and does not know which branch it talks to.
type Store interface {
	GetCart(userID string) ([]models.CartItem, error)
	// AddCartItem merges into an existing product+size line (incrementing its
	// quantity) or inserts a new line with a product snapshot.
	AddCartItem(userID string, product *models.Product, size string, quantity int) (*models.CartItem, error)
	UpdateCartQuantity(userID, itemID string, quantity int) error
	RemoveCartItem(userID, itemID string) error
	ClearCart(userID string) error

	GetOrders(userID string) ([]models.Order, error)
	GetOrder(userID, orderID string) (*models.Order, error)
	// PlaceOrder creates the order with its lines and clears the user's cart.
	// The two writes and the delete succeed or fail together.
	PlaceOrder(order *models.Order) error
	UpdateOrderStatus(orderID string, status models.OrderStatus) error
}

// Selector hands out the right branch for an identity.
type Selector struct {
	remote *RemoteStore
	demo   *DemoStore
}

func NewSelector(db *gorm.DB, demoDir string) (*Selector, error) {
	demo, err := NewDemoStore(demoDir)
	if err != nil {
		return nil, err
	}
	return &Selector{remote: NewRemoteStore(db), demo: demo}, nil
}

// ForUser returns the demo branch for the reserved id, the remote branch for
// everyone else.
func (s *Selector) ForUser(userID string) Store {
	if IsDemoUser(userID) {
		return s.demo
	}
	return s.remote
}

func (s *Selector) Demo() *DemoStore     { return s.demo }
func (s *Selector) Remote() *RemoteStore { return s.remote }
