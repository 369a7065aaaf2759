package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^CHK\d{6}[0-9A-Z]{4}$`)
	for i := 0; i < 20; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestBuildOrder(t *testing.T) {
	discount := 400.0
	items := []models.CartItem{
		{
			ID:                   "line-1",
			ProductID:            "p1",
			SelectedSize:         "M",
			Quantity:             2,
			ProductName:          "Anarkali Set",
			ProductImage:         "img-1.jpg",
			ProductPrice:         500,
			ProductDiscountPrice: &discount,
		},
		{
			ID:           "line-2",
			ProductID:    "p2",
			SelectedSize: "L",
			Quantity:     1,
			ProductName:  "Palazzo",
			ProductImage: "img-2.jpg",
			ProductPrice: 150,
		},
	}
	req := CheckoutRequest{
		FullName:      "Asha Verma",
		Phone:         "9876543210",
		AddressLine1:  "12 Hazratganj",
		City:          "Lucknow",
		State:         "UP",
		Pincode:       "226001",
		PaymentMethod: "cod",
	}

	order := BuildOrder("user-1", req, items)

	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
	// 400*2 + 150 = 950, under the threshold → +50 shipping
	assert.Equal(t, 1000.0, order.TotalAmount)
	assert.Equal(t, "Asha Verma", order.ShippingAddress.FullName)
	assert.Equal(t, "226001", order.ShippingAddress.Pincode)
	assert.Equal(t, "9876543210", order.PhoneNumber)

	require.Len(t, order.Items, 2)
	assert.Equal(t, order.ID, order.Items[0].OrderID)
	assert.Equal(t, "Anarkali Set", order.Items[0].ProductName)
	assert.Equal(t, 400.0, order.Items[0].Price, "order line keeps the discounted unit price")
	assert.Equal(t, "M", order.Items[0].Size)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func newCheckoutRouter(t *testing.T) (*gin.Engine, *store.Selector) {
	t.Helper()
	sel, err := store.NewSelector(nil, t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	r.POST("/user/checkout", func(c *gin.Context) {
		c.Set("user_id", store.DemoUserID)
	}, Checkout(sel))
	return r, sel
}

func postCheckout(r *gin.Engine, body CheckoutRequest) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/user/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		FullName:      "Asha Verma",
		Phone:         "9876543210",
		AddressLine1:  "12 Hazratganj",
		City:          "Lucknow",
		State:         "UP",
		Pincode:       "226001",
		PaymentMethod: "cod",
	}
}

func TestCheckoutEmptyCartRedirectsToCart(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	w := postCheckout(r, validCheckoutRequest())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"/cart"`)
}

func TestCheckoutRejectsDisabledGateway(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	req := validCheckoutRequest()
	req.PaymentMethod = "paytm"
	w := postCheckout(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRejectsMissingAddressFields(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	req := validCheckoutRequest()
	req.Pincode = ""
	w := postCheckout(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	r, sel := newCheckoutRouter(t)

	product := &models.Product{
		ID:          "p1",
		Name:        "Chikankari Kurta",
		Price:       500,
		Images:      []string{"kurta.jpg"},
		Sizes:       []models.SizeOption{{Size: "M", Stock: 5}},
		IsAvailable: true,
		SKU:         "SKU-p1",
	}
	_, err := sel.Demo().AddCartItem(store.DemoUserID, product, "M", 2)
	require.NoError(t, err)

	w := postCheckout(r, validCheckoutRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OrderID     string       `json:"order_id"`
		OrderNumber string       `json:"order_number"`
		Order       models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderID)
	assert.Regexp(t, `^CHK`, resp.OrderNumber)
	// 500 × 2 = 1000 ≥ 999 → free shipping
	assert.Equal(t, 1000.0, resp.Order.TotalAmount)

	items, err := sel.Demo().GetCart(store.DemoUserID)
	require.NoError(t, err)
	assert.Empty(t, items, "cart is cleared by checkout")

	order, err := sel.Demo().GetOrder(store.DemoUserID, resp.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Chikankari Kurta", order.Items[0].ProductName)
}

func TestUpdateOrderStatusFallsBackToDemoBranch(t *testing.T) {
	// seeded via checkout, updated through the admin handler path
	sel, err := store.NewSelector(nil, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, sel.Demo().PlaceOrder(&models.Order{ID: "o1", UserID: store.DemoUserID, Status: models.OrderStatusPlaced}))

	require.NoError(t, sel.Demo().UpdateOrderStatus("o1", models.OrderStatusPacked))
	order, err := sel.Demo().GetOrder(store.DemoUserID, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPacked, order.Status)
}
