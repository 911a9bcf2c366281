package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zelligewear/zellige-api/internal/cart"
	"github.com/zelligewear/zellige-api/internal/models"
)

type fakeWriter struct {
	created []models.Order
	err     error
}

func (f *fakeWriter) CreateOrders(_ context.Context, orders []models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, orders...)
	return nil
}

func testProduct(id, price string) models.Product {
	return models.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: price,
		Details: models.ProductDetails{
			Type:   "T-Shirt",
			Sizes:  []string{"S", "M", "L"},
			Colors: []models.ProductColor{{Name: "Indigo", Hex: "#264653"}, {Name: "Sand", Hex: "#e9c46a"}},
		},
	}
}

func validContact() ContactInfo {
	return ContactInfo{FullName: "Amina K", Email: "amina@example.com", Phone: "+212600000000"}
}

func validAddress() Address {
	return Address{Street: "12 Rue Zellige", City: "Marrakech", State: "MK", Zip: "40000", Country: "Morocco"}
}

func newTestService(w OrderWriter) *Service {
	s := NewService(w)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestCheckoutProductBuildsOrderFromSnapshot(t *testing.T) {
	w := &fakeWriter{}
	s := newTestService(w)

	order, err := s.CheckoutProduct(context.Background(), SingleInput{
		Product:       testProduct("p1", "19.99"),
		Quantity:      3,
		Color:         "Sand",
		Size:          "L",
		Contact:       validContact(),
		Address:       validAddress(),
		TermsAccepted: true,
		UserID:        "u1",
	})
	require.NoError(t, err)
	require.Len(t, w.created, 1)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, models.StatusPending, order.Status)
	assert.InDelta(t, 59.97, order.Total, 0.0001)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, "p1", order.Product.ID)
	assert.Equal(t, "19.99", order.Product.Price)
	assert.Equal(t, "u1", order.UserID)
	assert.False(t, order.HasReviewed)
	require.NotNil(t, order.Details)
	assert.Equal(t, "Sand", order.Details.Color)
	assert.Equal(t, "L", order.Details.Size)
	assert.Equal(t, "cod", order.Details.PaymentMethod)
	assert.Equal(t, "12 Rue Zellige, Marrakech, MK 40000, Morocco", order.Address)
	assert.Equal(t, "2025-06-01T12:00:00Z", order.CreatedAt)
}

func TestCheckoutProductDefaultsColorAndSize(t *testing.T) {
	w := &fakeWriter{}
	s := newTestService(w)

	order, err := s.CheckoutProduct(context.Background(), SingleInput{
		Product:       testProduct("p1", "10.00"),
		Quantity:      1,
		Contact:       validContact(),
		Address:       validAddress(),
		TermsAccepted: true,
		UserID:        "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Indigo", order.Details.Color)
	assert.Equal(t, "S", order.Details.Size)
}

func TestCheckoutProductValidation(t *testing.T) {
	s := newTestService(&fakeWriter{})
	base := SingleInput{
		Product:       testProduct("p1", "10.00"),
		Quantity:      1,
		Contact:       validContact(),
		Address:       validAddress(),
		TermsAccepted: true,
		UserID:        "u1",
	}

	cases := map[string]func(*SingleInput){
		"terms not accepted": func(in *SingleInput) { in.TermsAccepted = false },
		"missing user":       func(in *SingleInput) { in.UserID = "" },
		"zero quantity":      func(in *SingleInput) { in.Quantity = 0 },
		"missing phone":      func(in *SingleInput) { in.Contact.Phone = "" },
		"missing city":       func(in *SingleInput) { in.Address.City = "" },
		"bad price":          func(in *SingleInput) { in.Product.Price = "free" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := s.CheckoutProduct(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCheckoutCartCreatesOneOrderPerLine(t *testing.T) {
	w := &fakeWriter{}
	s := newTestService(w)

	lines := []cart.Line{
		{Product: testProduct("a", "10.00"), Quantity: 2},
		{Product: testProduct("b", "25.00"), Quantity: 1},
	}
	orders, err := s.CheckoutCart(context.Background(), CartInput{
		Lines:         lines,
		Options:       map[string]ItemOptions{"b": {Color: "Sand", Size: "M"}},
		Contact:       validContact(),
		Address:       validAddress(),
		TermsAccepted: true,
		UserID:        "u1",
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Len(t, w.created, 2)

	assert.InDelta(t, 20.00, orders[0].Total, 0.0001)
	assert.InDelta(t, 25.00, orders[1].Total, 0.0001)
	assert.Equal(t, "a", orders[0].Product.ID)
	assert.Equal(t, "b", orders[1].Product.ID)
	assert.NotEqual(t, orders[0].ID, orders[1].ID)

	// Shared contact/address on every resulting order.
	for _, o := range orders {
		assert.Equal(t, "Amina K", o.CustomerName)
		assert.Equal(t, "12 Rue Zellige, Marrakech, MK 40000, Morocco", o.Address)
	}

	// Line without explicit options falls back to first available.
	assert.Equal(t, "Indigo", orders[0].Details.Color)
	assert.Equal(t, "S", orders[0].Details.Size)
	assert.Equal(t, "Sand", orders[1].Details.Color)
	assert.Equal(t, "M", orders[1].Details.Size)
}

func TestCheckoutCartRejectsEmptyCart(t *testing.T) {
	s := newTestService(&fakeWriter{})
	_, err := s.CheckoutCart(context.Background(), CartInput{
		Contact:       validContact(),
		Address:       validAddress(),
		TermsAccepted: true,
		UserID:        "u1",
	})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCheckoutCartBadLineAbortsWholeBatch(t *testing.T) {
	w := &fakeWriter{}
	s := newTestService(w)

	lines := []cart.Line{
		{Product: testProduct("a", "10.00"), Quantity: 2},
		{Product: testProduct("b", "not-a-price"), Quantity: 1},
	}
	_, err := s.CheckoutCart(context.Background(), CartInput{
		Lines:         lines,
		Contact:       validContact(),
		Address:       validAddress(),
		TermsAccepted: true,
		UserID:        "u1",
	})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, w.created, "no order may be written when any line is invalid")
}

func TestCheckoutSurfacesWriterFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New("write failed")}
	s := newTestService(w)

	_, err := s.CheckoutProduct(context.Background(), SingleInput{
		Product:       testProduct("p1", "10.00"),
		Quantity:      1,
		Contact:       validContact(),
		Address:       validAddress(),
		TermsAccepted: true,
		UserID:        "u1",
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestNewOrderNumbersAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewOrderNumber()
		assert.True(t, strings.HasPrefix(id, "ORD-"))
		assert.False(t, seen[id])
		seen[id] = true
	}
}
