package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zelligewear/zellige-api/internal/cart"
	"github.com/zelligewear/zellige-api/internal/models"
)

// ErrInvalid marks input rejected before any write. Handlers map it to a
// 400; everything else is a write failure.
var ErrInvalid = errors.New("invalid checkout input")

// OrderWriter persists the orders produced by a checkout. The store-backed
// implementation writes all of them in one transaction, so a multi-line
// cart checkout is all-or-nothing.
type OrderWriter interface {
	CreateOrders(ctx context.Context, orders []models.Order) error
}

// ContactInfo is the shared contact block collected by both checkout paths.
type ContactInfo struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	IsWhatsApp bool   `json:"isWhatsApp"`
}

// Address is the structured shipping address. It is stored on the order as
// one composed line, the format existing order documents already use.
type Address struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// Compose flattens the address to the stored single-line form.
func (a Address) Compose() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.Zip, a.Country)
}

// ItemOptions is the per-line color/size choice on a cart checkout.
// Unset fields fall back to the product's first available option.
type ItemOptions struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// SingleInput is a direct "buy now" purchase of one product.
type SingleInput struct {
	Product       models.Product
	Quantity      int
	Color         string
	Size          string
	Contact       ContactInfo
	Address       Address
	TermsAccepted bool
	UserID        string
}

// CartInput is a checkout of the user's whole cart. Contact and address are
// shared across every resulting order.
type CartInput struct {
	Lines         []cart.Line
	Options       map[string]ItemOptions // keyed by product ID
	Contact       ContactInfo
	Address       Address
	TermsAccepted bool
	UserID        string
}

// Service turns checkout submissions into persisted orders.
type Service struct {
	orders OrderWriter
	now    func() time.Time
	newID  func() string
}

// NewService wires a checkout service onto an order writer.
func NewService(orders OrderWriter) *Service {
	return &Service{
		orders: orders,
		now:    time.Now,
		newID:  NewOrderNumber,
	}
}

// NewOrderNumber issues an order identifier. The ORD prefix keeps the
// existing display convention; the uuid replaces the old wall-clock
// concatenation, which could collide within a millisecond.
func NewOrderNumber() string {
	return "ORD-" + uuid.NewString()
}

// CheckoutProduct places one order for a single product and returns it.
func (s *Service) CheckoutProduct(ctx context.Context, in SingleInput) (models.Order, error) {
	if err := validateShared(in.Contact, in.Address, in.TermsAccepted, in.UserID); err != nil {
		return models.Order{}, err
	}
	if in.Quantity < 1 {
		return models.Order{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalid)
	}

	order, err := s.buildOrder(in.Product, in.Quantity, in.Color, in.Size, in.Contact, in.Address, in.UserID)
	if err != nil {
		return models.Order{}, err
	}
	if err := s.orders.CreateOrders(ctx, []models.Order{order}); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// CheckoutCart places one order per cart line. Either every line becomes an
// order or none does; on success the caller clears the cart.
func (s *Service) CheckoutCart(ctx context.Context, in CartInput) ([]models.Order, error) {
	if err := validateShared(in.Contact, in.Address, in.TermsAccepted, in.UserID); err != nil {
		return nil, err
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalid)
	}

	orders := make([]models.Order, 0, len(in.Lines))
	for _, line := range in.Lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalid)
		}
		opts := in.Options[line.Product.ID]
		order, err := s.buildOrder(line.Product, line.Quantity, opts.Color, opts.Size, in.Contact, in.Address, in.UserID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := s.orders.CreateOrders(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) buildOrder(product models.Product, quantity int, color, size string, contact ContactInfo, addr Address, userID string) (models.Order, error) {
	price, err := decimal.NewFromString(product.Price)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: product %s has unparsable price %q", ErrInvalid, product.ID, product.Price)
	}
	total, _ := price.Mul(decimal.NewFromInt(int64(quantity))).Float64()

	if color == "" && len(product.Details.Colors) > 0 {
		color = product.Details.Colors[0].Name
	}
	if size == "" && len(product.Details.Sizes) > 0 {
		size = product.Details.Sizes[0]
	}

	now := s.now().UTC().Format(time.RFC3339)
	return models.Order{
		ID:           s.newID(),
		Product:      product,
		CustomerName: contact.FullName,
		Email:        contact.Email,
		Phone:        contact.Phone,
		IsWhatsApp:   contact.IsWhatsApp,
		Address:      addr.Compose(),
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
		Total:        total,
		UserID:       userID,
		Quantity:     quantity,
		HasReviewed:  false,
		Details: &models.OrderDetails{
			Color:         color,
			Size:          size,
			PaymentMethod: "cod",
		},
	}, nil
}

func validateShared(contact ContactInfo, addr Address, terms bool, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: not signed in", ErrInvalid)
	}
	if !terms {
		return fmt.Errorf("%w: terms and conditions must be accepted", ErrInvalid)
	}
	if contact.FullName == "" || contact.Email == "" || contact.Phone == "" {
		return fmt.Errorf("%w: name, email and phone are required", ErrInvalid)
	}
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.Zip == "" || addr.Country == "" {
		return fmt.Errorf("%w: complete shipping address is required", ErrInvalid)
	}
	return nil
}
