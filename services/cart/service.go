package cartservice

import (
	"context"

	"github.com/saisantosh1998/qkartBackend/apierror"
	"github.com/saisantosh1998/qkartBackend/models"
	"github.com/saisantosh1998/qkartBackend/repository"
)

// Error messages surfaced to the HTTP boundary. The frontend matches on
// some of these strings, so changing them is a breaking change.
const (
	MsgNoCart              = "User does not have a cart"
	MsgProductMissing      = "Product doesn't exist in database"
	MsgDuplicateProduct    = "Product already in cart. Use the cart sidebar to update or remove product from cart"
	MsgProductNotInCart    = "Product not in cart"
	MsgEmptyCart           = "Cart is empty"
	MsgAddressNotSet       = "Address not set"
	MsgInsufficientBalance = "User has insufficient money to process"
)

// Service implements the cart and checkout rules on top of the cart,
// catalog and user stores. Every operation re-fetches the cart at the
// start and writes back at the end; there is no state between calls.
type Service struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	users    repository.UserRepository

	defaultPaymentOption string
}

func New(carts repository.CartRepository, products repository.ProductRepository, users repository.UserRepository, defaultPaymentOption string) *Service {
	return &Service{
		carts:                carts,
		products:             products,
		users:                users,
		defaultPaymentOption: defaultPaymentOption,
	}
}

// GetCartByEmail returns the user's cart, or a 404 when none exists.
func (s *Service) GetCartByEmail(ctx context.Context, user *models.User) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apierror.NotFound(MsgNoCart)
	}
	return cart, nil
}

// AddProductToCart appends a snapshot of the product to the user's cart,
// creating the cart on first use. Adding a product that is already in the
// cart is rejected; quantity changes go through UpdateProductInCart.
// Unexpected store faults are reported as 500s carrying the original
// failure's message.
func (s *Service) AddProductToCart(ctx context.Context, user *models.User, productID uint, quantity int) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if cart == nil {
		cart, err = s.carts.Create(ctx, user.Email, s.defaultPaymentOption)
		if err != nil {
			return nil, apierror.Internal(err)
		}
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return nil, apierror.BadRequest(MsgDuplicateProduct)
		}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if product == nil {
		return nil, apierror.BadRequest(MsgProductMissing)
	}

	cart.Items = append(cart.Items, models.NewCartItem(product, quantity))

	saved, err := s.carts.Save(ctx, cart)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	return saved, nil
}

// UpdateProductInCart overwrites the quantity of a line item already in the
// cart. The quantity replaces the stored one, it does not accumulate.
func (s *Service) UpdateProductInCart(ctx context.Context, user *models.User, productID uint, quantity int) (*models.Cart, error) {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apierror.BadRequest(MsgNoCart)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apierror.BadRequest(MsgProductMissing)
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierror.BadRequest(MsgProductNotInCart)
	}

	cart.Items[idx].Quantity = quantity
	return s.carts.Save(ctx, cart)
}

// DeleteProductFromCart removes the matching line item from the cart.
func (s *Service) DeleteProductFromCart(ctx context.Context, user *models.User, productID uint) error {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if cart == nil {
		return apierror.BadRequest(MsgNoCart)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apierror.BadRequest(MsgProductMissing)
	}

	kept := cart.Items[:0]
	found := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return apierror.BadRequest(MsgProductNotInCart)
	}

	cart.Items = kept
	_, err = s.carts.Save(ctx, cart)
	return err
}

// Checkout debits the cart's total from the user's wallet and empties the
// cart. Guards run in a fixed order: cart exists, cart non-empty, address
// set, balance sufficient. The total uses each item's snapshotted cost,
// not a live catalog lookup.
func (s *Service) Checkout(ctx context.Context, user *models.User) error {
	cart, err := s.carts.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if cart == nil {
		return apierror.NotFound(MsgNoCart)
	}
	if len(cart.Items) == 0 {
		return apierror.BadRequest(MsgEmptyCart)
	}
	if !user.HasSetNonDefaultAddress() {
		return apierror.BadRequest(MsgAddressNotSet)
	}

	total := cart.TotalCost()
	if total > user.WalletMoney {
		return apierror.BadRequest(MsgInsufficientBalance)
	}

	user.WalletMoney -= total
	if _, err := s.users.Save(ctx, user); err != nil {
		return err
	}

	// The wallet debit above is not rolled back if clearing the cart fails;
	// the two records can diverge.
	cart.Items = []models.CartItem{}
	_, err = s.carts.Save(ctx, cart)
	return err
}
