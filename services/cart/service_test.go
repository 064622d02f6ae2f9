package cartservice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/saisantosh1998/qkartBackend/apierror"
	"github.com/saisantosh1998/qkartBackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultPaymentOption = "PAYMENT_OPTION_DEFAULT"

// In-memory stores implementing the repository contracts.

type fakeCartRepo struct {
	carts   map[string]*models.Cart
	nextID  uint
	saveErr error
	findErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*models.Cart{}, nextID: 1}
}

func (f *fakeCartRepo) FindByEmail(ctx context.Context, email string) (*models.Cart, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	cart, ok := f.carts[email]
	if !ok {
		return nil, nil
	}
	copied := *cart
	copied.Items = append([]models.CartItem{}, cart.Items...)
	return &copied, nil
}

func (f *fakeCartRepo) Create(ctx context.Context, email, paymentOption string) (*models.Cart, error) {
	cart := &models.Cart{
		CartID:        f.nextID,
		Email:         email,
		Items:         []models.CartItem{},
		PaymentOption: paymentOption,
	}
	f.nextID++
	f.carts[email] = cart
	return cart, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	copied := *cart
	copied.Items = append([]models.CartItem{}, cart.Items...)
	f.carts[cart.Email] = &copied
	return cart, nil
}

type fakeProductRepo struct {
	products map[uint]*models.Product
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	return f.products[id], nil
}

type fakeUserRepo struct {
	saved   []*models.User
	saveErr error
}

func (f *fakeUserRepo) Save(ctx context.Context, user *models.User) (*models.User, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = append(f.saved, user)
	return user, nil
}

type fixture struct {
	svc      *Service
	carts    *fakeCartRepo
	products *fakeProductRepo
	users    *fakeUserRepo
}

func newFixture(products ...*models.Product) *fixture {
	byID := map[uint]*models.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	carts := newFakeCartRepo()
	prods := &fakeProductRepo{products: byID}
	users := &fakeUserRepo{}
	return &fixture{
		svc:      New(carts, prods, users, defaultPaymentOption),
		carts:    carts,
		products: prods,
		users:    users,
	}
}

func testUser(withAddress bool, wallet float64) *models.User {
	u := &models.User{
		ID:          "u-1",
		Email:       "crio-user@gmail.com",
		Name:        "crio user",
		WalletMoney: wallet,
	}
	if withAddress {
		u.Address = models.Address{
			Country: "IN", State: "KA", City: "Bangalore",
			Street: "4/39 Ittamadu", PostalCode: "560085",
		}
	}
	return u
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *apierror.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.StatusCode)
	assert.Equal(t, message, apiErr.Message)
}

func TestGetCartByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("no cart -> 404", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.GetCartByEmail(ctx, testUser(true, 500))
		requireAPIError(t, err, http.StatusNotFound, MsgNoCart)
	})

	t.Run("existing cart is returned with items", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Name: "Phone", Cost: 100})
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 2)
		require.NoError(t, err)

		cart, err := f.svc.GetCartByEmail(ctx, user)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, uint(10), cart.Items[0].ProductID)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})
}

func TestAddProductToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("first add creates the cart with one item", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Name: "Phone", Category: "Electronics", Cost: 100})
		user := testUser(true, 500)

		cart, err := f.svc.AddProductToCart(ctx, user, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, user.Email, cart.Email)
		assert.Equal(t, defaultPaymentOption, cart.PaymentOption)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "Phone", cart.Items[0].ProductName)
		assert.Equal(t, float64(100), cart.Items[0].ProductCost)
		assert.Equal(t, 3, cart.Items[0].Quantity)
	})

	t.Run("duplicate product -> 400 and cart unchanged", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)

		_, err = f.svc.AddProductToCart(ctx, user, 10, 5)
		requireAPIError(t, err, http.StatusBadRequest, MsgDuplicateProduct)

		cart, err := f.svc.GetCartByEmail(ctx, user)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})

	t.Run("unknown product -> 400", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.AddProductToCart(ctx, testUser(true, 500), 999, 1)
		requireAPIError(t, err, http.StatusBadRequest, MsgProductMissing)
	})

	t.Run("snapshot is insulated from later catalog changes", func(t *testing.T) {
		product := &models.Product{ID: 10, Name: "Phone", Cost: 100}
		f := newFixture(product)
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)

		product.Cost = 9999

		cart, err := f.svc.GetCartByEmail(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, float64(100), cart.Items[0].ProductCost)
	})

	t.Run("store fault -> 500 with underlying message", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		f.carts.saveErr = errors.New("connection reset by peer")

		_, err := f.svc.AddProductToCart(ctx, testUser(true, 500), 10, 1)
		requireAPIError(t, err, http.StatusInternalServerError, "connection reset by peer")
	})
}

func TestUpdateProductInCart(t *testing.T) {
	ctx := context.Background()

	t.Run("no cart -> 400", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		_, err := f.svc.UpdateProductInCart(ctx, testUser(true, 500), 10, 2)
		requireAPIError(t, err, http.StatusBadRequest, MsgNoCart)
	})

	t.Run("unknown product -> 400", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)

		_, err = f.svc.UpdateProductInCart(ctx, user, 999, 2)
		requireAPIError(t, err, http.StatusBadRequest, MsgProductMissing)
	})

	t.Run("product not in cart -> 400", func(t *testing.T) {
		f := newFixture(
			&models.Product{ID: 10, Cost: 100},
			&models.Product{ID: 11, Cost: 50},
		)
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)

		_, err = f.svc.UpdateProductInCart(ctx, user, 11, 2)
		requireAPIError(t, err, http.StatusBadRequest, MsgProductNotInCart)
	})

	t.Run("quantity is overwritten, not accumulated", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 2)
		require.NoError(t, err)

		cart, err := f.svc.UpdateProductInCart(ctx, user, 10, 5)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})
}

func TestDeleteProductFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("no cart -> 400", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		err := f.svc.DeleteProductFromCart(ctx, testUser(true, 500), 10)
		requireAPIError(t, err, http.StatusBadRequest, MsgNoCart)
	})

	t.Run("removes the matching item and keeps the rest", func(t *testing.T) {
		f := newFixture(
			&models.Product{ID: 10, Cost: 100},
			&models.Product{ID: 11, Cost: 50},
		)
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)
		_, err = f.svc.AddProductToCart(ctx, user, 11, 2)
		require.NoError(t, err)

		require.NoError(t, f.svc.DeleteProductFromCart(ctx, user, 10))

		cart, err := f.svc.GetCartByEmail(ctx, user)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, uint(11), cart.Items[0].ProductID)
	})

	t.Run("update or delete after removal -> 400", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)
		require.NoError(t, f.svc.DeleteProductFromCart(ctx, user, 10))

		_, err = f.svc.UpdateProductInCart(ctx, user, 10, 2)
		requireAPIError(t, err, http.StatusBadRequest, MsgProductNotInCart)

		err = f.svc.DeleteProductFromCart(ctx, user, 10)
		requireAPIError(t, err, http.StatusBadRequest, MsgProductNotInCart)
	})
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("no cart -> 404", func(t *testing.T) {
		f := newFixture()
		err := f.svc.Checkout(ctx, testUser(true, 500))
		requireAPIError(t, err, http.StatusNotFound, MsgNoCart)
	})

	t.Run("empty cart -> 400", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)
		require.NoError(t, f.svc.DeleteProductFromCart(ctx, user, 10))

		err = f.svc.Checkout(ctx, user)
		requireAPIError(t, err, http.StatusBadRequest, MsgEmptyCart)
	})

	t.Run("address unset -> 400, wallet untouched", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(false, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)

		err = f.svc.Checkout(ctx, user)
		requireAPIError(t, err, http.StatusBadRequest, MsgAddressNotSet)
		assert.Equal(t, float64(500), user.WalletMoney)
		assert.Empty(t, f.users.saved)
	})

	t.Run("insufficient balance -> 400, wallet and cart untouched", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 300})
		user := testUser(true, 500)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 2)
		require.NoError(t, err)

		err = f.svc.Checkout(ctx, user)
		requireAPIError(t, err, http.StatusBadRequest, MsgInsufficientBalance)
		assert.Equal(t, float64(500), user.WalletMoney)

		cart, err := f.svc.GetCartByEmail(ctx, user)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	})

	t.Run("success debits wallet and empties cart", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(true, 1000)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 2)
		require.NoError(t, err)

		require.NoError(t, f.svc.Checkout(ctx, user))
		assert.Equal(t, float64(800), user.WalletMoney)
		require.Len(t, f.users.saved, 1)

		cart, err := f.svc.GetCartByEmail(ctx, user)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("total uses snapshotted cost, not the live catalog", func(t *testing.T) {
		product := &models.Product{ID: 10, Cost: 100}
		f := newFixture(product)
		user := testUser(true, 1000)
		_, err := f.svc.AddProductToCart(ctx, user, 10, 2)
		require.NoError(t, err)

		// Price hike after the item was added must not affect checkout.
		product.Cost = 5000

		require.NoError(t, f.svc.Checkout(ctx, user))
		assert.Equal(t, float64(800), user.WalletMoney)
	})

	t.Run("guards run in order: empty cart wins over address and balance", func(t *testing.T) {
		f := newFixture(&models.Product{ID: 10, Cost: 100})
		user := testUser(false, 0) // address unset AND broke
		_, err := f.svc.AddProductToCart(ctx, user, 10, 1)
		require.NoError(t, err)
		require.NoError(t, f.svc.DeleteProductFromCart(ctx, user, 10))

		err = f.svc.Checkout(ctx, user)
		requireAPIError(t, err, http.StatusBadRequest, MsgEmptyCart)
	})
}
