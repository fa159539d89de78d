package clients_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shield/internal/core/application/clients"
	"shield/internal/core/domain/model/foodbox"
	"shield/internal/core/domain/model/kernel"
	"shield/internal/core/domain/model/order"
	"shield/internal/pkg/errs"
)

type MockTransport struct{ mock.Mock }

func (m *MockTransport) Get(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

func (m *MockTransport) Post(ctx context.Context, path string, body string) (string, error) {
	args := m.Called(ctx, path, body)
	return args.String(0), args.Error(1)
}

const testCHI = "1111111234"

const testIdentityResponse = `{"postcode":"EH1_1AA","name":"Alice","surname":"Smith","phoneNumber":"0131496000"}`

const testCatalogResponse = `[
	{"id":1,"name":"box a","diet":"none","delivered_by":"catering",
		"contents":[{"id":1,"name":"cucumbers","quantity":1},{"id":2,"name":"tomatoes","quantity":2}]},
	{"id":2,"name":"box b","diet":"none","delivered_by":"catering",
		"contents":[{"id":3,"name":"bread","quantity":1}]},
	{"id":3,"name":"box c","diet":"none","delivered_by":"catering",
		"contents":[{"id":4,"name":"cheese","quantity":2}]}
]`

func newIndividual(t *testing.T) (*clients.IndividualClient, *MockTransport) {
	t.Helper()
	transport := new(MockTransport)
	client, err := clients.NewIndividualClient(transport, nil)
	require.NoError(t, err)
	return client, transport
}

func registerIndividual(t *testing.T, ctx context.Context, client *clients.IndividualClient, transport *MockTransport) {
	t.Helper()
	transport.On("Get", ctx, "/registerShieldingIndividual?CHI="+testCHI).
		Return(testIdentityResponse, nil).Once()
	require.NoError(t, client.Register(ctx, testCHI))
}

func trackedOrder(t *testing.T, client *clients.IndividualClient, id int, status order.Status) {
	t.Helper()
	chi, err := kernel.NewCHI(testCHI)
	require.NoError(t, err)
	content, err := foodbox.NewContent(1, "cucumbers", 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, chi, "KitchenA", []foodbox.Content{content},
		time.Now(), nil, nil, nil, status)
	require.NoError(t, err)
	require.NoError(t, client.TrackOrder(o))
}

func TestIndividualClientRegister(t *testing.T) {
	t.Run("should store identity on fresh registration", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/registerShieldingIndividual?CHI="+testCHI).
			Return(testIdentityResponse, nil).Once()

		err := client.Register(ctx, testCHI)

		require.NoError(t, err)
		assert.True(t, client.IsRegistered())
		assert.Equal(t, testCHI, client.CHI())
		assert.Equal(t, "EH1_1AA", client.Identity().Postcode)
		assert.Equal(t, "Alice", client.Identity().Name)
		transport.AssertExpectations(t)
	})

	t.Run("should be idempotent without a second request", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/registerShieldingIndividual?CHI="+testCHI).
			Return(testIdentityResponse, nil).Once()

		require.NoError(t, client.Register(ctx, testCHI))
		identity := client.Identity()

		require.NoError(t, client.Register(ctx, testCHI))

		assert.True(t, client.IsRegistered())
		assert.Equal(t, identity, client.Identity())
		transport.AssertNumberOfCalls(t, "Get", 1)
	})

	t.Run("should leave identity unset on already registered reply", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/registerShieldingIndividual?CHI="+testCHI).
			Return("already registered", nil).Once()

		err := client.Register(ctx, testCHI)

		require.NoError(t, err)
		assert.True(t, client.IsRegistered())
		assert.Equal(t, clients.Identity{}, client.Identity())
	})

	t.Run("should reject malformed CHI without a request", func(t *testing.T) {
		client, transport := newIndividual(t)

		for _, chi := range []string{"", "12345", "abcdefghij", "3213111234", "1113111234"} {
			err := client.Register(t.Context(), chi)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, chi)
		}
		assert.False(t, client.IsRegistered())
		transport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should surface unexpected response", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, mock.Anything).Return("something odd", nil).Once()

		err := client.Register(ctx, testCHI)

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
		assert.ErrorContains(t, err, "something odd")
		assert.False(t, client.IsRegistered())
	})

	t.Run("should fail on transport error without state change", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, mock.Anything).Return("", errors.New("connection refused")).Once()

		err := client.Register(ctx, testCHI)

		assert.Error(t, err)
		assert.False(t, client.IsRegistered())
	})
}

func TestIndividualClientShowFoodBoxes(t *testing.T) {
	t.Run("should return fetched ids and mirror the catalog", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/showFoodBox?orderOption=catering&dietaryPreference=none").
			Return(testCatalogResponse, nil).Once()

		ids, err := client.ShowFoodBoxes(ctx, "none")

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids)
		assert.Equal(t, 3, client.FoodBoxCount())
		assert.Equal(t, []int{1, 2, 3}, client.FoodBoxIDs())
	})

	t.Run("should accumulate duplicates on refetch", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/showFoodBox?orderOption=catering&dietaryPreference=none").
			Return(testCatalogResponse, nil).Twice()

		_, err := client.ShowFoodBoxes(ctx, "none")
		require.NoError(t, err)
		_, err = client.ShowFoodBoxes(ctx, "none")
		require.NoError(t, err)

		assert.Equal(t, 6, client.FoodBoxCount())
	})

	t.Run("should reject unknown dietary preference without a request", func(t *testing.T) {
		client, transport := newIndividual(t)

		_, err := client.ShowFoodBoxes(t.Context(), "carnivore")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		transport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should surface unparseable catalog", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, mock.Anything).Return("not a catalog", nil).Once()

		_, err := client.ShowFoodBoxes(ctx, "vegan")

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
		assert.Equal(t, 0, client.FoodBoxCount())
	})

	t.Run("should return nil ids before any fetch", func(t *testing.T) {
		client, _ := newIndividual(t)

		assert.Nil(t, client.FoodBoxIDs())
	})
}

func TestIndividualClientFoodBoxSelection(t *testing.T) {
	fetchCatalog := func(t *testing.T, ctx context.Context, client *clients.IndividualClient, transport *MockTransport) {
		t.Helper()
		transport.On("Get", ctx, "/showFoodBox?orderOption=catering&dietaryPreference=none").
			Return(testCatalogResponse, nil).Once()
		_, err := client.ShowFoodBoxes(ctx, "none")
		require.NoError(t, err)
	}

	t.Run("should expose box and item details", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		fetchCatalog(t, ctx, client, transport)

		diet, err := client.DietForFoodBox(1)
		require.NoError(t, err)
		assert.Equal(t, foodbox.DietNone, diet)

		count, err := client.ItemCountForFoodBox(1)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		ids, err := client.ItemIDsForFoodBox(1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ids)

		name, err := client.ItemNameForFoodBox(2, 1)
		require.NoError(t, err)
		assert.Equal(t, "tomatoes", name)

		quantity, err := client.ItemQuantityForFoodBox(2, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, quantity)
	})

	t.Run("should pick a mirrored box", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		fetchCatalog(t, ctx, client, transport)

		require.NoError(t, client.PickFoodBox(2))

		assert.Equal(t, 2, client.PickedFoodBoxID())
	})

	t.Run("should reject picking an unknown box", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		fetchCatalog(t, ctx, client, transport)

		err := client.PickFoodBox(99)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, 0, client.PickedFoodBoxID())
	})

	t.Run("should decrease item quantity on the picked box", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		fetchCatalog(t, ctx, client, transport)
		require.NoError(t, client.PickFoodBox(1))

		require.NoError(t, client.ChangeItemQuantityForPickedFoodBox(2, 1))

		quantity, err := client.ItemQuantityForFoodBox(2, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, quantity)
	})

	t.Run("should reject quantity increase or equal value", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		fetchCatalog(t, ctx, client, transport)
		require.NoError(t, client.PickFoodBox(1))

		assert.Error(t, client.ChangeItemQuantityForPickedFoodBox(2, 2))
		assert.Error(t, client.ChangeItemQuantityForPickedFoodBox(2, 3))
		assert.Error(t, client.ChangeItemQuantityForPickedFoodBox(2, 0))

		quantity, err := client.ItemQuantityForFoodBox(2, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, quantity)
	})

	t.Run("should require a picked box for quantity changes", func(t *testing.T) {
		client, _ := newIndividual(t)

		err := client.ChangeItemQuantityForPickedFoodBox(1, 1)

		assert.ErrorIs(t, err, clients.ErrNoFoodBoxPicked)
	})
}

func TestIndividualClientCateringCompanies(t *testing.T) {
	t.Run("should mirror the company catalog and return names", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/getCaterers").
			Return(`[{"name":"KitchenA","postcode":"EH2_2AB"},{"name":"KitchenB","postcode":"EH8_9LE"}]`, nil).Once()

		names, err := client.CateringCompanies(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"KitchenA", "KitchenB"}, names)
	})

	t.Run("should return nil for an empty catalog", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/getCaterers").Return("[]", nil).Once()

		names, err := client.CateringCompanies(ctx)

		require.NoError(t, err)
		assert.Nil(t, names)
	})

	t.Run("should surface an unparseable catalog", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/getCaterers").Return(`["KitchenA,EH2_2AB"`, nil).Once()

		_, err := client.CateringCompanies(ctx)

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
	})
}

func TestIndividualClientDistance(t *testing.T) {
	t.Run("should return the parsed distance", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, "/distance?postcode1=EH1_1AA&postcode2=EH8_9LE").
			Return("1201.5", nil).Once()

		distance, err := client.Distance(ctx, "EH1_1AA", "EH8_9LE")

		require.NoError(t, err)
		assert.InDelta(t, 1201.5, distance, 0.0001)
	})

	t.Run("should reject malformed postcodes without a request", func(t *testing.T) {
		client, transport := newIndividual(t)

		for _, postcode := range []string{"", "X", "G1_11AAA"} {
			distance, err := client.Distance(t.Context(), postcode, "EH8_9LE")

			assert.Error(t, err, postcode)
			assert.Equal(t, clients.DistanceUnknown, distance)
		}
		transport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should return the sentinel on an unparseable reply", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, mock.Anything).Return("very far", nil).Once()

		distance, err := client.Distance(ctx, "EH1_1AA", "EH8_9LE")

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
		assert.Equal(t, clients.DistanceUnknown, distance)
	})

	t.Run("should return the sentinel on transport failure", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		transport.On("Get", ctx, mock.Anything).Return("", errors.New("timeout")).Once()

		distance, err := client.Distance(ctx, "EH1_1AA", "EH8_9LE")

		assert.Error(t, err)
		assert.Equal(t, clients.DistanceUnknown, distance)
	})
}

func TestIndividualClientClosestCateringCompany(t *testing.T) {
	t.Run("should pick the nearest mirrored company", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		transport.On("Get", ctx, "/getCaterers").
			Return(`[{"name":"KitchenA","postcode":"EH2_2AB"},{"name":"KitchenB","postcode":"EH8_9LE"}]`, nil).Once()
		_, err := client.CateringCompanies(ctx)
		require.NoError(t, err)

		transport.On("Get", ctx, "/distance?postcode1=EH1_1AA&postcode2=EH2_2AB").Return("500", nil).Once()
		transport.On("Get", ctx, "/distance?postcode1=EH1_1AA&postcode2=EH8_9LE").Return("100", nil).Once()

		name, err := client.ClosestCateringCompany(ctx)

		require.NoError(t, err)
		assert.Equal(t, "KitchenB", name)
	})

	t.Run("should skip companies whose distance lookup fails", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		transport.On("Get", ctx, "/getCaterers").
			Return(`[{"name":"KitchenA","postcode":"EH2_2AB"},{"name":"KitchenB","postcode":"EH8_9LE"}]`, nil).Once()
		_, err := client.CateringCompanies(ctx)
		require.NoError(t, err)

		transport.On("Get", ctx, "/distance?postcode1=EH1_1AA&postcode2=EH2_2AB").Return("-1", nil).Once()
		transport.On("Get", ctx, "/distance?postcode1=EH1_1AA&postcode2=EH8_9LE").Return("9000", nil).Once()

		name, err := client.ClosestCateringCompany(ctx)

		require.NoError(t, err)
		assert.Equal(t, "KitchenB", name)
	})

	t.Run("should fail when no company is mirrored", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)

		_, err := client.ClosestCateringCompany(ctx)

		assert.Error(t, err)
	})
}

func TestIndividualClientPlaceOrder(t *testing.T) {
	setup := func(t *testing.T, ctx context.Context) (*clients.IndividualClient, *MockTransport) {
		t.Helper()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		transport.On("Get", ctx, "/showFoodBox?orderOption=catering&dietaryPreference=none").
			Return(testCatalogResponse, nil).Once()
		_, err := client.ShowFoodBoxes(ctx, "none")
		require.NoError(t, err)
		require.NoError(t, client.PickFoodBox(1))
		transport.On("Get", ctx, "/getCaterers").
			Return(`[{"name":"KitchenA","postcode":"EH2_2AB"},{"name":"KitchenB","postcode":"EH8_9LE"}]`, nil).Once()
		_, err = client.CateringCompanies(ctx)
		require.NoError(t, err)
		transport.On("Get", ctx, "/distance?postcode1=EH1_1AA&postcode2=EH2_2AB").Return("100", nil).Once()
		transport.On("Get", ctx, "/distance?postcode1=EH1_1AA&postcode2=EH8_9LE").Return("5000", nil).Once()
		return client, transport
	}

	t.Run("should place the picked box with the nearest company", func(t *testing.T) {
		ctx := t.Context()
		client, transport := setup(t, ctx)
		expectedBody := `{"contents":[{"id":1,"name":"cucumbers","quantity":1},{"id":2,"name":"tomatoes","quantity":2}]}`
		transport.On("Post", ctx,
			"/placeOrder?individual_id="+testCHI+"&catering_business_name=KitchenA&catering_postcode=EH2_2AB",
			expectedBody).Return("42", nil).Once()

		orderNumber, err := client.PlaceOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, 42, orderNumber)
		assert.Equal(t, []int{42}, client.OrderNumbers())

		status, err := client.StatusForOrder(42)
		require.NoError(t, err)
		assert.Equal(t, order.None, status)
		transport.AssertExpectations(t)
	})

	t.Run("should carry decreased quantities into the order", func(t *testing.T) {
		ctx := t.Context()
		client, transport := setup(t, ctx)
		require.NoError(t, client.ChangeItemQuantityForPickedFoodBox(2, 1))
		expectedBody := `{"contents":[{"id":1,"name":"cucumbers","quantity":1},{"id":2,"name":"tomatoes","quantity":1}]}`
		transport.On("Post", ctx, mock.Anything, expectedBody).Return("43", nil).Once()

		orderNumber, err := client.PlaceOrder(ctx)

		require.NoError(t, err)
		quantity, err := client.ItemQuantityForOrder(2, orderNumber)
		require.NoError(t, err)
		assert.Equal(t, 1, quantity)
	})

	t.Run("should require registration", func(t *testing.T) {
		client, _ := newIndividual(t)

		_, err := client.PlaceOrder(t.Context())

		assert.ErrorIs(t, err, clients.ErrNotRegistered)
	})

	t.Run("should require a picked box", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)

		_, err := client.PlaceOrder(ctx)

		assert.ErrorIs(t, err, clients.ErrNoFoodBoxPicked)
	})

	t.Run("should surface a non-numeric order number", func(t *testing.T) {
		ctx := t.Context()
		client, transport := setup(t, ctx)
		transport.On("Post", ctx, mock.Anything, mock.Anything).Return("no caterer", nil).Once()

		_, err := client.PlaceOrder(ctx)

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
		assert.Nil(t, client.OrderNumbers())
	})
}

func TestIndividualClientEditOrder(t *testing.T) {
	t.Run("should submit edited contents for an order in status none", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.None)
		require.NoError(t, client.SetItemQuantityForOrder(1, 12, 1))
		transport.On("Post", ctx, "/editOrder?order_id=12",
			`{"contents":[{"id":1,"name":"cucumbers","quantity":1}]}`).Return("True", nil).Once()

		err := client.EditOrder(ctx, 12)

		require.NoError(t, err)
		transport.AssertExpectations(t)
	})

	t.Run("should reject editing a packed order without a request", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.Packed)

		err := client.EditOrder(ctx, 12)

		assert.Error(t, err)
		transport.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject an unknown order without a request", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)

		err := client.EditOrder(ctx, 99)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		transport.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should surface a rejecting reply", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.None)
		transport.On("Post", ctx, mock.Anything, mock.Anything).Return("order is packed", nil).Once()

		err := client.EditOrder(ctx, 12)

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
		assert.ErrorContains(t, err, "order is packed")
	})
}

func TestIndividualClientCancelOrder(t *testing.T) {
	t.Run("should cancel a packed order", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.Packed)
		transport.On("Get", ctx, "/cancelOrder?order_id=12").Return("True", nil).Once()

		err := client.CancelOrder(ctx, 12)

		require.NoError(t, err)
		status, err := client.StatusForOrder(12)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, status)
	})

	t.Run("should treat a repeated cancel as success without a request", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.Packed)
		transport.On("Get", ctx, "/cancelOrder?order_id=12").Return("True", nil).Once()
		require.NoError(t, client.CancelOrder(ctx, 12))

		err := client.CancelOrder(ctx, 12)

		require.NoError(t, err)
		transport.AssertNumberOfCalls(t, "Get", 2) // registration plus one cancel
	})

	t.Run("should refuse cancelling a dispatched order without a request", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.Dispatched)

		err := client.CancelOrder(ctx, 12)

		assert.Error(t, err)
		status, statusErr := client.StatusForOrder(12)
		require.NoError(t, statusErr)
		assert.Equal(t, order.Dispatched, status)
		transport.AssertNumberOfCalls(t, "Get", 1) // registration only
	})

	t.Run("should leave status unchanged on a rejecting reply", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.None)
		transport.On("Get", ctx, "/cancelOrder?order_id=12").Return("already dispatched", nil).Once()

		err := client.CancelOrder(ctx, 12)

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
		status, statusErr := client.StatusForOrder(12)
		require.NoError(t, statusErr)
		assert.Equal(t, order.None, status)
	})
}

func TestIndividualClientRequestOrderStatus(t *testing.T) {
	t.Run("should apply the reported status locally", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.None)
		transport.On("Get", ctx, "/requestStatus?order_id=12").Return("2", nil).Once()

		status, err := client.RequestOrderStatus(ctx, 12)

		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, status)
		local, err := client.StatusForOrder(12)
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, local)
	})

	t.Run("should reject an unknown order without a request", func(t *testing.T) {
		client, transport := newIndividual(t)

		_, err := client.RequestOrderStatus(t.Context(), 12)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		transport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should report not found on the -1 code", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.None)
		transport.On("Get", ctx, "/requestStatus?order_id=12").Return("-1", nil).Once()

		_, err := client.RequestOrderStatus(ctx, 12)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should surface an unknown status code", func(t *testing.T) {
		ctx := t.Context()
		client, transport := newIndividual(t)
		registerIndividual(t, ctx, client, transport)
		trackedOrder(t, client, 12, order.None)
		transport.On("Get", ctx, "/requestStatus?order_id=12").Return("7", nil).Once()

		_, err := client.RequestOrderStatus(ctx, 12)

		assert.ErrorIs(t, err, errs.ErrUnexpectedResponse)
	})
}

func TestIndividualClientOrderAccessors(t *testing.T) {
	t.Run("should return nil order numbers before any order", func(t *testing.T) {
		client, _ := newIndividual(t)

		assert.Nil(t, client.OrderNumbers())
	})

	t.Run("should expose order item details", func(t *testing.T) {
		client, _ := newIndividual(t)
		trackedOrder(t, client, 12, order.None)

		ids, err := client.ItemIDsForOrder(12)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, ids)

		name, err := client.ItemNameForOrder(1, 12)
		require.NoError(t, err)
		assert.Equal(t, "cucumbers", name)

		quantity, err := client.ItemQuantityForOrder(1, 12)
		require.NoError(t, err)
		assert.Equal(t, 2, quantity)
	})

	t.Run("should reject tracking a duplicate order number", func(t *testing.T) {
		client, _ := newIndividual(t)
		trackedOrder(t, client, 12, order.None)

		chi, err := kernel.NewCHI(testCHI)
		require.NoError(t, err)
		content, err := foodbox.NewContent(1, "cucumbers", 2)
		require.NoError(t, err)
		duplicate, err := order.RestoreOrder(12, chi, "KitchenB", []foodbox.Content{content},
			time.Now(), nil, nil, nil, order.None)
		require.NoError(t, err)

		assert.ErrorIs(t, client.TrackOrder(duplicate), errs.ErrValueIsInvalid)
		assert.Equal(t, []int{12}, client.OrderNumbers())
	})

	t.Run("should reject non-positive order numbers", func(t *testing.T) {
		client, _ := newIndividual(t)

		_, err := client.StatusForOrder(0)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
