package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/niksmo/aqua-plant/internal/adapter/httphandler"
	"github.com/niksmo/aqua-plant/internal/core/catalog"
	"github.com/niksmo/aqua-plant/internal/core/domain"
	"github.com/niksmo/aqua-plant/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandler(o httphandler.RequestObserver) http.Handler {
	s := service.New(catalog.NewEngine(catalog.Default()), nil, nil)
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, s, s)
	httphandler.RegisterCart(mux, s)
	return httphandler.LogRequests(httphandler.AllowJSON(mux), o)
}

func do(
	t *testing.T, h http.Handler, method, target, body string,
) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) (v T) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestCatalogHandler(t *testing.T) {
	t.Run("GetPlants", func(t *testing.T) {
		w := do(t, newHandler(nil), http.MethodGet, "/v1/plants", "")
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[httphandler.PlantsResponse](t, w)
		require.Len(t, res.Plants, 6)
		assert.False(t, res.Empty)
		assert.Equal(t, "all", res.Filter.Size)

		first := res.Plants[0]
		assert.Equal(t, 1, first.ID)
		assert.Equal(t, "Легкая", first.Difficulty.Label)
		assert.Equal(t, "green", first.Difficulty.Tone)
		assert.Equal(t, "blue", first.Lighting.Tone)
		assert.True(t, first.CanAddToCart)
		assert.False(t, res.Plants[5].CanAddToCart)
	})

	t.Run("PatchFilter", func(t *testing.T) {
		h := newHandler(nil)
		w := do(t, h, http.MethodPatch, "/v1/filter",
			`{"size":"small","search_text":"Hemianthus"}`)
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[httphandler.PlantsResponse](t, w)
		require.Len(t, res.Plants, 1)
		assert.Equal(t, 2, res.Plants[0].ID)

		w = do(t, h, http.MethodPatch, "/v1/filter", `{"difficulty":"hard"}`)
		res = decode[httphandler.PlantsResponse](t, w)
		assert.True(t, res.Empty)
		assert.Empty(t, res.Plants)

		w = do(t, h, http.MethodGet, "/v1/filter", "")
		f := decode[httphandler.Filter](t, w)
		assert.Equal(t, httphandler.Filter{
			SearchText: "Hemianthus", Size: "small",
			Lighting: "all", Difficulty: "hard",
		}, f)
	})

	t.Run("PatchFilterInvalidValue", func(t *testing.T) {
		w := do(t, newHandler(nil), http.MethodPatch, "/v1/filter", `{"size":"huge"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PatchFilterInvalidJSON", func(t *testing.T) {
		w := do(t, newHandler(nil), http.MethodPatch, "/v1/filter", `{"size":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PatchFilterWrongMediaType", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPatch, "/v1/filter",
			strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		newHandler(nil).ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("DeleteFilter", func(t *testing.T) {
		h := newHandler(nil)
		do(t, h, http.MethodPatch, "/v1/filter", `{"search_text":"zzz"}`)

		w := do(t, h, http.MethodDelete, "/v1/filter", "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[httphandler.PlantsResponse](t, w)
		assert.Len(t, res.Plants, 6)
		assert.Empty(t, res.Filter.SearchText)
	})
}

func TestCartHandler(t *testing.T) {
	t.Run("AddAndRemove", func(t *testing.T) {
		h := newHandler(nil)

		do(t, h, http.MethodPost, "/v1/cart/1", "")
		w := do(t, h, http.MethodPost, "/v1/cart/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[httphandler.CartResponse](t, w)
		assert.Equal(t, 2, res.TotalItems)
		assert.Equal(t, httphandler.PlantPrice{Amount: 300, Currency: "RUB"}, res.TotalPrice)
		require.Len(t, res.Lines, 1)
		assert.Equal(t, "Криптокорина парва", res.Lines[0].Name)

		w = do(t, h, http.MethodDelete, "/v1/cart/1", "")
		res = decode[httphandler.CartResponse](t, w)
		assert.Equal(t, 1, res.TotalItems)

		do(t, h, http.MethodDelete, "/v1/cart/1", "")
		w = do(t, h, http.MethodGet, "/v1/cart", "")
		res = decode[httphandler.CartResponse](t, w)
		assert.Zero(t, res.TotalItems)
		assert.Empty(t, res.Lines)
	})

	tests := []struct {
		name   string
		method string
		target string
		code   int
	}{
		{"OutOfStock", http.MethodPost, "/v1/cart/6", http.StatusConflict},
		{"UnknownAdd", http.MethodPost, "/v1/cart/42", http.StatusNotFound},
		{"UnknownRemove", http.MethodDelete, "/v1/cart/42", http.StatusNotFound},
		{"BadID", http.MethodPost, "/v1/cart/abc", http.StatusBadRequest},
		{"RemoveAbsent", http.MethodDelete, "/v1/cart/3", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newHandler(nil), tt.method, tt.target, "")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

type failingKeeper struct{}

func (failingKeeper) AddToCart(
	context.Context, domain.PlantID,
) (domain.CartSummary, error) {
	return domain.CartSummary{}, errors.New("boom")
}

func (failingKeeper) RemoveFromCart(
	context.Context, domain.PlantID,
) (domain.CartSummary, error) {
	return domain.CartSummary{}, errors.New("boom")
}

func (failingKeeper) Cart(context.Context) (domain.CartSummary, error) {
	return domain.CartSummary{}, context.DeadlineExceeded
}

func TestCartHandlerUnexpectedError(t *testing.T) {
	mux := http.NewServeMux()
	httphandler.RegisterCart(mux, failingKeeper{})

	w := do(t, mux, http.MethodGet, "/v1/cart", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ObserveRequest(
	method, pattern string, status int, elapsed time.Duration,
) {
	m.Called(method, pattern, status, elapsed)
}

func TestLogRequests(t *testing.T) {
	o := new(MockObserver)
	o.On("ObserveRequest",
		http.MethodPost, "POST /v1/cart/{id}", http.StatusConflict, mock.Anything,
	).Once()

	do(t, newHandler(o), http.MethodPost, "/v1/cart/6", "")

	o.AssertExpectations(t)
}
