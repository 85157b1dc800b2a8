package app_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"atelier_backend/internal/models"
	"atelier_backend/internal/repositories/memory"
	"atelier_backend/internal/services"
	"atelier_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Code    string            `json:"code"`
	Domain  string            `json:"domain"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func validOrder() map[string]any {
	return map[string]any{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"email":       "ada@example.com",
		"serviceType": "custom-dress",
		"budget":      "1000-2000",
		"timeframe":   "3 months",
		"measurements": map[string]string{
			"bust": "90", "waist": "70", "hips": "95",
			"height": "170", "shoulderToWaist": "40", "waistToHem": "",
		},
	}
}

func TestContact_SubmitAndList(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/contact", map[string]string{
		"name": "Jane", "email": "jane@x.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.JSONEq(t, `{"success":true,"messageId":1}`, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	messages := testutil.DecodeJSON[[]models.ContactMessage](t, body)
	require.Len(t, messages, 1)
	assert.Equal(t, "Jane", messages[0].Name)
	assert.False(t, messages[0].Read)
	assert.NotEmpty(t, messages[0].CreatedAt)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/contact/1/read", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.True(t, testutil.DecodeJSON[models.ContactMessage](t, body).Read)
}

func TestNewsletter_SubscribeIsIdempotent(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/newsletter", map[string]string{"email": "fan@example.com"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	first := testutil.DecodeJSON[map[string]any](t, body)
	assert.Equal(t, true, first["success"])
	assert.NotContains(t, first, "message")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/newsletter", map[string]string{"email": "Fan@Example.com"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	second := testutil.DecodeJSON[map[string]any](t, body)
	assert.Equal(t, "Already subscribed", second["message"])
	assert.Equal(t, first["subscriberId"], second["subscriberId"])

	res, body = ts.SendRequest(t, http.MethodPost, "/api/newsletter", map[string]string{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, `Validation error: "email" must be a valid email address`, testutil.DecodeJSON[errorBody](t, body).Message)
}

func TestNewsletter_ConcurrentSubscribe(t *testing.T) {
	ts := testutil.NewTestServer(t)

	const workers = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, _ := ts.SendRequest(t, http.MethodPost, "/api/newsletter", map[string]string{"email": "race@example.com"})
			if res.StatusCode == http.StatusCreated {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	subs, err := ts.Repo.ListNewsletterSubscribers(context.Background())
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestOrders_IDsIncrease(t *testing.T) {
	ts := testutil.NewTestServer(t)

	var last float64
	for i := 0; i < 3; i++ {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/orders", validOrder())
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		resp := testutil.DecodeJSON[map[string]any](t, body)
		assert.Equal(t, true, resp["success"])
		id := resp["orderId"].(float64)
		assert.Greater(t, id, last)
		last = id
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	orders := testutil.DecodeJSON[[]models.Order](t, body)
	require.Len(t, orders, 3)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.Equal(t, "90", orders[0].Measurements.Data().Bust)
}

func TestOrders_StatusUpdate(t *testing.T) {
	ts := testutil.NewTestServer(t)
	res, body := ts.SendRequest(t, http.MethodPost, "/api/orders", validOrder())
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/orders/1", map[string]string{"status": "in-progress"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/orders/1", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, models.OrderStatusInProgress, testutil.DecodeJSON[models.Order](t, body).Status)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/orders/1", map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, `Validation error: "status" must be one of: pending, in-progress, completed`,
		testutil.DecodeJSON[errorBody](t, body).Message)

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/orders/42", map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestOrders_Validation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	order := validOrder()
	delete(order, "measurements")
	res, body := ts.SendRequest(t, http.MethodPost, "/api/orders", order)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	e := testutil.DecodeJSON[errorBody](t, body)
	assert.Equal(t, `Validation error: "measurements" is required`, e.Message)
	assert.Equal(t, "VALIDATION_FAILED", e.Code)
	assert.Contains(t, e.Details, "measurements")

	order = validOrder()
	order["measurements"] = map[string]string{"bust": "90", "waist": "70", "hips": "95", "height": "170", "shoulderToWaist": "40"}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/orders", order)
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	e = testutil.DecodeJSON[errorBody](t, body)
	assert.Equal(t, `Validation error: "measurements.waistToHem" is required`, e.Message)

	order["measurements"] = map[string]string{}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/orders", order)
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	e = testutil.DecodeJSON[errorBody](t, body)
	assert.Len(t, e.Details, 6)
	assert.Contains(t, e.Details, "measurements.bust")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/orders", `{"firstName":`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Invalid request body", testutil.DecodeJSON[errorBody](t, body).Message)
}

func TestPortfolio_FeaturedAndCategory(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, err := ts.App.Services().PortfolioService.SeedSamples(context.Background())
	require.NoError(t, err)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/portfolio", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	all := testutil.DecodeJSON[[]models.PortfolioItem](t, body)
	require.Len(t, all, len(services.SamplePortfolio()))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/portfolio/featured", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	featured := testutil.DecodeJSON[[]models.PortfolioItem](t, body)

	var want []models.PortfolioItem
	for _, item := range all {
		if item.Featured {
			want = append(want, item)
		}
	}
	assert.Equal(t, want, featured)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/portfolio/category/FORMAL", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	for _, item := range testutil.DecodeJSON[[]models.PortfolioItem](t, body) {
		assert.Equal(t, "Formal", item.Category)
	}
}

func TestPortfolio_NotFoundAndBadID(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/portfolio/999", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	e := testutil.DecodeJSON[errorBody](t, body)
	assert.Equal(t, "Portfolio item not found", e.Message)
	assert.Equal(t, "NOT_FOUND", e.Code)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/portfolio/abc", nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Invalid ID format", testutil.DecodeJSON[errorBody](t, body).Message)

	for _, id := range []string{"0", "-1"} {
		res, body = ts.SendRequest(t, http.MethodGet, "/api/portfolio/"+id, nil)
		require.Equal(t, http.StatusNotFound, res.StatusCode, id)
		assert.Equal(t, "Portfolio item not found", testutil.DecodeJSON[errorBody](t, body).Message)
	}

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/orders/0", map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestPortfolio_CreateUpdateDelete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/portfolio", map[string]any{
		"name": "Ivory Lace", "category": "Bridal", "imageUrl": "https://example.com/ivory.jpg",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	item := testutil.DecodeJSON[models.PortfolioItem](t, body)
	assert.False(t, item.Featured)
	assert.Nil(t, item.Description)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/portfolio/1", map[string]any{"featured": true})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	updated := testutil.DecodeJSON[models.PortfolioItem](t, body)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Ivory Lace", updated.Name)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/portfolio/1", map[string]any{"description": "Hand-beaded"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	updated = testutil.DecodeJSON[models.PortfolioItem](t, body)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Hand-beaded", *updated.Description)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/portfolio/1", map[string]any{"description": "  "})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	updated = testutil.DecodeJSON[models.PortfolioItem](t, body)
	assert.Nil(t, updated.Description)
	assert.True(t, updated.Featured)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/portfolio/1", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"success":true}`, body)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/portfolio/1", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestFreelancers_ApplyAndReview(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/freelancers", map[string]any{
		"firstName": "Grace", "lastName": "Hopper", "email": "grace@example.com", "phone": "555-0100",
		"specialization": "tailoring", "experience": "5-10", "location": "Lyon",
		"portfolioUrl": "", "bio": "Bespoke tailoring", "availability": "full-time",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.JSONEq(t, `{"success":true,"freelancerId":1}`, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/freelancers/1", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	f := testutil.DecodeJSON[models.Freelancer](t, body)
	assert.Nil(t, f.PortfolioURL, "blank optional fields are stored as null")
	assert.Equal(t, models.FreelancerStatusPending, f.Status)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/freelancers/1", map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, models.FreelancerStatusApproved, testutil.DecodeJSON[models.Freelancer](t, body).Status)
}

type failingPinger struct {
	*memory.Store
}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealth(t *testing.T) {
	ts := testutil.NewTestServer(t)
	res, body := ts.SendRequest(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok","storage":"memory"}`, body)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))

	down := testutil.NewTestServer(t, testutil.WithRepository(failingPinger{memory.New()}))
	res, body = down.SendRequest(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.NotContains(t, body, "connection refused")
}

func TestUnknownRoute(t *testing.T) {
	ts := testutil.NewTestServer(t)
	res, body := ts.SendRequest(t, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Route not found", testutil.DecodeJSON[errorBody](t, body).Message)
}
