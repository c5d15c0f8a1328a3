package http_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numeraai/numera/internal/alerts"
	"github.com/numeraai/numera/internal/auth"
	"github.com/numeraai/numera/internal/coach"
	"github.com/numeraai/numera/internal/content"
	"github.com/numeraai/numera/internal/dashboard"
	"github.com/numeraai/numera/internal/export"
	"github.com/numeraai/numera/internal/finance"
	financestore "github.com/numeraai/numera/internal/finance/store"
	numerahttp "github.com/numeraai/numera/internal/http"
	coachHandler "github.com/numeraai/numera/internal/http/coach"
	contentHandler "github.com/numeraai/numera/internal/http/content"
	dashboardHandler "github.com/numeraai/numera/internal/http/dashboard"
	exportHandler "github.com/numeraai/numera/internal/http/export"
	financeHandler "github.com/numeraai/numera/internal/http/finance"
	inventoryHandler "github.com/numeraai/numera/internal/http/inventory"
	matchingHandler "github.com/numeraai/numera/internal/http/matching"
	onboardingHandler "github.com/numeraai/numera/internal/http/onboarding"
	profileHandler "github.com/numeraai/numera/internal/http/profile"
	salesHandler "github.com/numeraai/numera/internal/http/sales"
	"github.com/numeraai/numera/internal/importer"
	"github.com/numeraai/numera/internal/inventory"
	inventorystore "github.com/numeraai/numera/internal/inventory/store"
	"github.com/numeraai/numera/internal/kv"
	"github.com/numeraai/numera/internal/matching"
	matchingstore "github.com/numeraai/numera/internal/matching/store"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/profile"
	"github.com/numeraai/numera/internal/sales"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type echoAsker struct{}

func (echoAsker) Ask(_ context.Context, question string, _ coach.Language) string {
	return "answer: " + question
}

const validProfile = `{"firstName":"Amina","lastName":"Otieno","phone":"0712345678",` +
	`"businessName":"Amina Agrovet","businessType":"Agrovet/Animal Feed Store","yearsInBusiness":"2-5"}`

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	store := kv.NewMemory()
	now := time.Now()

	var (
		onboardingService = onboarding.NewService(store)
		matchingService   = matching.NewService(matchingstore.New(store))
		financeService    = finance.NewService(financestore.New(store), matchingService)
		inventoryService  = inventory.NewService(inventorystore.NewMemory(inventory.DemoItems(now)))
		salesService      = sales.NewService(sales.DemoSales(now))
		profileService    = profile.NewService(onboardingService, store)
		alertService      = alerts.NewService(inventoryService, alerts.Config{}, nil)
		issuer            = auth.NewIssuer("test-secret", time.Hour)
	)

	return numerahttp.New(numerahttp.Handlers{
		Onboarding: onboardingHandler.NewHandler(onboardingService, issuer),
		Content:    contentHandler.NewHandler(content.NewEngine(nil)),
		Coach:      coachHandler.NewHandler(coach.NewConversation(echoAsker{}, coach.TypingDelay{}), coach.English),
		Finance:    financeHandler.NewHandler(financeService),
		Matching:   matchingHandler.NewHandler(matchingService),
		Export:     exportHandler.NewHandler(export.NewService(financeService)),
		Inventory:  inventoryHandler.NewHandler(inventoryService, alertService),
		Sales:      salesHandler.NewHandler(salesService, importer.NewService(), sales.NewDemoStatement(now)),
		Profile:    profileHandler.NewHandler(profileService),
		Dashboard:  dashboardHandler.NewHandler(dashboard.NewService(onboardingService, salesService, financeService, inventoryService)),
	}, issuer, []string{"*"})
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestOnboardingAndProfile(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/onboarding", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/onboarding/validate", `{"step":1,"data":{"phone":"12"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	validated := decode[struct {
		Valid  bool              `json:"valid"`
		Errors map[string]string `json:"errors"`
	}](t, rec)
	assert.False(t, validated.Valid)
	assert.Equal(t, "Please enter a valid phone number", validated.Errors["phone"])
	assert.Contains(t, validated.Errors, "firstName")

	rec = do(t, h, http.MethodPost, "/api/v1/onboarding/complete", `{"firstName":"Amina"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/onboarding/complete", validProfile)
	require.Equal(t, http.StatusCreated, rec.Code)

	completed := decode[struct {
		Token string `json:"token"`
	}](t, rec)
	require.NotEmpty(t, completed.Token)

	rec = do(t, h, http.MethodGet, "/api/v1/onboarding", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Amina Agrovet")

	rec = do(t, h, http.MethodGet, "/api/v1/profile", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	bearer := "Bearer " + completed.Token

	rec = do(t, h, http.MethodGet, "/api/v1/profile", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.Equal(t, "Amina", got["firstName"])
	assert.Equal(t, "0712345678", got["signedInAs"])
	assert.Equal(t, profile.DefaultLocation, got["location"])

	rec = do(t, h, http.MethodPatch, "/api/v1/profile/mobile-money", `{"mpesaNumber":"0712"}`, "Authorization", bearer)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/v1/profile/mobile-money", `{"mpesaNumber":"0712345678"}`, "Authorization", bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "+254712345678")

	rec = do(t, h, http.MethodGet, "/api/v1/profile/saccos", "", "Authorization", bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]profile.SACCO](t, rec), len(profile.SACCOs()))

	rec = do(t, h, http.MethodDelete, "/api/v1/onboarding", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/onboarding", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentAndCoach(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/content",
		`{"platform":"instagram","type":"post","tone":"casual","description":"Fresh layers mash in stock"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	generated := decode[content.GeneratedContent](t, rec)
	assert.NotEmpty(t, generated.Content)
	assert.NotEmpty(t, generated.Hashtags)

	rec = do(t, h, http.MethodPost, "/api/v1/content", `{"platform":"instagram","type":"post","tone":"casual","description":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/content", "{}", "Content-Type", "text/plain")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/coach/ask", `{"message":"How do I price feed?","language":"en"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	reply := decode[coach.Message](t, rec)
	assert.True(t, reply.IsBot)
	assert.Equal(t, "answer: How do I price feed?", reply.Content)

	rec = do(t, h, http.MethodPost, "/api/v1/coach/ask", `{"message":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/coach/quick", `{"actionId":"4","language":"sw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, decode[coach.Message](t, rec).Content, "M-Pesa kwa biashara")

	rec = do(t, h, http.MethodPost, "/api/v1/coach/quick", `{"actionId":"99"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/coach/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	log := decode[struct {
		Messages []coach.Message `json:"messages"`
		Typing   bool            `json:"typing"`
	}](t, rec)
	assert.False(t, log.Typing)
	assert.Equal(t, "answer: How do I price feed?", log.Messages[len(log.Messages)-3].Content)
}

func TestGoalsExpensesAndReports(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/goals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 3)

	rec = do(t, h, http.MethodPatch, "/api/v1/goals/2", `{"current":15,"target":30}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 50.0, decode[map[string]any](t, rec)["progress"])

	rec = do(t, h, http.MethodPatch, "/api/v1/goals/abc", `{"current":1,"target":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/v1/goals/42", `{"current":1,"target":2}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/goals", `{"title":"","target":10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/expenses", `{"description":"Fuel for delivery","amount":1500,"category":"Transportation"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[finance.Expense](t, rec)

	rec = do(t, h, http.MethodGet, "/api/v1/categories/suggest?description=FUEL%20for%20delivery", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Transportation", decode[map[string]any](t, rec)["category"])

	rec = do(t, h, http.MethodPost, "/api/v1/expenses", `{"description":"Fuel for delivery","amount":700}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Transportation", decode[finance.Expense](t, rec).Category)

	rec = do(t, h, http.MethodPost, "/api/v1/expenses", `{"description":"x","amount":5,"category":"Bribes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/expenses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2200.0, decode[map[string]any](t, rec)["total"])

	rec = do(t, h, http.MethodGet, "/api/v1/reports/financial", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".txt")
	assert.Contains(t, rec.Body.String(), "Fuel for delivery")

	rec = do(t, h, http.MethodGet, "/api/v1/reports/financial?format=xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.FormatXLSX.ContentType(), rec.Header().Get("Content-Type"))

	rec = do(t, h, http.MethodGet, "/api/v1/reports/financial?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/expenses/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/expenses/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventory(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/inventory?q=poultry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = do(t, h, http.MethodPost, "/api/v1/inventory", `{"name":"Dog Food","currentStock":60,"maximumCapacity":50}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "currentStock")

	rec = do(t, h, http.MethodPost, "/api/v1/inventory",
		`{"name":"Dog Food","category":"Pet","currentStock":2,"minimumThreshold":5,"maximumCapacity":50,"unitPrice":900}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "low", decode[map[string]any](t, rec)["status"])

	rec = do(t, h, http.MethodGet, "/api/v1/inventory/alerts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]alerts.Alert](t, rec), 4)

	rec = do(t, h, http.MethodGet, "/api/v1/inventory/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, decode[inventory.Summary](t, rec).TotalItems)
}

const statement = `Receipt No.,Completion Time,Details,Transaction Status,Paid In,Withdrawn,Balance
SCE1AB2CD3,2025-03-14 10:23:45,Funds received from - 254712***678 MARY NJERI,Completed,"5,600.00",,"25,600.00"
SCE1AB2CD4,2025-03-14 11:02:10,Merchant Payment to 123456 - KENCHIC LTD,Completed,,"-12,000.00","13,600.00"
SCE1AB2CD6,2025-03-14 12:30:00,Customer Transfer - 254733***222 SARAH WAWERU,Completed,"9,600.50",,"23,200.50"
`

func upload(t *testing.T, h http.Handler, csv string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "statement.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestSalesAndOrders(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/sales", `{"product":"Chick Mash 50kg","quantity":2,"unitPrice":2800}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	sale := decode[sales.Sale](t, rec)
	assert.Equal(t, 5600.0, sale.Total)
	assert.Equal(t, sales.MPesa, sale.PaymentMethod)

	rec = do(t, h, http.MethodPost, "/api/v1/sales", `{"product":"Chick Mash 50kg","quantity":0,"unitPrice":2800}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/sales/today", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, decode[sales.DaySummary](t, rec).Transactions, 1)

	rec = do(t, h, http.MethodPost, "/api/v1/sales/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3.0, decode[map[string]any](t, rec)["added"])

	rec = upload(t, h, statement)
	require.Equal(t, http.StatusCreated, rec.Code)

	imported := decode[map[string]any](t, rec)
	assert.Equal(t, 2.0, imported["added"])
	assert.Equal(t, 0.0, imported["skipped"])

	rec = upload(t, h, statement)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2.0, decode[map[string]any](t, rec)["skipped"])

	rec = upload(t, h, "just,some\nrandom,text\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/orders",
		`{"customerName":"John Mwangi","customerPhone":"0722000000","items":[{"product":"Layers Mash 50kg","quantity":2,"unitPrice":2200}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decode[sales.Order](t, rec)
	assert.Equal(t, sales.StatusPending, order.Status)
	assert.Equal(t, 4400.0, order.TotalAmount)

	path := "/api/v1/orders/" + order.ID.String() + "/status"

	rec = do(t, h, http.MethodPatch, path, `{"status":"completed"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPatch, path, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sales.StatusConfirmed, decode[sales.Order](t, rec).Status)

	rec = do(t, h, http.MethodPatch, "/api/v1/orders/not-a-uuid/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]sales.Order](t, rec), 1)
}

func TestDashboard(t *testing.T) {
	h := newRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[dashboard.Summary](t, rec)
	assert.Equal(t, dashboard.WeeklyGrowth, got.WeeklyGrowth)
	assert.Len(t, got.LowStock, 3)
}

func TestCORSPreflight(t *testing.T) {
	h := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/goals", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
