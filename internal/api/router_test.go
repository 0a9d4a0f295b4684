package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"qtravel/internal/api"
	"qtravel/internal/api/controllers"
	"qtravel/internal/infra/infratest"
	"qtravel/internal/repositories"
	"qtravel/internal/services"
)

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := infratest.OpenSQLite(t)

	userRepo := repositories.NewUserRepository(db)
	tripRepo := repositories.NewTripRepository(db)
	itineraryRepo := repositories.NewItineraryRepository(db)

	ctrls := api.Controllers{
		System:    controllers.NewSystemController(),
		User:      controllers.NewUserController(services.NewUserService(userRepo, repositories.NewPreferenceRepository(db))),
		Trip:      controllers.NewTripController(services.NewTripService(userRepo, tripRepo, repositories.NewCollaboratorRepository(db))),
		Itinerary: controllers.NewItineraryController(services.NewItineraryService(tripRepo, itineraryRepo)),
		Feedback:  controllers.NewFeedbackController(services.NewFeedbackService(tripRepo, repositories.NewFeedbackRepository(db))),
		History: controllers.NewHistoryController(services.NewHistoryService(
			userRepo,
			repositories.NewTravelHistoryRepository(db),
			repositories.NewAIInteractionRepository(db),
		)),
	}

	return api.NewRouter(api.RouterOptions{
		Logger:             zerolog.Nop(),
		CORSAllowedOrigins: []string{"*"},
	}, ctrls)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

// createID posts body to path, expects 201 and returns data.id.
func createID(t *testing.T, r http.Handler, path string, body any) string {
	t.Helper()
	w := do(t, r, http.MethodPost, path, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s: status = %d, body = %s", path, w.Code, w.Body.String())
	}
	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &data); err != nil || data.ID == "" {
		t.Fatalf("POST %s: no id in %s", path, w.Body.String())
	}
	return data.ID
}

func TestStaticRoutes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		want   map[string]string
	}{
		{http.MethodGet, "/", map[string]string{"status": "ok", "message": "QTravel API is running"}},
		{http.MethodGet, "/api/version", map[string]string{"version": "0.1.0", "name": "QTravel API", "schema_version": "1.0.0"}},
		{http.MethodPost, "/generate-itinerary", map[string]string{"message": "Endpoint to be implemented"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, map[string]string{"destination": "ignored"})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var got map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Errorf("body = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestUserLifecycle(t *testing.T) {
	r := newTestRouter(t)

	userID := createID(t, r, "/api/users", map[string]any{
		"email":                "ada@example.com",
		"full_name":            "Ada",
		"dietary_restrictions": []string{"vegan"},
	})

	w := do(t, r, http.MethodPost, "/api/users", map[string]any{"email": "ada@example.com"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate email: status = %d, want 409", w.Code)
	}
	if env := decode(t, w); env.Status != "error" || env.TraceID == "" {
		t.Errorf("error envelope = %+v", env)
	}

	w = do(t, r, http.MethodPost, "/api/users", map[string]any{"full_name": "no email"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing email: status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/users/"+userID+"/preferences", map[string]any{"category": "museums", "weight": 11})
	if w.Code != http.StatusBadRequest {
		t.Errorf("weight 11: status = %d, want 400", w.Code)
	}
	createID(t, r, "/api/users/"+userID+"/preferences", map[string]any{"category": "museums", "weight": 7})

	w = do(t, r, http.MethodPut, "/api/users/"+userID, map[string]any{"travel_style": "slow"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/users/by-email?email=ada@example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("by email: status = %d", w.Code)
	}
	var user struct {
		ID          string   `json:"id"`
		FullName    string   `json:"full_name"`
		TravelStyle string   `json:"travel_style"`
		Dietary     []string `json:"dietary_restrictions"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.ID != userID || user.FullName != "Ada" || user.TravelStyle != "slow" || len(user.Dietary) != 1 {
		t.Errorf("user = %+v", user)
	}

	w = do(t, r, http.MethodGet, "/api/users/"+userID, nil)
	var details struct {
		Preferences []json.RawMessage `json:"preferences"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &details); err != nil || len(details.Preferences) != 1 {
		t.Errorf("details = %s", w.Body.String())
	}
}

func TestPathValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"malformed user id", http.MethodGet, "/api/users/not-a-uuid", http.StatusBadRequest},
		{"unknown user", http.MethodGet, "/api/users/7f1d7a2e-58f6-4b4f-9a43-3c1b8c0d2e11", http.StatusNotFound},
		{"unknown trip", http.MethodGet, "/api/trips/7f1d7a2e-58f6-4b4f-9a43-3c1b8c0d2e11", http.StatusNotFound},
		{"items of unknown trip", http.MethodGet, "/api/trips/7f1d7a2e-58f6-4b4f-9a43-3c1b8c0d2e11/items", http.StatusNotFound},
		{"delete unknown booking", http.MethodDelete, "/api/bookings/7f1d7a2e-58f6-4b4f-9a43-3c1b8c0d2e11", http.StatusNotFound},
		{"bad page", http.MethodGet, "/api/users?page=0", http.StatusBadRequest},
		{"bad page size", http.MethodGet, "/api/users?pageSize=500", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, nil)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestTripItineraryAndBooking(t *testing.T) {
	r := newTestRouter(t)

	userID := createID(t, r, "/api/users", map[string]any{"email": "trip@example.com"})
	tripID := createID(t, r, "/api/users/"+userID+"/trips", map[string]any{
		"title":        "Rome",
		"destination":  "Rome, Italy",
		"start_date":   "2025-06-01",
		"end_date":     "2025-06-05",
		"total_budget": "1200.00",
	})

	itemID := createID(t, r, "/api/trips/"+tripID+"/items", map[string]any{
		"type":     "hotel",
		"title":    "Hotel Artemide",
		"cost":     "400.00",
		"location": map[string]float64{"lng": 12.4964, "lat": 41.9028},
	})
	createID(t, r, "/api/trips/"+tripID+"/items", map[string]any{"type": "activity", "title": "Colosseum", "cost": "25.50"})

	w := do(t, r, http.MethodPost, "/api/trips/"+tripID+"/items", map[string]any{"type": "cruise", "title": "Boat"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid type: status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/trips/"+tripID+"/cost", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cost: status = %d", w.Code)
	}
	var cost struct {
		ItemCount int    `json:"item_count"`
		TotalCost string `json:"total_cost"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &cost); err != nil {
		t.Fatalf("decode cost: %v", err)
	}
	if cost.ItemCount != 2 || cost.TotalCost != "425.5" {
		t.Errorf("cost = %+v, want 2 items totalling 425.5", cost)
	}

	for _, status := range []string{"pending", "confirmed"} {
		w = do(t, r, http.MethodPut, "/api/items/"+itemID+"/booking", map[string]any{
			"confirmation_number": "ART-1",
			"provider":            "Booking",
			"status":              status,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("booking %s: status = %d, body = %s", status, w.Code, w.Body.String())
		}
	}

	w = do(t, r, http.MethodGet, "/api/items/"+itemID, nil)
	var item struct {
		Location struct {
			Lng float64 `json:"lng"`
			Lat float64 `json:"lat"`
		} `json:"location"`
		Booking struct {
			Status string `json:"status"`
		} `json:"booking"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Booking.Status != "confirmed" {
		t.Errorf("booking status = %q, want confirmed", item.Booking.Status)
	}
	if item.Location.Lng != 12.4964 || item.Location.Lat != 41.9028 {
		t.Errorf("location = %+v", item.Location)
	}

	w = do(t, r, http.MethodDelete, "/api/users/"+userID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete user: status = %d", w.Code)
	}
	for _, path := range []string{"/api/trips/" + tripID, "/api/items/" + itemID, "/api/items/" + itemID + "/booking"} {
		if w := do(t, r, http.MethodGet, path, nil); w.Code != http.StatusNotFound {
			t.Errorf("GET %s after cascade: status = %d, want 404", path, w.Code)
		}
	}
}

func TestFeedbackRoutes(t *testing.T) {
	r := newTestRouter(t)

	userID := createID(t, r, "/api/users", map[string]any{"email": "fb@example.com"})
	tripID := createID(t, r, "/api/users/"+userID+"/trips", map[string]any{"title": "Porto"})

	createID(t, r, "/api/feedback", map[string]any{"user_id": userID, "trip_id": tripID, "rating": 5})

	w := do(t, r, http.MethodPost, "/api/feedback", map[string]any{"user_id": userID, "trip_id": tripID, "rating": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("rating 0: status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/trips/"+tripID+"/feedback", nil)
	var list []json.RawMessage
	if err := json.Unmarshal(decode(t, w).Data, &list); err != nil || len(list) != 1 {
		t.Errorf("feedback list = %s", w.Body.String())
	}
}
