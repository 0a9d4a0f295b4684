package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"qtravel/internal/infra/infratest"
	"qtravel/internal/models/db_models"
	"qtravel/internal/models/request_models"
	"qtravel/internal/repositories"
	"qtravel/pkg/utils"
)

type testServices struct {
	users     UserServiceInterface
	trips     TripServiceInterface
	itinerary ItineraryServiceInterface
	feedback  FeedbackServiceInterface
	history   HistoryServiceInterface
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	db := infratest.OpenSQLite(t)

	userRepo := repositories.NewUserRepository(db)
	tripRepo := repositories.NewTripRepository(db)
	itineraryRepo := repositories.NewItineraryRepository(db)

	return testServices{
		users:     NewUserService(userRepo, repositories.NewPreferenceRepository(db)),
		trips:     NewTripService(userRepo, tripRepo, repositories.NewCollaboratorRepository(db)),
		itinerary: NewItineraryService(tripRepo, itineraryRepo),
		feedback:  NewFeedbackService(tripRepo, repositories.NewFeedbackRepository(db)),
		history:   NewHistoryService(userRepo, repositories.NewTravelHistoryRepository(db), repositories.NewAIInteractionRepository(db)),
	}
}

func str(s string) *string { return &s }

func mustUser(t *testing.T, s testServices, email string) *db_models.User {
	t.Helper()
	user, err := s.users.CreateUser(context.Background(), request_models.CreateUserRequest{Email: email, FullName: "Grace"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustTrip(t *testing.T, s testServices, userID uuid.UUID) *db_models.Trip {
	t.Helper()
	trip, err := s.trips.CreateTrip(context.Background(), userID, request_models.TripRequest{
		Title:       "Kyoto",
		Destination: "Kyoto, Japan",
		StartDate:   str("2025-04-01"),
		EndDate:     str("2025-04-10"),
		TotalBudget: str("3000"),
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	return trip
}

func mustItem(t *testing.T, s testServices, tripID uuid.UUID, cost *string) *db_models.ItineraryItem {
	t.Helper()
	item, err := s.itinerary.AddItem(context.Background(), tripID, request_models.ItineraryItemRequest{
		Type:     string(db_models.ItemTypeRestaurant),
		Title:    "Dinner",
		Cost:     cost,
		Location: &request_models.PointRequest{Lng: 135.7681, Lat: 35.0116},
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	return item
}

func TestTranslateStorageError(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "t@example.com")

	_, err := s.users.CreateUser(ctx, request_models.CreateUserRequest{Email: "t@example.com"})
	if !errors.Is(err, utils.ErrAlreadyExists) {
		t.Errorf("duplicate email: err = %v, want ErrAlreadyExists", err)
	}

	_, err = s.users.AddPreference(ctx, user.ID, request_models.CreatePreferenceRequest{Category: "art", Weight: 11})
	if !errors.Is(err, utils.ErrConstraintViolated) {
		t.Errorf("weight 11: err = %v, want ErrConstraintViolated", err)
	}

	if got := translateStorageError(gorm.ErrRecordNotFound); !errors.Is(got, utils.ErrNotFound) {
		t.Errorf("record not found: %v", got)
	}
	if got := translateStorageError(errors.New("disk full")); !errors.Is(got, utils.ErrDatabaseError) {
		t.Errorf("unknown error: %v", got)
	}
	if translateStorageError(nil) != nil {
		t.Error("nil error was translated")
	}
}

func TestPreferenceWeightBounds(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "pref@example.com")

	pref, err := s.users.AddPreference(ctx, user.ID, request_models.CreatePreferenceRequest{Category: "hiking", Weight: 10})
	if err != nil {
		t.Fatalf("weight 10: %v", err)
	}
	if pref.Weight != 10 {
		t.Errorf("weight = %d", pref.Weight)
	}

	prefs, err := s.users.ListPreferences(ctx, user.ID)
	if err != nil || len(prefs) != 1 {
		t.Fatalf("list = %v, %v", prefs, err)
	}

	if err := s.users.DeletePreference(ctx, pref.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.users.DeletePreference(ctx, pref.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateUserIsPartial(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "partial@example.com")

	updated, err := s.users.UpdateUser(ctx, user.ID, request_models.UpdateUserRequest{
		TravelStyle:         str("backpacker"),
		DietaryRestrictions: []string{"halal"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Grace" || updated.Email != "partial@example.com" || updated.Language != "en" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	got, err := s.users.GetUserByEmail(ctx, "partial@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.TravelStyle != "backpacker" || len(got.DietaryRestrictions) != 1 || got.DietaryRestrictions[0] != "halal" {
		t.Errorf("stored user = %+v", got)
	}
}

func TestMissingParentIsNotFound(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	missing := uuid.New()

	checks := []struct {
		name string
		err  error
	}{
		{"trip for missing user", func() error {
			_, err := s.trips.CreateTrip(ctx, missing, request_models.TripRequest{Title: "x"})
			return err
		}()},
		{"items of missing trip", func() error {
			_, err := s.itinerary.ListItems(ctx, missing)
			return err
		}()},
		{"booking for missing item", func() error {
			_, err := s.itinerary.SaveBooking(ctx, missing, request_models.BookingRequest{Status: "pending"})
			return err
		}()},
		{"history of missing user", func() error {
			_, err := s.history.ListTravelHistory(ctx, missing)
			return err
		}()},
		{"get missing trip", func() error {
			_, err := s.trips.GetTrip(ctx, missing)
			return err
		}()},
	}

	for _, c := range checks {
		if !errors.Is(c.err, utils.ErrNotFound) {
			t.Errorf("%s: err = %v, want ErrNotFound", c.name, c.err)
		}
	}
}

func TestTripCost(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "cost@example.com")
	trip := mustTrip(t, s, user.ID)
	mustItem(t, s, trip.ID, str("50.00"))
	mustItem(t, s, trip.ID, str("200.00"))
	mustItem(t, s, trip.ID, nil)

	cost, err := s.trips.GetTripCost(ctx, trip.ID)
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost.ItemCount != 3 {
		t.Errorf("item count = %d, want 3", cost.ItemCount)
	}
	if !cost.TotalCost.Equal(decimal.NewFromInt(250)) {
		t.Errorf("total = %s, want 250", cost.TotalCost)
	}
	if !cost.TotalBudget.Valid || !cost.TotalBudget.Decimal.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("budget = %+v", cost.TotalBudget)
	}
}

func TestUpdateTripReplacesFields(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "replace@example.com")
	trip := mustTrip(t, s, user.ID)

	updated, err := s.trips.UpdateTrip(ctx, trip.ID, request_models.TripRequest{Title: "Osaka", Destination: "Osaka"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Osaka" || updated.StartDate != nil || updated.TotalBudget.Valid {
		t.Errorf("updated = %+v", updated)
	}

	_, err = s.trips.UpdateTrip(ctx, trip.ID, request_models.TripRequest{StartDate: str("April 1st")})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("bad date: err = %v, want ErrInvalidInput", err)
	}
}

func TestSaveBookingUpserts(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "upsert@example.com")
	trip := mustTrip(t, s, user.ID)
	item := mustItem(t, s, trip.ID, str("80"))

	first, err := s.itinerary.SaveBooking(ctx, item.ID, request_models.BookingRequest{
		ConfirmationNumber: "PNR1",
		Provider:           "JAL",
		Status:             string(db_models.BookingPending),
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	second, err := s.itinerary.SaveBooking(ctx, item.ID, request_models.BookingRequest{
		ConfirmationNumber: "PNR2",
		Provider:           "JAL",
		Status:             string(db_models.BookingConfirmed),
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("booking id changed from %s to %s", first.ID, second.ID)
	}

	got, err := s.itinerary.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if got.Booking == nil || got.Booking.Status != db_models.BookingConfirmed || got.Booking.ConfirmationNumber != "PNR2" {
		t.Errorf("booking = %+v", got.Booking)
	}

	_, err = s.itinerary.SaveBooking(ctx, item.ID, request_models.BookingRequest{Status: "lost"})
	if !errors.Is(err, utils.ErrConstraintViolated) {
		t.Errorf("invalid status: err = %v, want ErrConstraintViolated", err)
	}

	if err := s.itinerary.DeleteBooking(ctx, first.ID); err != nil {
		t.Fatalf("delete booking: %v", err)
	}
	if _, err := s.itinerary.GetBooking(ctx, item.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("get deleted booking: err = %v", err)
	}
}

func TestUpdateItemResetsBookingStatus(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "items@example.com")
	trip := mustTrip(t, s, user.ID)
	item := mustItem(t, s, trip.ID, nil)

	stored, err := s.itinerary.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if stored.BookingStatus != db_models.BookingStatusUnbooked {
		t.Errorf("new item booking status = %q", stored.BookingStatus)
	}

	updated, err := s.itinerary.UpdateItem(ctx, item.ID, request_models.ItineraryItemRequest{
		Type:      string(db_models.ItemTypeFlight),
		Title:     "KIX to HND",
		StartTime: str("2025-04-10T09:00:00Z"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != db_models.ItemTypeFlight || updated.Location != nil || updated.BookingStatus != db_models.BookingStatusUnbooked {
		t.Errorf("updated = %+v", updated)
	}

	_, err = s.itinerary.UpdateItem(ctx, item.ID, request_models.ItineraryItemRequest{Type: "spaceship"})
	if !errors.Is(err, utils.ErrConstraintViolated) {
		t.Errorf("invalid type: err = %v, want ErrConstraintViolated", err)
	}
}

func TestCollaborators(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "owner@example.com")
	trip := mustTrip(t, s, user.ID)

	c, err := s.trips.AddCollaborator(ctx, trip.ID, request_models.CreateCollaboratorRequest{CollaboratorEmail: "friend@example.com"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err = s.trips.AddCollaborator(ctx, trip.ID, request_models.CreateCollaboratorRequest{CollaboratorEmail: "x@example.com", Role: "admin"})
	if !errors.Is(err, utils.ErrConstraintViolated) {
		t.Errorf("invalid role: err = %v", err)
	}

	list, err := s.trips.ListCollaborators(ctx, trip.ID)
	if err != nil || len(list) != 1 {
		t.Fatalf("list = %v, %v", list, err)
	}
	if list[0].Role != db_models.RoleViewer {
		t.Errorf("role = %q, want viewer", list[0].Role)
	}
	if err := s.trips.RemoveCollaborator(ctx, c.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
}

func TestFeedback(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "fb@example.com")
	trip := mustTrip(t, s, user.ID)

	_, err := s.feedback.AddFeedback(ctx, request_models.CreateFeedbackRequest{
		UserID:        user.ID.String(),
		TripID:        trip.ID.String(),
		Rating:        4,
		FlaggedIssues: []string{"late checkin"},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	tests := []struct {
		name string
		req  request_models.CreateFeedbackRequest
		want error
	}{
		{"rating too high", request_models.CreateFeedbackRequest{UserID: user.ID.String(), TripID: trip.ID.String(), Rating: 6}, utils.ErrConstraintViolated},
		{"unknown trip", request_models.CreateFeedbackRequest{UserID: user.ID.String(), TripID: uuid.NewString(), Rating: 3}, utils.ErrReferenceMissing},
		{"bad user id", request_models.CreateFeedbackRequest{UserID: "nope", TripID: trip.ID.String(), Rating: 3}, utils.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.feedback.AddFeedback(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	list, err := s.feedback.ListTripFeedback(ctx, trip.ID, 1, 10)
	if err != nil || len(list) != 1 {
		t.Fatalf("list = %v, %v", list, err)
	}
	if len(list[0].FlaggedIssues) != 1 || list[0].FlaggedIssues[0] != "late checkin" {
		t.Errorf("flagged issues = %v", list[0].FlaggedIssues)
	}
}

func TestHistoryAndAIInteractions(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "hist@example.com")

	entry, err := s.history.AddTravelHistory(ctx, user.ID, request_models.CreateTravelHistoryRequest{
		Destination: "Lisbon",
		StartDate:   str("2024-09-01"),
		Activities:  []string{"surfing", "fado"},
	})
	if err != nil {
		t.Fatalf("add history: %v", err)
	}
	entries, err := s.history.ListTravelHistory(ctx, user.ID)
	if err != nil || len(entries) != 1 {
		t.Fatalf("history = %v, %v", entries, err)
	}
	if entries[0].Liked == nil || !*entries[0].Liked {
		t.Errorf("liked = %v, want default true", entries[0].Liked)
	}
	if len(entries[0].Activities) != 2 {
		t.Errorf("activities = %v", entries[0].Activities)
	}

	if _, err := s.history.LogAIInteraction(ctx, user.ID, request_models.CreateAIInteractionRequest{
		Input:     "3 days in Lisbon",
		Response:  "Day 1: Alfama",
		Purpose:   "itinerary",
		ModelUsed: "test-model",
	}); err != nil {
		t.Fatalf("log interaction: %v", err)
	}

	full, err := s.users.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if len(full.TravelHistory) != 1 || len(full.AIInteractions) != 1 {
		t.Errorf("history = %d, ai = %d", len(full.TravelHistory), len(full.AIInteractions))
	}

	if err := s.history.DeleteTravelHistory(ctx, entry.ID); err != nil {
		t.Fatalf("delete history: %v", err)
	}
	list, err := s.history.ListAIInteractions(ctx, user.ID, 1, 20)
	if err != nil || len(list) != 1 {
		t.Fatalf("ai list = %v, %v", list, err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := mustUser(t, s, "gone@example.com")
	trip := mustTrip(t, s, user.ID)
	item := mustItem(t, s, trip.ID, str("10"))
	if _, err := s.itinerary.SaveBooking(ctx, item.ID, request_models.BookingRequest{Status: "confirmed"}); err != nil {
		t.Fatalf("booking: %v", err)
	}

	if err := s.users.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.trips.GetTrip(ctx, trip.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("trip survived: %v", err)
	}
	if _, err := s.itinerary.GetItem(ctx, item.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("item survived: %v", err)
	}
	if _, err := s.itinerary.GetBooking(ctx, item.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("booking survived: %v", err)
	}
	if err := s.users.DeleteUser(ctx, user.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("second delete: err = %v", err)
	}
}
