package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

// buildReservationTestApp wires the reservation and room routes with a real
// JWT verifier so the request validation paths can be exercised.
func buildReservationTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	reservations := app.Party("/api/reservations", accessTokenVerifierMiddleware)
	{
		reservations.Post("/", CreateReservation)
		reservations.Patch("/{id:uint}/status", utils.StaffOnlyMiddleware, ChangeReservationStatus)
	}
	rooms := app.Party("/api/rooms", accessTokenVerifierMiddleware)
	{
		rooms.Get("/{id:uint}/availability", GetRoomAvailability)
	}
	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func signReservationTestToken(role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: 1, Role: role})
	return string(token)
}

func doJSON(app *iris.Application, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateReservationRequiresToken(t *testing.T) {
	app := buildReservationTestApp()

	resp := doJSON(app, http.MethodPost, "/api/reservations", "", `{}`)
	if resp.Code == http.StatusOK || resp.Code == http.StatusCreated {
		t.Fatalf("expected failure without token, got %d", resp.Code)
	}
}

func TestCreateReservationValidatesBody(t *testing.T) {
	app := buildReservationTestApp()
	token := signReservationTestToken("receptionist")

	// Missing required fields -> 400 from the validator
	resp := doJSON(app, http.MethodPost, "/api/reservations", token, `{"note":"hi"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.Code)
	}

	// Malformed JSON -> 400
	resp = doJSON(app, http.MethodPost, "/api/reservations", token, `{"guestID":`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}
}

func TestCreateReservationRejectsInvertedDates(t *testing.T) {
	app := buildReservationTestApp()
	token := signReservationTestToken("receptionist")

	body := `{"guestID":1,"roomIDs":[1],"checkInDate":"2024-07-05T00:00:00Z","checkOutDate":"2024-07-01T00:00:00Z"}`
	resp := doJSON(app, http.MethodPost, "/api/reservations", token, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted dates, got %d", resp.Code)
	}

	// Zero-night stay is rejected the same way.
	body = `{"guestID":1,"roomIDs":[1],"checkInDate":"2024-07-05T00:00:00Z","checkOutDate":"2024-07-05T00:00:00Z"}`
	resp = doJSON(app, http.MethodPost, "/api/reservations", token, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero-night stay, got %d", resp.Code)
	}
}

func TestChangeReservationStatusRBAC(t *testing.T) {
	app := buildReservationTestApp()

	resp := doJSON(app, http.MethodPatch, "/api/reservations/1/status", signReservationTestToken("guest"), `{"status":"confirmed"}`)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for guest role, got %d", resp.Code)
	}
}

func TestChangeReservationStatusValidatesBody(t *testing.T) {
	app := buildReservationTestApp()

	resp := doJSON(app, http.MethodPatch, "/api/reservations/1/status", signReservationTestToken("receptionist"), `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing status, got %d", resp.Code)
	}
}

func TestRoomAvailabilityValidatesQuery(t *testing.T) {
	app := buildReservationTestApp()
	token := signReservationTestToken("guest")

	resp := doJSON(app, http.MethodGet, "/api/rooms/1/availability", token, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing dates, got %d", resp.Code)
	}

	resp = doJSON(app, http.MethodGet, "/api/rooms/1/availability?checkIn=June-1&checkOut=2024-06-05", token, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed checkIn, got %d", resp.Code)
	}
}
