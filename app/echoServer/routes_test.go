package echoServer_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"hotelbooking/app/echoServer"
	authctrl "hotelbooking/app/echoServer/controller/auth"
	customerctrl "hotelbooking/app/echoServer/controller/customer"
	reservationctrl "hotelbooking/app/echoServer/controller/reservation"
	roomctrl "hotelbooking/app/echoServer/controller/room"
	searchctrl "hotelbooking/app/echoServer/controller/search"
	"hotelbooking/app/echoServer/validation"
	"hotelbooking/model"
	customerrepo "hotelbooking/repository/customer"
	reservationrepo "hotelbooking/repository/reservation"
	roomrepo "hotelbooking/repository/room"
	"hotelbooking/service/booking"
	customersvc "hotelbooking/service/customer"
	roomsvc "hotelbooking/service/room"
	"hotelbooking/service/search"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-admin-secret"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	rooms := roomrepo.New()
	customers := customerrepo.New()
	ledger := reservationrepo.New()

	rs := roomsvc.New(rooms)
	cs := customersvc.New(customers)
	bs := booking.New(rooms, customers, ledger)
	ss := search.New(bs)

	v := validator.New()

	e := echo.New()
	e.Validator = validation.New()
	echoServer.Register(e, echoServer.C{
		Auth:        &authctrl.Controller{AdminSecret: testSecret, V: v, Log: log},
		Room:        &roomctrl.Controller{Rooms: rs, Booking: bs, V: v, Log: log},
		Customer:    &customerctrl.Controller{Svc: cs, V: v, Log: log},
		Reservation: &reservationctrl.Controller{Svc: bs, V: v, Log: log},
		Search:      &searchctrl.Controller{Booking: bs, Search: ss, Log: log},
		AdminSecret: testSecret,
	})
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func adminToken(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/v1/admin/login", fmt.Sprintf(`{"secret":%q}`, testSecret), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(model.DateLayout)
}

func TestAdminLoginRejectsWrongSecret(t *testing.T) {
	e := newTestServer(t)
	rec := do(t, e, http.MethodPost, "/v1/admin/login", `{"secret":"nope"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e := newTestServer(t)
	rec := do(t, e, http.MethodPost, "/v1/admin/rooms", `{"number":"101","price":100,"type":"DOUBLE"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code) // missing or malformed jwt
}

func TestRegisterAndBookFlow(t *testing.T) {
	e := newTestServer(t)
	token := adminToken(t, e)

	// admin adds the room
	rec := do(t, e, http.MethodPost, "/v1/admin/rooms", `{"number":"101","price":100,"type":"DOUBLE"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPost, "/v1/admin/rooms", `{"number":"101","price":80,"type":"SINGLE"}`, token)
	require.Equal(t, http.StatusConflict, rec.Code)

	// customer registers
	rec = do(t, e, http.MethodPost, "/v1/customers", `{"email":"alice@mail.com","first_name":"Alice","last_name":"Smith"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPost, "/v1/customers", `{"email":"alice@mail.org","first_name":"Alice","last_name":"Smith"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// book, then conflict on overlap
	body := fmt.Sprintf(`{"email":"alice@mail.com","room_number":"101","check_in":%q,"check_out":%q}`,
		futureDate(10), futureDate(14))
	rec = do(t, e, http.MethodPost, "/v1/reservations", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	body = fmt.Sprintf(`{"email":"alice@mail.com","room_number":"101","check_in":%q,"check_out":%q}`,
		futureDate(12), futureDate(15))
	rec = do(t, e, http.MethodPost, "/v1/reservations", body, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	// availability endpoint sees the booking
	rec = do(t, e, http.MethodGet,
		fmt.Sprintf("/v1/rooms/101/availability?check_in=%s&check_out=%s", futureDate(12), futureDate(15)), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"available":false`)

	// the only room is booked, the probe reports the first free window
	rec = do(t, e, http.MethodGet,
		fmt.Sprintf("/v1/search/alternatives?check_in=%s&check_out=%s", futureDate(10), futureDate(14)), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var alt struct {
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alt))
	require.Equal(t, futureDate(14), alt.CheckIn) // offset 4 clears the stay
	require.Equal(t, futureDate(18), alt.CheckOut)

	// reporting
	rec = do(t, e, http.MethodGet, "/v1/admin/reservations", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, e, http.MethodGet, "/v1/customers/alice@mail.com/reservations", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAlternativesResponseShapeIsStable(t *testing.T) {
	e := newTestServer(t)
	token := adminToken(t, e)

	rec := do(t, e, http.MethodPost, "/v1/admin/rooms", `{"number":"1","price":100,"type":"SINGLE"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, e, http.MethodPost, "/v1/customers", `{"email":"gina@mail.com","first_name":"Gina","last_name":"Guest"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	// one long stay leaves no gap any of the 7 probe offsets can reach
	body := fmt.Sprintf(`{"email":"gina@mail.com","room_number":"1","check_in":%q,"check_out":%q}`,
		futureDate(10), futureDate(40))
	rec = do(t, e, http.MethodPost, "/v1/reservations", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodGet,
		fmt.Sprintf("/v1/search/alternatives?check_in=%s&check_out=%s", futureDate(10), futureDate(14)), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// empty result keeps the same keys as a hit, with null dates
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp, "data")
	require.Contains(t, resp, "check_in")
	require.Contains(t, resp, "check_out")
	require.Equal(t, "null", string(resp["check_in"]))
	require.Equal(t, "[]", string(resp["data"]))
}
