package reservation

import (
	"log/slog"
	"net/http"

	"hotelbooking/model"
	"hotelbooking/service/booking"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booking.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create books a room for a registered customer.
// @Summary      Book a room
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateReservationReq  true  "Booking payload"
// @Success      201  {object}  model.Reservation
// @Failure      400  {object}  map[string]any "invalid dates"
// @Failure      404  {object}  map[string]any "unknown room or customer"
// @Failure      409  {object}  map[string]any "room unavailable"
// @Router       /v1/reservations [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	checkIn, err := model.ParseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid check_in, want YYYY-MM-DD"})
	}
	checkOut, err := model.ParseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid check_out, want YYYY-MM-DD"})
	}

	res, err := h.Svc.Reserve(req.Email, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		switch booking.Code(err) {
		case booking.ErrInvalid:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "check-in must be today or later and before check-out"})
		case booking.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case booking.ErrRoomNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
		case booking.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "room not available for the selected dates"})
		default:
			h.Log.Error("reservation create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, res)
}

// GET /v1/customers/:email/reservations
func (h *Controller) ByCustomer(c echo.Context) error {
	rows, err := h.Svc.CustomerReservations(c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid email"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/admin/reservations
func (h *Controller) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.AllReservations()})
}
