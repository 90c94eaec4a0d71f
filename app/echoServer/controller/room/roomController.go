package room

import (
	"errors"
	"log/slog"
	"net/http"

	"hotelbooking/model"
	"hotelbooking/service/booking"
	roomsvc "hotelbooking/service/room"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Rooms   roomsvc.Service
	Booking booking.Service
	V       *validator.Validate
	Log     *slog.Logger
}

// Create adds a room to the catalog.
// @Summary      Add room (admin)
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateRoomReq  true  "Room payload"
// @Success      201  {object}  model.Room
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "room number taken"
// @Router       /v1/admin/rooms [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	created, err := h.Rooms.Add(req.Number, req.Price, model.RoomType(req.Type))
	if err != nil {
		switch {
		case errors.Is(err, roomsvc.ErrRoomExists):
			return c.JSON(http.StatusConflict, echo.Map{"message": "room number already exists"})
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, created)
}

// GET /v1/rooms
func (h *Controller) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Rooms.List()})
}

// GET /v1/rooms/:number
func (h *Controller) Detail(c echo.Context) error {
	room, err := h.Rooms.Get(c.Param("number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if room == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
	}
	return c.JSON(http.StatusOK, room)
}

// Availability checks one room against a date range.
// @Summary      Room availability
// @Tags         rooms
// @Produce      json
// @Param        number    path   string  true  "Room number"
// @Param        check_in  query  string  true  "YYYY-MM-DD"
// @Param        check_out query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  map[string]any
// @Router       /v1/rooms/{number}/availability [get]
func (h *Controller) Availability(c echo.Context) error {
	checkIn, err := model.ParseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid check_in, want YYYY-MM-DD"})
	}
	checkOut, err := model.ParseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid check_out, want YYYY-MM-DD"})
	}

	number := c.Param("number")
	room, err := h.Rooms.Get(number)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if room == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"room":      number,
		"check_in":  checkIn.Format(model.DateLayout),
		"check_out": checkOut.Format(model.DateLayout),
		"available": h.Booking.IsRoomAvailable(number, checkIn, checkOut),
	})
}
