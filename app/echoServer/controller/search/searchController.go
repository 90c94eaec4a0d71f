package search

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hotelbooking/model"
	"hotelbooking/service/booking"
	searchsvc "hotelbooking/service/search"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Booking booking.Service
	Search  searchsvc.Service
	Log     *slog.Logger
}

// Rooms lists every room free over the requested window.
// @Summary      Search available rooms
// @Tags         search
// @Produce      json
// @Param        check_in  query  string  true  "YYYY-MM-DD"
// @Param        check_out query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  map[string]any
// @Router       /v1/search/rooms [get]
func (h *Controller) Rooms(c echo.Context) error {
	checkIn, checkOut, err := parseRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	rooms, err := h.Booking.FindAvailableRooms(checkIn, checkOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "check-in must be before check-out"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rooms})
}

// Alternatives runs the 7-day forward probe when the requested window is booked.
// @Summary      Search alternative dates
// @Tags         search
// @Produce      json
// @Param        check_in  query  string  true  "YYYY-MM-DD"
// @Param        check_out query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  map[string]any
// @Router       /v1/search/alternatives [get]
func (h *Controller) Alternatives(c echo.Context) error {
	checkIn, checkOut, err := parseRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	alt, err := h.Search.FindAlternativeRooms(checkIn, checkOut)
	if err != nil {
		if errors.Is(err, searchsvc.ErrInvalidRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		h.Log.Error("alternative search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	// same keys whether or not an offset matched; dates are null when empty
	resp := echo.Map{"data": alt.Rooms, "check_in": nil, "check_out": nil}
	if len(alt.Rooms) > 0 {
		resp["check_in"] = alt.CheckIn.Format(model.DateLayout)
		resp["check_out"] = alt.CheckOut.Format(model.DateLayout)
	}
	return c.JSON(http.StatusOK, resp)
}

func parseRange(c echo.Context) (checkIn, checkOut time.Time, err error) {
	checkIn, err = model.ParseDate(c.QueryParam("check_in"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid check_in, want YYYY-MM-DD")
	}
	checkOut, err = model.ParseDate(c.QueryParam("check_out"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid check_out, want YYYY-MM-DD")
	}
	return checkIn, checkOut, nil
}
