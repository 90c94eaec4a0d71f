package customer

import (
	"errors"
	"log/slog"
	"net/http"

	"hotelbooking/model"
	customersvc "hotelbooking/service/customer"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc customersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Register creates a customer account.
// @Summary      Register customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        payload  body  RegisterCustomerReq  true  "Register payload"
// @Success      201  {object}  model.Customer
// @Failure      400  {object}  map[string]any "malformed email"
// @Failure      409  {object}  map[string]any "email taken"
// @Router       /v1/customers [post]
func (h *Controller) Register(c echo.Context) error {
	var req RegisterCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	created, err := h.Svc.Register(req.Email, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidEmail):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case errors.Is(err, customersvc.ErrEmailTaken):
			return c.JSON(http.StatusConflict, echo.Map{"message": "email already registered"})
		default:
			h.Log.Error("customer register", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, created)
}

// GET /v1/customers/:email
func (h *Controller) Detail(c echo.Context) error {
	found, err := h.Svc.Get(c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	if found == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
	}
	return c.JSON(http.StatusOK, found)
}

// GET /v1/admin/customers
func (h *Controller) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.All()})
}
