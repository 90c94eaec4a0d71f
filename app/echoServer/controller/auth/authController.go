package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	jwtutil "hotelbooking/util/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	AdminSecret string
	V           *validator.Validate
	Log         *slog.Logger
}

type LoginReq struct {
	Secret string `json:"secret" validate:"required"`
}

// Login exchanges the admin secret for a bearer token.
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /v1/admin/login [post]
func (h *Controller) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.AdminSecret)) != 1 {
		h.Log.Warn("admin login rejected", "ip", c.RealIP())
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	token, err := jwtutil.Issue(h.AdminSecret, "admin", 24*time.Hour)
	if err != nil {
		h.Log.Error("token issue failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
