package echoServer

import (
	"net/http"

	"hotelbooking/app/echoServer/controller/auth"
	"hotelbooking/app/echoServer/controller/customer"
	"hotelbooking/app/echoServer/controller/reservation"
	"hotelbooking/app/echoServer/controller/room"
	"hotelbooking/app/echoServer/controller/search"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth        *auth.Controller
	Room        *room.Controller
	Customer    *customer.Controller
	Reservation *reservation.Controller
	Search      *search.Controller

	AdminSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/customers", c.Customer.Register)
	pub.GET("/customers/:email", c.Customer.Detail)
	pub.GET("/customers/:email/reservations", c.Reservation.ByCustomer)

	pub.GET("/rooms", c.Room.List)
	pub.GET("/rooms/:number", c.Room.Detail)
	pub.GET("/rooms/:number/availability", c.Room.Availability)

	pub.GET("/search/rooms", c.Search.Rooms)
	pub.GET("/search/alternatives", c.Search.Alternatives)

	pub.POST("/reservations", c.Reservation.Create)

	pub.POST("/admin/login", c.Auth.Login)

	// Admin
	admin := e.Group("/v1/admin")
	admin.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.AdminSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	}))
	admin.Use(requireAdmin)

	admin.POST("/rooms", c.Room.Create)
	admin.GET("/customers", c.Customer.ListAll)
	admin.GET("/reservations", c.Reservation.ListAll)
}

// requireAdmin rejects valid tokens that do not carry the admin role.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tok, ok := ctx.Get("user").(*jwt.Token)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		if role, _ := claims["role"].(string); role != "admin" {
			return ctx.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		return next(ctx)
	}
}
