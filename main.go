// Package main hotel reservation API.
//
// @title           Hotel Reservation API
// @version         1.0
// @description     room catalog, customer registry and reservation ledger with availability search.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"log/slog"
	"net/http"
	"os"

	"hotelbooking/app/echoServer"
	authctrl "hotelbooking/app/echoServer/controller/auth"
	customerctrl "hotelbooking/app/echoServer/controller/customer"
	reservationctrl "hotelbooking/app/echoServer/controller/reservation"
	roomctrl "hotelbooking/app/echoServer/controller/room"
	searchctrl "hotelbooking/app/echoServer/controller/search"
	"hotelbooking/app/echoServer/validation"
	"hotelbooking/config"
	customerrepo "hotelbooking/repository/customer"
	reservationrepo "hotelbooking/repository/reservation"
	roomrepo "hotelbooking/repository/room"
	"hotelbooking/service/booking"
	customersvc "hotelbooking/service/customer"
	roomsvc "hotelbooking/service/room"
	"hotelbooking/service/search"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// repos (in-memory; state lives for the process lifetime only)
	rooms := roomrepo.New()
	customers := customerrepo.New()
	ledger := reservationrepo.New()

	// services
	rs := roomsvc.New(rooms)
	cs := customersvc.New(customers)
	bs := booking.New(rooms, customers, ledger)
	ss := search.New(bs)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{AdminSecret: cfg.AdminSecret, V: v, Log: log}
	roomC := &roomctrl.Controller{Rooms: rs, Booking: bs, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	reservationC := &reservationctrl.Controller{Svc: bs, V: v, Log: log}
	searchC := &searchctrl.Controller{Booking: bs, Search: ss, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Room:        roomC,
		Customer:    customerC,
		Reservation: reservationC,
		Search:      searchC,

		AdminSecret: cfg.AdminSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
