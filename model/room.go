package model

import (
	"errors"
	"fmt"
	"strings"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrNegativePrice   = errors.New("room price cannot be negative")
	ErrBadRoomType     = errors.New("room type must be SINGLE or DOUBLE")
)

// Room is immutable after creation. Identity is the room number.
type Room struct {
	Number string   `json:"number"`
	Price  float64  `json:"price"`
	Type   RoomType `json:"type"`
}

func NewRoom(number string, price float64, roomType RoomType) (*Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrEmptyRoomNumber
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if roomType != RoomTypeSingle && roomType != RoomTypeDouble {
		return nil, ErrBadRoomType
	}
	return &Room{Number: number, Price: price, Type: roomType}, nil
}

// Free reports whether the room costs nothing per night.
func (r *Room) Free() bool { return r.Price == 0 }

func (r *Room) String() string {
	if r.Free() {
		return fmt.Sprintf("Room %s (%s) FREE", r.Number, r.Type)
	}
	return fmt.Sprintf("Room %s (%s) $%.2f/night", r.Number, r.Type, r.Price)
}
