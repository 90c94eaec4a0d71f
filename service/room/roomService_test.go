package roomsvc_test

import (
	"testing"

	"hotelbooking/model"
	roomrepo "hotelbooking/repository/room"
	roomsvc "hotelbooking/service/room"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	svc := roomsvc.New(roomrepo.New())

	created, err := svc.Add("101", 100, model.RoomTypeDouble)
	require.NoError(t, err)
	require.Equal(t, "101", created.Number)

	// adding the same number twice is rejected and the catalog is unchanged
	_, err = svc.Add("101", 80, model.RoomTypeSingle)
	require.ErrorIs(t, err, roomsvc.ErrRoomExists)
	require.Len(t, svc.List(), 1)
}

func TestAdd_Validation(t *testing.T) {
	svc := roomsvc.New(roomrepo.New())

	_, err := svc.Add("", 100, model.RoomTypeDouble)
	require.ErrorIs(t, err, model.ErrEmptyRoomNumber)

	_, err = svc.Add("101", -5, model.RoomTypeDouble)
	require.ErrorIs(t, err, model.ErrNegativePrice)

	_, err = svc.Add("101", 100, model.RoomType("TRIPLE"))
	require.ErrorIs(t, err, model.ErrBadRoomType)

	require.Empty(t, svc.List())
}

func TestGet(t *testing.T) {
	svc := roomsvc.New(roomrepo.New())

	_, err := svc.Get(" ")
	require.ErrorIs(t, err, model.ErrEmptyRoomNumber)

	// unknown room is an absent result, not an error
	room, err := svc.Get("404")
	require.NoError(t, err)
	require.Nil(t, room)
}
