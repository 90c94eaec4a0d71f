package reservation

type CreateReservationReq struct {
	Email      string `json:"email" validate:"required"`
	RoomNumber string `json:"room_number" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`
}
