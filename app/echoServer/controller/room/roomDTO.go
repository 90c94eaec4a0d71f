package room

type CreateRoomReq struct {
	Number string  `json:"number" validate:"required"`
	Price  float64 `json:"price" validate:"gte=0"`
	Type   string  `json:"type" validate:"required,oneof=SINGLE DOUBLE"`
}
