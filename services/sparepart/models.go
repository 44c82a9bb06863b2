package sparepartservice

type RequestSparePartReq struct {
	WorkOrderID string `json:"work_order_id" validate:"required,uuid"`
	SparePartID string `json:"spare_part_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

type CreateSparePartReq struct {
	Name      string  `json:"name" validate:"required"`
	Stock     int     `json:"stock" validate:"gte=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}
