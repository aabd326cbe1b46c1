package model

// ConcessionItem món bắp nước trong danh mục
type ConcessionItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageUrl string  `json:"imageUrl"`
}

// ConcessionOrder một dòng bắp nước khách đã chọn
type ConcessionOrder struct {
	ItemId   uint    `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type AddConcessionInput struct {
	ItemId   uint `json:"itemId" validate:"required,gt=0"`
	Quantity int  `json:"quantity" validate:"omitempty,gte=1"`
}

type UpdateConcessionInput struct {
	Quantity int `json:"quantity"`
}
