package model

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}
