package model

type Theater struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Address  string `json:"address"`
	Province string `json:"province"`
	Hotline  string `json:"hotline"`
}
