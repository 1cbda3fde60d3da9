package model

// Cat represents a single catalog record. The "descreption" spelling is
// part of the wire contract and the column name, so it is kept as-is.
type Cat struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Tag         string `json:"tag" db:"tag"`
	Descreption string `json:"descreption" db:"descreption"`
	Img         string `json:"img" db:"img"`
}

// CatInput represents the create/update request body
type CatInput struct {
	Name        string `json:"name" binding:"required"`
	Tag         string `json:"tag"`
	Descreption string `json:"descreption"`
	Img         string `json:"img"`
}

// PageMeta carries pagination metadata alongside a page of records
type PageMeta struct {
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// CatPage is the /cats response envelope
type CatPage struct {
	Data []Cat    `json:"data"`
	Meta PageMeta `json:"meta"`
}
