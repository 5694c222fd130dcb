package domain

// CatalogCategory is one section of the menu as served by the remote
// ordering service. Categories render in the order received.
type CatalogCategory struct {
	Category string        `json:"category"`
	Items    []CatalogItem `json:"items"`
}

type CatalogItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
