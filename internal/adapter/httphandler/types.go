package httphandler

type (
	Product struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Price       string `json:"price"`
		Image       string `json:"image"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Rating      Rating `json:"rating"`
		Stock       int    `json:"stock"`
		Brand       string `json:"brand,omitempty"`
		Discount    string `json:"discount,omitempty"`
	}

	Rating struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	}
)

type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type CartItem struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice string     `json:"total_price"`
}

type AddCartItem struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartItem struct {
	Quantity int `json:"quantity"`
}

type Order struct {
	OrderID    string `json:"order_id"`
	TotalItems int    `json:"total_items"`
	TotalPrice string `json:"total_price"`
}
