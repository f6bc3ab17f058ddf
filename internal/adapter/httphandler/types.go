package httphandler

import "github.com/niksmo/shop/internal/core/domain"

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	Data       any    `json:"data"`
}

type (
	Product struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Stock int    `json:"stock"`
		Price int64  `json:"price"`
	}

	Order struct {
		ID        string   `json:"id"`
		ProductID string   `json:"productId"`
		UserID    string   `json:"userId"`
		Quantity  int      `json:"quantity"`
		Price     int64    `json:"price"`
		Product   *Product `json:"product,omitempty"`
	}

	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	WishlistEntry struct {
		ProductID string   `json:"productId"`
		Product   *Product `json:"product,omitempty"`
	}

	LoginData struct {
		Token string `json:"token"`
	}
)

type (
	ProductInput struct {
		Name  string `json:"name"`
		Stock int    `json:"stock"`
		Price int64  `json:"price"`
	}

	OrderCreateInput struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	RegisterInput struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	WishlistInput struct {
		ProductID string `json:"productId"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{ID: p.ID, Name: p.Name, Stock: p.Stock, Price: p.Price}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toOrder(o domain.Order) Order {
	v := Order{
		ID:        o.ID,
		ProductID: o.ProductID,
		UserID:    o.UserID,
		Quantity:  o.Quantity,
		Price:     o.Price,
	}
	if o.Product != nil {
		p := toProduct(*o.Product)
		v.Product = &p
	}
	return v
}

func toOrders(os []domain.Order) []Order {
	out := make([]Order, 0, len(os))
	for _, o := range os {
		out = append(out, toOrder(o))
	}
	return out
}

func toUser(u domain.User) User {
	return User{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toWishlist(ws []domain.WishlistEntry) []WishlistEntry {
	out := make([]WishlistEntry, 0, len(ws))
	for _, w := range ws {
		v := WishlistEntry{ProductID: w.ProductID}
		if w.Product != nil {
			p := toProduct(*w.Product)
			v.Product = &p
		}
		out = append(out, v)
	}
	return out
}
