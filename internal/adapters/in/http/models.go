package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderItem is one requested order position.
type PlaceOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerID string           `json:"customerId"`
	Items      []PlaceOrderItem `json:"items"`
}

// OrderCreatedResponse returns the identifier of a freshly placed order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// OrderActionRequest is the body of the lifecycle endpoints
// (deliver, cancel, return). UserID identifies who performs the action.
type OrderActionRequest struct {
	UserID string `json:"userId"`
}

// OrderLine is one position of an order as returned by the API.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is the read model of an order as returned by the API.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Status     string      `json:"status"`
	Lines      []OrderLine `json:"lines"`
}

// Price is a money amount in minor units with its currency.
type Price struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Stock       int    `json:"stock"`
}

// ProductCreatedResponse returns the identifier of a freshly created product.
type ProductCreatedResponse struct {
	ID string `json:"id"`
}

// UpdateProductRequest is the body of PUT /api/v1/products/:productId.
// The code and the stock level are not updatable through this endpoint.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
}

// Product is the catalog read model as returned by the API.
type Product struct {
	ID                string `json:"id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             Price  `json:"price"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// LowStockProduct is a product running low on stock.
type LowStockProduct struct {
	ID                string `json:"id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	AvailableQuantity int    `json:"availableQuantity"`
}
