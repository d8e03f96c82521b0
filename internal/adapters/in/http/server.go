// Package http exposes the shop's use cases over a JSON REST API.
// It coordinates between HTTP handlers and application use cases and maps
// domain failures to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"onlineshop/internal/core/application/usecases/commands"
	"onlineshop/internal/core/application/usecases/queries"
	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/order"
	"onlineshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultLowStockThreshold = 5

// Server handles the HTTP endpoints of the shop backend.
type Server struct {
	// Command handlers
	placeOrderHandler    commands.PlaceOrderCommandHandler
	deliverOrderHandler  commands.DeliverOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	returnOrderHandler   commands.ReturnOrderCommandHandler
	createProductHandler commands.CreateProductCommandHandler
	updateProductHandler commands.UpdateProductCommandHandler
	deleteProductHandler commands.DeleteProductCommandHandler

	// Query handlers
	getProductsHandler queries.GetProductsQueryHandler
	getLowStockHandler queries.GetLowStockProductsQueryHandler
	getProductHandler  queries.GetProductQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getLowStockHandler queries.GetLowStockProductsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:    placeOrderHandler,
		deliverOrderHandler:  deliverOrderHandler,
		cancelOrderHandler:   cancelOrderHandler,
		returnOrderHandler:   returnOrderHandler,
		createProductHandler: createProductHandler,
		updateProductHandler: updateProductHandler,
		deleteProductHandler: deleteProductHandler,
		getProductsHandler:   getProductsHandler,
		getLowStockHandler:   getLowStockHandler,
		getProductHandler:    getProductHandler,
		getOrderHandler:      getOrderHandler,
	}
}

// RegisterRoutes wires all endpoints into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/return", s.ReturnOrder)

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:productId", s.UpdateProduct)
	api.DELETE("/products/:code", s.DeleteProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/products/low-stock", s.GetLowStockProducts)
	api.GET("/products/:code", s.GetProduct)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+req.CustomerID)
	}

	items := make([]commands.PlaceOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+item.ProductID)
		}
		items = append(items, commands.PlaceOrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	cmd, err := lifecycleCommand(ctx, commands.NewDeliverOrderCommand)
	if err != nil {
		return nil //nolint:nilerr //error response already written
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
// Canceling does not restore stock: the reserved units stay allocated to the
// canceled order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := lifecycleCommand(ctx, commands.NewCancelOrderCommand)
	if err != nil {
		return nil //nolint:nilerr //error response already written
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles POST /api/v1/orders/:orderId/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	cmd, err := lifecycleCommand(ctx, commands.NewReturnOrderCommand)
	if err != nil {
		return nil //nolint:nilerr //error response already written
	}

	if err = s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// lifecycleCommandParams parses the shared shape of the deliver/cancel/return
// endpoints: the order id from the path and the acting user from the body.
// On failure the error response has already been written to ctx.
func lifecycleCommandParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid order id: "+ctx.Param("orderId"))
	}

	var req OrderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest(ctx, "Invalid user id: "+req.UserID)
	}

	return orderID, userID, nil
}

// lifecycleCommand builds a deliver/cancel/return command from the request.
// On failure the error response has already been written to ctx.
func lifecycleCommand[C any](
	ctx echo.Context,
	newCommand func(kernel.UUID, kernel.UUID) (C, error),
) (C, error) {
	var zero C

	orderID, userID, err := lifecycleCommandParams(ctx)
	if err != nil {
		return zero, err
	}

	cmd, err := newCommand(orderID, userID)
	if err != nil {
		return zero, badRequest(ctx, "Invalid request: "+err.Error())
	}

	return cmd, nil
}

// CreateProduct handles POST /api/v1/products - adds a product to the catalog.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price.Amount, kernel.Currency(req.Price.Currency))
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, req.Code, req.Name, req.Description, price, req.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ProductCreatedResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:productId.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+ctx.Param("productId"))
	}

	var req UpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price.Amount, kernel.Currency(req.Price.Currency))
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewUpdateProductCommand(productID, req.Name, req.Description, price)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:code - removes a product
// from the catalog. Orders already placed for the product are unaffected.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	cmd, err := commands.NewDeleteProductCommand(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid product code: "+err.Error())
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			return notFound(ctx, "Product not found")
		}
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	response := make([]Product, len(products))
	for i, product := range products {
		response[i] = Product{
			ID:          product.ID.String(),
			Code:        product.Code,
			Name:        product.Name,
			Description: product.Description,
			Price: Price{
				Amount:   product.PriceAmount,
				Currency: product.PriceCurrency,
			},
			AvailableQuantity: product.AvailableQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockProducts handles GET /api/v1/products/low-stock.
// The threshold query parameter defaults to 5.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	threshold := defaultLowStockThreshold
	if raw := ctx.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid threshold: "+raw)
		}
		threshold = parsed
	}

	query, err := queries.NewGetLowStockProductsQuery(threshold)
	if err != nil {
		return badRequest(ctx, "Invalid threshold: "+err.Error())
	}

	products, err := s.getLowStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve low stock products")
	}

	response := make([]LowStockProduct, len(products))
	for i, product := range products {
		response[i] = LowStockProduct{
			ID:                product.ID.String(),
			Code:              product.Code,
			Name:              product.Name,
			AvailableQuantity: product.AvailableQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:code - looks a product up by its
// merchant code.
func (s *Server) GetProduct(ctx echo.Context) error {
	query, err := queries.NewGetProductQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid product code: "+err.Error())
	}

	product, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Product not found")
		}
		return internalError(ctx, "Failed to retrieve product")
	}

	return ctx.JSON(http.StatusOK, Product{
		ID:          product.ID.String(),
		Code:        product.Code,
		Name:        product.Name,
		Description: product.Description,
		Price: Price{
			Amount:   product.PriceAmount,
			Currency: product.PriceCurrency,
		},
		AvailableQuantity: product.AvailableQuantity,
	})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("orderId"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	lines := make([]OrderLine, len(resp.Lines))
	for i, line := range resp.Lines {
		lines[i] = OrderLine{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:         resp.ID.String(),
		CustomerID: resp.CustomerID.String(),
		Status:     resp.Status,
		Lines:      lines,
	})
}

// commandError maps a command failure to its HTTP response.
// Business rule conflicts map to 409, unknown references and validation
// failures to 404/400, anything unexpected to 500.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, commands.ErrProductNotFound):
		return badRequest(ctx, "Unknown product referenced")
	case errors.Is(err, commands.ErrCustomerNotFound):
		return badRequest(ctx, "Unknown customer")
	case errors.Is(err, commands.ErrNotEnoughStock):
		return conflict(ctx, "Not enough stock")
	case errors.Is(err, commands.ErrProductAlreadyExists):
		return conflict(ctx, "Product already exists")
	case errors.Is(err, order.ErrOrderAlreadyDelivered):
		return conflict(ctx, "Order has already been delivered")
	case errors.Is(err, order.ErrOrderCanceled):
		return conflict(ctx, "Order has been canceled")
	case errors.Is(err, order.ErrOrderNotDeliveredYet):
		return conflict(ctx, "Order has not been delivered yet")
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return conflict(ctx, "Order was modified concurrently, retry")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, "Internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
