// Package http exposes the application use cases over echo. It coordinates
// between HTTP handlers and the command/query sides; authorization decisions
// live in the domain access policy, the transport only establishes identity.
package http

import (
	"net/http"

	"foodex/internal/core/application/usecases/commands"
	"foodex/internal/core/application/usecases/queries"
	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests and maps them to commands and queries.
type Server struct {
	tokens TokenService

	// Command handlers
	registerUserHandler commands.RegisterUserCommandHandler
	placeOrderHandler   commands.PlaceOrderCommandHandler
	advanceHandler      commands.AdvanceOrderStatusCommandHandler
	assignHandler       commands.AssignCourierCommandHandler

	// Query handlers
	authenticateHandler         queries.AuthenticateQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getRestaurantMenuHandler    queries.GetRestaurantMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	tokens TokenService,
	registerUserHandler commands.RegisterUserCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceHandler commands.AdvanceOrderStatusCommandHandler,
	assignHandler commands.AssignCourierCommandHandler,
	authenticateHandler queries.AuthenticateQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler,
) *Server {
	return &Server{
		tokens:                      tokens,
		registerUserHandler:         registerUserHandler,
		placeOrderHandler:           placeOrderHandler,
		advanceHandler:              advanceHandler,
		assignHandler:               assignHandler,
		authenticateHandler:         authenticateHandler,
		getOrderHandler:             getOrderHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getRestaurantMenuHandler:    getRestaurantMenuHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/auth/signup", s.Signup)
	e.POST("/api/auth/login", s.Login)

	e.GET("/api/restaurants/:id/menu", s.GetRestaurantMenu)

	authed := e.Group("/api", AuthRequired(s.tokens))
	authed.POST("/customers/order", s.PlaceOrder)
	authed.GET("/customers/orders/:id", s.GetOrder)
	authed.POST("/orders/:id/advance", s.AdvanceOrder)
	authed.POST("/orders/:id/assign", s.AssignOrder)
	authed.GET("/orders/active", s.GetActiveOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Signup handles POST /api/auth/signup - registers a new user identity.
func (s *Server) Signup(ctx echo.Context) error {
	var req SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	var restaurantID *kernel.UUID
	if req.RestaurantID != "" {
		parsed, idErr := kernel.UUIDFromString(req.RestaurantID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		restaurantID = &parsed
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Email, req.Password, role, restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	user, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := UserResponse{
		ID:    user.ID().String(),
		Email: user.Email(),
		Role:  user.Role().String(),
	}
	if affiliation := user.RestaurantID(); affiliation != nil {
		response.RestaurantID = affiliation.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// Login handles POST /api/auth/login - verifies credentials and issues a
// session token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewAuthenticateQuery(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.Issue(view.UserID, view.Email, view.Role, view.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	response := LoginResponse{
		Token: token,
		User: UserResponse{
			ID:    view.UserID.String(),
			Email: view.Email,
			Role:  view.Role.String(),
		},
	}
	if view.RestaurantID != nil {
		response.User.RestaurantID = view.RestaurantID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/customers/order - places a new order for the
// authenticated customer. Any status in the payload is ignored; orders start
// in PENDING.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return writeError(ctx, ErrInvalidToken)
	}

	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	itemIDs := make([]kernel.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		itemIDs = append(itemIDs, itemID)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), identity.UserID, identity.UserID, restaurantID, itemIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(placed))
}

// GetOrder handles GET /api/customers/orders/:id - reads one order, gated by
// the access policy.
func (s *Server) GetOrder(ctx echo.Context) error {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return writeError(ctx, ErrInvalidToken)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, identity.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// AdvanceOrder handles POST /api/orders/:id/advance - moves the order to the
// next lifecycle state.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return writeError(ctx, ErrInvalidToken)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, identity.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	advanced, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(advanced))
}

// AssignOrder handles POST /api/orders/:id/assign - sets the order's delivery
// person exactly once. Delivery users omitting courierId assign themselves.
func (s *Server) AssignOrder(ctx echo.Context) error {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return writeError(ctx, ErrInvalidToken)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	courierID := identity.UserID
	if req.CourierID != "" {
		if courierID, err = kernel.UUIDFromString(req.CourierID); err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, identity.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	assigned, err := s.assignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(assigned))
}

// GetActiveOrders handles GET /api/orders/active - lists not-yet-delivered
// orders visible to the caller.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	identity, ok := callerIdentity(ctx)
	if !ok {
		return writeError(ctx, ErrInvalidToken)
	}

	query, err := queries.NewGetUncompletedOrdersQuery(identity.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderResponseFromListing(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantMenu handles GET /api/restaurants/:id/menu - the public
// catalog read.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getRestaurantMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := MenuResponse{
		ID:    view.ID.String(),
		Name:  view.Name,
		Items: make([]MenuItemResponse, 0, len(view.Items)),
	}
	for _, item := range view.Items {
		response.Items = append(response.Items, MenuItemResponse{
			ID:    item.ID.String(),
			Name:  item.Name,
			Price: item.Price,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
