package http

import (
	"foodex/internal/core/application/usecases/queries"
	"foodex/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SignupRequest is the payload of POST /api/auth/signup. Role is optional and
// defaults to CUSTOMER; RestaurantID only applies to RESTAURANT signups.
type SignupRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the user view returned by signup and login.
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurantId,omitempty"`
}

// LoginResponse carries the user view plus the session token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PlaceOrderRequest is the payload of POST /api/customers/order. A submitted
// Status is accepted and ignored: placed orders always start in PENDING.
type PlaceOrderRequest struct {
	RestaurantID string   `json:"restaurantId"`
	ItemIDs      []string `json:"itemIds"`
	Status       string   `json:"status,omitempty"`
}

// AssignRequest is the payload of POST /api/orders/:id/assign. CourierID is
// optional; delivery users omitting it assign themselves.
type AssignRequest struct {
	CourierID string `json:"courierId,omitempty"`
}

// OrderResponse is the order view returned by every order endpoint.
type OrderResponse struct {
	ID               string   `json:"id"`
	CustomerID       string   `json:"customerId"`
	RestaurantID     string   `json:"restaurantId"`
	ItemIDs          []string `json:"itemIds,omitempty"`
	Status           string   `json:"status"`
	DeliveryPersonID string   `json:"deliveryPersonId,omitempty"`
	Version          int      `json:"version"`
}

// MenuItemResponse is one entry of the restaurant menu view.
type MenuItemResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MenuResponse is the restaurant view with its menu.
type MenuResponse struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Items []MenuItemResponse `json:"items"`
}

func orderResponseFromAggregate(aggregate *order.Order) OrderResponse {
	itemIDs := make([]string, 0, len(aggregate.ItemIDs()))
	for _, itemID := range aggregate.ItemIDs() {
		itemIDs = append(itemIDs, itemID.String())
	}

	response := OrderResponse{
		ID:           aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		ItemIDs:      itemIDs,
		Status:       aggregate.Status().String(),
		Version:      aggregate.Version(),
	}
	if assignee := aggregate.DeliveryPerson(); assignee != nil {
		response.DeliveryPersonID = assignee.String()
	}

	return response
}

func orderResponseFromView(view queries.GetOrderQueryResponse) OrderResponse {
	itemIDs := make([]string, 0, len(view.ItemIDs))
	for _, itemID := range view.ItemIDs {
		itemIDs = append(itemIDs, itemID.String())
	}

	response := OrderResponse{
		ID:           view.ID.String(),
		CustomerID:   view.CustomerID.String(),
		RestaurantID: view.RestaurantID.String(),
		ItemIDs:      itemIDs,
		Status:       view.Status.String(),
		Version:      view.Version,
	}
	if view.DeliveryPersonID != nil {
		response.DeliveryPersonID = view.DeliveryPersonID.String()
	}

	return response
}

func orderResponseFromListing(row queries.GetUncompletedOrdersQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:           row.ID.String(),
		CustomerID:   row.CustomerID.String(),
		RestaurantID: row.RestaurantID.String(),
		Status:       row.Status.String(),
		Version:      row.Version,
	}
	if row.DeliveryPersonID != nil {
		response.DeliveryPersonID = row.DeliveryPersonID.String()
	}

	return response
}
