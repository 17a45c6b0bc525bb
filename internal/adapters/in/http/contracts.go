package http

import (
	"time"

	"logistica/internal/core/application/usecases/queries"
	"logistica/internal/core/domain/model/delivery"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms operations that return no record.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the identity echoed back on login.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse carries the bearer token and the authenticated identity.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest carries the current and replacement passwords.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateDeliveryRequest carries the fields for a new delivery. Scheduled
// date and time travel as canonical strings ("2006-01-02", "15:04").
// Status may be omitted, in which case the initial status is assigned.
type CreateDeliveryRequest struct {
	Address              string   `json:"address"`
	Material             string   `json:"material"`
	DocumentNumber       string   `json:"documentNumber"`
	Transporter          string   `json:"transporter"`
	ScheduledDate        string   `json:"scheduledDate"`
	ScheduledTime        string   `json:"scheduledTime"`
	CustomerObservations *string  `json:"customerObservations"`
	CustomerPhone        string   `json:"customerPhone"`
	HasPickup            bool     `json:"hasPickup"`
	PickupItems          *string  `json:"pickupItems"`
	DeliveredMaterials   *string  `json:"deliveredMaterials"`
	Status               string   `json:"status"`
	IsPaid               bool     `json:"isPaid"`
	PaymentAmount        *float64 `json:"paymentAmount"`
}

// UpdateDeliveryRequest carries a partial update. Omitted fields leave the
// stored value unchanged.
type UpdateDeliveryRequest struct {
	Address              *string  `json:"address"`
	Material             *string  `json:"material"`
	DocumentNumber       *string  `json:"documentNumber"`
	Transporter          *string  `json:"transporter"`
	ScheduledDate        *string  `json:"scheduledDate"`
	ScheduledTime        *string  `json:"scheduledTime"`
	CustomerObservations *string  `json:"customerObservations"`
	CustomerPhone        *string  `json:"customerPhone"`
	HasPickup            *bool    `json:"hasPickup"`
	PickupItems          *string  `json:"pickupItems"`
	DeliveredMaterials   *string  `json:"deliveredMaterials"`
	Status               *string  `json:"status"`
	IsPaid               *bool    `json:"isPaid"`
	PaymentAmount        *float64 `json:"paymentAmount"`
}

// SearchRequest carries the public lookup key.
type SearchRequest struct {
	DocumentNumber string `json:"documentNumber"`
}

// DeliveryResponse is the full delivery record returned on authenticated routes.
type DeliveryResponse struct {
	ID                   string    `json:"id"`
	Address              string    `json:"address"`
	Material             string    `json:"material"`
	DocumentNumber       string    `json:"documentNumber"`
	Transporter          string    `json:"transporter"`
	ScheduledDate        string    `json:"scheduledDate"`
	ScheduledTime        string    `json:"scheduledTime"`
	CustomerObservations *string   `json:"customerObservations"`
	CustomerPhone        string    `json:"customerPhone"`
	HasPickup            bool      `json:"hasPickup"`
	PickupItems          *string   `json:"pickupItems"`
	DeliveredMaterials   *string   `json:"deliveredMaterials"`
	Status               string    `json:"status"`
	IsPaid               bool      `json:"isPaid"`
	PaymentAmount        *float64  `json:"paymentAmount"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// PublicDeliveryResponse is the curated record served on the unauthenticated
// tracking route. The customer phone and update timestamp are never exposed.
type PublicDeliveryResponse struct {
	ID                   string    `json:"id"`
	Address              string    `json:"address"`
	Material             string    `json:"material"`
	DocumentNumber       string    `json:"documentNumber"`
	Transporter          string    `json:"transporter"`
	ScheduledDate        string    `json:"scheduledDate"`
	ScheduledTime        string    `json:"scheduledTime"`
	CustomerObservations *string   `json:"customerObservations"`
	HasPickup            bool      `json:"hasPickup"`
	PickupItems          *string   `json:"pickupItems"`
	DeliveredMaterials   *string   `json:"deliveredMaterials"`
	Status               string    `json:"status"`
	IsPaid               bool      `json:"isPaid"`
	PaymentAmount        *float64  `json:"paymentAmount"`
	CreatedAt            time.Time `json:"createdAt"`
}

// StatsGroupResponse is one bucket of the stats view.
type StatsGroupResponse struct {
	Count       int                `json:"count"`
	TotalAmount *float64           `json:"totalAmount,omitempty"`
	Deliveries  []DeliveryResponse `json:"deliveries"`
}

// StatsResponse is the operational dashboard payload.
type StatsResponse struct {
	Delayed StatsGroupResponse `json:"delayed"`
	Unpaid  StatsGroupResponse `json:"unpaid"`
}

func deliveryResponseFromAggregate(aggregate *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:                   aggregate.ID().String(),
		Address:              aggregate.Address(),
		Material:             aggregate.Material(),
		DocumentNumber:       aggregate.DocumentNumber(),
		Transporter:          aggregate.Transporter(),
		ScheduledDate:        aggregate.ScheduledDate().String(),
		ScheduledTime:        aggregate.ScheduledTime().String(),
		CustomerObservations: aggregate.CustomerObservations(),
		CustomerPhone:        aggregate.CustomerPhone(),
		HasPickup:            aggregate.HasPickup(),
		PickupItems:          aggregate.PickupItems(),
		DeliveredMaterials:   aggregate.DeliveredMaterials(),
		Status:               aggregate.Status().String(),
		IsPaid:               aggregate.IsPaid(),
		PaymentAmount:        aggregate.PaymentAmount(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

func deliveryResponseFromReadModel(model queries.DeliveryReadModel) DeliveryResponse {
	return DeliveryResponse{
		ID:                   model.ID.String(),
		Address:              model.Address,
		Material:             model.Material,
		DocumentNumber:       model.DocumentNumber,
		Transporter:          model.Transporter,
		ScheduledDate:        model.ScheduledDate.String(),
		ScheduledTime:        model.ScheduledTime.String(),
		CustomerObservations: model.CustomerObservations,
		CustomerPhone:        model.CustomerPhone,
		HasPickup:            model.HasPickup,
		PickupItems:          model.PickupItems,
		DeliveredMaterials:   model.DeliveredMaterials,
		Status:               model.Status.String(),
		IsPaid:               model.IsPaid,
		PaymentAmount:        model.PaymentAmount,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func deliveryListResponse(models []queries.DeliveryReadModel) []DeliveryResponse {
	response := make([]DeliveryResponse, len(models))
	for i, model := range models {
		response[i] = deliveryResponseFromReadModel(model)
	}
	return response
}

func publicDeliveryResponse(model queries.SearchDeliveryByDocumentQueryResponse) PublicDeliveryResponse {
	return PublicDeliveryResponse{
		ID:                   model.ID.String(),
		Address:              model.Address,
		Material:             model.Material,
		DocumentNumber:       model.DocumentNumber,
		Transporter:          model.Transporter,
		ScheduledDate:        model.ScheduledDate.String(),
		ScheduledTime:        model.ScheduledTime.String(),
		CustomerObservations: model.CustomerObservations,
		HasPickup:            model.HasPickup,
		PickupItems:          model.PickupItems,
		DeliveredMaterials:   model.DeliveredMaterials,
		Status:               model.Status.String(),
		IsPaid:               model.IsPaid,
		PaymentAmount:        model.PaymentAmount,
		CreatedAt:            model.CreatedAt,
	}
}
