// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern
// for the delivery domain aggregate, handling the conversion between domain
// entities and database representations.
package deliveryrepo

import (
	"time"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The scheduled date and time are stored as canonical strings
// ("2006-01-02" and "15:04") so lexicographic comparison in read queries
// matches chronological order. The document number is indexed but not
// unique: customers may have several deliveries under one document.
type DeliveryDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address              string    `gorm:"not null"`
	Material             string    `gorm:"not null"`
	DocumentNumber       string    `gorm:"not null;index"`
	Transporter          string    `gorm:"not null"`
	CustomerPhone        string    `gorm:"not null"`
	ScheduledDate        string    `gorm:"type:varchar(10);not null;index"`
	ScheduledTime        string    `gorm:"type:varchar(5);not null"`
	CustomerObservations *string
	PickupItems          *string
	DeliveredMaterials   *string
	HasPickup            bool   `gorm:"not null"`
	Status               string `gorm:"type:varchar(32);not null;index"`
	IsPaid               bool   `gorm:"not null"`
	PaymentAmount        *float64
	CreatedAt            time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt            time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Timestamps come from the aggregate, not from GORM's auto-tracking.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:                   aggregate.ID().Bytes(),
		Address:              aggregate.Address(),
		Material:             aggregate.Material(),
		DocumentNumber:       aggregate.DocumentNumber(),
		Transporter:          aggregate.Transporter(),
		CustomerPhone:        aggregate.CustomerPhone(),
		ScheduledDate:        aggregate.ScheduledDate().String(),
		ScheduledTime:        aggregate.ScheduledTime().String(),
		CustomerObservations: aggregate.CustomerObservations(),
		PickupItems:          aggregate.PickupItems(),
		DeliveredMaterials:   aggregate.DeliveredMaterials(),
		HasPickup:            aggregate.HasPickup(),
		Status:               aggregate.Status().String(),
		IsPaid:               aggregate.IsPaid(),
		PaymentAmount:        aggregate.PaymentAmount(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstruction goes through RestoreDelivery so corrupted rows are rejected
// by the same validation that guards creation.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	scheduledDate, err := kernel.NewDay(dto.ScheduledDate)
	if err != nil {
		return nil, err
	}

	scheduledTime, err := kernel.NewTimeOfDay(dto.ScheduledTime)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, delivery.Params{
		Address:              dto.Address,
		Material:             dto.Material,
		DocumentNumber:       dto.DocumentNumber,
		Transporter:          dto.Transporter,
		ScheduledDate:        scheduledDate,
		ScheduledTime:        scheduledTime,
		CustomerObservations: dto.CustomerObservations,
		CustomerPhone:        dto.CustomerPhone,
		HasPickup:            dto.HasPickup,
		PickupItems:          dto.PickupItems,
		DeliveredMaterials:   dto.DeliveredMaterials,
		Status:               delivery.Status(dto.Status),
		IsPaid:               dto.IsPaid,
		PaymentAmount:        dto.PaymentAmount,
	}, dto.CreatedAt, dto.UpdatedAt)
}
