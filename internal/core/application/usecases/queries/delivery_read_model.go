package queries

import (
	"database/sql"
	"time"

	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryReadModel is the full delivery projection shared by the list,
// by-date and stats queries. Column values are converted to domain value
// objects so callers never see raw storage representations.
type DeliveryReadModel struct {
	ID                   kernel.UUID
	Address              string
	Material             string
	DocumentNumber       string
	Transporter          string
	CustomerPhone        string
	ScheduledDate        kernel.Day
	ScheduledTime        kernel.TimeOfDay
	CustomerObservations *string
	PickupItems          *string
	DeliveredMaterials   *string
	HasPickup            bool
	Status               delivery.Status
	IsPaid               bool
	PaymentAmount        *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// deliveryColumns is the select list of the full projection.
// Column order must match scanDeliveryRow.
const deliveryColumns = `
	id,
	address,
	material,
	document_number,
	transporter,
	customer_phone,
	scheduled_date,
	scheduled_time,
	customer_observations,
	pickup_items,
	delivered_materials,
	has_pickup,
	status,
	is_paid,
	payment_amount,
	created_at,
	updated_at`

func scanDeliveryRow(rows *sql.Rows) (DeliveryReadModel, error) {
	var model DeliveryReadModel
	var id uuid.UUID
	var scheduledDate, scheduledTime, status string

	err := rows.Scan(
		&id,
		&model.Address,
		&model.Material,
		&model.DocumentNumber,
		&model.Transporter,
		&model.CustomerPhone,
		&scheduledDate,
		&scheduledTime,
		&model.CustomerObservations,
		&model.PickupItems,
		&model.DeliveredMaterials,
		&model.HasPickup,
		&status,
		&model.IsPaid,
		&model.PaymentAmount,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return DeliveryReadModel{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryReadModel{}, err
	}
	model.ID = deliveryID

	day, err := kernel.NewDay(scheduledDate)
	if err != nil {
		return DeliveryReadModel{}, err
	}
	model.ScheduledDate = day

	timeOfDay, err := kernel.NewTimeOfDay(scheduledTime)
	if err != nil {
		return DeliveryReadModel{}, err
	}
	model.ScheduledTime = timeOfDay

	model.Status = delivery.Status(status)
	if err = model.Status.Validate(); err != nil {
		return DeliveryReadModel{}, err
	}

	return model, nil
}

func collectDeliveryRows(rows *sql.Rows) ([]DeliveryReadModel, error) {
	defer rows.Close()

	models := make([]DeliveryReadModel, 0)
	for rows.Next() {
		model, err := scanDeliveryRow(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models, nil
}
