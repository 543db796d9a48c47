package models

import (
	"time"

	"github.com/google/uuid"
)

type ResourceType string

const (
	ResourceVehicle   ResourceType = "Vehicle"
	ResourceEquipment ResourceType = "Equipment"
	ResourcePersonnel ResourceType = "Personnel"
	ResourceSupply    ResourceType = "Supply"
)

type ResourceStatus string

const (
	ResourceAvailable ResourceStatus = "Available"
	ResourceDepleted  ResourceStatus = "Depleted"
)

// Resource - позиция складского учёта
type Resource struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Type      ResourceType   `json:"type"`
	Quantity  int            `json:"quantity"`
	Unit      string         `json:"unit"`
	Status    ResourceStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Deduct списывает количество и помечает ресурс исчерпанным при нуле
func (r *Resource) Deduct(quantity int) error {
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if r.Quantity < quantity {
		return &ValidationError{Field: "quantity", Reason: "insufficient quantity for " + r.Name}
	}
	r.Quantity -= quantity
	if r.Quantity == 0 {
		r.Status = ResourceDepleted
	}
	return nil
}
