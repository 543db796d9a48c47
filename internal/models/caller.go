package models

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAgent   Role = "agent"
	RoleCitizen Role = "citizen"
)

// Caller - уже аутентифицированный вызывающий. Нулевое значение - аноним.
type Caller struct {
	ID   uuid.UUID
	Role Role
	// APIClient выставляется, если запрос пришёл с валидным API-ключом
	APIClient bool
}

var Anonymous = Caller{}

func (c Caller) IsAnonymous() bool {
	return c.ID == uuid.Nil && !c.APIClient
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
