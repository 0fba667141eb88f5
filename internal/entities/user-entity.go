package entities

import (
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/types"
)

type User struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`

	types.BaseEntity
}
