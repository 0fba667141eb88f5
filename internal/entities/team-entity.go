package entities

import (
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/types"
)

type Team struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`

	types.BaseEntity
}
