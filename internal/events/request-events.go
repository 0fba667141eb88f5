package events

const (
	RequestCreatedName    = "request.created"
	RequestCompletedName  = "request.completed"
	EquipmentScrappedName = "equipment.scrapped"
	BreakdownWarningName  = "equipment.breakdown_warning"
)

// RequestCreatedEvent fires after a maintenance request commits.
type RequestCreatedEvent struct {
	RequestID   uint64
	EquipmentID uint64
	Type        string
	Priority    string
}

func (e RequestCreatedEvent) Name() string { return RequestCreatedName }

// RequestCompletedEvent fires when a request reaches Repaired or Scrap.
type RequestCompletedEvent struct {
	RequestID   uint64
	EquipmentID uint64
	Type        string
	Status      string
}

func (e RequestCompletedEvent) Name() string { return RequestCompletedName }

// EquipmentScrappedEvent fires when a scrap transition zeroes a unit.
type EquipmentScrappedEvent struct {
	RequestID   uint64
	EquipmentID uint64
}

func (e EquipmentScrappedEvent) Name() string { return EquipmentScrappedName }

// BreakdownWarningEvent fires when an equipment unit crosses the rolling
// 30-day corrective-request threshold.
type BreakdownWarningEvent struct {
	EquipmentID    uint64
	EquipmentName  string
	BreakdownCount int
}

func (e BreakdownWarningEvent) Name() string { return BreakdownWarningName }
