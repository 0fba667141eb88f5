package constants

// Request statuses (match the CHECK constraint in the requests table).
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusRepaired   = "Repaired"
	StatusScrap      = "Scrap"
)

// Terminal statuses: nothing in the engine transitions back out of them.
var TerminalStatuses = []string{
	StatusRepaired,
	StatusScrap,
}

func IsTerminalStatus(status string) bool {
	for _, s := range TerminalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return true
	}
	return false
}

// Request types.
const (
	TypeCorrective = "Corrective"
	TypePreventive = "Preventive"
)

func IsValidType(requestType string) bool {
	return requestType == TypeCorrective || requestType == TypePreventive
}

// Priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Health history change reasons written by the lifecycle engine.
const (
	HealthReasonCorrectiveCreated  = "Corrective request created"
	HealthReasonPreventiveComplete = "Preventive maintenance completed"
	HealthReasonScrapped           = "Equipment scrapped"
)
