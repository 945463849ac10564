package dto

type DashboardDTO struct {
	DonsByNature        map[string]int `json:"donsByNature"`
	OngoingDispatches   int            `json:"ongoingDispatches"`
	CompletedDispatches int            `json:"completedDispatches"`
	EquipmentByStatus   map[string]int `json:"equipmentByStatus"`
	EquipmentCount      int            `json:"equipmentCount"`
	TotalDonsValue      float64        `json:"totalDonsValue"`
	TotalEquipmentValue float64        `json:"totalEquipmentValue"`
	HasPendingSession   bool           `json:"hasPendingSession"`
	PendingSessionID    int64          `json:"pendingSessionId,omitempty"`
}
