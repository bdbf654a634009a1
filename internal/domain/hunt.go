package domain

// SessionStats is the structured form of a pasted session log.
type SessionStats struct {
	StartAt         string         `json:"start_at,omitempty"`
	EndAt           string         `json:"end_at,omitempty"`
	DurationSeconds int            `json:"duration_seconds"`
	XPTotal         int            `json:"xp_total"`
	XPPerHour       float64        `json:"xp_per_hour,omitempty"`
	LootTotal       int            `json:"loot_total"`
	SuppliesTotal   int            `json:"supplies_total"`
	BalanceTotal    int            `json:"balance_total"`
	DamageTotal     int            `json:"damage_total"`
	DamagePerHour   float64        `json:"damage_per_hour,omitempty"`
	HealingTotal    int            `json:"healing_total"`
	HealingPerHour  float64        `json:"healing_per_hour,omitempty"`
	KillsBreakdown  map[string]int `json:"kills_breakdown"`
	KillsCount      int            `json:"kills_count"`
	LootedItems     map[string]int `json:"looted_items_breakdown"`
}

// Hunt is one logged hunting session.
type Hunt struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	CharacterID  string       `json:"character_id"`
	EquipmentTag string       `json:"equipment_tag"`
	RawLogText   string       `json:"raw_log_text"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
	Stats        SessionStats `json:"stats"`
}
