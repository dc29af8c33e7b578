package event

// eventNames maps types to stable names for logs and diagnostics
var eventNames = map[EventType]string{
	EventWorldClear:     "WorldClear",
	EventSoundRequest:   "SoundRequest",
	EventFoodTransfer:   "FoodTransfer",
	EventSpawnAnt:       "SpawnAnt",
	EventRoleChange:     "RoleChange",
	EventAntDied:        "AntDied",
	EventFoodEmpty:      "FoodEmpty",
	EventTickRateChange: "TickRateChange",
	EventSystemToggle:   "SystemToggle",
}

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a registered name
func GetEventType(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}
