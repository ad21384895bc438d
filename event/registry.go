package event

var typeNames = map[EventType]string{
	EventNone:                     "EventNone",
	EventGameReset:                "EventGameReset",
	EventMetaSystemCommandRequest: "EventMetaSystemCommandRequest",
	EventShipInput:                "EventShipInput",
	EventShipFireRequest:          "EventShipFireRequest",
	EventShipFired:                "EventShipFired",
	EventShipHealthChanged:        "EventShipHealthChanged",
	EventShipDestroyed:            "EventShipDestroyed",
	EventProjectileHit:            "EventProjectileHit",
	EventProjectileExpired:        "EventProjectileExpired",
	EventImpulseApplied:           "EventImpulseApplied",
	EventFloatingFireIgnored:      "EventFloatingFireIgnored",
}

func (et EventType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "EventUnknown"
}
