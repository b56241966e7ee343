package config

// UnlockKind identifies which chests an item can open. The zero value
// UnlockNone marks items that open nothing and chests that accept nothing;
// the two never match each other.
type UnlockKind int

const (
	UnlockNone UnlockKind = iota
	UnlockBrassKey
	UnlockSilverKey
	UnlockCrowbar
)

var unlockNames = map[UnlockKind]string{
	UnlockNone:      "none",
	UnlockBrassKey:  "brass_key",
	UnlockSilverKey: "silver_key",
	UnlockCrowbar:   "crowbar",
}

var unlockLabels = map[UnlockKind]string{
	UnlockNone:      "",
	UnlockBrassKey:  "Brass Key",
	UnlockSilverKey: "Silver Key",
	UnlockCrowbar:   "Crowbar",
}

func (k UnlockKind) String() string {
	if s, ok := unlockNames[k]; ok {
		return s
	}
	return "none"
}

// Label returns the HUD display name for the kind, empty for UnlockNone.
func (k UnlockKind) Label() string {
	return unlockLabels[k]
}

// ParseUnlockKind maps a room data property to an UnlockKind. Unknown or
// empty values report ok=false and come back as UnlockNone.
func ParseUnlockKind(s string) (UnlockKind, bool) {
	for k, name := range unlockNames {
		if k != UnlockNone && name == s {
			return k, true
		}
	}
	return UnlockNone, false
}
