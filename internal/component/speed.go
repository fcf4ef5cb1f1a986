package component

// SpeedTier gates how often an entity acts.
type SpeedTier uint8

const (
	SpeedFast   SpeedTier = iota + 1 // every turn
	SpeedNormal                      // every second turn
	SpeedSlow                        // every fourth turn
)

func (s SpeedTier) String() string {
	switch s {
	case SpeedFast:
		return "fast"
	case SpeedNormal:
		return "normal"
	case SpeedSlow:
		return "slow"
	}
	return "none"
}
