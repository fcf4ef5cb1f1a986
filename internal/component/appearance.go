package component

// Appearance selects how the renderer draws an entity.
type Appearance uint8

const (
	AppearancePlayer Appearance = iota + 1
	AppearanceGoblin
	AppearanceBat
	AppearanceTurtle
	AppearanceBarrel
	AppearanceWisp
)

func (a Appearance) String() string {
	switch a {
	case AppearancePlayer:
		return "player"
	case AppearanceGoblin:
		return "goblin"
	case AppearanceBat:
		return "bat"
	case AppearanceTurtle:
		return "turtle"
	case AppearanceBarrel:
		return "barrel"
	case AppearanceWisp:
		return "wisp"
	}
	return "unknown"
}
