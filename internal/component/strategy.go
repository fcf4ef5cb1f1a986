package component

// Strategy describes how an entity proposes a destination each turn.
// An entity without one never initiates movement but still blocks others.
type Strategy uint8

const (
	StrategyUser      Strategy = iota // driven by player input, never by the resolver
	StrategyWandering                 // random cardinal step
	StrategyHunting                   // not implemented
	StrategyFleeing                   // not implemented
)

func (s Strategy) String() string {
	switch s {
	case StrategyUser:
		return "user"
	case StrategyWandering:
		return "wandering"
	case StrategyHunting:
		return "hunting"
	case StrategyFleeing:
		return "fleeing"
	}
	return "unknown"
}
