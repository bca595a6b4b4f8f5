package game

// Action is what the bot reports back to the turn sequencer after acting on
// a card.
type Action int

const (
	Pass Action = iota
	Event
	FullOperation
	FullOperationWithSpecialActivity
	LimitedOperation
)

var actionNames = []string{
	"pass", "event", "operation", "operation + special activity", "limited operation",
}

func (a Action) String() string {
	return actionNames[a]
}
