package game

// Outcome describes what a selection or guess did.
type Outcome int

const (
	// OutcomeSelected means a card was added to a partial selection.
	OutcomeSelected Outcome = iota
	// OutcomeDeselected means a selected card was released.
	OutcomeDeselected
	// OutcomeSet means a valid set was completed (or the puzzle solved).
	OutcomeSet
	// OutcomeWrong means the selection or guess was not a set.
	OutcomeWrong
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeSet:
		return "set"
	case OutcomeWrong:
		return "wrong"
	default:
		return "unknown"
	}
}
