package game

import "errors"

var (
	// ErrCooldown is returned while a wrong selection or guess is still
	// being penalised.
	ErrCooldown = errors.New("selection blocked by cooldown")
	// ErrOutOfRange is returned for a card index outside the table or
	// puzzle options.
	ErrOutOfRange = errors.New("card index out of range")
	// ErrCardNotOnTable is returned when selecting a card by value that is
	// not dealt.
	ErrCardNotOnTable = errors.New("card not on the table")
	// ErrEmptyDeck is returned when more cards are requested than remain.
	ErrEmptyDeck = errors.New("not enough cards left in the deck")
	// ErrPuzzleSolved is returned for guesses on an already solved puzzle.
	ErrPuzzleSolved = errors.New("puzzle already solved")
)
