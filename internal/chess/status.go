package chess

// Status classifies a game from the side to move's point of view.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Terminal reports whether no further moves can be applied.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// GameStatus pairs a Status with the side it describes: for Check and
// Checkmate, the colour whose king is attacked (always the side to
// move). It is recomputed from the Position after every applied move
// and is never stale.
type GameStatus struct {
	Status Status
	Colour Colour
}

// Terminal reports whether no further moves can be applied.
func (g GameStatus) Terminal() bool {
	return g.Status.Terminal()
}

// String returns e.g. "Checkmate (White)" or "InProgress".
func (g GameStatus) String() string {
	switch g.Status {
	case Check, Checkmate:
		return g.Status.String() + " (" + g.Colour.String() + ")"
	default:
		return g.Status.String()
	}
}
