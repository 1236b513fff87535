package model

// Request describes one search: all simple knight paths from Start to Target
// on a Dimension×Dimension board holding at most MaxDepth cells.
type Request struct {
	Start     Cell
	Target    Cell
	Dimension int
	MaxDepth  int
}

// NewRequest builds a Request from settings and a start/target pair.
func NewRequest(settings Settings, start, target Cell) Request {
	return Request{
		Start:     start,
		Target:    target,
		Dimension: settings.BoardSize,
		MaxDepth:  settings.MaxMoves,
	}
}

// Status tells whether a search has run and whether it matched.
type Status string

const (
	// StatusPending means the search has not completed yet.
	StatusPending Status = "pending"
	// StatusFound means at least one path reached the target.
	StatusFound Status = "found"
	// StatusNoPathFound means the search completed without a match.
	StatusNoPathFound Status = "no-path-found"
)

// Outcome is the result of a search request.
type Outcome struct {
	Request Request
	Status  Status
	Paths   []Path
	// Generation identifies the selection that produced the outcome.
	Generation uint64
}

// PendingOutcome returns an outcome for a search that has not finished.
func PendingOutcome(req Request) Outcome {
	return Outcome{Request: req, Status: StatusPending}
}

// NewOutcome classifies a completed search.
func NewOutcome(req Request, paths []Path) Outcome {
	status := StatusFound
	if len(paths) == 0 {
		status = StatusNoPathFound
	}

	return Outcome{
		Request: req,
		Status:  status,
		Paths:   paths,
	}
}

// Found reports whether the outcome carries at least one path.
func (o Outcome) Found() bool {
	return o.Status == StatusFound
}

// Selection is the start/target pair picked so far on a board.
type Selection struct {
	Start  *Cell
	Target *Cell
}

// Complete reports whether both ends have been picked.
func (s Selection) Complete() bool {
	return s.Start != nil && s.Target != nil
}
