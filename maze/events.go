package maze

// Wall is an opened wall pair between two adjacent cells.
type Wall struct {
	From      Position  `json:"from"`      // From is the cell the passage was carved from.
	To        Position  `json:"to"`        // To is the cell the passage was carved into.
	Direction Direction `json:"direction"` // Direction is the side of From that was opened.
}

// Listener receives generation events in the order they happen.
type Listener interface {
	// CellVisited is called once per cell, when generation first claims it.
	CellVisited(pos Position)

	// WallOpened is called once per opened wall pair.
	WallOpened(wall Wall)

	// GoalPlaced is called exactly once, after the farthest-cell search.
	GoalPlaced(pos Position, distance int)
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnCellVisited func(Position)
	OnWallOpened  func(Wall)
	OnGoalPlaced  func(Position, int)
}

var _ Listener = ListenerFuncs{}

// CellVisited implements Listener.
func (f ListenerFuncs) CellVisited(pos Position) {
	if f.OnCellVisited != nil {
		f.OnCellVisited(pos)
	}
}

// WallOpened implements Listener.
func (f ListenerFuncs) WallOpened(wall Wall) {
	if f.OnWallOpened != nil {
		f.OnWallOpened(wall)
	}
}

// GoalPlaced implements Listener.
func (f ListenerFuncs) GoalPlaced(pos Position, distance int) {
	if f.OnGoalPlaced != nil {
		f.OnGoalPlaced(pos, distance)
	}
}

// Multi fans every event out to each listener in order.
type Multi []Listener

var _ Listener = Multi{}

// CellVisited implements Listener.
func (m Multi) CellVisited(pos Position) {
	for _, l := range m {
		l.CellVisited(pos)
	}
}

// WallOpened implements Listener.
func (m Multi) WallOpened(wall Wall) {
	for _, l := range m {
		l.WallOpened(wall)
	}
}

// GoalPlaced implements Listener.
func (m Multi) GoalPlaced(pos Position, distance int) {
	for _, l := range m {
		l.GoalPlaced(pos, distance)
	}
}

// EventType names a generation event.
type EventType string

const (
	EventCellVisited EventType = "CELL_VISITED"
	EventWallOpened  EventType = "WALL_OPENED"
	EventGoalPlaced  EventType = "GOAL_PLACED"
)

// Event is a recorded generation event. Only the fields relevant to Type are set.
type Event struct {
	Type     EventType `json:"type"`
	Cell     *Position `json:"cell,omitempty"`
	Wall     *Wall     `json:"wall,omitempty"`
	Distance int       `json:"distance"`
}

// Recorder is a Listener that keeps every event in memory.
type Recorder struct {
	Events []Event
}

var _ Listener = &Recorder{}

// CellVisited implements Listener.
func (r *Recorder) CellVisited(pos Position) {
	r.Events = append(r.Events, Event{Type: EventCellVisited, Cell: &pos})
}

// WallOpened implements Listener.
func (r *Recorder) WallOpened(wall Wall) {
	r.Events = append(r.Events, Event{Type: EventWallOpened, Wall: &wall})
}

// GoalPlaced implements Listener.
func (r *Recorder) GoalPlaced(pos Position, distance int) {
	r.Events = append(r.Events, Event{Type: EventGoalPlaced, Cell: &pos, Distance: distance})
}

// Count returns how many events of type t were recorded.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}
