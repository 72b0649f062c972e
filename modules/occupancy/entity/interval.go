package entity

// Interval is one scheduled occupancy of a room, read from the meeting_room
// view. Start and End are epoch seconds; End >= Start, and Start == End is a
// legal instantaneous occupancy.
type Interval struct {
	Start int64  `db:"start" json:"start"`
	End   int64  `db:"end" json:"end"`
	Room  string `db:"room" json:"room"`
	Owner string `db:"uid" json:"owner"`
}

// Contains reports whether the reference instant falls inside the interval,
// inclusive on both bounds.
func (iv Interval) Contains(ref int64) bool {
	return iv.Start <= ref && ref <= iv.End
}

// ResolvedOccupancy is the outcome of occupancy resolution. A nil field
// means no interval holds that role; that is a normal outcome, not an error.
type ResolvedOccupancy struct {
	Current *Interval
	Next    *Interval
}
