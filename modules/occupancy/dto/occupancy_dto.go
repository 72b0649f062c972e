package dto

// MeetingResponse is the wire format consumed by the room displays.
// Absent occupancies render as empty strings; the clients re-poll.
type MeetingResponse struct {
	Now  string `json:"now"`
	Next string `json:"next"`
}
