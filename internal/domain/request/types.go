package request

import "encoding/json"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is a known status. Any valid status may move to
// any other; there is no workflow restriction on transitions.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// RoomCount is a tolerant non-negative count. Null, absent, negative and
// non-numeric JSON inputs all read as zero rather than failing the request;
// fractional values floor to the whole count below (2.5 bedrooms bills as 2).
type RoomCount int

func (c RoomCount) Int() int {
	return int(c)
}

func (c *RoomCount) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil || f < 0 {
		*c = 0
		return nil
	}
	*c = RoomCount(int(f))
	return nil
}
