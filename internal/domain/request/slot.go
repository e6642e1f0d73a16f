package request

import "regexp"

// A slot is a (date, time) pair identified by its derived key string. The
// format checks are shape-only: "2024-13-99" and "99:99" both pass. Clients
// that relied on that behavior keep working; real calendar validation is a
// product decision that has not been taken.
var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// SlotKey derives the conflict-detection key. It is stored verbatim on the
// record as DateTime.
func SlotKey(date, timeOfDay string) string {
	return date + " " + timeOfDay
}

// SlotTaken reports whether any non-cancelled record occupies the slot.
// A cancelled record never blocks rebooking of its slot.
func SlotTaken(records []Record, key string) bool {
	for _, r := range records {
		if r.DateTime == key && r.Status != StatusCancelled {
			return true
		}
	}
	return false
}
