package expiry

import "time"

// Status is the expiration tier of an inventory item.
type Status string

const (
	// StatusExpired marks items whose expiration date has passed (or is today).
	StatusExpired Status = "expired"
	// StatusExpiringSoon marks items expiring within the next 7 days.
	StatusExpiringSoon Status = "expiring_soon"
	// StatusGood marks items with more than 7 days left.
	StatusGood Status = "good"
)

// soonWindowDays is the number of days ahead that counts as "expiring soon".
const soonWindowDays = 7

// Color returns the display color associated with the status.
func (s Status) Color() string {
	switch s {
	case StatusExpired:
		return "#FF0000"
	case StatusExpiringSoon:
		return "#FFA500"
	default:
		return "#008000"
	}
}

// Label returns the human-readable label associated with the status.
func (s Status) Label() string {
	switch s {
	case StatusExpired:
		return "Expired"
	case StatusExpiringSoon:
		return "Expiring soon"
	default:
		return "Good"
	}
}

// truncateDay drops the time-of-day portion of t.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of whole days from today until the expiration
// date, rounding partial days up. Both dates are truncated to the day first,
// so the result is 0 when the item expires today and negative when it has
// already expired.
func DaysUntil(expiration, today time.Time) int {
	diff := truncateDay(expiration).Sub(truncateDay(today))
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Classify returns the expiration status of an item given its expiration date
// and the current date.
func Classify(expiration, today time.Time) Status {
	days := DaysUntil(expiration, today)
	if days <= 0 {
		return StatusExpired
	}
	if days <= soonWindowDays {
		return StatusExpiringSoon
	}
	return StatusGood
}

// IsExpired reports whether the expiration date (truncated to the day) is not
// after today (truncated to the day). This is the blocking check used when
// making a recipe; the "soon" tier does not block.
func IsExpired(expiration, today time.Time) bool {
	return Classify(expiration, today) == StatusExpired
}
