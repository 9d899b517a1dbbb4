package booking

import (
	"regexp"
	"time"

	"bookwise/models"
	"bookwise/utils"
)

// Scan window around UTC midnight of the target date. Real-world UTC offsets
// span roughly -12:00 to +14:00 plus DST shifts, so every UTC instant that
// can map to the target local date lies inside [midnight-18h, midnight+42h].
const (
	scanLeadHours = 18
	scanTailHours = 42
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// GenerateUTCSlots produces the ordered, de-duplicated list of UTC ranges
// whose local start time falls on the given civil date in the given timezone,
// within business hours [startHour, endHour), aligned to slotMinutes.
//
// The brute-force civil-time scan is deliberate: a fixed UTC offset cannot be
// assumed across DST boundaries, so each candidate instant is round-tripped
// through the timezone database instead. A spring-forward day yields fewer
// slots (the skipped wall-clock hour never appears); a fall-back day relies
// on de-duplication so the repeated hour is not emitted twice.
//
// slotMinutes must be validated by the caller as an integer in (0, 120];
// no further bounds checking happens here.
func GenerateUTCSlots(date, timezone string, slotMinutes, startHour, endHour int) ([]models.SlotRange, error) {
	if !datePattern.MatchString(date) {
		return nil, NewValidationError("Invalid date format. Expected YYYY-MM-DD.")
	}

	// time.Parse also rejects impossible calendar dates such as 2024-02-31.
	utcMidnight, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, NewValidationError("Invalid date format. Expected YYYY-MM-DD.")
	}

	step := time.Duration(slotMinutes) * time.Minute
	scanStart := utcMidnight.Add(-scanLeadHours * time.Hour)
	scanEnd := utcMidnight.Add(scanTailHours * time.Hour)

	var slots []models.SlotRange
	seen := make(map[string]struct{})

	for t := scanStart; !t.After(scanEnd); t = t.Add(step) {
		localDate, hour, minute := utils.LocalParts(t, timezone)

		if localDate != date {
			continue
		}
		if hour < startHour || hour >= endHour {
			continue
		}
		// Guards against non-whole-hour UTC offsets producing misaligned
		// local minutes; such candidates are silently dropped.
		if minute%slotMinutes != 0 {
			continue
		}

		key := t.Format(time.RFC3339)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		slots = append(slots, models.SlotRange{
			StartUTC: t,
			EndUTC:   t.Add(step),
		})
	}

	return slots, nil
}
