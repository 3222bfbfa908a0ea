package service

import (
	"strings"
	"time"
)

// TimeScheduledLayout is the wire format for meet datetimes.
const TimeScheduledLayout = "2006-01-02T15:04:05"

// MeetDataError enumerates the validation outcomes for meet creation input.
// The numeric values are part of the wire contract and must not be reordered.
type MeetDataError int

const (
	MeetDataOK MeetDataError = iota
	MeetNameEmpty
	MeetNameTooShort
	MeetTimeEmpty
	MeetWrongTimeFormat
)

// String returns the business error code for the validation outcome.
func (e MeetDataError) String() string {
	switch e {
	case MeetDataOK:
		return "NO_ERROR"
	case MeetNameEmpty:
		return "NAME_EMPTY"
	case MeetNameTooShort:
		return "NAME_TOO_SHORT"
	case MeetTimeEmpty:
		return "TIME_EMPTY"
	case MeetWrongTimeFormat:
		return "WRONG_TIME_FORMAT"
	default:
		return "UNKNOWN"
	}
}

// ValidateMeetData checks raw meet creation input. Rules are evaluated in
// order and the first violated rule wins. The scheduled time is taken as the
// raw wire string so an unparseable value is reported as a format error
// rather than a transport failure.
func ValidateMeetData(name, scheduledTime string) MeetDataError {
	switch {
	case strings.TrimSpace(name) == "":
		return MeetNameEmpty
	case len(name) < 3:
		return MeetNameTooShort
	case scheduledTime == "":
		return MeetTimeEmpty
	default:
		if _, err := time.Parse(TimeScheduledLayout, scheduledTime); err != nil {
			return MeetWrongTimeFormat
		}

		return MeetDataOK
	}
}
