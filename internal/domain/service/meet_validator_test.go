package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMeetData(t *testing.T) {
	tests := []struct {
		name          string
		meetName      string
		scheduledTime string
		want          MeetDataError
	}{
		{"valid input", "Picnic", "2030-01-01T10:00:00", MeetDataOK},
		{"empty name", "", "2030-01-01T10:00:00", MeetNameEmpty},
		{"whitespace name", "  \t", "2030-01-01T10:00:00", MeetNameEmpty},
		{"two char name", "ab", "2030-01-01T10:00:00", MeetNameTooShort},
		{"empty time", "Picnic", "", MeetTimeEmpty},
		{"garbage time", "Picnic", "next tuesday", MeetWrongTimeFormat},
		{"date only", "Picnic", "2030-01-01", MeetWrongTimeFormat},
		{"name rule wins over time rule", "ab", "", MeetNameTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateMeetData(tt.meetName, tt.scheduledTime))
		})
	}
}

func TestMeetDataError_Codes(t *testing.T) {
	assert.Equal(t, 0, int(MeetDataOK))
	assert.Equal(t, 1, int(MeetNameEmpty))
	assert.Equal(t, 2, int(MeetNameTooShort))
	assert.Equal(t, 3, int(MeetTimeEmpty))
	assert.Equal(t, 4, int(MeetWrongTimeFormat))
}
