package model

import "time"

// MeetModel mirrors the 'meets' table. Creator is a soft reference to
// users.name; no foreign key is declared.
type MeetModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(200);not null"`
	Description   string `gorm:"type:text"`
	Latitude      float64
	Longitude     float64
	TimeScheduled time.Time
	TimeCreated   time.Time `gorm:"autoCreateTime"`
	Creator       string    `gorm:"type:varchar(100);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MeetModel) TableName() string {
	return "meets"
}

// MeetParticipantModel mirrors the 'meet_participants' table. The composite
// primary key on (MeetID, Username) enforces pair uniqueness at the store,
// which the join operation relies on as the final arbiter under concurrency.
type MeetParticipantModel struct {
	MeetID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Username string `gorm:"primaryKey;type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (MeetParticipantModel) TableName() string {
	return "meet_participants"
}
