package models

import "time"

// LawyerProfile is the profile document for one lawyer, including the full
// availability schedule (one ScheduleDay per date with defined slots).
type LawyerProfile struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	FullName    string        `bson:"fullName" json:"fullName"`
	Description string        `bson:"description" json:"description"`
	HourlyRate  int           `bson:"hourlyRate" json:"hourlyRate"`
	Address     string        `bson:"address" json:"address"`
	ImageURL    string        `bson:"imageUrl,omitempty" json:"imgPath"`
	IsJunior    bool          `bson:"isJunior" json:"isJunior"`
	IsCompleted bool          `bson:"isCompleted" json:"isCompleted"`
	Categories  []int         `bson:"categories" json:"categories"`
	Regions     []int         `bson:"regions" json:"regions"`
	Schedule    []ScheduleDay `bson:"schedule" json:"schedule"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Calendar builds the availability calendar value for this profile.
func (p LawyerProfile) Calendar() AvailabilityCalendar {
	return NewAvailabilityCalendar(p.ID, p.Schedule)
}

// LawyerProfileView is the public search-result shape: no schedule and the
// category/region ids resolved to names.
type LawyerProfileView struct {
	ID         string       `bson:"id" json:"id"`
	FullName   string       `bson:"fullName" json:"fullName"`
	ImageURL   string       `bson:"imageUrl,omitempty" json:"imgPath"`
	HourlyRate int          `bson:"hourlyRate" json:"hourlyRate"`
	IsJunior   bool         `bson:"isJunior" json:"isJunior"`
	Categories []SimpleItem `bson:"categoryItems" json:"categories"`
	Regions    []SimpleItem `bson:"regionItems" json:"regions"`
}
