package models

// RegisterUserInput is the payload for client registration.
type RegisterUserInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	CityID    int    `json:"cityId" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

// RegisterLawyerInput extends user registration with the bar-id number and
// middle name lawyers register with.
type RegisterLawyerInput struct {
	RegisterUserInput
	Surname        string `json:"surname" binding:"required"`
	LawyerIDNumber string `json:"lawyerIdNumber" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileInput is the lawyer-side profile editor payload. The schedule is the
// complete set of edited days; each one replaces the stored day for its date.
type ProfileInput struct {
	Description string        `json:"description"`
	HourlyRate  int           `json:"hourlyRate"`
	Address     string        `json:"address"`
	Categories  []int         `json:"categories"`
	Regions     []int         `json:"regions"`
	IsJunior    bool          `json:"isJunior"`
	IsCompleted bool          `json:"isCompleted"`
	Schedule    []ScheduleDay `json:"schedule"`
}

// SearchInput filters the public lawyer directory.
type SearchInput struct {
	Name       string `json:"name" form:"name"`
	Categories []int  `json:"categories" form:"categories"`
	Regions    []int  `json:"regions" form:"regions"`
	Sort       string `json:"sort" form:"sort"` // name|rate, optional "-" prefix for descending
}

// SaveDayRequest carries one edited day from the availability editor.
type SaveDayRequest struct {
	Day ScheduleDay `json:"day" binding:"required"`
}

// ReserveSlotRequest books a consultation into an existing slot.
type ReserveSlotRequest struct {
	ProfileID string `json:"profileId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	SlotID    int64  `json:"slotId" binding:"required"`
}
