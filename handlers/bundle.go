package handlers

import (
	simpledataRepo "superlaw/database/repository/simpledata"
	userRepo "superlaw/database/repository/user"
	"superlaw/services/auth"
	"superlaw/services/booking"
	"superlaw/services/profile"
	"superlaw/services/schedule"
)

// HandlerBundle groups all endpoint handlers and the services they call.
// UserRepo is exposed for the auth middleware's token-hash lookup.
type HandlerBundle struct {
	UserRepo   userRepo.UserRepository
	Auth       auth.AuthService
	Profiles   profile.ProfileService
	Editor     schedule.EditorService
	Booking    booking.BookingService
	SimpleData simpledataRepo.SimpleDataRepository
}
