package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	Api          = "/api"
	ApiHome      = Api + Home
	ApiRatings   = Api + "/ratings"
	ApiUsers     = Api + "/users"
	ApiUser      = ApiUsers + "/:id"
	ApiUserSkill = ApiUser + "/skill"
	ApiEvents    = Api + "/events"
	ApiEvent     = ApiEvents + "/:id"
	ApiRsvp      = ApiEvent + "/rsvp"
	ApiAttendees = ApiEvent + "/attendees"
	ApiTeams     = ApiEvent + "/teams"
	ApiTeamSkill = ApiTeams + "/:index/skill"
	ApiMatches   = ApiEvent + "/matches"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":    Signup,
		"SignIn":    Signin,
		"SignOut":   Signout,
		"Home":      Home,
		"Api":       Api,
		"ApiHome":   ApiHome,
		"ApiEvents": ApiEvents,
	}
}
