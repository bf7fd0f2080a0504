package matches

// Team is an IPL franchise the dashboard links to.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// KnownTeams lists the franchises in home-page order.
var KnownTeams = []Team{
	{ID: "RCB", Name: "Royal Challengers Bangalore"},
	{ID: "KKR", Name: "Kolkata Knight Riders"},
	{ID: "KXP", Name: "Kings XI Punjab"},
	{ID: "CSK", Name: "Chennai Super Kings"},
	{ID: "RR", Name: "Rajasthan Royals"},
	{ID: "MI", Name: "Mumbai Indians"},
	{ID: "SH", Name: "Sunrisers Hyderabad"},
	{ID: "DC", Name: "Delhi Capitals"},
}

// FindTeam looks a team up by its exact id.
func FindTeam(id string) (Team, bool) {
	for _, t := range KnownTeams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}
