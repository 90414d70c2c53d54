package teams

import "sort"

// Team is one catalog entry for the picker UI.
type Team struct {
	ID   int
	Name string
}

// catalog maps franchise names to MLB Stats API team ids.
var catalog = map[string]int{
	"Arizona Diamondbacks":  109,
	"Atlanta Braves":        144,
	"Baltimore Orioles":     110,
	"Boston Red Sox":        111,
	"Chicago Cubs":          112,
	"Chicago White Sox":     145,
	"Cincinnati Reds":       113,
	"Cleveland Guardians":   114,
	"Colorado Rockies":      115,
	"Detroit Tigers":        116,
	"Houston Astros":        117,
	"Kansas City Royals":    118,
	"Los Angeles Angels":    108,
	"Los Angeles Dodgers":   119,
	"Miami Marlins":         146,
	"Milwaukee Brewers":     158,
	"Minnesota Twins":       142,
	"New York Mets":         121,
	"New York Yankees":      147,
	"Oakland Athletics":     133,
	"Philadelphia Phillies": 143,
	"Pittsburgh Pirates":    134,
	"San Diego Padres":      135,
	"San Francisco Giants":  137,
	"Seattle Mariners":      136,
	"St. Louis Cardinals":   138,
	"Tampa Bay Rays":        139,
	"Texas Rangers":         140,
	"Toronto Blue Jays":     141,
	"Washington Nationals":  120,
}

// All returns the catalog sorted by franchise name.
func All() []Team {
	teams := make([]Team, 0, len(catalog))
	for name, id := range catalog {
		teams = append(teams, Team{ID: id, Name: name})
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams
}

// NameByID returns the franchise name for a team id.
func NameByID(id int) (string, bool) {
	for name, teamID := range catalog {
		if teamID == id {
			return name, true
		}
	}
	return "", false
}
