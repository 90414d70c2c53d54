package statsapi

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string             `json:"date"`
	Games []scheduleGameItem `json:"games"`
}

type scheduleGameItem struct {
	GamePk int            `json:"gamePk"`
	Status statusResponse `json:"status"`
}

type statusResponse struct {
	DetailedState string `json:"detailedState"`
}

type liveFeedResponse struct {
	GamePk   int              `json:"gamePk"`
	GameData gameDataResponse `json:"gameData"`
	LiveData liveDataResponse `json:"liveData"`
}

type gameDataResponse struct {
	Game   gameInfoResponse  `json:"game"`
	Teams  feedTeamsResponse `json:"teams"`
	Status statusResponse    `json:"status"`
}

type gameInfoResponse struct {
	Pk           int    `json:"pk"`
	ID           string `json:"id"`
	DoubleHeader string `json:"doubleHeader"`
}

type feedTeamsResponse struct {
	Home feedTeamResponse `json:"home"`
	Away feedTeamResponse `json:"away"`
}

type feedTeamResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type liveDataResponse struct {
	Linescore linescoreResponse `json:"linescore"`
}

type linescoreResponse struct {
	Teams linescoreTeamsResponse `json:"teams"`
}

type linescoreTeamsResponse struct {
	Home linescoreSideResponse `json:"home"`
	Away linescoreSideResponse `json:"away"`
}

type linescoreSideResponse struct {
	Runs int `json:"runs"`
}

type playByPlayResponse struct {
	AllPlays []playResponse `json:"allPlays"`
}

type playResponse struct {
	Result     playResultResponse `json:"result"`
	About      playAboutResponse  `json:"about"`
	PlayEvents []playEventItem    `json:"playEvents"`
}

type playResultResponse struct {
	Description string `json:"description"`
	Event       string `json:"event"`
}

type playAboutResponse struct {
	AtBatIndex int    `json:"atBatIndex"`
	HalfInning string `json:"halfInning"`
}

type playEventItem struct {
	StartTime string `json:"startTime"`
}
