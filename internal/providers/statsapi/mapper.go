package statsapi

import "mlb-apple-service/internal/domain"

func mapSchedule(payload scheduleResponse) []domain.ScheduledGame {
	games := make([]domain.ScheduledGame, 0)
	for _, date := range payload.Dates {
		for _, g := range date.Games {
			games = append(games, domain.ScheduledGame{
				GamePk: g.GamePk,
				Status: g.Status.DetailedState,
			})
		}
	}
	return games
}

func mapGameDetail(gamePk int, payload liveFeedResponse) domain.GameDetail {
	if payload.GamePk != 0 {
		gamePk = payload.GamePk
	}
	return domain.GameDetail{
		GamePk:       gamePk,
		GameID:       payload.GameData.Game.ID,
		DoubleHeader: payload.GameData.Game.DoubleHeader,
		Status:       payload.GameData.Status.DetailedState,
		HomeID:       payload.GameData.Teams.Home.ID,
		AwayID:       payload.GameData.Teams.Away.ID,
		HomeScore:    payload.LiveData.Linescore.Teams.Home.Runs,
		AwayScore:    payload.LiveData.Linescore.Teams.Away.Runs,
	}
}

func mapPlays(payload playByPlayResponse) []domain.Play {
	plays := make([]domain.Play, 0, len(payload.AllPlays))
	for _, p := range payload.AllPlays {
		play := domain.Play{
			Index:       p.About.AtBatIndex,
			Description: p.Result.Description,
			Event:       p.Result.Event,
			HalfInning:  p.About.HalfInning,
		}
		if len(p.PlayEvents) > 0 {
			play.StartTime = p.PlayEvents[0].StartTime
		}
		plays = append(plays, play)
	}
	return plays
}
