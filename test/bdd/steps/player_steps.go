package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/events"
	playerCommands "github.com/hoopsdata/basketball-analytics/internal/application/player/commands"
	playerQueries "github.com/hoopsdata/basketball-analytics/internal/application/player/queries"
	teamQueries "github.com/hoopsdata/basketball-analytics/internal/application/team/queries"
)

type playerSteps struct {
	*PipelineContext
	players map[string]uuid.UUID
}

func InitializePlayerScenario(sc *godog.ScenarioContext, pipeline *PipelineContext) {
	s := &playerSteps{PipelineContext: pipeline}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s.players = make(map[string]uuid.UUID)
		return ctx, nil
	})

	sc.Step(`^the following players exist:$`, s.theFollowingPlayersExist)
	sc.Step(`^I sign the following player:$`, s.iSignTheFollowingPlayer)
	sc.Step(`^I sign a player to a team that does not exist$`, s.iSignAPlayerToAMissingTeam)
	sc.Step(`^I request the stats of team "([^"]*)"$`, s.iRequestTheStatsOfTeam)
	sc.Step(`^I list the players of team "([^"]*)"$`, s.iListThePlayersOfTeam)
	sc.Step(`^I request page (\d+) of players with (\d+) per page$`, s.iRequestPageOfPlayers)

	sc.Step(`^a PlayerCreated event should have been published for "([^"]*)"$`, s.aPlayerCreatedEventShouldHaveBeenPublished)
	sc.Step(`^no events should have been published$`, s.noEventsShouldHaveBeenPublished)
	sc.Step(`^the team should have (\d+) players averaging ([\d.]+) cm and ([\d.]+) kg$`, s.theTeamShouldHavePlayersAveraging)
	sc.Step(`^the players should be "([^"]*)"$`, s.thePlayersShouldBe)
	sc.Step(`^the page should list "([^"]*)" of (\d+) players across (\d+) pages$`, s.thePageShouldList)
}

func (s *playerSteps) commandFromRow(table *godog.Table, row *messages.PickleTableRow) (*playerCommands.CreatePlayerCommand, error) {
	height, err := getIntCell(table, row, "height")
	if err != nil {
		return nil, err
	}
	weight, err := getIntCell(table, row, "weight")
	if err != nil {
		return nil, err
	}
	position, err := getIntCell(table, row, "position")
	if err != nil {
		return nil, err
	}

	teamName := getCellValueFromTable(table, row, "team")
	teamID, ok := s.teams[teamName]
	if !ok {
		return nil, fmt.Errorf("team %q was never created in this scenario", teamName)
	}

	jersey := getCellValueFromTable(table, row, "jersey")
	if jersey == "" {
		jersey = "0"
	}

	return &playerCommands.CreatePlayerCommand{
		FirstName:    getCellValueFromTable(table, row, "first"),
		LastName:     getCellValueFromTable(table, row, "last"),
		HeightCm:     height,
		WeightKg:     weight,
		Position:     position,
		JerseyNumber: jersey,
		TeamID:       teamID,
	}, nil
}

func (s *playerSteps) theFollowingPlayersExist(table *godog.Table) error {
	for _, row := range dataRows(table) {
		cmd, err := s.commandFromRow(table, row)
		if err != nil {
			return err
		}
		s.send(cmd)
		if s.lastErr != nil {
			return fmt.Errorf("failed to seed player %s %s: %w", cmd.FirstName, cmd.LastName, s.lastErr)
		}
		s.players[cmd.LastName] = s.lastResponse.(*playerCommands.CreatePlayerResponse).PlayerID
	}
	s.lastResponse, s.lastErr = nil, nil
	return nil
}

func (s *playerSteps) iSignTheFollowingPlayer(table *godog.Table) error {
	rows := dataRows(table)
	if len(rows) != 1 {
		return fmt.Errorf("expected exactly one player row, got %d", len(rows))
	}
	cmd, err := s.commandFromRow(table, rows[0])
	if err != nil {
		return err
	}
	s.send(cmd)
	return nil
}

func (s *playerSteps) iSignAPlayerToAMissingTeam() error {
	s.send(&playerCommands.CreatePlayerCommand{
		FirstName:    "Lonzo",
		LastName:     "Ball",
		HeightCm:     198,
		WeightKg:     86,
		Position:     1,
		JerseyNumber: "2",
		TeamID:       uuid.New(),
	})
	return nil
}

func (s *playerSteps) iRequestTheStatsOfTeam(name string) error {
	id, ok := s.teams[name]
	if !ok {
		return fmt.Errorf("team %q was never created in this scenario", name)
	}
	s.send(&teamQueries.GetTeamStatsQuery{TeamID: id})
	return nil
}

func (s *playerSteps) iListThePlayersOfTeam(name string) error {
	id, ok := s.teams[name]
	if !ok {
		return fmt.Errorf("team %q was never created in this scenario", name)
	}
	s.send(&playerQueries.GetPlayersByTeamQuery{TeamID: id})
	return nil
}

func (s *playerSteps) iRequestPageOfPlayers(page, size int) error {
	s.send(&playerQueries.GetAllPlayersQuery{Page: page, PageSize: size})
	return nil
}

func (s *playerSteps) aPlayerCreatedEventShouldHaveBeenPublished(fullName string) error {
	for _, e := range s.app.Publisher.Events() {
		created, ok := e.(*events.PlayerCreatedEvent)
		if !ok {
			continue
		}
		if created.FirstName+" "+created.LastName == fullName {
			return nil
		}
	}
	return fmt.Errorf("no PlayerCreated event for %q among %d events", fullName, len(s.app.Publisher.Events()))
}

func (s *playerSteps) noEventsShouldHaveBeenPublished() error {
	if n := len(s.app.Publisher.Events()); n != 0 {
		return fmt.Errorf("expected no events, got %d", n)
	}
	return nil
}

func (s *playerSteps) theTeamShouldHavePlayersAveraging(count int, height, weight float64) error {
	stats, ok := s.lastResponse.(*teamQueries.TeamStatsDTO)
	if !ok {
		return fmt.Errorf("expected *TeamStatsDTO, got %T (err: %v)", s.lastResponse, s.lastErr)
	}
	if stats.PlayerCount != count {
		return fmt.Errorf("expected %d players, got %d", count, stats.PlayerCount)
	}
	if stats.AverageHeightCm != height || stats.AverageWeightKg != weight {
		return fmt.Errorf("expected averages %.1f cm / %.1f kg, got %.1f cm / %.1f kg",
			height, weight, stats.AverageHeightCm, stats.AverageWeightKg)
	}
	return nil
}

func (s *playerSteps) thePlayersShouldBe(expected string) error {
	resp, ok := s.lastResponse.(*playerQueries.GetPlayersByTeamResponse)
	if !ok {
		return fmt.Errorf("expected *GetPlayersByTeamResponse, got %T (err: %v)", s.lastResponse, s.lastErr)
	}
	return compareNames(resp.Players, expected)
}

func (s *playerSteps) thePageShouldList(expected string, total, pages int) error {
	page, ok := s.lastResponse.(*playerQueries.PagedResult[playerQueries.PlayerDTO])
	if !ok {
		return fmt.Errorf("expected a player page, got %T (err: %v)", s.lastResponse, s.lastErr)
	}
	if page.TotalCount != int64(total) || page.TotalPages != pages {
		return fmt.Errorf("expected %d players across %d pages, got %d across %d",
			total, pages, page.TotalCount, page.TotalPages)
	}
	return compareNames(page.Items, expected)
}

func compareNames(players []playerQueries.PlayerDTO, expected string) error {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.FullName)
	}
	if got := joinNames(names); got != expected {
		return fmt.Errorf("expected players %q, got %q", expected, got)
	}
	return nil
}
