package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/persistence"
	teamCommands "github.com/hoopsdata/basketball-analytics/internal/application/team/commands"
	teamQueries "github.com/hoopsdata/basketball-analytics/internal/application/team/queries"
)

type teamSteps struct {
	*PipelineContext
}

func InitializeTeamScenario(sc *godog.ScenarioContext, pipeline *PipelineContext) {
	s := &teamSteps{PipelineContext: pipeline}

	sc.Step(`^the following teams exist:$`, s.theFollowingTeamsExist)
	sc.Step(`^I create a team named "([^"]*)" from "([^"]*)"$`, s.iCreateATeam)
	sc.Step(`^I fetch the team "([^"]*)"$`, s.iFetchTheTeam)
	sc.Step(`^I delete the team "([^"]*)"$`, s.iDeleteTheTeam)
	sc.Step(`^I delete a team that does not exist$`, s.iDeleteATeamThatDoesNotExist)
	sc.Step(`^I list all teams$`, s.iListAllTeams)
	sc.Step(`^I list all teams (\d+) times$`, s.iListAllTeamsTimes)

	sc.Step(`^the team should be named "([^"]*)" from "([^"]*)"$`, s.theTeamShouldBeNamed)
	sc.Step(`^(\d+) teams? should be stored$`, s.teamsShouldBeStored)
	sc.Step(`^the team list should be "([^"]*)"$`, s.theTeamListShouldBe)
	sc.Step(`^the team list should have been loaded from the store (\d+) times?$`, s.theTeamListShouldHaveBeenLoaded)
}

func (s *teamSteps) theFollowingTeamsExist(table *godog.Table) error {
	for _, row := range dataRows(table) {
		name := getCellValueFromTable(table, row, "name")
		s.send(&teamCommands.CreateTeamCommand{
			Name: name,
			City: getCellValueFromTable(table, row, "city"),
		})
		if s.lastErr != nil {
			return fmt.Errorf("failed to seed team %s: %w", name, s.lastErr)
		}
		s.teams[name] = s.lastResponse.(*teamCommands.CreateTeamResponse).TeamID
	}
	s.lastResponse, s.lastErr = nil, nil
	return nil
}

func (s *teamSteps) iCreateATeam(name, city string) error {
	s.send(&teamCommands.CreateTeamCommand{Name: name, City: city})
	if resp, ok := s.lastResponse.(*teamCommands.CreateTeamResponse); ok && s.lastErr == nil {
		s.teams[name] = resp.TeamID
	}
	return nil
}

func (s *teamSteps) teamID(name string) (uuid.UUID, error) {
	id, ok := s.teams[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("team %q was never created in this scenario", name)
	}
	return id, nil
}

func (s *teamSteps) iFetchTheTeam(name string) error {
	id, err := s.teamID(name)
	if err != nil {
		return err
	}
	s.send(&teamQueries.GetTeamByIDQuery{ID: id})
	return nil
}

func (s *teamSteps) iDeleteTheTeam(name string) error {
	id, err := s.teamID(name)
	if err != nil {
		return err
	}
	s.send(&teamCommands.DeleteTeamCommand{ID: id})
	return nil
}

func (s *teamSteps) iDeleteATeamThatDoesNotExist() error {
	s.send(&teamCommands.DeleteTeamCommand{ID: uuid.New()})
	return nil
}

func (s *teamSteps) iListAllTeams() error {
	s.send(&teamQueries.GetAllTeamsQuery{})
	return nil
}

func (s *teamSteps) iListAllTeamsTimes(n int) error {
	for i := 0; i < n; i++ {
		s.send(&teamQueries.GetAllTeamsQuery{})
		if s.lastErr != nil {
			return s.lastErr
		}
	}
	return nil
}

func (s *teamSteps) theTeamShouldBeNamed(name, city string) error {
	dto, ok := s.lastResponse.(*teamQueries.TeamDTO)
	if !ok {
		return fmt.Errorf("expected *TeamDTO, got %T (err: %v)", s.lastResponse, s.lastErr)
	}
	if dto.Name != name || dto.City != city {
		return fmt.Errorf("expected %s from %s, got %s from %s", name, city, dto.Name, dto.City)
	}
	return nil
}

func (s *teamSteps) teamsShouldBeStored(expected int) error {
	var count int64
	if err := s.app.DB.WithContext(context.Background()).Model(&persistence.TeamModel{}).Count(&count).Error; err != nil {
		return err
	}
	if int(count) != expected {
		return fmt.Errorf("expected %d teams stored, found %d", expected, count)
	}
	return nil
}

func (s *teamSteps) theTeamListShouldBe(expected string) error {
	resp, ok := s.lastResponse.(*teamQueries.GetAllTeamsResponse)
	if !ok {
		return fmt.Errorf("expected *GetAllTeamsResponse, got %T (err: %v)", s.lastResponse, s.lastErr)
	}
	names := make([]string, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		names = append(names, t.Name)
	}
	if got := joinNames(names); got != expected {
		return fmt.Errorf("expected team list %q, got %q", expected, got)
	}
	return nil
}

func (s *teamSteps) theTeamListShouldHaveBeenLoaded(expected int) error {
	if got := s.app.Store.TeamListReads(); got != expected {
		return fmt.Errorf("expected %d store reads of the team list, got %d", expected, got)
	}
	return nil
}
