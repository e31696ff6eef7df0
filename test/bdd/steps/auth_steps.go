package steps

import (
	"fmt"

	"github.com/cucumber/godog"

	authCommands "github.com/hoopsdata/basketball-analytics/internal/application/auth/commands"
	authQueries "github.com/hoopsdata/basketball-analytics/internal/application/auth/queries"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

type authSteps struct {
	*PipelineContext
}

func InitializeAuthScenario(sc *godog.ScenarioContext, pipeline *PipelineContext) {
	s := &authSteps{PipelineContext: pipeline}

	sc.Step(`^a user "([^"]*)" with password "([^"]*)" and role "([^"]*)" is registered$`, s.aUserIsRegistered)
	sc.Step(`^I register "([^"]*)" with password "([^"]*)" and role "([^"]*)"$`, s.iRegister)
	sc.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, s.iLogIn)
	sc.Step(`^I should receive a token for "([^"]*)" with role "([^"]*)"$`, s.iShouldReceiveAToken)
}

func (s *authSteps) aUserIsRegistered(username, password, role string) error {
	s.send(&authCommands.RegisterUserCommand{Username: username, Password: password, Role: role})
	if s.lastErr != nil {
		return fmt.Errorf("failed to register %s: %w", username, s.lastErr)
	}
	s.lastResponse, s.lastErr = nil, nil
	return nil
}

func (s *authSteps) iRegister(username, password, role string) error {
	s.send(&authCommands.RegisterUserCommand{Username: username, Password: password, Role: role})
	return nil
}

func (s *authSteps) iLogIn(username, password string) error {
	s.send(&authQueries.LoginQuery{Username: username, Password: password})
	return nil
}

func (s *authSteps) iShouldReceiveAToken(username, role string) error {
	resp, ok := s.lastResponse.(*authQueries.LoginResponse)
	if !ok {
		return fmt.Errorf("expected *LoginResponse, got %T (err: %v)", s.lastResponse, s.lastErr)
	}
	principal, err := s.app.Tokens.Verify(resp.Token)
	if err != nil {
		return fmt.Errorf("issued token does not verify: %w", err)
	}
	if principal.Username != username || principal.Role != user.Role(role) {
		return fmt.Errorf("expected %s/%s in token, got %s/%s", username, role, principal.Username, principal.Role)
	}
	return nil
}
