package bdd

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/hoopsdata/basketball-analytics/test/bdd/steps"
	"github.com/hoopsdata/basketball-analytics/test/helpers"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// One pipeline context per scenario, shared by every step group
	pipeline := steps.NewPipelineContext()
	pipeline.Register(sc)

	steps.InitializeTeamScenario(sc, pipeline)
	steps.InitializePlayerScenario(sc, pipeline)
	steps.InitializeAuthScenario(sc, pipeline)
}

func TestMain(m *testing.M) {
	// Initialize shared test database for all scenarios
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}

	code := m.Run()
	_ = helpers.CloseSharedTestDB()
	os.Exit(code)
}
