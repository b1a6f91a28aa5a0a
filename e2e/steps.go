package e2e

import (
	"github.com/cucumber/godog"

	"chapel/e2e/steps/common"
	"chapel/e2e/steps/content"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Generic requests and response assertions
	common.RegisterSteps(ctx, tc)

	// FAQ, ministries and podcast steps
	content.RegisterSteps(ctx, tc)
}
