package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	POSTRaw(path, body string, headers map[string]string) error
	GetLastStatusCode() int
	GetLastHeader(name string) string
	GetLastBody() []byte
	GetResponseField(field string) (any, error)
}

// RegisterSteps registers generic request and assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I GET "([^"]*)"$`, steps.get)
	ctx.Step(`^I POST to "([^"]*)" with body:$`, steps.postDocString)
	ctx.Step(`^I POST to "([^"]*)" with raw body "([^"]*)"$`, steps.postRaw)

	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, steps.fieldShouldEqual)
	ctx.Step(`^the response field "([^"]*)" should be (true|false)$`, steps.fieldShouldBeBool)
	ctx.Step(`^the response header "([^"]*)" should be present$`, steps.headerShouldBePresent)
	ctx.Step(`^the response body should contain "([^"]*)"$`, steps.bodyShouldContain)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) get(ctx context.Context, path string) error {
	return s.tc.GET(path, nil)
}

func (s *commonSteps) postDocString(ctx context.Context, path string, body *godog.DocString) error {
	return s.tc.POSTRaw(path, body.Content, nil)
}

func (s *commonSteps) postRaw(ctx context.Context, path, body string) error {
	return s.tc.POSTRaw(path, body, nil)
}

func (s *commonSteps) statusShouldBe(ctx context.Context, want int) error {
	if got := s.tc.GetLastStatusCode(); got != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, got, s.tc.GetLastBody())
	}
	return nil
}

func (s *commonSteps) fieldShouldEqual(ctx context.Context, field, want string) error {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("expected %s=%q, got %q", field, want, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldBeBool(ctx context.Context, field, want string) error {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	b, ok := v.(bool)
	if !ok || fmt.Sprint(b) != want {
		return fmt.Errorf("expected %s=%s, got %v", field, want, v)
	}
	return nil
}

func (s *commonSteps) headerShouldBePresent(ctx context.Context, name string) error {
	if s.tc.GetLastHeader(name) == "" {
		return fmt.Errorf("header %s missing", name)
	}
	return nil
}

func (s *commonSteps) bodyShouldContain(ctx context.Context, fragment string) error {
	if !strings.Contains(string(s.tc.GetLastBody()), fragment) {
		return fmt.Errorf("body does not contain %q: %s", fragment, s.tc.GetLastBody())
	}
	return nil
}
