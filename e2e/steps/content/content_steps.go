package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	POSTRaw(path, body string, headers map[string]string) error
	GetAdminToken() string
	GetLastBody() []byte
}

// RegisterSteps registers content gateway step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &contentSteps{tc: tc}

	ctx.Step(`^I store the FAQ "([^"]*)" with answer "([^"]*)" as admin$`, steps.storeFAQAsAdmin)
	ctx.Step(`^I store the FAQ "([^"]*)" with answer "([^"]*)" without a token$`, steps.storeFAQWithoutToken)
	ctx.Step(`^the response should be a list of at most (\d+) items$`, steps.listAtMost)
}

type contentSteps struct {
	tc TestContext
}

func faqBody(question, answer string) (string, error) {
	raw, err := json.Marshal(map[string]string{"question": question, "answer": answer})
	return string(raw), err
}

func (s *contentSteps) storeFAQAsAdmin(ctx context.Context, question, answer string) error {
	if s.tc.GetAdminToken() == "" {
		return godog.ErrPending
	}
	body, err := faqBody(question, answer)
	if err != nil {
		return err
	}
	return s.tc.POSTRaw("/api/faqs", body, map[string]string{"X-Admin-Token": s.tc.GetAdminToken()})
}

func (s *contentSteps) storeFAQWithoutToken(ctx context.Context, question, answer string) error {
	body, err := faqBody(question, answer)
	if err != nil {
		return err
	}
	return s.tc.POSTRaw("/api/faqs", body, nil)
}

func (s *contentSteps) listAtMost(ctx context.Context, n int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.tc.GetLastBody(), &items); err != nil {
		return fmt.Errorf("response is not a list: %w", err)
	}
	if len(items) > n {
		return fmt.Errorf("expected at most %d items, got %d", n, len(items))
	}
	return nil
}
