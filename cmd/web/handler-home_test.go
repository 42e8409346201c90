package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ahautala/repapp/internal/e2etest"
	"github.com/ahautala/repapp/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "REPAPP_SQLITE_URL":
		return ":memory:", true
	case "REPAPP_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func mustStartServer(t *testing.T) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	return server
}

func checkButtonPresence(t *testing.T, doc *goquery.Document, buttonText string, expectedCount int) {
	t.Helper()
	count := doc.Find("button:contains('" + buttonText + "')").Length()
	if count != expectedCount {
		t.Errorf("Expected %d '%s' button(s), but found %d", expectedCount, buttonText, count)
	}
}

func checkContainsText(t *testing.T, doc *goquery.Document, selector, expected string) {
	t.Helper()
	text := doc.Find(selector).Text()
	if !strings.Contains(text, expected) {
		t.Errorf("Expected %q to contain %q, got %q", selector, expected, text)
	}
}

func Test_application_home(t *testing.T) {
	ctx := t.Context()
	server := mustStartServer(t)
	client := server.Client()

	t.Run("redirects to onboarding before a profile exists", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		checkContainsText(t, doc, "h1", "Welcome")
		checkButtonPresence(t, doc, "Continue", 1)
	})

	t.Run("shows the next workout after onboarding", func(t *testing.T) {
		doc := completeOnboarding(t, client, onboardingAnswers{
			name:        "Alice",
			experience:  "beginner",
			daysPerWeek: "4",
			intensity:   "moderate",
			goal:        "muscle",
		})

		checkContainsText(t, doc, "h1", "Hello, Alice")
		checkContainsText(t, doc, "h2", "Push Day")
		checkButtonPresence(t, doc, "Start workout", 1)
	})
}
