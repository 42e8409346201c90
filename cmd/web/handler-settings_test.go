package main

import (
	"testing"
)

func Test_application_settings(t *testing.T) {
	ctx := t.Context()
	server := mustStartServer(t)
	client := server.Client()

	completeOnboarding(t, client, onboardingAnswers{
		name:        "Erin",
		experience:  "intermediate",
		daysPerWeek: "6",
		intensity:   "hard",
		goal:        "muscle",
	})

	t.Run("shows the profile and split", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/settings")
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}

		checkContainsText(t, doc, "table", "Erin")
		checkContainsText(t, doc, "ol", "Push Day")
		checkContainsText(t, doc, "ol", "Lower Body & Abs")
	})

	t.Run("reset wipes everything", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/settings")
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}

		doc, err = client.SubmitForm(ctx, doc, "/settings/reset", nil)
		if err != nil {
			t.Fatalf("Failed to reset: %v", err)
		}

		// The reset lands on the onboarding questionnaire.
		checkContainsText(t, doc, "h1", "Welcome")

		doc, err = client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get home: %v", err)
		}
		checkContainsText(t, doc, "h1", "Welcome")
	})
}
