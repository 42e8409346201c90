package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ahautala/repapp/internal/e2etest"
	"github.com/ahautala/repapp/internal/logging"
	"github.com/ahautala/repapp/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout   = 30 * time.Second
	concurrentReaders = 10
	readsPerReader    = 20
)

// TestWorkoutJourney onboards a fresh profile and completes one full workout.
func TestWorkoutJourney(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), scenarioTimeout)
	defer cancel()

	doc, err := client.GetDoc(ctx, "/onboarding")
	if err != nil {
		return fmt.Errorf("get onboarding page: %w", err)
	}

	// A profile may already exist from an earlier run. In that case we land
	// on the home page instead of the questionnaire.
	if doc.Find("form[action='/onboarding']").Length() > 0 {
		if doc, err = client.SubmitForm(ctx, doc, "/onboarding", map[string]string{
			"Name":          "Smoke Tester",
			"Experience":    "beginner",
			"Days per week": "3",
		}); err != nil {
			return fmt.Errorf("submit onboarding form: %w", err)
		}
		if doc, err = client.SubmitForm(ctx, doc, "/onboarding/goals", map[string]string{
			"Intensity": "moderate",
			"Goal":      "fitness",
		}); err != nil {
			return fmt.Errorf("submit goals form: %w", err)
		}
	}

	if doc.Find("a[href='/workout']").Length() > 0 {
		// Resume and abandon a workout left over from an earlier run.
		if doc, err = client.GetDoc(ctx, "/workout"); err != nil {
			return fmt.Errorf("get in-progress workout: %w", err)
		}
		if doc, err = client.SubmitForm(ctx, doc, "/workout/abandon", nil); err != nil {
			return fmt.Errorf("abandon workout: %w", err)
		}
	}

	if doc, err = client.SubmitForm(ctx, doc, "/workout/start", nil); err != nil {
		return fmt.Errorf("start workout: %w", err)
	}

	// Log one set per exercise until the workout finishes and we are back on
	// the home page.
	for doc.Find("form[action='/workout/sets']").Length() > 0 {
		if doc, err = client.SubmitForm(ctx, doc, "/workout/sets", map[string]string{
			"Weight": "20",
			"Reps":   "10",
		}); err != nil {
			return fmt.Errorf("log set: %w", err)
		}
		if doc, err = client.SubmitForm(ctx, doc, "/workout/next", nil); err != nil {
			return fmt.Errorf("advance workout: %w", err)
		}
	}

	var historyDoc *goquery.Document
	if historyDoc, err = client.GetDoc(ctx, "/history"); err != nil {
		return fmt.Errorf("get history: %w", err)
	}
	if !strings.Contains(historyDoc.Find("#totals").Text(), "workouts") {
		return fmt.Errorf("history totals missing: %q", historyDoc.Find("#totals").Text())
	}

	return nil
}

// TestConcurrentReads hammers the read-only pages from several goroutines to
// catch races and connection pool issues.
func TestConcurrentReads(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), scenarioTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrentReaders)

	for range concurrentReaders {
		g.Go(func() error {
			client, err := e2etest.NewClient(url)
			if err != nil {
				return fmt.Errorf("create reader client: %w", err)
			}
			for range readsPerReader {
				for _, path := range []string{"/", "/history", "/settings"} {
					if _, err = client.GetDoc(ctx, path); err != nil {
						return fmt.Errorf("get %s: %w", path, err)
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("concurrent reads: %w", err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestWorkoutJourney(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing workout journey", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestConcurrentReads(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing concurrent reads", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
