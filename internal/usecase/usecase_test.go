package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"testing"

	"go-application-tracker/internal/domain"
	"go-application-tracker/internal/repository/memory"
	"go-application-tracker/internal/usecase"
	"go-application-tracker/pkg/apperror"
	"go-application-tracker/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

type fixture struct {
	apps     domain.ApplicationRepository
	appUC    domain.ApplicationUsecase
	reviewUC domain.ReviewUsecase
	decideUC domain.DecisionUsecase
	searchUC domain.SearchUsecase
	trackUC  domain.TrackingUsecase
	reportUC domain.ReportUsecase
	auditLog *audit.Logger
	observed *observer.ObservedLogs
}

func newFixture(strict bool) *fixture {
	core, observed := observer.New(zapcore.DebugLevel)
	auditLog := audit.New(zap.New(core), "application-tracker", "test")

	apps := memory.NewApplicationRepository()
	decisions := memory.NewDecisionRepository()
	return &fixture{
		apps:     apps,
		appUC:    usecase.NewApplicationUsecase(apps, auditLog, nil),
		reviewUC: usecase.NewReviewUsecase(memory.NewReviewQueue(), apps, auditLog, nil),
		decideUC: usecase.NewDecisionUsecase(decisions, apps, usecase.DecisionOptions{Strict: strict}, auditLog, nil),
		searchUC: usecase.NewSearchUsecase(),
		trackUC:  usecase.NewTrackingUsecase(memory.NewStageRepository(), apps, auditLog, nil),
		reportUC: usecase.NewReportUsecase(auditLog, nil),
		auditLog: auditLog,
		observed: observed,
	}
}

func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	alice := f.appUC.Submit(ctx, "Alice", "J1", "link1")
	bob := f.appUC.Submit(ctx, "Bob", "J2", "link2")

	require.NoError(t, f.decideUC.Shortlist(ctx, alice))
	require.NoError(t, f.decideUC.Reject(ctx, bob))

	report := f.reportUC.Generate(ctx, f.appUC.All())
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, map[string]int{"Submitted": 0, "Shortlisted": 1, "Rejected": 1}, report.StatusCount)
	assert.Equal(t, map[string]int{"J1": 1, "J2": 1}, report.PerJob)
	assert.Equal(t, []string{"J1", "J2"}, report.JobOrder)
	assert.Equal(t, 0, report.Other)

	t.Run("Should display tracked stages in insertion order", func(t *testing.T) {
		f.trackUC.AddStage(ctx, alice, "Interview")
		f.trackUC.AddStage(ctx, bob, "Interview")

		assert.Equal(t, []domain.StageEntry{
			{Name: "Alice", Status: "Interview"},
			{Name: "Bob", Status: "Interview"},
		}, f.trackUC.Display())
	})

	t.Run("Should bucket stage labels as Other without dropping them", func(t *testing.T) {
		report := f.reportUC.Generate(ctx, f.appUC.All())
		assert.Equal(t, 2, report.Total)
		assert.Equal(t, map[string]int{"Submitted": 0, "Shortlisted": 0, "Rejected": 0}, report.StatusCount)
		assert.Equal(t, 2, report.Other)
		assert.Equal(t, map[string]int{"Interview": 2}, report.OtherByLabel)
	})
}

func TestStatusMutationVisibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	app := f.appUC.Submit(ctx, "Alice", "J1", "link1")
	f.trackUC.AddStage(ctx, app, "Phone Screen")
	f.reviewUC.Enqueue(ctx, app)

	require.NoError(t, f.decideUC.Shortlist(ctx, app))

	t.Run("Should be visible through the store", func(t *testing.T) {
		assert.Equal(t, domain.ApplicationStatusShortlisted, f.appUC.All()[0].Status)
	})

	t.Run("Should be visible through the tracker display", func(t *testing.T) {
		assert.Equal(t, []domain.StageEntry{{Name: "Alice", Status: domain.ApplicationStatusShortlisted}}, f.trackUC.Display())
	})

	t.Run("Should be visible through the review queue", func(t *testing.T) {
		got, ok := f.reviewUC.Dequeue(ctx)
		require.True(t, ok)
		assert.Same(t, app, got)
		assert.Equal(t, domain.ApplicationStatusShortlisted, got.Status)
	})
}

func TestReviewUsecase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	t.Run("Should report an empty queue as a normal result", func(t *testing.T) {
		app, ok := f.reviewUC.Dequeue(ctx)
		assert.False(t, ok)
		assert.Nil(t, app)
	})

	t.Run("Should enqueue every application in submission order", func(t *testing.T) {
		a := f.appUC.Submit(ctx, "A", "J1", "")
		b := f.appUC.Submit(ctx, "B", "J1", "")

		assert.Equal(t, 2, f.reviewUC.EnqueueAll(ctx))
		assert.Equal(t, 2, f.reviewUC.Pending())

		first, _ := f.reviewUC.Dequeue(ctx)
		second, _ := f.reviewUC.Dequeue(ctx)
		assert.Same(t, a, first)
		assert.Same(t, b, second)
		assert.Equal(t, domain.ApplicationStatusSubmitted, first.Status)
	})

	t.Run("Should keep duplicate queue entries", func(t *testing.T) {
		app := f.appUC.All()[0]
		f.reviewUC.Enqueue(ctx, app)
		f.reviewUC.Enqueue(ctx, app)
		assert.Equal(t, 2, f.reviewUC.Pending())
	})

	t.Run("Should list queued applications head to tail", func(t *testing.T) {
		app := f.appUC.All()[0]
		assert.Equal(t, []*domain.Application{app, app}, f.reviewUC.Queued())
		assert.Equal(t, 2, f.appUC.Count())
	})
}

func TestDecisionUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should log every decision even when repeated", func(t *testing.T) {
		f := newFixture(false)
		app := f.appUC.Submit(ctx, "Alice", "J1", "link1")

		require.NoError(t, f.decideUC.Shortlist(ctx, app))
		require.NoError(t, f.decideUC.Shortlist(ctx, app))
		require.NoError(t, f.decideUC.Reject(ctx, app))

		history := f.decideUC.History()
		require.Len(t, history, 3)
		assert.Equal(t, domain.DecisionShortlisted, history[0].Label)
		assert.Equal(t, domain.DecisionShortlisted, history[1].Label)
		assert.Equal(t, domain.DecisionRejected, history[2].Label)
		assert.Equal(t, domain.ApplicationStatusRejected, app.Status)

		last, ok := f.decideUC.Last()
		require.True(t, ok)
		assert.Equal(t, domain.DecisionRejected, last.Label)
		assert.Same(t, app, last.Application)
	})

	t.Run("Should refuse re-decisions in strict mode", func(t *testing.T) {
		f := newFixture(true)
		app := f.appUC.Submit(ctx, "Alice", "J1", "link1")

		require.NoError(t, f.decideUC.Shortlist(ctx, app))
		err := f.decideUC.Reject(ctx, app)

		require.Error(t, err)
		assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
		assert.ErrorIs(t, err, domain.ErrAlreadyDecided)
		assert.Equal(t, domain.ApplicationStatusShortlisted, app.Status)
		assert.Len(t, f.decideUC.History(), 1)
	})

	t.Run("Should allow deciding a staged application in strict mode", func(t *testing.T) {
		f := newFixture(true)
		app := f.appUC.Submit(ctx, "Alice", "J1", "link1")
		f.trackUC.AddStage(ctx, app, "Interview")

		assert.NoError(t, f.decideUC.Reject(ctx, app))
	})

	t.Run("Should decide by the first matching name", func(t *testing.T) {
		f := newFixture(false)
		first := f.appUC.Submit(ctx, "Sam", "J1", "")
		second := f.appUC.Submit(ctx, "Sam", "J2", "")

		app, err := f.decideUC.Decide(ctx, "Sam", "SHORTLIST")
		require.NoError(t, err)
		assert.Same(t, first, app)
		assert.Equal(t, domain.ApplicationStatusShortlisted, first.Status)
		assert.Equal(t, domain.ApplicationStatusSubmitted, second.Status)
	})

	t.Run("Should fail with not found for an unknown name", func(t *testing.T) {
		f := newFixture(false)
		_, err := f.decideUC.Decide(ctx, "nobody", "reject")
		assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
		assert.Empty(t, f.decideUC.History())
	})

	t.Run("Should fail with invalid action for anything but shortlist or reject", func(t *testing.T) {
		f := newFixture(false)
		app := f.appUC.Submit(ctx, "Alice", "J1", "")

		_, err := f.decideUC.Decide(ctx, "Alice", "promote")
		assert.Equal(t, apperror.CodeInvalidAction, apperror.CodeOf(err))
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
		assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
	})
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	a := f.appUC.Submit(ctx, "A", "J1", "")
	b := f.appUC.Submit(ctx, "B", "J2", "")
	c := f.appUC.Submit(ctx, "C", "J1", "")
	require.NoError(t, f.decideUC.Reject(ctx, a))
	require.NoError(t, f.decideUC.Reject(ctx, c))
	require.NoError(t, f.decideUC.Shortlist(ctx, b))

	t.Run("Should return the exact subset in input order", func(t *testing.T) {
		got := f.decideUC.Filter(f.appUC.All(), map[string]string{"status": "Rejected"})
		assert.Equal(t, []*domain.Application{a, c}, got)
	})

	t.Run("Should AND every criteria field", func(t *testing.T) {
		got := f.decideUC.Filter(f.appUC.All(), map[string]string{"status": "Rejected", "name": "C"})
		assert.Equal(t, []*domain.Application{c}, got)
	})

	t.Run("Should match everything with empty criteria", func(t *testing.T) {
		assert.Len(t, f.decideUC.Filter(f.appUC.All(), nil), 3)
	})

	t.Run("Should match nothing on an unknown field", func(t *testing.T) {
		assert.Empty(t, f.decideUC.Filter(f.appUC.All(), map[string]string{"salary": "high"}))
	})
}

var (
	names    = []string{"Alice", "Bob", "Carol"}
	jobIDs   = []string{"J1", "J2", "J3"}
	statuses = []string{"Submitted", "Shortlisted", "Rejected", "Interview", "Offer"}
)

func drawApplications(t *rapid.T) []*domain.Application {
	n := rapid.IntRange(0, 40).Draw(t, "n")
	apps := make([]*domain.Application, n)
	for i := range apps {
		apps[i] = &domain.Application{
			Name:   rapid.SampledFrom(names).Draw(t, fmt.Sprintf("name-%d", i)),
			JobID:  rapid.SampledFrom(jobIDs).Draw(t, fmt.Sprintf("job-%d", i)),
			Status: rapid.SampledFrom(statuses).Draw(t, fmt.Sprintf("status-%d", i)),
		}
	}
	return apps
}

func TestProperty_FilterIsExactAndIdempotent(t *testing.T) {
	uc := usecase.NewDecisionUsecase(memory.NewDecisionRepository(), memory.NewApplicationRepository(), usecase.DecisionOptions{}, nil, nil)

	rapid.Check(t, func(t *rapid.T) {
		apps := drawApplications(t)
		criteria := map[string]string{"status": rapid.SampledFrom(statuses).Draw(t, "status")}

		once := uc.Filter(apps, criteria)
		twice := uc.Filter(once, criteria)
		if len(once) != len(twice) {
			t.Fatalf("filter not idempotent: %d then %d", len(once), len(twice))
		}

		j := 0
		for _, app := range apps {
			if app.Status != criteria["status"] {
				continue
			}
			if j >= len(once) || once[j] != app {
				t.Fatalf("filter result missing or out of order at %d", j)
			}
			j++
		}
		if j != len(once) {
			t.Fatalf("filter returned %d extra records", len(once)-j)
		}
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	a := f.appUC.Submit(ctx, "A", "J1", "l1")
	f.appUC.Submit(ctx, "B", "J2", "l2")
	c := f.appUC.Submit(ctx, "C", "J1", "l3")

	t.Run("Should return all and only matching job ids", func(t *testing.T) {
		assert.Equal(t, []*domain.Application{a, c}, f.searchUC.Search(f.appUC.All(), "job_id", "J1"))
	})

	t.Run("Should return an empty result for an unknown key", func(t *testing.T) {
		got := f.searchUC.Search(f.appUC.All(), "salary", "J1")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should return an empty result when nothing matches", func(t *testing.T) {
		assert.Empty(t, f.searchUC.Search(f.appUC.All(), "name", "Z"))
	})
}

func TestProperty_SearchCompleteness(t *testing.T) {
	uc := usecase.NewSearchUsecase()

	rapid.Check(t, func(t *rapid.T) {
		apps := drawApplications(t)
		jobID := rapid.SampledFrom(jobIDs).Draw(t, "jobID")

		want := 0
		for _, app := range apps {
			if app.JobID == jobID {
				want++
			}
		}
		got := uc.Search(apps, "job_id", jobID)
		if len(got) != want {
			t.Fatalf("search found %d, expected %d", len(got), want)
		}
		for _, app := range got {
			if app.JobID != jobID {
				t.Fatalf("search returned job %s", app.JobID)
			}
		}
	})
}

func TestProperty_ReportSumLaw(t *testing.T) {
	uc := usecase.NewReportUsecase(nil, nil)

	rapid.Check(t, func(t *rapid.T) {
		apps := drawApplications(t)
		report := uc.Generate(context.Background(), apps)

		statusSum := 0
		for _, n := range report.StatusCount {
			statusSum += n
		}
		jobSum := 0
		for _, n := range report.PerJob {
			jobSum += n
		}

		if len(report.StatusCount) != 3 {
			t.Fatalf("status_count has %d buckets", len(report.StatusCount))
		}
		if statusSum > report.Total {
			t.Fatalf("status sum %d exceeds total %d", statusSum, report.Total)
		}
		if statusSum+report.Other != report.Total {
			t.Fatalf("status sum %d + other %d != total %d", statusSum, report.Other, report.Total)
		}
		if jobSum != report.Total {
			t.Fatalf("per-job sum %d != total %d", jobSum, report.Total)
		}
	})
}

func TestTrackAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	alice := f.appUC.Submit(ctx, "Alice", "J1", "")
	f.appUC.Submit(ctx, "Bob", "J2", "")
	require.NoError(t, f.decideUC.Shortlist(ctx, alice))

	entries := f.trackUC.TrackAll(ctx)
	assert.Equal(t, []domain.StageEntry{
		{Name: "Alice", Status: "Shortlisted"},
		{Name: "Bob", Status: "Submitted"},
	}, entries)

	t.Run("Should append on every pass", func(t *testing.T) {
		assert.Len(t, f.trackUC.TrackAll(ctx), 4)
	})
}

func TestReportExport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	alice := f.appUC.Submit(ctx, "Alice", "J1", "link1")
	f.appUC.Submit(ctx, "Bob", "J2", "link2, with comma")
	require.NoError(t, f.decideUC.Shortlist(ctx, alice))

	t.Run("Should export xlsx with summary and application sheets", func(t *testing.T) {
		file, err := f.reportUC.Export(ctx, f.appUC.All(), "XLSX")
		require.NoError(t, err)
		assert.Regexp(t, `^application_report_\d{8}_\d{6}\.xlsx$`, file.Filename)

		x, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer x.Close()

		assert.Equal(t, []string{"Summary", "Applications"}, x.GetSheetList())

		total, err := x.GetCellValue("Summary", "C2")
		require.NoError(t, err)
		assert.Equal(t, "2", total)

		name, err := x.GetCellValue("Applications", "B2")
		require.NoError(t, err)
		assert.Equal(t, "Alice", name)

		status, err := x.GetCellValue("Applications", "E2")
		require.NoError(t, err)
		assert.Equal(t, "Shortlisted", status)
	})

	t.Run("Should default to xlsx", func(t *testing.T) {
		file, err := f.reportUC.Export(ctx, f.appUC.All(), "")
		require.NoError(t, err)
		assert.Contains(t, file.Filename, ".xlsx")
	})

	t.Run("Should export csv rows with quoting", func(t *testing.T) {
		file, err := f.reportUC.Export(ctx, f.appUC.All(), "csv")
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"id", "name", "job_id", "resume_link", "status", "submitted_at"}, rows[0])
		assert.Equal(t, "link2, with comma", rows[2][3])
	})

	t.Run("Should export yaml with the report", func(t *testing.T) {
		file, err := f.reportUC.Export(ctx, f.appUC.All(), "yaml")
		require.NoError(t, err)

		var doc struct {
			Report struct {
				Total       int            `yaml:"total"`
				StatusCount map[string]int `yaml:"status_count"`
				PerJob      map[string]int `yaml:"per_job"`
			} `yaml:"report"`
			Applications []struct {
				Name string `yaml:"name"`
			} `yaml:"applications"`
		}
		require.NoError(t, yaml.Unmarshal(file.Data, &doc))
		assert.Equal(t, 2, doc.Report.Total)
		assert.Equal(t, 1, doc.Report.StatusCount["Shortlisted"])
		assert.Equal(t, 1, doc.Report.PerJob["J2"])
		require.Len(t, doc.Applications, 2)
		assert.Equal(t, "Bob", doc.Applications[1].Name)
	})

	t.Run("Should reject unsupported formats", func(t *testing.T) {
		_, err := f.reportUC.Export(ctx, f.appUC.All(), "pdf")
		assert.Equal(t, apperror.CodeBadRequest, apperror.CodeOf(err))
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func TestAuditTrail(t *testing.T) {
	ctx := audit.WithRequestID(context.Background(), "req-1")
	f := newFixture(false)

	app := f.appUC.Submit(ctx, "Alice", "J1", "link1")
	f.reviewUC.Enqueue(ctx, app)
	_, _ = f.reviewUC.Dequeue(ctx)
	require.NoError(t, f.decideUC.Reject(ctx, app))
	f.trackUC.AddStage(ctx, app, "Archived")

	events := f.auditLog.Events()
	var types []audit.EventType
	for _, e := range events {
		types = append(types, e.Event)
	}
	assert.Equal(t, []audit.EventType{
		audit.EventSubmitted,
		audit.EventEnqueued,
		audit.EventDequeued,
		audit.EventRejected,
		audit.EventStageChanged,
	}, types)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, app.ID, events[0].Subject.ApplicationID)

	assert.Equal(t, len(events), f.observed.Len())
	rejected := f.observed.FilterMessage(string(audit.EventRejected)).All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "Alice", rejected[0].ContextMap()["name"])

	assert.Equal(t, audit.IntegrityIntact, f.auditLog.Verify().Status)
}
