package taxonomy

import (
	"errors"
	"strings"
	"testing"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

func TestValidateAllKnown(t *testing.T) {
	vocab := NewVocabulary("v1", []string{"genomics", "neuroscience", "immunology"})

	if err := vocab.Validate([]string{"genomics", "immunology"}); err != nil {
		t.Fatalf("expected valid topics to pass: %v", err)
	}
	if err := vocab.Validate(nil); err != nil {
		t.Fatalf("empty topic set must pass: %v", err)
	}
}

func TestValidateAggregatesEveryInvalidTopic(t *testing.T) {
	vocab := NewVocabulary("v1", []string{"genomics"})

	err := vocab.Validate([]string{"genomics", "astrology", "phrenology", "astrology"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	var invalid *InvalidTopicError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTopicError, got %T", err)
	}
	if !errors.Is(err, ErrInvalidTopic) {
		t.Fatalf("expected errors.Is match on ErrInvalidTopic")
	}

	if len(invalid.Counts) != 2 {
		t.Fatalf("expected exactly 2 invalid topics, got %d", len(invalid.Counts))
	}
	if invalid.Counts["astrology"] != 2 {
		t.Fatalf("expected astrology counted twice, got %d", invalid.Counts["astrology"])
	}
	if invalid.Counts["phrenology"] != 1 {
		t.Fatalf("expected phrenology counted once, got %d", invalid.Counts["phrenology"])
	}

	msg := invalid.Error()
	if !strings.Contains(msg, "astrology (x2)") || !strings.Contains(msg, "phrenology (x1)") {
		t.Fatalf("error message should list every offending tag with count: %s", msg)
	}
}

func TestAuditReportsDriftPerTopic(t *testing.T) {
	vocab := NewVocabulary("v1", []string{"genomics"})
	feeds := []domain.Feed{
		{Name: "A", Topics: []string{"genomics"}},
		{Name: "B", Topics: []string{"genomics", "not-a-topic"}},
	}

	report := Audit(vocab, feeds)

	if report.Clean() {
		t.Fatalf("expected dirty report")
	}
	if len(report.Invalid) != 1 {
		t.Fatalf("expected exactly 1 invalid topic, got %d", len(report.Invalid))
	}
	users := report.Invalid["not-a-topic"]
	if len(users) != 1 || users[0] != "B" {
		t.Fatalf("expected not-a-topic attributed to feed B, got %v", users)
	}
	if report.FeedCount != 2 {
		t.Fatalf("expected 2 feeds checked, got %d", report.FeedCount)
	}
}

func TestAuditCleanCatalog(t *testing.T) {
	vocab := NewVocabulary("v1", []string{"genomics", "neuroscience"})
	feeds := []domain.Feed{
		{Name: "A", Topics: []string{"genomics"}},
		{Name: "B", Topics: []string{"neuroscience", "genomics"}},
	}

	report := Audit(vocab, feeds)
	if !report.Clean() {
		t.Fatalf("expected clean report, got %v", report.Invalid)
	}
	if report.TopicCount != 2 {
		t.Fatalf("expected 2 topics in use, got %d", report.TopicCount)
	}
}

func TestRenderTruncatesExamplesKeepsCount(t *testing.T) {
	vocab := NewVocabulary("v1", []string{"genomics"})
	feeds := []domain.Feed{
		{Name: "F1", Topics: []string{"drifted"}},
		{Name: "F2", Topics: []string{"drifted"}},
		{Name: "F3", Topics: []string{"drifted"}},
		{Name: "F4", Topics: []string{"drifted"}},
		{Name: "F5", Topics: []string{"drifted"}},
	}

	report := Audit(vocab, feeds)

	var buf strings.Builder
	report.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "used by 5 feed(s)") {
		t.Fatalf("full count must be shown: %s", out)
	}
	if !strings.Contains(out, "(+2 more)") {
		t.Fatalf("examples past %d must be truncated: %s", auditExampleLimit, out)
	}
	if strings.Contains(out, "F4") || strings.Contains(out, "F5") {
		t.Fatalf("truncated feeds should not be listed: %s", out)
	}
}
