package taxonomy

import (
	"fmt"
	"io"
	"sort"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// auditExampleLimit caps how many offending feed names are printed per
// invalid topic. The full count is always shown.
const auditExampleLimit = 3

// Report is the outcome of a strict-mode catalog audit.
type Report struct {
	VocabularyVersion string
	FeedCount         int
	TopicCount        int
	// Invalid maps each unknown topic to the names of the feeds using it,
	// in catalog order.
	Invalid map[string][]string
}

// Clean reports whether the catalog contains zero invalid topics. It drives
// the audit CLI exit status.
func (r Report) Clean() bool {
	return len(r.Invalid) == 0
}

// Audit runs the validator over every feed in the catalog and aggregates
// drift per invalid topic, so one run reports the whole catalog at once.
func Audit(vocab Vocabulary, feeds []domain.Feed) Report {
	report := Report{
		VocabularyVersion: vocab.Version(),
		FeedCount:         len(feeds),
		Invalid:           map[string][]string{},
	}

	seen := map[string]struct{}{}
	for _, feed := range feeds {
		for _, topic := range feed.Topics {
			seen[topic] = struct{}{}
			if !vocab.Contains(topic) {
				report.Invalid[topic] = append(report.Invalid[topic], feed.Name)
			}
		}
	}
	report.TopicCount = len(seen)

	return report
}

// Render writes the human-readable audit report. Offending feed lists are
// truncated past auditExampleLimit examples with the remainder counted.
func (r Report) Render(w io.Writer) {
	fmt.Fprintf(w, "catalog audit (vocabulary %s)\n", r.VocabularyVersion)
	fmt.Fprintf(w, "  feeds checked:  %d\n", r.FeedCount)
	fmt.Fprintf(w, "  topics in use:  %d\n", r.TopicCount)

	if r.Clean() {
		fmt.Fprintf(w, "  invalid topics: 0\n")
		return
	}

	topics := make([]string, 0, len(r.Invalid))
	for t := range r.Invalid {
		topics = append(topics, t)
	}
	sort.Strings(topics)

	fmt.Fprintf(w, "  invalid topics: %d\n", len(topics))
	for _, topic := range topics {
		feeds := r.Invalid[topic]
		shown := feeds
		if len(shown) > auditExampleLimit {
			shown = shown[:auditExampleLimit]
		}
		fmt.Fprintf(w, "    %q used by %d feed(s):", topic, len(feeds))
		for _, name := range shown {
			fmt.Fprintf(w, " %s", name)
		}
		if len(feeds) > auditExampleLimit {
			fmt.Fprintf(w, " (+%d more)", len(feeds)-auditExampleLimit)
		}
		fmt.Fprintln(w)
	}
}
