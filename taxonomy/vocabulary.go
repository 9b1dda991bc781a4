package taxonomy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// Vocabulary is the closed, versioned set of valid topic tags. It is built
// once from explicit configuration and immutable afterwards, so a single
// value can be shared across request contexts without locking.
type Vocabulary struct {
	version string
	topics  map[string]struct{}
}

func NewVocabulary(version string, topics []string) Vocabulary {
	set := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	return Vocabulary{version: version, topics: set}
}

func (v Vocabulary) Version() string {
	return v.version
}

func (v Vocabulary) Contains(topic string) bool {
	_, ok := v.topics[topic]
	return ok
}

func (v Vocabulary) Size() int {
	return len(v.topics)
}

// Validate checks every entry against the vocabulary. It is a pure check:
// the call site decides whether to reject ingestion or strip offending tags.
// All unknown entries are collected and reported together so a single run
// surfaces every drifted tag at once.
func (v Vocabulary) Validate(topics []string) error {
	var invalid *InvalidTopicError
	for _, t := range topics {
		if v.Contains(t) {
			continue
		}
		if invalid == nil {
			invalid = &InvalidTopicError{Counts: map[string]int{}}
		}
		invalid.Counts[t]++
	}
	if invalid == nil {
		return nil
	}
	return invalid
}

// InvalidTopicError aggregates every unknown topic of a validation pass
// with its occurrence count.
type InvalidTopicError struct {
	Counts map[string]int
}

func (e *InvalidTopicError) Error() string {
	topics := e.Topics()
	parts := make([]string, 0, len(topics))
	for _, t := range topics {
		parts = append(parts, fmt.Sprintf("%s (x%d)", t, e.Counts[t]))
	}
	return fmt.Sprintf("invalid topics: %s", strings.Join(parts, ", "))
}

// Topics returns the offending tags in deterministic order.
func (e *InvalidTopicError) Topics() []string {
	topics := make([]string, 0, len(e.Counts))
	for t := range e.Counts {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

func (e *InvalidTopicError) Is(target error) bool {
	_, ok := target.(*InvalidTopicError)
	return ok
}

// ErrInvalidTopic is the sentinel for errors.Is matching.
var ErrInvalidTopic = &InvalidTopicError{}

type vocabularyFile struct {
	Version string   `yaml:"version"`
	Topics  []string `yaml:"topics"`
}

// LoadVocabularyFile reads a versioned topic vocabulary from a YAML file.
func LoadVocabularyFile(path string) (Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Vocabulary{}, errors.Wrap(err, "failed to open vocabulary file")
	}
	defer file.Close()

	var vf vocabularyFile
	err = yaml.NewDecoder(file).Decode(&vf)
	if err != nil {
		return Vocabulary{}, errors.Wrap(err, "failed to decode vocabulary file")
	}
	if vf.Version == "" {
		return Vocabulary{}, fmt.Errorf("vocabulary file %s has no version", path)
	}

	return NewVocabulary(vf.Version, vf.Topics), nil
}

type catalogFile struct {
	Feeds []catalogFeed `yaml:"feeds"`
}

type catalogFeed struct {
	Name       string   `yaml:"name"`
	URL        string   `yaml:"url"`
	SourceType string   `yaml:"sourceType"`
	Category   string   `yaml:"category"`
	Topics     []string `yaml:"topics"`
	IsApproved bool     `yaml:"isApproved"`
}

// LoadCatalogFile reads the feed catalog from a YAML file.
func LoadCatalogFile(path string) ([]domain.Feed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog file")
	}
	defer file.Close()

	var cf catalogFile
	err = yaml.NewDecoder(file).Decode(&cf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog file")
	}

	feeds := make([]domain.Feed, 0, len(cf.Feeds))
	for _, f := range cf.Feeds {
		feeds = append(feeds, domain.Feed{
			Name:       f.Name,
			URL:        f.URL,
			SourceType: domain.SourceType(f.SourceType),
			Category:   f.Category,
			Topics:     f.Topics,
			IsApproved: f.IsApproved,
		})
	}
	return feeds, nil
}
