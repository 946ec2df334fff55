package questionbank

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"sat-prep/internal/domain"

	"go.uber.org/zap"
)

//go:embed data/opensat_sample.json
var bundled embed.FS

const bundledDatasetPath = "data/opensat_sample.json"

// rawQuestion mirrors a dataset record
type rawQuestion struct {
	ID         string `json:"id"`
	Domain     string `json:"domain"`
	Difficulty string `json:"difficulty"`
	Question   struct {
		Question      string         `json:"question"`
		Choices       domain.Choices `json:"choices"`
		Explanation   string         `json:"explanation"`
		CorrectAnswer string         `json:"correct_answer"`
	} `json:"question"`
}

func (r *rawQuestion) toDomain(section domain.Section) *domain.Question {
	return &domain.Question{
		ID:            strings.TrimSpace(r.ID),
		Section:       section,
		Domain:        r.Domain,
		Difficulty:    r.Difficulty,
		Prompt:        r.Question.Question,
		Choices:       r.Question.Choices,
		Explanation:   r.Question.Explanation,
		CorrectAnswer: r.Question.CorrectAnswer,
	}
}

// Exclusion records a dataset entry that was dropped at load time
type Exclusion struct {
	Section domain.Section
	Index   int
	ID      string
	Reason  string
}

// LoadReport summarizes what a load kept and dropped
type LoadReport struct {
	Loaded          map[domain.Section]int
	Excluded        []Exclusion
	MissingSections []domain.Section
	UnknownKeys     []string
}

// Total returns the number of questions kept across all sections
func (r *LoadReport) Total() int {
	total := 0
	for _, n := range r.Loaded {
		total += n
	}
	return total
}

// LoadBundled builds a bank from the dataset compiled into the binary
func LoadBundled(log *zap.Logger, opts ...Option) (*Bank, *LoadReport, error) {
	data, err := bundled.ReadFile(bundledDatasetPath)
	if err != nil {
		return nil, nil, domain.NewDatasetError("failed to read bundled dataset", err)
	}
	return Load(data, log, opts...)
}

// LoadFile builds a bank from a dataset on disk
func LoadFile(path string, log *zap.Logger, opts ...Option) (*Bank, *LoadReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, domain.NewDatasetError(fmt.Sprintf("failed to read dataset %s", path), err)
	}
	return Load(data, log, opts...)
}

// Open loads the dataset at path, or the bundled dataset when path is empty
func Open(path string, log *zap.Logger, opts ...Option) (*Bank, *LoadReport, error) {
	if path == "" {
		return LoadBundled(log, opts...)
	}
	return LoadFile(path, log, opts...)
}

// Load parses a dataset document keyed by section name. Records that fail
// validation are logged and left out; a missing section loads as empty.
// Only a document that is not a JSON object is an error.
func Load(data []byte, log *zap.Logger, opts ...Option) (*Bank, *LoadReport, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, domain.NewDatasetError("dataset is not a JSON object keyed by section", err)
	}

	report := &LoadReport{Loaded: make(map[domain.Section]int)}
	for key := range doc {
		if !domain.Section(key).Valid() {
			report.UnknownKeys = append(report.UnknownKeys, key)
			log.Warn("Ignoring unknown dataset section", zap.String("key", key))
		}
	}
	slices.Sort(report.UnknownKeys)

	sections := make(map[domain.Section][]*domain.Question, len(domain.AllSections))
	for _, section := range domain.AllSections {
		raw, ok := doc[string(section)]
		if !ok || string(raw) == "null" {
			report.MissingSections = append(report.MissingSections, section)
			log.Info("Dataset has no entries for section", zap.String("section", string(section)))
			continue
		}

		var records []json.RawMessage
		if err := json.Unmarshal(raw, &records); err != nil {
			report.MissingSections = append(report.MissingSections, section)
			log.Warn("Dataset section is not an array, treating as empty",
				zap.String("section", string(section)),
				zap.Error(err))
			continue
		}

		questions := loadSection(section, records, report, log)
		sections[section] = questions
		report.Loaded[section] = len(questions)
	}

	log.Info("Question bank loaded",
		zap.Int("total", report.Total()),
		zap.Int("excluded", len(report.Excluded)),
		zap.Any("per_section", report.Loaded))

	return NewBank(sections, opts...), report, nil
}

func loadSection(section domain.Section, records []json.RawMessage, report *LoadReport, log *zap.Logger) []*domain.Question {
	questions := make([]*domain.Question, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	exclude := func(index int, id, reason string) {
		report.Excluded = append(report.Excluded, Exclusion{Section: section, Index: index, ID: id, Reason: reason})
		log.Warn("Excluding malformed question",
			zap.String("section", string(section)),
			zap.Int("index", index),
			zap.String("id", id),
			zap.String("reason", reason))
	}

	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			exclude(i, peekID(rec), err.Error())
			continue
		}

		var rq rawQuestion
		if err := json.Unmarshal(rec, &rq); err != nil {
			exclude(i, peekID(rec), err.Error())
			continue
		}

		q := rq.toDomain(section)
		if err := q.Validate(); err != nil {
			exclude(i, q.ID, err.Error())
			continue
		}
		if _, dup := seen[q.ID]; dup {
			exclude(i, q.ID, "duplicate id within section")
			continue
		}
		seen[q.ID] = struct{}{}
		questions = append(questions, q)
	}
	return questions
}

// peekID extracts the id of a record that failed to decode, for reporting
func peekID(rec json.RawMessage) string {
	var head struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(rec, &head); err != nil || head.ID == nil {
		return ""
	}
	return fmt.Sprint(head.ID)
}
