package catalog

import (
	"slices"
	"strings"
)

// PassingScore is the fixed threshold above which a topic counts as
// completed and a level can be passed.
const PassingScore = 80

// Level describes one OPIC proficiency tier with its content lists.
// All fields are static data; lookups return copies.
type Level struct {
	Code                 string
	Name                 string
	Description          string
	PassingScore         int
	Color                string
	Topics               []string
	GrammarFocus         []string
	VocabularyThemes     []string
	CulturalContexts     []string
	SpeakingTasks        []string
	DifficultyIndicators []string
}

// TopicMatch is one result of a topic search.
type TopicMatch struct {
	Level string
	Topic string
}

// Stats summarizes the catalog.
type Stats struct {
	Levels          int
	Topics          int
	GrammarPoints   int
	TopicsPerLevel  int
	GrammarPerLevel int
}

// ProgressionEntry describes one step of the difficulty progression.
type ProgressionEntry struct {
	Code                 string
	Name                 string
	Description          string
	DifficultyIndicators []string
	TopicCount           int
	GrammarCount         int
}

// table holds the level data with precomputed indices.
type table struct {
	order      []string
	byCode     map[string]*Level
	topicLevel map[string]string
}

// t is the package-level table singleton, built by init().
var t *table

func init() {
	levels := allLevels()
	t = &table{
		order:      []string{"IM1", "IM2", "IM3", "IH", "AL", "AM", "AH"},
		byCode:     make(map[string]*Level, len(levels)),
		topicLevel: make(map[string]string),
	}
	for i := range levels {
		t.byCode[levels[i].Code] = &levels[i]
		for _, topic := range levels[i].Topics {
			t.topicLevel[topic] = levels[i].Code
		}
	}
}

// Get returns the level for code, or false for an unrecognized code.
func Get(code string) (Level, bool) {
	lvl, ok := t.byCode[code]
	if !ok {
		return Level{}, false
	}
	return clone(lvl), true
}

// IsValid reports whether code names a known level.
func IsValid(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Order returns the seven level codes in progression order.
func Order() []string {
	return slices.Clone(t.order)
}

// All returns every level in progression order.
func All() []Level {
	out := make([]Level, 0, len(t.order))
	for _, code := range t.order {
		out = append(out, clone(t.byCode[code]))
	}
	return out
}

// Next returns the level after code in the progression, or false if
// code is the last level or unknown.
func Next(code string) (string, bool) {
	i := slices.Index(t.order, code)
	if i < 0 || i >= len(t.order)-1 {
		return "", false
	}
	return t.order[i+1], true
}

// Previous returns the level before code in the progression, or false
// if code is the first level or unknown.
func Previous(code string) (string, bool) {
	i := slices.Index(t.order, code)
	if i <= 0 {
		return "", false
	}
	return t.order[i-1], true
}

// Topics returns the topic list for code, or nil for an unknown code.
func Topics(code string) []string {
	lvl, ok := t.byCode[code]
	if !ok {
		return nil
	}
	return slices.Clone(lvl.Topics)
}

// GrammarFocus returns the grammar-focus list for code, or nil for an
// unknown code.
func GrammarFocus(code string) []string {
	lvl, ok := t.byCode[code]
	if !ok {
		return nil
	}
	return slices.Clone(lvl.GrammarFocus)
}

// HasTopic reports whether topic belongs to the given level.
func HasTopic(code, topic string) bool {
	lvl, ok := t.byCode[code]
	if !ok {
		return false
	}
	return slices.Contains(lvl.Topics, topic)
}

// TopicLevel returns the level code a topic belongs to.
func TopicLevel(topic string) (string, bool) {
	code, ok := t.topicLevel[topic]
	return code, ok
}

// SearchTopics returns all (level, topic) pairs whose topic contains
// term, case-insensitively, in progression order.
func SearchTopics(term string) []TopicMatch {
	term = strings.ToLower(term)
	var out []TopicMatch
	for _, code := range t.order {
		for _, topic := range t.byCode[code].Topics {
			if strings.Contains(strings.ToLower(topic), term) {
				out = append(out, TopicMatch{Level: code, Topic: topic})
			}
		}
	}
	return out
}

// Statistics returns aggregate counts over the catalog.
func Statistics() Stats {
	s := Stats{Levels: len(t.order)}
	for _, lvl := range t.byCode {
		s.Topics += len(lvl.Topics)
		s.GrammarPoints += len(lvl.GrammarFocus)
	}
	s.TopicsPerLevel = s.Topics / s.Levels
	s.GrammarPerLevel = s.GrammarPoints / s.Levels
	return s
}

// DifficultyProgression returns one entry per level in progression order.
func DifficultyProgression() []ProgressionEntry {
	out := make([]ProgressionEntry, 0, len(t.order))
	for _, code := range t.order {
		lvl := t.byCode[code]
		out = append(out, ProgressionEntry{
			Code:                 lvl.Code,
			Name:                 lvl.Name,
			Description:          lvl.Description,
			DifficultyIndicators: slices.Clone(lvl.DifficultyIndicators),
			TopicCount:           len(lvl.Topics),
			GrammarCount:         len(lvl.GrammarFocus),
		})
	}
	return out
}

func clone(lvl *Level) Level {
	out := *lvl
	out.Topics = slices.Clone(lvl.Topics)
	out.GrammarFocus = slices.Clone(lvl.GrammarFocus)
	out.VocabularyThemes = slices.Clone(lvl.VocabularyThemes)
	out.CulturalContexts = slices.Clone(lvl.CulturalContexts)
	out.SpeakingTasks = slices.Clone(lvl.SpeakingTasks)
	out.DifficultyIndicators = slices.Clone(lvl.DifficultyIndicators)
	return out
}
