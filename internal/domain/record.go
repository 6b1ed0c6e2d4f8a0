package domain

import (
	"fmt"
	"sort"
)

// QuestionRecord is one extracted question. Records are immutable once built.
type QuestionRecord struct {
	QuestionID string
	Tags       map[string]struct{}
	ModuleType ModuleType
	// Source names the file the record came from; used for reporting only.
	Source string
}

// NewQuestionRecord builds a record from a tag list, dropping duplicates.
func NewQuestionRecord(questionID string, moduleType ModuleType, tags ...string) QuestionRecord {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return QuestionRecord{QuestionID: questionID, Tags: set, ModuleType: moduleType}
}

// HasTag reports whether tag is in the record's tag set.
func (r QuestionRecord) HasTag(tag string) bool {
	_, ok := r.Tags[tag]
	return ok
}

// SortedTags returns the tag set in lexicographic order.
func (r QuestionRecord) SortedTags() []string {
	tags := make([]string, 0, len(r.Tags))
	for t := range r.Tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// OptionalTagConfig lists the optional tags a run expects. Empty fields mean
// "not configured", in which case any tag with that prefix is reported.
type OptionalTagConfig struct {
	CourseTag  string
	ModuleTag  string
	UnitTags   []string
	CompanyTag string
}

// MaxUnitTags is the number of unit tags a run can be configured with.
const MaxUnitTags = 2

// OptionalTagConfigFromNames formats raw names into canonical tags.
// Blank names are dropped.
func OptionalTagConfigFromNames(course, module string, units []string, company string) OptionalTagConfig {
	cfg := OptionalTagConfig{
		CourseTag:  FormatTagName(course, PrefixCourse),
		ModuleTag:  FormatTagName(module, PrefixModule),
		CompanyTag: FormatTagName(company, PrefixCompany),
	}
	for _, u := range units {
		if tag := FormatTagName(u, PrefixUnit); tag != "" {
			cfg.UnitTags = append(cfg.UnitTags, tag)
		}
	}
	return cfg
}

// Validate checks structural limits of the configuration.
func (c OptionalTagConfig) Validate() error {
	if len(c.UnitTags) > MaxUnitTags {
		return NewInvalidInputError(fmt.Sprintf("at most %d unit tags can be configured, got %d", MaxUnitTags, len(c.UnitTags)))
	}
	return nil
}

// IssueKind classifies an Issue.
type IssueKind string

const (
	IssueMissing       IssueKind = "Missing"
	IssueInvalid       IssueKind = "Invalid"
	IssueFoundOptional IssueKind = "Found Optional"
)

// Issue is a single finding against a record.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// String renders the issue as shown in reports, e.g. "Missing: NIAT".
func (i Issue) String() string {
	return i.Message
}

// TagSets holds the valid topic and sub-topic tags of one catalog key.
type TagSets struct {
	Topics    map[string]struct{}
	SubTopics map[string]struct{}
}

// HasTopic reports whether tag is a valid topic tag.
func (s TagSets) HasTopic(tag string) bool {
	_, ok := s.Topics[tag]
	return ok
}

// HasSubTopic reports whether tag is a valid sub-topic tag.
func (s TagSets) HasSubTopic(tag string) bool {
	_, ok := s.SubTopics[tag]
	return ok
}

// ReferenceCatalog maps catalog keys to their valid tag sets.
type ReferenceCatalog map[string]TagSets

// Lookup returns the tag sets for a module type; unknown types get empty sets.
func (c ReferenceCatalog) Lookup(m ModuleType) TagSets {
	key, ok := CatalogKeyFor(m)
	if !ok {
		return TagSets{}
	}
	return c[key]
}
