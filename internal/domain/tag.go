package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Required and well-known tag names.
const (
	TagNIAT          = "NIAT"
	TagInOfflineExam = "IN_OFFLINE_EXAM"
	TagPool1         = "POOL_1"
	TagIsPublic      = "IS_PUBLIC"
	TagIsPrivate     = "IS_PRIVATE"

	TagDifficultyEasy   = "DIFFICULTY_EASY"
	TagDifficultyMedium = "DIFFICULTY_MEDIUM"
	TagDifficultyHard   = "DIFFICULTY_HARD"
)

// Tag prefixes.
const (
	PrefixCourse     = "COURSE_"
	PrefixModule     = "MODULE_"
	PrefixUnit       = "UNIT_"
	PrefixSource     = "SOURCE_"
	PrefixDifficulty = "DIFFICULTY_"
	PrefixTopic      = "TOPIC_"
	PrefixSubTopic   = "SUB_TOPIC_"
	PrefixCompany    = "COMPANY_"
	PrefixQuestion   = "QUESTION_"
	PrefixSet        = "SET_"
)

var (
	// CommonRequiredTags must be present on every question.
	CommonRequiredTags = []string{TagNIAT, TagInOfflineExam, TagPool1}

	// DifficultyTags lists the accepted difficulty tags; exactly one is expected.
	DifficultyTags = []string{TagDifficultyEasy, TagDifficultyMedium, TagDifficultyHard}

	knownSingleTags = map[string]struct{}{
		TagNIAT:          {},
		TagPool1:         {},
		TagInOfflineExam: {},
		TagIsPublic:      {},
		TagIsPrivate:     {},
	}

	knownPrefixes = []string{
		PrefixCourse, PrefixModule, PrefixUnit, PrefixSource, PrefixDifficulty,
		PrefixTopic, PrefixSubTopic, PrefixCompany, PrefixQuestion, PrefixSet,
	}

	// noiseTags are literal/type values that show up in tag columns but are not tags.
	noiseTags = map[string]struct{}{
		"MULTIPLE_CHOICE": {},
		"ENGLISH":         {},
		"MARKDOWN":        {},
		"TEXT":            {},
		"TRUE":            {},
		"FALSE":           {},
	}

	nonTagChars   = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// IsValidTag reports whether raw is a meaningful tag. owningQuestionID is the
// identifier of the question the string was found on; pass "" when unknown.
// A UUID-shaped string is only a tag when it is the owning question's own ID.
func IsValidTag(raw string, owningQuestionID string) bool {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return false
	}
	if _, noise := noiseTags[strings.ToUpper(tag)]; noise {
		return false
	}
	if isDigits(tag) {
		return false
	}
	if IsCanonicalUUID(tag) {
		return owningQuestionID != "" && tag == owningQuestionID
	}
	if strings.Contains(tag, "_") {
		return true
	}
	if _, ok := knownSingleTags[tag]; ok {
		return true
	}
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}

// IsCanonicalUUID reports whether s is a hyphenated 36-character UUID of
// version 1 through 5 with the RFC 4122 variant.
func IsCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if v := id.Version(); v < 1 || v > 5 {
		return false
	}
	return id.Variant() == uuid.RFC4122
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatTagName turns free text such as "Nested Conditions" into a canonical
// tag like "UNIT_NESTED_CONDITIONS". It returns "" when nothing usable remains.
func FormatTagName(input, prefix string) string {
	body := strings.TrimSpace(input)
	if body == "" {
		return ""
	}
	body = strings.TrimPrefix(body, prefix)
	body = nonTagChars.ReplaceAllString(body, "_")
	body = underscoreRun.ReplaceAllString(body, "_")
	body = strings.Trim(body, "_")
	if body == "" {
		return ""
	}
	return prefix + strings.ToUpper(body)
}
