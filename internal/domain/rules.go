package domain

import (
	"fmt"
	"strings"
)

// ValidateQuestionTags runs every tagging rule against one record and returns
// the findings in check order. An empty result means the record passes.
// seq is nil when sequence numbering is disabled.
func ValidateQuestionTags(record QuestionRecord, optional OptionalTagConfig, tagSets TagSets, seq *SequenceContext, policy RulePolicy) []Issue {
	var issues []Issue
	tags := record.SortedTags()

	missing := func(format string, args ...interface{}) {
		issues = append(issues, Issue{Kind: IssueMissing, Message: "Missing: " + fmt.Sprintf(format, args...)})
	}
	invalid := func(message string) {
		issues = append(issues, Issue{Kind: IssueInvalid, Message: message})
	}
	found := func(tag string) {
		issues = append(issues, Issue{Kind: IssueFoundOptional, Message: "Found Optional: " + tag})
	}

	for _, tag := range CommonRequiredTags {
		if !record.HasTag(tag) {
			missing("%s", tag)
		}
	}
	if !hasAny(record, DifficultyTags) {
		missing("One of %s", strings.Join(DifficultyTags, ", "))
	}
	if firstWithPrefix(tags, PrefixSource) == "" {
		missing("SOURCE_* tag")
	}
	if !record.HasTag(record.QuestionID) {
		missing("Question ID tag (%s)", record.QuestionID)
	}

	switch {
	case policy.IsPublic(record.ModuleType):
		if !record.HasTag(TagIsPublic) {
			missing("%s", TagIsPublic)
		}
		if record.HasTag(TagIsPrivate) {
			invalid(fmt.Sprintf("Invalid: %s (should not be on this type)", TagIsPrivate))
		}
	case policy.IsCoding(record.ModuleType):
		if !record.HasTag(TagIsPrivate) {
			missing("%s", TagIsPrivate)
		}
		if record.HasTag(TagIsPublic) {
			invalid(fmt.Sprintf("Invalid: %s (should not be on this type)", TagIsPublic))
		}
	}

	for _, tag := range tags {
		if strings.HasPrefix(tag, PrefixTopic) && !tagSets.HasTopic(tag) {
			invalid("Invalid TOPIC_ tag: " + tag)
		}
		if strings.HasPrefix(tag, PrefixSubTopic) && !tagSets.HasSubTopic(tag) {
			invalid("Invalid SUB_TOPIC_ tag: " + tag)
		}
	}

	if optional.CourseTag != "" && !record.HasTag(optional.CourseTag) {
		missing("%s", optional.CourseTag)
	}
	if optional.ModuleTag != "" && !record.HasTag(optional.ModuleTag) {
		missing("%s", optional.ModuleTag)
	}
	if len(optional.UnitTags) > 0 && !hasAny(record, optional.UnitTags) {
		missing("One of %s", strings.Join(optional.UnitTags, ", "))
	}
	if optional.CompanyTag != "" && !record.HasTag(optional.CompanyTag) {
		missing("%s", optional.CompanyTag)
	}

	if optional.CourseTag == "" {
		if tag := firstWithPrefix(tags, PrefixCourse); tag != "" {
			found(tag)
		}
	}
	if optional.ModuleTag == "" {
		if tag := firstWithPrefix(tags, PrefixModule); tag != "" {
			found(tag)
		}
	}
	if len(optional.UnitTags) == 0 {
		for _, tag := range tags {
			if strings.HasPrefix(tag, PrefixUnit) {
				found(tag)
			}
		}
	}
	if optional.CompanyTag == "" {
		if tag := firstWithPrefix(tags, PrefixCompany); tag != "" {
			found(tag)
		}
	}

	if seq != nil {
		if !record.HasTag(seq.ExpectedQuestionTag) {
			missing("%s (based on anchor ID %s)", seq.ExpectedQuestionTag, seq.AnchorQuestionID)
		}
		if !record.HasTag(seq.ExpectedSetTag) {
			missing("%s (position %d in set)", seq.ExpectedSetTag, seq.PositionInSet)
		}
	}

	return issues
}

func hasAny(record QuestionRecord, tags []string) bool {
	for _, t := range tags {
		if record.HasTag(t) {
			return true
		}
	}
	return false
}

// firstWithPrefix returns the first tag in sorted with the given prefix, or "".
func firstWithPrefix(sorted []string, prefix string) string {
	for _, t := range sorted {
		if strings.HasPrefix(t, prefix) {
			return t
		}
	}
	return ""
}
