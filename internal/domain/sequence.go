package domain

import "strconv"

// anchorIDLength is how many characters of the anchor question ID go into its
// QUESTION_ tag.
const anchorIDLength = 8

// SequenceContext is the expected QUESTION_/SET_ numbering of one record in a
// batch split into groups of fixed size.
type SequenceContext struct {
	AnchorIndex         int
	AnchorQuestionID    string
	PositionInSet       int
	ExpectedQuestionTag string
	ExpectedSetTag      string
}

// ResolveSequence computes the numbering expected for batch[index] when the
// batch is grouped into sets of n. It returns false when numbering is disabled
// (n <= 0) or the anchor falls outside the batch.
func ResolveSequence(batch []QuestionRecord, index, n int) (SequenceContext, bool) {
	if n <= 0 || index < 0 {
		return SequenceContext{}, false
	}
	anchor := (index / n) * n
	if anchor >= len(batch) {
		return SequenceContext{}, false
	}

	anchorID := batch[anchor].QuestionID
	short := anchorID
	if r := []rune(anchorID); len(r) > anchorIDLength {
		short = string(r[:anchorIDLength])
	}
	position := index%n + 1

	return SequenceContext{
		AnchorIndex:         anchor,
		AnchorQuestionID:    anchorID,
		PositionInSet:       position,
		ExpectedQuestionTag: PrefixQuestion + short,
		ExpectedSetTag:      PrefixSet + strconv.Itoa(position),
	}, true
}
