package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBatch(n int) []QuestionRecord {
	batch := make([]QuestionRecord, n)
	for i := range batch {
		batch[i] = NewQuestionRecord(fmt.Sprintf("%08d-aaaa-4bbb-8ccc-dddddddddddd", i), ModuleMCQ)
	}
	return batch
}

func TestResolveSequence(t *testing.T) {
	batch := makeBatch(7)

	seq, ok := ResolveSequence(batch, 4, 3)
	require.True(t, ok)
	assert.Equal(t, 3, seq.AnchorIndex)
	assert.Equal(t, batch[3].QuestionID, seq.AnchorQuestionID)
	assert.Equal(t, "QUESTION_00000003", seq.ExpectedQuestionTag)
	assert.Equal(t, "SET_2", seq.ExpectedSetTag)
	assert.Equal(t, 2, seq.PositionInSet)
}

func TestResolveSequence_Groups(t *testing.T) {
	batch := makeBatch(7)

	tests := []struct {
		index      int
		wantAnchor int
		wantSet    string
	}{
		{0, 0, "SET_1"},
		{1, 0, "SET_2"},
		{2, 0, "SET_3"},
		{3, 3, "SET_1"},
		{5, 3, "SET_3"},
		{6, 6, "SET_1"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("index %d", tt.index), func(t *testing.T) {
			seq, ok := ResolveSequence(batch, tt.index, 3)
			require.True(t, ok)
			assert.Equal(t, tt.wantAnchor, seq.AnchorIndex)
			assert.Equal(t, tt.wantSet, seq.ExpectedSetTag)
		})
	}
}

func TestResolveSequence_Disabled(t *testing.T) {
	batch := makeBatch(3)

	_, ok := ResolveSequence(batch, 1, 0)
	assert.False(t, ok)
	_, ok = ResolveSequence(batch, 1, -2)
	assert.False(t, ok)
}

func TestResolveSequence_AnchorOutsideBatch(t *testing.T) {
	batch := makeBatch(3)

	_, ok := ResolveSequence(batch, 4, 2)
	assert.False(t, ok)
	_, ok = ResolveSequence(nil, 0, 1)
	assert.False(t, ok)
	_, ok = ResolveSequence(batch, -1, 2)
	assert.False(t, ok)
}

func TestResolveSequence_ShortAnchorID(t *testing.T) {
	batch := []QuestionRecord{NewQuestionRecord("abc", ModuleMCQ)}

	seq, ok := ResolveSequence(batch, 0, 5)
	require.True(t, ok)
	assert.Equal(t, "QUESTION_abc", seq.ExpectedQuestionTag)
	assert.Equal(t, "SET_1", seq.ExpectedSetTag)
}

func TestResolveSequence_MultibyteAnchorID(t *testing.T) {
	tests := []struct {
		name     string
		anchorID string
		want     string
	}{
		{"longer than eight characters", "ÄÖÜäöüßéXYZ", "QUESTION_ÄÖÜäöüßé"},
		{"rune straddling byte eight", "abcdefg日本", "QUESTION_abcdefg日"},
		{"exactly eight characters", "日本語のテスト問", "QUESTION_日本語のテスト問"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := []QuestionRecord{NewQuestionRecord(tt.anchorID, ModuleMCQ)}

			seq, ok := ResolveSequence(batch, 0, 1)
			require.True(t, ok)
			assert.Equal(t, tt.want, seq.ExpectedQuestionTag)
			assert.Equal(t, tt.anchorID, seq.AnchorQuestionID)
		})
	}
}

func TestResolveSequence_Deterministic(t *testing.T) {
	batch := makeBatch(10)
	for i := range batch {
		first, ok1 := ResolveSequence(batch, i, 4)
		second, ok2 := ResolveSequence(batch, i, 4)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, first, second)
	}
}
