package services

import (
	"testing"

	"questionnaire-backend/internal/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseService_Append(t *testing.T) {
	db := newTestDB(t)
	responses := NewResponseService(db)
	user := createTestUser(t, db, "participant_001")

	require.NoError(t, responses.Append(user.ID, questionnaire.SWLS, 1, 6, "  feel good  "))

	rows, err := responses.ResponsesFor(user.ID, questionnaire.SWLS)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 6, rows[0].Rating)
	assert.Equal(t, "feel good", rows[0].Explanation)
}

func TestResponseService_AppendValidation(t *testing.T) {
	db := newTestDB(t)
	responses := NewResponseService(db)
	user := createTestUser(t, db, "participant_001")

	t.Run("rating outside domain", func(t *testing.T) {
		var badRating *InvalidRatingError
		err := responses.Append(user.ID, questionnaire.PHQ9, 9, 5, "often")
		require.ErrorAs(t, err, &badRating)
		assert.Equal(t, 9, badRating.QuestionNumber)
		assert.Equal(t, 5, badRating.Rating)
	})

	t.Run("question number out of range", func(t *testing.T) {
		var badIndex *InvalidQuestionIndexError
		err := responses.Append(user.ID, questionnaire.SWLS, 6, 4, "fine")
		require.ErrorAs(t, err, &badIndex)
		assert.Equal(t, 6, badIndex.QuestionNumber)

		err = responses.Append(user.ID, questionnaire.SWLS, 0, 4, "fine")
		assert.ErrorAs(t, err, &badIndex)
	})

	t.Run("empty explanation", func(t *testing.T) {
		var emptyExp *EmptyExplanationError
		err := responses.Append(user.ID, questionnaire.SWLS, 2, 4, "   ")
		require.ErrorAs(t, err, &emptyExp)
		assert.Equal(t, 2, emptyExp.QuestionNumber)
	})

	t.Run("unknown questionnaire", func(t *testing.T) {
		err := responses.Append(user.ID, questionnaire.Type("GAD7"), 1, 1, "x")
		assert.ErrorIs(t, err, ErrUnknownQuestionnaire)
	})

	rows, err := responses.ResponsesFor(user.ID, questionnaire.SWLS)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestResponseService_ResponsesForOrdered(t *testing.T) {
	db := newTestDB(t)
	responses := NewResponseService(db)
	user := createTestUser(t, db, "participant_001")

	for _, n := range []int{3, 1, 2} {
		require.NoError(t, responses.Append(user.ID, questionnaire.PHQ9, n, 2, "some days"))
	}

	rows, err := responses.ResponsesFor(user.ID, questionnaire.PHQ9)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.QuestionNumber)
	}
}
