package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteHasNoOwnerUntilAssigned(t *testing.T) {
	n := NewNote(NoteDraft{Title: "T", Content: "B"})
	assert.Zero(t, n.ID)
	assert.Zero(t, n.UserID)
	assert.False(t, n.OwnedBy(0))

	n.AssignOwner(42)
	assert.Equal(t, int64(42), n.UserID)
	assert.True(t, n.OwnedBy(42))
	assert.False(t, n.OwnedBy(7))
	assert.Equal(t, "T", n.Title)
	assert.Equal(t, "B", n.Content)
}

func TestNoteDraftValidate(t *testing.T) {
	require.NoError(t, NoteDraft{Title: "ok"}.Validate())
	require.NoError(t, NoteDraft{Title: strings.Repeat("ы", 200)}.Validate())

	cases := map[string]struct {
		draft NoteDraft
		field string
	}{
		"empty title":  {NoteDraft{}, "title"},
		"blank title":  {NoteDraft{Title: "   "}, "title"},
		"long title":   {NoteDraft{Title: strings.Repeat("a", 201)}, "title"},
		"long content": {NoteDraft{Title: "t", Content: strings.Repeat("a", 10001)}, "content"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.draft.Validate()

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tc.field)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NoteDraft{Title: strings.Repeat("a", 201)}.Validate()
	require.Error(t, err)
	assert.Equal(t,
		"validation failed: title: Ensure this value has at most 200 characters (it has 201).",
		err.Error(),
	)
}

func TestCredentialsValidate(t *testing.T) {
	require.NoError(t, Credentials{Username: "alice", Password: "pw"}.Validate())

	var verr *ValidationError
	require.ErrorAs(t, Credentials{}.Validate(), &verr)
	assert.Equal(t, "This field is required.", verr.Fields["username"])
	assert.Equal(t, "This field is required.", verr.Fields["password"])
}
