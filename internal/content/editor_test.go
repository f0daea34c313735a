package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorCreateMode(t *testing.T) {
	e := OpenEditor(0)
	assert.Equal(t, ModeCreate, e.Mode())
	assert.Equal(t, EditorOpen, e.State())

	created := false
	err := e.Submit(func() error { created = true; return nil }, func(uint) error {
		t.Fatal("update must not run in create mode")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, EditorClosed, e.State())
}

func TestEditorFailureStaysOpen(t *testing.T) {
	e := OpenEditor(7)
	assert.Equal(t, ModeEdit, e.Mode())

	boom := Invalid("title", "title is required")
	var gotID uint
	err := e.Submit(func() error { return nil }, func(id uint) error { gotID = id; return boom })
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, uint(7), gotID)
	assert.Equal(t, EditorOpen, e.State())
	assert.Same(t, boom, e.Err())

	require.NoError(t, e.Submit(nil, func(uint) error { return nil }))
	assert.Equal(t, EditorClosed, e.State())
	assert.NoError(t, e.Err())
}

func TestEditorSubmitWhenClosed(t *testing.T) {
	e := OpenEditor(0)
	e.Close()
	err := e.Submit(func() error { return nil }, nil)
	assert.True(t, errors.Is(err, ErrEditorNotOpen))
}
