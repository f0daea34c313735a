package content

import "errors"

// Mode says whether an editor creates a new row or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// EditorState is the lifecycle of a row form.
type EditorState int

const (
	EditorClosed EditorState = iota
	EditorOpen
	EditorSubmitting
)

// ErrEditorNotOpen is returned by Submit when the editor is not open.
var ErrEditorNotOpen = errors.New("editor is not open")

// Editor drives the create-or-update row form:
// Closed -> Open(create|edit) -> Submitting -> Closed, or back to Open with the error.
type Editor struct {
	state EditorState
	mode  Mode
	id    uint
	err   error
}

// OpenEditor opens a form for row id. A zero id opens a create form.
func OpenEditor(id uint) *Editor {
	mode := ModeCreate
	if id != 0 {
		mode = ModeEdit
	}
	return &Editor{state: EditorOpen, mode: mode, id: id}
}

func (e *Editor) State() EditorState { return e.state }
func (e *Editor) Mode() Mode         { return e.mode }
func (e *Editor) ID() uint           { return e.id }

// Err returns the error of the last failed submission.
func (e *Editor) Err() error { return e.err }

// Close discards the form.
func (e *Editor) Close() {
	e.state = EditorClosed
	e.err = nil
}

// Submit runs create or update depending on the mode. On failure the editor
// stays open with the error so the form can be corrected and resubmitted.
func (e *Editor) Submit(create func() error, update func(id uint) error) error {
	if e.state != EditorOpen {
		return ErrEditorNotOpen
	}
	e.state = EditorSubmitting

	var err error
	if e.mode == ModeEdit {
		err = update(e.id)
	} else {
		err = create()
	}
	if err != nil {
		e.state = EditorOpen
		e.err = err
		return err
	}
	e.Close()
	return nil
}
