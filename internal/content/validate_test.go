package content

import (
	"testing"

	"github.com/madrasa/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsContactEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@school.edu.bd", "x+y@d.io"}
	invalid := []string{"", "plain", "a@b", "a b@c.d", "@b.com", "a@.", "a@@b.c"}

	for _, s := range valid {
		assert.True(t, IsContactEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsContactEmail(s), s)
	}
}

func TestValidateUsesJSONNames(t *testing.T) {
	err := Validate(&db.NewsItem{Title: "t", Content: "c", CategoryID: 1, Slug: "Bad Slug"})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "slug", verr.Fields[0].Field)
	assert.Contains(t, verr.Fields[0].Message, "lowercase")
}

func TestValidateContactSubmission(t *testing.T) {
	sub := db.ContactSubmission{
		FirstName: "Amina",
		LastName:  "Rahman",
		Email:     "not-an-email",
		Subject:   "Admission",
		Message:   "Hello",
		Priority:  db.PriorityNormal,
		Status:    db.StatusNew,
	}
	err := Validate(&sub)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Fields[0].Field)

	sub.Email = "amina@example.com"
	assert.NoError(t, Validate(&sub))
}
