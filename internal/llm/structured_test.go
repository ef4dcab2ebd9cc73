package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Title   string   `json:"title"`
	Subject string   `json:"subject"`
	Goals   []string `json:"overarching_goals_standards"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"title":"Solar System Unit","subject":"Science"}`
	result, err := ExtractJSON[testDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Solar System Unit", result.Title)
	assert.Equal(t, "Science", result.Subject)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"title\":\"Fractions Week\",\"subject\":\"Math\"}\n```"
	result, err := ExtractJSON[testDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fractions Week", result.Title)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is your lesson plan:\n{\"title\":\"Plan\",\"subject\":\"Science\"}\nHope that helps!"
	result, err := ExtractJSON[testDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Plan", result.Title)
}

func TestExtractJSON_NestedBracesAndEscapes(t *testing.T) {
	type nested struct {
		Title string            `json:"title"`
		Meta  map[string]string `json:"meta"`
	}
	raw := `{"title":"Plan \"A\"","meta":{"k":"v}"}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `Plan "A"`, result.Title)
	assert.Equal(t, "v}", result.Meta["k"])
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := "{\n  \"title\": \"Plan\", // the unit title\n  \"subject\": \"Science\"\n}"
	result, err := ExtractJSON[testDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Science", result.Subject)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testDoc]("I could not generate a plan.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testDoc](`{"title": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"title":"","subject":"Science"}`
	_, err := ExtractJSON[testDoc](raw, func(d testDoc) error {
		if d.Title == "" {
			return fmt.Errorf("title is required")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "title is required")
}
