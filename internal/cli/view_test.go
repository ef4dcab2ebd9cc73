package cli

import (
	"testing"

	"github.com/ainara-edu/teksplan/internal/standards"
	"github.com/ainara-edu/teksplan/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newViewFixture() *planViewModel {
	rec := testutil.NewTestRecord(testutil.NewTestPlan("Space",
		testutil.WithActivities(
			testutil.NewTestActivity("Day One"),
			testutil.NewTestActivity("Day Two"),
			testutil.NewTestActivity("Day Three"),
		)))
	return newPlanViewModel(rec, make(standards.Database))
}

func TestPlanView_Navigation(t *testing.T) {
	m := newViewFixture()

	m.Update(keyMsg("j"))
	assert.Equal(t, 1, m.cursor)
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	assert.Equal(t, 2, m.cursor, "cursor clamps at the last activity")
	m.Update(keyMsg("k"))
	assert.Equal(t, 1, m.cursor)
}

func TestPlanView_ReorderMovesActivityAndCursor(t *testing.T) {
	m := newViewFixture()

	m.Update(keyMsg("J"))
	assert.Equal(t, "Day Two", m.rec.Plan.Activities[0].Title)
	assert.Equal(t, "Day One", m.rec.Plan.Activities[1].Title)
	assert.Equal(t, 1, m.cursor, "cursor follows the moved activity")
	assert.True(t, m.dirty)

	m.Update(keyMsg("K"))
	assert.Equal(t, "Day One", m.rec.Plan.Activities[0].Title)
	assert.Equal(t, 0, m.cursor)
}

func TestPlanView_DeleteClampsCursor(t *testing.T) {
	m := newViewFixture()
	m.cursor = 2

	m.Update(keyMsg("x"))
	require.Len(t, m.rec.Plan.Activities, 2)
	assert.Equal(t, 1, m.cursor)
	assert.True(t, m.dirty)
}

func TestPlanView_DetailToggle(t *testing.T) {
	m := newViewFixture()

	m.Update(keyMsg("enter"))
	assert.True(t, m.showDetail)
	assert.Contains(t, m.View(), "back")

	m.Update(keyMsg("enter"))
	assert.False(t, m.showDetail)
}

func TestPlanView_QuitFromList(t *testing.T) {
	m := newViewFixture()

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPlanView_ViewShowsCursorAndHelp(t *testing.T) {
	m := newViewFixture()
	out := m.View()
	assert.Contains(t, out, "Day One")
	assert.Contains(t, out, "reorder")
}
