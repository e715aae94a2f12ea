package fancy_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/atlanticdynamic/typecast/internal/fancy"
)

// StylesTestSuite is a test suite for testing styles-related functionality
type StylesTestSuite struct {
	suite.Suite
}

// TestStyleVariablesExist verifies that all expected style variables are defined
func (s *StylesTestSuite) TestStyleVariablesExist() {
	sampleText := "Test Text"

	assert.NotEmpty(s.T(), fancy.RootStyle.Render(sampleText))
	assert.NotEmpty(s.T(), fancy.HeaderStyle.Render(sampleText))
	assert.NotEmpty(s.T(), fancy.InfoStyle.Render(sampleText))
	assert.NotEmpty(s.T(), fancy.BranchStyle.Render(sampleText))
	assert.NotEmpty(s.T(), fancy.ComponentStyle.Render(sampleText))
	assert.NotEmpty(s.T(), fancy.SceneStyle.Render(sampleText))
	assert.NotEmpty(s.T(), fancy.CommandStyle.Render(sampleText))
	assert.NotEmpty(s.T(), fancy.OutputStyle.Render(sampleText))
}

// TestStyleHelperFunctions tests the helper functions that apply styles
func (s *StylesTestSuite) TestStyleHelperFunctions() {
	sampleText := "Test Text"

	assert.Equal(s.T(), fancy.SceneStyle.Render(sampleText), fancy.SceneText(sampleText))
	assert.Equal(s.T(), fancy.CommandStyle.Render(sampleText), fancy.CommandText(sampleText))
	assert.Equal(s.T(), fancy.OutputStyle.Render(sampleText), fancy.OutputText(sampleText))
	assert.Equal(s.T(), fancy.ValidStyle.Render(sampleText), fancy.ValidText(sampleText))
	assert.Equal(s.T(), fancy.ErrorStyle.Render(sampleText), fancy.ErrorText(sampleText))
	assert.Contains(s.T(), fancy.PathText(sampleText), sampleText)
	assert.Contains(s.T(), fancy.SummaryText(sampleText), sampleText)
	assert.Contains(s.T(), fancy.CountText(sampleText), sampleText)
}

// TestStyleFunctionNullSafety tests that style functions handle empty strings safely
func (s *StylesTestSuite) TestStyleFunctionNullSafety() {
	require.NotPanics(s.T(), func() {
		fancy.SceneText("")
		fancy.CommandText("")
		fancy.OutputText("")
	})

	assert.Empty(s.T(), fancy.SceneText(""))
	assert.Empty(s.T(), fancy.CommandText(""))
	assert.Empty(s.T(), fancy.OutputText(""))
}

// Run the styles test suite
func TestStylesSuite(t *testing.T) {
	suite.Run(t, new(StylesTestSuite))
}

func TestTerminalStyles(t *testing.T) {
	t.Parallel()

	t.Run("ascii profile renders plain text", func(t *testing.T) {
		r := lipgloss.NewRenderer(&bytes.Buffer{})
		r.SetColorProfile(termenv.Ascii)
		styles := fancy.NewTerminalStyles(r)
		assert.Equal(t, "$", styles.Prompt.Render("$"))
		assert.Equal(t, "ls", styles.Command.Render("ls"))
	})

	t.Run("ansi256 profile adds escape sequences", func(t *testing.T) {
		r := lipgloss.NewRenderer(&bytes.Buffer{})
		r.SetColorProfile(termenv.ANSI256)
		styles := fancy.NewTerminalStyles(r)
		got := styles.Colored(fancy.ColorGreen).Render("ok")
		assert.Contains(t, got, "ok")
		assert.Contains(t, got, "\x1b[")
	})
}

func TestNamedColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"green", "82", true},
		{" Red ", "196", true},
		{"#00ff00", "#00ff00", true},
		{"#0f0", "#0f0", true},
		{"chartreuse", "", false},
		{"#12", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := fancy.NamedColor(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, string(got))
			}
		})
	}
}

func TestTree(t *testing.T) {
	tree := fancy.Tree()
	assert.NotNil(t, tree)

	tree.Root("Root Node")
	child := tree.Child("Child Node")
	child.Child("Grandchild")

	treeString := tree.String()
	assert.Contains(t, treeString, "Root Node")
	assert.Contains(t, treeString, "Child Node")
	assert.Contains(t, treeString, "Grandchild")
}

func TestBranchNode(t *testing.T) {
	branchNode := fancy.BranchNode("Scenes", "(2)")
	treeString := branchNode.String()
	assert.Contains(t, treeString, "Scenes")
	assert.Contains(t, treeString, "(2)")
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{"shorter than maxLength", "Short string", 20, "Short string"},
		{"exactly at maxLength", "Exactly twenty chars", 20, "Exactly twenty chars"},
		{"one over maxLength", "Exactly twenty chars!", 20, "Exactly twenty ch..."},
		{"longer than maxLength", "This is a very long string that should be truncated", 15, "This is a ve..."},
		{"empty", "", 10, ""},
		{"maxLength equal to ellipsis", "This is a very long string", 3, "..."},
		{"one character plus ellipsis", "This is a very long string", 4, "T..."},
		{"multibyte text is cut on rune boundaries", "ééééééé", 6, "ééé..."},
		{"multibyte text that fits", "éééééé", 6, "éééééé"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fancy.TruncateString(tc.input, tc.maxLength))
		})
	}
}
