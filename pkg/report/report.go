package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/storygraph/pkg/pipeline"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			MarginTop(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// Render produces the styled terminal summary for one analysis run:
// graph-level distance metrics, the two top-N tables, and the community
// breakdown.
func Render(res *pipeline.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Character Interaction Network"))
	b.WriteString("\n")

	stats := fmt.Sprintf(
		"nodes %d   edges %d\ndiameter %d   radius %d   mean eccentricity %.2f\ncommunities %d   modularity %.3f",
		res.NodeCount, res.EdgeCount,
		res.Eccentricity.Diameter, res.Eccentricity.Radius, res.Eccentricity.Mean,
		len(res.Communities.Communities), res.Communities.Modularity,
	)
	b.WriteString(statsBoxStyle.Render(stats))
	b.WriteString("\n\n")

	b.WriteString(renderTop("Top by degree", res.TopDegree, "%.0f"))
	b.WriteString("\n")
	b.WriteString(renderTop("Top by weighted degree", res.TopStrength, "%.0f"))
	b.WriteString("\n")
	b.WriteString(renderCommunities(res))

	return b.String()
}

func renderTop(title string, ranked []pipeline.RankedCharacter, format string) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	for i, rc := range ranked {
		b.WriteString(fmt.Sprintf("  %2d. %s %s\n",
			i+1,
			labelStyle.Render(rc.Label),
			scoreStyle.Render(fmt.Sprintf(format, rc.Score)),
		))
	}
	return b.String()
}

func renderCommunities(res *pipeline.Result) string {
	// Index labels by community id for display
	members := make(map[int][]string)
	for _, row := range res.Nodes {
		members[row.Community] = append(members[row.Community], row.Label)
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Communities"))
	b.WriteString("\n")
	for i := 0; i < len(res.Communities.Communities); i++ {
		b.WriteString(fmt.Sprintf("  %d: %s\n", i, strings.Join(members[i], ", ")))
	}
	return b.String()
}
