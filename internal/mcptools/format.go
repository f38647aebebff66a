package mcptools

import (
	"encoding/json"
	"fmt"
	"strings"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
)

const infoSeparator = "=================================================="

// formatCompetitionInfo renders the plain-text competition report returned by
// the get_competition_info tool.
func formatCompetitionInfo(comps []domaincomps.Competition) string {
	var b strings.Builder
	for _, comp := range comps {
		fmt.Fprintf(&b, "Name: %s\n", comp.Name)
		fmt.Fprintf(&b, "Type: %s\n", comp.Type)
		if season := comp.CurrentSeason; season != nil {
			b.WriteString("\nCurrent Season:\n")
			fmt.Fprintf(&b, "  Start: %s\n", season.StartDate)
			fmt.Fprintf(&b, "  End: %s\n", season.EndDate)
			fmt.Fprintf(&b, "  Current Matchday: %d\n", season.CurrentMatchday)
			if season.Winner != nil {
				fmt.Fprintf(&b, "  Winner: %s\n", season.Winner.Name)
			}
		}
		if len(comp.Seasons) > 0 {
			b.WriteString("\nPrevious Seasons:\n ")
			parts := make([]string, 0, len(comp.Seasons))
			for _, season := range comp.Seasons {
				if encoded, err := json.Marshal(season); err == nil {
					parts = append(parts, string(encoded))
				}
			}
			b.WriteString(strings.Join(parts, ", "))
		}
		b.WriteString("\n" + infoSeparator + "\n")
	}
	return b.String()
}

// formatCompetitionNotFound mirrors the miss message: it names the query and
// lists everything the catalog supports.
func formatCompetitionNotFound(name string, available []string) string {
	return fmt.Sprintf(
		"Information not found for %s.\n"+
			"It might be because the competition is not supported.\n"+
			"Please try again or try a different competition.\n"+
			"Available competitions: %s",
		name, strings.Join(available, ", "),
	)
}

func formatJSON(title string, payload any) (string, error) {
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:\n\n%s", title, string(pretty)), nil
}
