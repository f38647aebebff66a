package llm

import (
	"embed"
	"strings"
	"text/template"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var promptTemplates = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

type findCompetitionsArgs struct {
	Name         string
	Competitions []domaincomps.Competition
}

func renderFindCompetitions(name string, catalog []domaincomps.Competition) (string, error) {
	var buf strings.Builder
	err := promptTemplates.ExecuteTemplate(&buf, "find_competitions.tmpl", findCompetitionsArgs{
		Name:         name,
		Competitions: catalog,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
