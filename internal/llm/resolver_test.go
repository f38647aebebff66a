package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
)

type stubCompleter struct {
	content string
	err     error
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.content, s.err
}

func sampleCatalog() []domaincomps.Competition {
	return []domaincomps.Competition{
		{
			ID:   "footballdata-2021",
			Name: "Premier League",
			Code: "PL",
			Meta: domaincomps.CompetitionMeta{UpstreamCompetitionID: 2021},
		},
		{
			ID:   "footballdata-2001",
			Name: "UEFA Champions League",
			Code: "CL",
			Meta: domaincomps.CompetitionMeta{UpstreamCompetitionID: 2001},
		},
	}
}

func TestResolveUsesModelAnswer(t *testing.T) {
	completer := &stubCompleter{content: "[2021]"}
	resolver := NewResolver(completer, nil)

	matches, err := resolver.Resolve(context.Background(), "the english league", sampleCatalog())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "Premier League", matches[0].Name)

	require.Len(t, completer.prompts, 1)
	require.Contains(t, completer.prompts[0], "the english league")
	require.Contains(t, completer.prompts[0], "id=2021 code=PL name=Premier League")
}

func TestResolveAcceptsObjectAnswer(t *testing.T) {
	completer := &stubCompleter{content: `[{"id": 2001, "code": "CL"}]`}
	resolver := NewResolver(completer, nil)

	matches, err := resolver.Resolve(context.Background(), "champions league", sampleCatalog())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "CL", matches[0].Code)
}

func TestResolveIgnoresUnknownIDs(t *testing.T) {
	completer := &stubCompleter{content: "[9999]"}
	resolver := NewResolver(completer, nil)

	matches, err := resolver.Resolve(context.Background(), "premier league", sampleCatalog())
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestResolveFallsBackWhenModelFails(t *testing.T) {
	completer := &stubCompleter{err: errors.New("model down")}
	resolver := NewResolver(completer, nil)

	matches, err := resolver.Resolve(context.Background(), "premier", sampleCatalog())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "Premier League", matches[0].Name)
}

func TestResolveFallsBackOnBadJSON(t *testing.T) {
	completer := &stubCompleter{content: "the premier league is the best"}
	resolver := NewResolver(completer, nil)

	matches, err := resolver.Resolve(context.Background(), "CL", sampleCatalog())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "UEFA Champions League", matches[0].Name)
}

func TestResolveWithoutCompleterUsesFuzzyMatch(t *testing.T) {
	resolver := NewResolver(nil, nil)

	matches, err := resolver.Resolve(context.Background(), "Premier League of England", sampleCatalog())
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "PL", matches[0].Code)
}

func TestResolveEmptyInputs(t *testing.T) {
	resolver := NewResolver(nil, nil)

	matches, err := resolver.Resolve(context.Background(), "   ", sampleCatalog())
	require.NoError(t, err)
	require.Empty(t, matches)

	matches, err = resolver.Resolve(context.Background(), "premier league", nil)
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestRenderFindCompetitionsListsCatalog(t *testing.T) {
	prompt, err := renderFindCompetitions("la liga", sampleCatalog())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(prompt, "You match a user-supplied competition name"))
	require.Contains(t, prompt, "Competition to find: la liga")
	require.Contains(t, prompt, "id=2001 code=CL name=UEFA Champions League")
}
