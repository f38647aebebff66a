package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	"github.com/malanEvans/soccer-mcp-server/internal/logging"
)

// Completer produces a JSON completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Resolver maps free-form competition names onto catalog entries.
// It asks the model first and falls back to substring matching when the
// model is unavailable or returns something unusable.
type Resolver struct {
	completer Completer
	logger    *slog.Logger
}

// NewResolver builds a resolver. A nil completer disables the model path
// and every lookup goes through the deterministic fallback.
func NewResolver(completer Completer, logger *slog.Logger) *Resolver {
	return &Resolver{
		completer: completer,
		logger:    logger,
	}
}

// Resolve returns the catalog competitions matching the given name.
// An empty result means the name matched nothing in the catalog.
func (r *Resolver) Resolve(ctx context.Context, name string, catalog []domaincomps.Competition) ([]domaincomps.Competition, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(catalog) == 0 {
		return nil, nil
	}

	if r.completer != nil {
		matches, err := r.resolveWithModel(ctx, trimmed, catalog)
		if err == nil {
			return matches, nil
		}
		logging.Warn(r.logger, "competition resolution via model failed, using fallback",
			slog.String(logging.FieldCompetition, trimmed),
			slog.String("error", err.Error()),
		)
	}

	return fuzzyMatch(trimmed, catalog), nil
}

func (r *Resolver) resolveWithModel(ctx context.Context, name string, catalog []domaincomps.Competition) ([]domaincomps.Competition, error) {
	prompt, err := renderFindCompetitions(name, catalog)
	if err != nil {
		return nil, err
	}

	content, err := r.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	ids, err := parseCompetitionIDs(content)
	if err != nil {
		return nil, err
	}

	byUpstreamID := make(map[int]domaincomps.Competition, len(catalog))
	for _, comp := range catalog {
		byUpstreamID[comp.Meta.UpstreamCompetitionID] = comp
	}

	matches := make([]domaincomps.Competition, 0, len(ids))
	for _, id := range ids {
		if comp, ok := byUpstreamID[id]; ok {
			matches = append(matches, comp)
		}
	}
	return matches, nil
}

// parseCompetitionIDs accepts either a bare id array ([2021]) or an
// object array ([{"id": 2021, "code": "PL"}]).
func parseCompetitionIDs(content string) ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(content), &ids); err == nil {
		return ids, nil
	}

	var objects []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal([]byte(content), &objects); err != nil {
		return nil, err
	}
	ids = make([]int, 0, len(objects))
	for _, obj := range objects {
		ids = append(ids, obj.ID)
	}
	return ids, nil
}

func fuzzyMatch(name string, catalog []domaincomps.Competition) []domaincomps.Competition {
	needle := strings.ToLower(name)

	var matches []domaincomps.Competition
	for _, comp := range catalog {
		if strings.EqualFold(comp.Code, name) {
			matches = append(matches, comp)
			continue
		}
		haystack := strings.ToLower(comp.Name)
		if strings.Contains(haystack, needle) || strings.Contains(needle, haystack) {
			matches = append(matches, comp)
		}
	}
	return matches
}
