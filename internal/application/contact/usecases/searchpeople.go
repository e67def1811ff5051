package usecases

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"reachdesk/internal/domain/contact"
	"reachdesk/internal/shared/logger"
)

type SearchPeopleQuery struct {
	Query string
}

type SearchPeopleResult struct {
	Query  string
	People []contact.Person
}

// SearchPeopleUseCase serves the incremental person search. Queries are
// normalized before they hit cache or backend so "Álice " and "alice" share
// one result set. An empty normalized query returns no results without a
// backend call.
type SearchPeopleUseCase struct {
	gateway PeopleGateway
	cache   SearchResultCache
	logger  logger.Interface
}

func NewSearchPeopleUseCase(
	gateway PeopleGateway,
	cache SearchResultCache,
	logger logger.Interface,
) *SearchPeopleUseCase {
	return &SearchPeopleUseCase{
		gateway: gateway,
		cache:   cache,
		logger:  logger,
	}
}

func (uc *SearchPeopleUseCase) Execute(ctx context.Context, query SearchPeopleQuery) (*SearchPeopleResult, error) {
	normalized := NormalizeQuery(query.Query)
	if normalized == "" {
		return &SearchPeopleResult{Query: "", People: []contact.Person{}}, nil
	}

	if uc.cache != nil {
		if people, err := uc.cache.Get(ctx, normalized); err == nil {
			uc.logger.Debugw("search served from cache", "query", normalized, "count", len(people))
			return &SearchPeopleResult{Query: normalized, People: people}, nil
		}
	}

	people, err := uc.gateway.SearchPeople(ctx, normalized)
	if err != nil {
		uc.logger.Errorw("search failed", "query", normalized, "error", err)
		return nil, err
	}
	if people == nil {
		people = []contact.Person{}
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, normalized, people); err != nil {
			uc.logger.Warnw("failed to cache search results", "query", normalized, "error", err)
		}
	}

	return &SearchPeopleResult{Query: normalized, People: people}, nil
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeQuery lowercases, strips diacritics, and collapses whitespace.
func NormalizeQuery(q string) string {
	folded, _, err := transform.String(stripMarks, q)
	if err != nil {
		folded = q
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
