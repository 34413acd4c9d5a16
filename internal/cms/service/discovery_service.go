package service

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/cms/constants"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// Search content types.
const (
	SearchTypeProgram = "program"
	SearchTypeEpisode = "episode"
)

// SearchCatalogInput is a raw discovery search request.
// An empty Type searches episodes. An empty Query matches every document.
type SearchCatalogInput struct {
	Type  string
	Query string
	Page  int
	Limit int
}

// CatalogSearchResult is one page of search hits.
type CatalogSearchResult struct {
	Hits []interfaces.Document
	Meta pagination.Meta
}

// DiscoveryService reads the published catalog through the search port
type DiscoveryService struct {
	engine interfaces.SearchEngine
	logger interfaces.Logger
	list   ListConfig
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(engine interfaces.SearchEngine, logger interfaces.Logger, list ListConfig) *DiscoveryService {
	return &DiscoveryService{engine: engine, logger: logger, list: list}
}

// SearchCatalog queries the programs or episodes index
func (s *DiscoveryService) SearchCatalog(ctx context.Context, input SearchCatalogInput) (*CatalogSearchResult, error) {
	index, err := searchIndex(input.Type)
	if err != nil {
		return nil, err
	}

	var text string
	if input.Query != "" {
		term, err := searchTerm(&input.Query)
		if err != nil {
			return nil, err
		}
		text = *term
	}

	params, err := s.list.params(input.Page, input.Limit)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Search(ctx, index, interfaces.SearchQuery{
		Text: text,
		From: params.Offset(),
		Size: params.Limit,
	})
	if err != nil {
		s.logger.Error("Catalog search failed",
			interfaces.String("index", index),
			interfaces.Error(err))
		return nil, errors.Wrap(errors.ErrorTypeInternal, "search catalog", err)
	}

	s.logger.Debug("Catalog searched",
		interfaces.String("index", index),
		interfaces.Int("hits", len(result.Hits)),
		interfaces.Int("total", result.Total))

	return &CatalogSearchResult{
		Hits: result.Hits,
		Meta: pagination.NewMeta(params, result.Total),
	}, nil
}

func searchIndex(contentType string) (string, error) {
	switch contentType {
	case SearchTypeProgram:
		return constants.ProgramsIndex, nil
	case SearchTypeEpisode, "":
		return constants.EpisodesIndex, nil
	default:
		return "", errors.BadRequest(fmt.Sprintf("type: must be '%s' or '%s'", SearchTypeProgram, SearchTypeEpisode))
	}
}
