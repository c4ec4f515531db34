package service

import (
	"context"
	"strconv"

	"smartlinks/internal/repository"
	"smartlinks/internal/suggest"

	"go.uber.org/zap"
)

// Proposal is the outcome of a smart-create request: the analysis verdict
// plus one suggested keyword that was unused at proposal time. Nothing is
// persisted; the caller decides whether to create the link, and creation-time
// uniqueness is the real guarantee against races.
type Proposal struct {
	Analysis         *suggest.Analysis `json:"analysis"`
	SuggestedKeyword string            `json:"suggested_keyword,omitempty"`
	KeywordAvailable bool              `json:"keyword_available"`
}

type SmartCreateService struct {
	storage  repository.Storage
	analyzer suggest.Analyzer
	log      *zap.Logger
}

func NewSmartCreate(storage repository.Storage, analyzer suggest.Analyzer, log *zap.Logger) *SmartCreateService {
	return &SmartCreateService{
		storage:  storage,
		analyzer: analyzer,
		log:      log,
	}
}

// ProposeLink analyzes a URL and picks the first suggested keyword not
// already assigned. Soft-deleted keywords count as taken. When every
// candidate is in use, numeric variants of the first candidate are tried
// (candidate2 through candidate9) before giving up.
func (s *SmartCreateService) ProposeLink(ctx context.Context, url string) (*Proposal, error) {
	analysis, err := s.analyzer.AnalyzeURL(ctx, url)
	if err != nil {
		s.log.Error("smart-create analysis failed", zap.String("url", url), zap.Error(err))
		return nil, ErrAnalysisFailed
	}

	keywords, err := s.storage.ListAllKeywords(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		taken[kw] = struct{}{}
	}

	for _, candidate := range analysis.Keywords {
		if _, exists := taken[candidate]; !exists {
			return &Proposal{Analysis: analysis, SuggestedKeyword: candidate, KeywordAvailable: true}, nil
		}
	}

	if len(analysis.Keywords) > 0 {
		base := analysis.Keywords[0]
		for i := 2; i <= 9; i++ {
			variant := base + strconv.Itoa(i)
			if _, exists := taken[variant]; !exists {
				return &Proposal{Analysis: analysis, SuggestedKeyword: variant, KeywordAvailable: true}, nil
			}
		}
	}

	s.log.Warn("no available keyword for URL", zap.String("url", url))
	return &Proposal{Analysis: analysis, KeywordAvailable: false}, nil
}
