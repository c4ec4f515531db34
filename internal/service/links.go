package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"smartlinks/internal/domain"
	"smartlinks/internal/repository"
	"smartlinks/internal/suggest"

	"go.uber.org/zap"
)

var (
	ErrInvalidKeyword  = errors.New("keyword must be 2-50 characters of letters, digits, hyphen or underscore")
	ErrInvalidURL      = errors.New("url must be an absolute http or https URL")
	ErrInvalidCategory = errors.New("category is not one of the allowed values")
	ErrAnalysisFailed  = errors.New("url analysis failed")
)

var keywordPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{2,50}$`)

// LinkInfo is a link together with its derived click count. The count is
// always recomputed from click rows, never stored on the link row.
type LinkInfo struct {
	domain.Link
	ClickCount int64 `json:"click_count"`
}

// CreateInput carries the fields of a link creation request. CreatedBy is
// best-effort request metadata, not an authenticated identity.
type CreateInput struct {
	Keyword     string
	URL         string
	Title       *string
	Description *string
	Category    string
	CreatedBy   string
}

type LinkService struct {
	storage  repository.Storage
	analyzer suggest.Analyzer
	log      *zap.Logger
}

func NewLink(storage repository.Storage, analyzer suggest.Analyzer, log *zap.Logger) *LinkService {
	return &LinkService{
		storage:  storage,
		analyzer: analyzer,
		log:      log,
	}
}

// Create validates and persists a new link. A keyword collision, including
// with a soft-deleted link, fails with repository.ErrKeywordExists.
func (s *LinkService) Create(ctx context.Context, in CreateInput) (*LinkInfo, error) {
	if !keywordPattern.MatchString(in.Keyword) {
		return nil, ErrInvalidKeyword
	}
	if !validURL(in.URL) {
		return nil, ErrInvalidURL
	}
	if in.Category == "" {
		in.Category = domain.CategoryGeneral
	}
	if !domain.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	if in.CreatedBy == "" {
		in.CreatedBy = "anonymous"
	}

	link := &domain.Link{
		Keyword:     in.Keyword,
		URL:         in.URL,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		CreatedBy:   in.CreatedBy,
		IsActive:    true,
	}
	if err := s.storage.CreateLink(ctx, link); err != nil {
		return nil, err
	}

	return &LinkInfo{Link: *link, ClickCount: 0}, nil
}

// CreateEnhanced creates a link, filling missing title/description/category
// from URL analysis when useAI is set. Analysis failure here is non-fatal:
// it is logged and the link is created from the caller's fields alone.
func (s *LinkService) CreateEnhanced(ctx context.Context, in CreateInput, useAI bool) (*LinkInfo, error) {
	if useAI && (in.Title == nil || in.Description == nil || in.Category == "") {
		if !validURL(in.URL) {
			return nil, ErrInvalidURL
		}
		analysis, err := s.analyzer.AnalyzeURL(ctx, in.URL)
		if err != nil {
			s.log.Warn("analysis failed, creating link without enhancement",
				zap.String("url", in.URL), zap.Error(err))
		} else {
			if in.Title == nil && analysis.Title != "" {
				in.Title = &analysis.Title
			}
			if in.Description == nil && analysis.Description != "" {
				in.Description = &analysis.Description
			}
			if in.Category == "" {
				in.Category = analysis.Category
			}
		}
	}
	return s.Create(ctx, in)
}

func (s *LinkService) Get(ctx context.Context, keyword string) (*LinkInfo, error) {
	link, err := s.storage.GetLink(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return s.withCount(ctx, link)
}

// List returns active links matching the filter, each with its click count.
func (s *LinkService) List(ctx context.Context, filter repository.ListFilter) ([]*LinkInfo, error) {
	if filter.Category != "" && !domain.ValidCategory(filter.Category) {
		return nil, ErrInvalidCategory
	}

	links, err := s.storage.ListLinks(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]*LinkInfo, 0, len(links))
	for _, link := range links {
		info, err := s.withCount(ctx, link)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Update applies a partial update. Only url, title, description and category
// are mutable; the keyword is fixed for the life of the link.
func (s *LinkService) Update(ctx context.Context, keyword string, upd repository.LinkUpdate) (*LinkInfo, error) {
	if upd.URL != nil && !validURL(*upd.URL) {
		return nil, ErrInvalidURL
	}
	if upd.Category != nil && !domain.ValidCategory(*upd.Category) {
		return nil, ErrInvalidCategory
	}

	link, err := s.storage.UpdateLink(ctx, keyword, upd)
	if err != nil {
		return nil, err
	}
	return s.withCount(ctx, link)
}

// Delete deactivates a link. The row and its click history persist, and the
// keyword stays reserved.
func (s *LinkService) Delete(ctx context.Context, keyword string) error {
	return s.storage.DeleteLink(ctx, keyword)
}

func (s *LinkService) withCount(ctx context.Context, link *domain.Link) (*LinkInfo, error) {
	count, err := s.storage.CountClicks(ctx, link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count clicks for link %d: %w", link.ID, err)
	}
	return &LinkInfo{Link: *link, ClickCount: count}, nil
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
