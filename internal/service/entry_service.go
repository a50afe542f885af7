package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/LudyPitra/AI-Diary-App/internal/cache"
	dom "github.com/LudyPitra/AI-Diary-App/internal/domain"
	"github.com/LudyPitra/AI-Diary-App/internal/repo"

	"golang.org/x/sync/singleflight"
)

// EntryService handles per-owner diary entry reads and writes.
type EntryService struct {
	repo  repo.EntryRepo
	cache *cache.EntryCache
	sf    singleflight.Group
}

// NewEntryService creates an EntryService. If c is nil, caching is disabled.
func NewEntryService(r repo.EntryRepo, c *cache.EntryCache) *EntryService {
	return &EntryService{repo: r, cache: c}
}

// Create inserts a new entry owned by ownerID. Content may be empty;
// created_at comes from the database clock.
func (s *EntryService) Create(ctx context.Context, ownerID int64, title, content string) (dom.Entry, error) {
	title = strings.TrimSpace(title)

	e, err := s.repo.Create(ctx, dom.Entry{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return dom.Entry{}, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, ownerID)
	}
	return e, nil
}

// List returns every entry owned by ownerID, fully materialized. Concurrent
// cache misses for the same owner collapse into one database load.
func (s *EntryService) List(ctx context.Context, ownerID int64) ([]dom.Entry, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(ownerID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, ownerID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByOwner(ctx, ownerID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, ownerID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Entry), nil
	}
	return s.repo.ListByOwner(ctx, ownerID)
}
