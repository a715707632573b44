package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"sync"

	"github.com/echofluxai/echoflux-api/internal/models"
	"github.com/echofluxai/echoflux-api/internal/repository"
	"github.com/echofluxai/echoflux-api/internal/transfer"
	"github.com/echofluxai/echoflux-api/pkg/shape"
	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type MediaService interface {
	Upload(ctx context.Context, userID int64, folderID string, files []*multipart.FileHeader) (*transfer.BulkResult, []*models.MediaItem, error)
	List(ctx context.Context, userID int64, folderID string) ([]*models.MediaItem, error)
	ItemTags(item *models.MediaItem) []map[string]any
	CreateFolder(ctx context.Context, userID int64, name string) (*models.MediaFolder, error)
	ListFolders(ctx context.Context, userID int64) ([]*models.MediaFolder, error)
	RenameFolder(ctx context.Context, userID int64, folderID, name string) error
	DeleteFolder(ctx context.Context, userID int64, folderID string) error
	BulkMove(ctx context.Context, userID int64, itemIDs []string, folderID string) *transfer.BulkResult
	BulkDelete(ctx context.Context, userID int64, itemIDs []string) *transfer.BulkResult
}

type mediaService struct {
	mi    repository.MediaItemRepository
	mf    repository.MediaFolderRepository
	store ObjectStore
}

func NewMediaService(mi repository.MediaItemRepository, mf repository.MediaFolderRepository, store ObjectStore) MediaService {
	return &mediaService{
		mi:    mi,
		mf:    mf,
		store: store,
	}
}

const bulkConcurrency = 10

// Upload stores each file in R2 and records a media item. Files are sniffed
// with filetype; anything that is not an image or video is counted as failed.
// Partial failure is tolerated and reported per item.
func (s *mediaService) Upload(ctx context.Context, userID int64, folderID string, files []*multipart.FileHeader) (*transfer.BulkResult, []*models.MediaItem, error) {
	if len(files) == 0 {
		return nil, nil, errors.New("no files provided")
	}

	if folderID == "" {
		folderID = models.GeneralFolderID
	} else if folderID != models.GeneralFolderID {
		_, exists, err := s.mf.GetByID(ctx, folderID, userID)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			return nil, nil, errors.New("folder not found")
		}
	}

	result := &transfer.BulkResult{}
	var items []*models.MediaItem

	for _, fh := range files {
		item, err := s.uploadOne(ctx, userID, folderID, fh)
		if err != nil {
			slog.Warn("media upload failed",
				"file", fh.Filename,
				"error", err.Error())
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, fh.Filename)
			continue
		}
		result.Succeeded++
		items = append(items, item)
	}

	return result, items, nil
}

func (s *mediaService) uploadOne(ctx context.Context, userID int64, folderID string, fh *multipart.FileHeader) (*models.MediaItem, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, err
	}

	var mediaType string
	switch {
	case filetype.IsImage(data):
		mediaType = models.MediaTypeImage
	case filetype.IsVideo(data):
		mediaType = models.MediaTypeVideo
	default:
		return nil, fmt.Errorf("unsupported file type: %s", kind.MIME.Value)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("media/%d/%s", userID, id)
	if err := s.store.Upload(ctx, key, data, kind.MIME.Value); err != nil {
		return nil, err
	}

	item := &models.MediaItem{
		ID:        id,
		UserID:    userID,
		URL:       s.store.PublicURL(key),
		FileName:  fh.Filename,
		MediaType: mediaType,
		FileSize:  fh.Size,
		FolderID:  folderID,
		Tags:      json.RawMessage("[]"),
	}

	if err := s.mi.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *mediaService) List(ctx context.Context, userID int64, folderID string) ([]*models.MediaItem, error) {
	if folderID == "" {
		return s.mi.ListByUser(ctx, userID)
	}
	return s.mi.ListByFolder(ctx, userID, folderID)
}

// ItemTags normalizes the tags column, which older rows stored as a keyed
// object instead of an array.
func (s *mediaService) ItemTags(item *models.MediaItem) []map[string]any {
	return shape.CoerceRaw(item.Tags, shape.AnyObject)
}

func (s *mediaService) CreateFolder(ctx context.Context, userID int64, name string) (*models.MediaFolder, error) {
	if name == "" {
		return nil, errors.New("folder name cannot be empty")
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	folder := &models.MediaFolder{
		ID:     id,
		UserID: userID,
		Name:   name,
	}

	if err := s.mf.Create(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

func (s *mediaService) ListFolders(ctx context.Context, userID int64) ([]*models.MediaFolder, error) {
	return s.mf.ListByUser(ctx, userID)
}

func (s *mediaService) RenameFolder(ctx context.Context, userID int64, folderID, name string) error {
	if folderID == models.GeneralFolderID {
		return errors.New("the general folder cannot be renamed")
	}
	if name == "" {
		return errors.New("folder name cannot be empty")
	}
	return s.mf.Rename(ctx, folderID, userID, name)
}

// DeleteFolder reassigns contained items to the general folder before
// removing the folder row; items are never deleted by folder deletion.
func (s *mediaService) DeleteFolder(ctx context.Context, userID int64, folderID string) error {
	if folderID == models.GeneralFolderID {
		return errors.New("the general folder cannot be deleted")
	}

	_, exists, err := s.mf.GetByID(ctx, folderID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("folder not found")
	}

	if err := s.mi.ReassignFolder(ctx, userID, folderID, models.GeneralFolderID); err != nil {
		return err
	}

	return s.mf.Remove(ctx, folderID, userID)
}

// BulkMove moves items concurrently; each item succeeds or fails on its own
// and the batch never aborts early.
func (s *mediaService) BulkMove(ctx context.Context, userID int64, itemIDs []string, folderID string) *transfer.BulkResult {
	if folderID == "" {
		folderID = models.GeneralFolderID
	}

	return s.fanOut(itemIDs, func(id string) error {
		return s.mi.UpdateFolder(ctx, id, userID, folderID)
	})
}

func (s *mediaService) BulkDelete(ctx context.Context, userID int64, itemIDs []string) *transfer.BulkResult {
	return s.fanOut(itemIDs, func(id string) error {
		item, exists, err := s.mi.GetByID(ctx, id, userID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.New("item not found")
		}

		if err := s.mi.Remove(ctx, id, userID); err != nil {
			return err
		}

		key := fmt.Sprintf("media/%d/%s", userID, item.ID)
		if err := s.store.Delete(ctx, key); err != nil {
			// Row is gone; an orphaned object is acceptable.
			slog.Warn("object delete failed after row delete",
				"key", key,
				"error", err.Error())
		}
		return nil
	})
}

func (s *mediaService) fanOut(itemIDs []string, op func(id string) error) *transfer.BulkResult {
	result := &transfer.BulkResult{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	semaphore := make(chan struct{}, bulkConcurrency)

	for _, id := range itemIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(id string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			err := op(id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Info(err.Error())
				result.Failed++
				result.FailedIDs = append(result.FailedIDs, id)
				return
			}
			result.Succeeded++
		}(id)
	}

	wg.Wait()
	return result
}
