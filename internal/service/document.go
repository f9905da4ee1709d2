package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docqa/internal/extract"
	"docqa/internal/model"
	"docqa/internal/repository"
	"docqa/internal/storage"
)

const (
	defaultEncoding   = "7bit"
	downloadURLExpiry = 15 * time.Minute
)

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Ingest extracts the text of data, optionally archives the original bytes,
	// and persists a new document. Storage is rolled back if the DB save fails.
	Ingest(ctx context.Context, data []byte, meta model.DocumentMeta) (*model.Document, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Latest returns the most recently ingested document.
	Latest(ctx context.Context) (*model.Document, error)

	// List returns documents using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// DownloadURL returns a presigned URL for the archived original.
	DownloadURL(ctx context.Context, id string) (string, error)
}

type documentService struct {
	repo      repository.DocumentRepository
	extractor extract.Extractor
	store     storage.Storage
	now       func() time.Time
}

// NewDocumentService constructs a new DocumentService. store may be nil, in
// which case originals are not archived.
func NewDocumentService(repo repository.DocumentRepository, extractor extract.Extractor, store storage.Storage) DocumentService {
	return &documentService{repo: repo, extractor: extractor, store: store, now: time.Now}
}

func (s *documentService) Ingest(ctx context.Context, data []byte, meta model.DocumentMeta) (*model.Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	filename := strings.TrimSpace(meta.Filename)
	contentType := strings.TrimSpace(meta.ContentType)
	if filename == "" || contentType == "" {
		return nil, ErrMetadataRequired
	}

	res, err := s.extractor.Extract(ctx, data, filename, contentType)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return nil, ErrUnsupportedFormat
		}
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if strings.TrimSpace(res.Text) == "" {
		return nil, ErrEmptyContent
	}

	encoding := meta.Encoding
	if encoding == "" {
		encoding = defaultEncoding
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		Filename:    filename,
		Encoding:    encoding,
		ContentType: contentType,
		Size:        int64(len(data)),
		Content:     res.Text,
		CreatedAt:   s.now().UTC(),
	}

	if s.store != nil {
		key := filepath.ToSlash(filepath.Join("documents", doc.ID+filepath.Ext(filename)))
		objInfo, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
			Size:        doc.Size,
			ContentType: contentType,
			Metadata: map[string]string{
				"original-filename": filename,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}
		doc.StoragePath = objInfo.Key
	}

	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		if doc.StoragePath == "" {
			return nil, fmt.Errorf("db save failed: %w", err)
		}
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, doc.StoragePath); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Latest(ctx context.Context) (*model.Document, error) {
	doc, err := s.repo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// List returns paginated documents without exposing repository types.
func (s *documentService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.store == nil || doc.StoragePath == "" {
		return "", ErrOriginalUnavailable
	}
	url, err := s.store.PresignGet(ctx, doc.StoragePath, downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}
