package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/indrishabhtech/ap/internal/domain/file"
	"github.com/indrishabhtech/ap/internal/probe"
	"github.com/indrishabhtech/ap/internal/proxy"
	"github.com/indrishabhtech/ap/internal/repository"
	"github.com/indrishabhtech/ap/internal/storage"
	aperrors "github.com/indrishabhtech/ap/pkg/errors"
	"github.com/indrishabhtech/ap/pkg/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const defaultMimeType = "application/octet-stream"

type FileService struct {
	repo   repository.FileRepository
	blobs  *storage.Client
	prober *probe.Prober
	folder string
	logger *logger.Logger
}

type UploadInput struct {
	OriginalName string
	Category     string
	Description  string
	ContentType  string
	SizeBytes    int64
	Body         io.Reader
}

type LinkInput struct {
	URL          string
	OriginalName string
	Category     string
	Description  string
}

// NewFileService wires the file record store, the blob store (nil when
// uploads are disabled) and the prober used for external-URL registration.
func NewFileService(repo repository.FileRepository, blobs *storage.Client, prober *probe.Prober, folder string, l *logger.Logger) *FileService {
	if folder == "" {
		folder = "uploads"
	}
	return &FileService{repo: repo, blobs: blobs, prober: prober, folder: folder, logger: l}
}

// Upload pushes the binary to the blob store and creates the record.
// Binary uploads default to the images category when nothing better is
// known; external-URL registration defaults to other (see RegisterLink).
func (s *FileService) Upload(ctx context.Context, input UploadInput) (file.File, error) {
	if s.blobs == nil {
		return file.File{}, errors.New("blob storage is not configured")
	}
	if input.OriginalName == "" || input.Body == nil {
		return file.File{}, aperrors.ErrInvalidInput
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultMimeType
	}
	category := resolveCategory(input.Category, contentType, file.CategoryImages)
	key := s.buildObjectKey(category, input.OriginalName)

	url, err := s.blobs.Upload(ctx, key, contentType, input.Body, input.SizeBytes)
	if err != nil {
		return file.File{}, err
	}

	rec := file.File{
		OriginalName: input.OriginalName,
		StoredName:   path.Base(key),
		URL:          url,
		Category:     category,
		MimeType:     contentType,
		SizeBytes:    input.SizeBytes,
		BlobKey:      key,
		Description:  input.Description,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &rec); err != nil {
		// The blob is already stored; remove it so a failed create does
		// not leak an orphaned object.
		s.cleanupBlob(ctx, key)
		return file.File{}, err
	}
	return rec, nil
}

// RegisterLink records an external URL without storing any bytes. Metadata
// comes from a best-effort probe; nulls degrade to defaults. No blob
// handle is set, so deletion never touches the blob store.
func (s *FileService) RegisterLink(ctx context.Context, input LinkInput) (file.File, error) {
	if input.URL == "" {
		return file.File{}, aperrors.ErrInvalidInput
	}

	res := s.prober.Probe(ctx, input.URL)
	mimeType := defaultMimeType
	if res.MimeType != nil && *res.MimeType != "" {
		mimeType = *res.MimeType
	}
	var sizeBytes int64
	if res.SizeBytes != nil {
		sizeBytes = *res.SizeBytes
	}

	originalName := input.OriginalName
	if originalName == "" {
		if originalName = proxy.FilenameFromURL(input.URL); originalName == "" {
			originalName = proxy.DefaultFilename
		}
	}

	rec := file.File{
		OriginalName: originalName,
		URL:          input.URL,
		Category:     resolveCategory(input.Category, mimeType, file.CategoryOther),
		MimeType:     mimeType,
		SizeBytes:    sizeBytes,
		Description:  input.Description,
		UploadedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &rec); err != nil {
		return file.File{}, err
	}
	return rec, nil
}

func (s *FileService) GetByID(ctx context.Context, id bson.ObjectID) (file.File, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FileService) List(ctx context.Context, category file.Category, limit int64) ([]file.File, error) {
	return s.repo.List(ctx, category, limit)
}

func (s *FileService) UpdateMeta(ctx context.Context, id bson.ObjectID, patch file.MetaPatch) (file.File, error) {
	if patch.OriginalName == nil && patch.Description == nil {
		return file.File{}, aperrors.ErrInvalidInput
	}
	if patch.OriginalName != nil && strings.TrimSpace(*patch.OriginalName) == "" {
		return file.File{}, aperrors.ErrInvalidInput
	}
	return s.repo.UpdateMeta(ctx, id, patch)
}

// Delete always removes the record; the blob delete is best-effort and
// never fails the call. The two stores are not kept consistent.
func (s *FileService) Delete(ctx context.Context, id bson.ObjectID) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cleanupBlob(ctx, rec.BlobKey)
	return nil
}

// Reset clears every record, attempting a blob delete for each stored
// object first. Blob failures are logged and skipped.
func (s *FileService) Reset(ctx context.Context) (int64, error) {
	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	for _, rec := range recs {
		s.cleanupBlob(ctx, rec.BlobKey)
	}
	return s.repo.DeleteAll(ctx)
}

func (s *FileService) cleanupBlob(ctx context.Context, key string) {
	if key == "" || s.blobs == nil {
		return
	}
	if err := s.blobs.Delete(ctx, key); err != nil && s.logger != nil {
		s.logger.Warnf("best-effort blob delete failed for %s: %s", key, err)
	}
}

func (s *FileService) buildObjectKey(category file.Category, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	base := s.folder + "/" + string(category) + "/" + uuid.New().String()
	if ext == "" {
		return base
	}
	return base + ext
}

// resolveCategory prefers an explicitly requested category, then the MIME
// inference, then the entry point's own default. The upload and link paths
// deliberately fall back to different defaults.
func resolveCategory(requested, mimeType string, fallback file.Category) file.Category {
	if c, ok := file.ParseCategory(requested); ok {
		return c
	}
	if c := file.CategoryForMime(mimeType); c != file.CategoryOther {
		return c
	}
	return fallback
}
