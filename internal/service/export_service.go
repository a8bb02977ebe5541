package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/resource-crud-api/internal/httperr"
	"github.com/resource-crud-api/internal/models"
	"github.com/resource-crud-api/internal/repository"
	"github.com/rs/zerolog"
)

// Export formats
const (
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// ContentType returns the media type for an export format
func ContentType(format string) string {
	switch format {
	case FormatNDJSON:
		return "application/x-ndjson"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/json"
	}
}

// ValidFormat reports whether format is a supported export format
func ValidFormat(format string) bool {
	return format == FormatJSON || format == FormatNDJSON || format == FormatCSV
}

// exportService is the concrete implementation of ExportService
type exportService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(repos *repository.Repositories, log zerolog.Logger) *exportService {
	return &exportService{
		repos: repos,
		log:   log.With().Str("service", "export").Logger(),
	}
}

// Stream writes every record of resource to w in the given format
func (s *exportService) Stream(ctx context.Context, w io.Writer, resource, format string) error {
	if !ValidFormat(format) {
		return httperr.New(http.StatusBadRequest, "format must be one of: json, ndjson, csv")
	}

	s.log.Info().Str("resource", resource).Str("format", format).Msg("Starting export")

	var (
		count int
		err   error
	)
	switch resource {
	case models.ResourceUsers:
		count, err = streamRecords(ctx, w, format, s.repos.User.StreamAll,
			[]string{"name", "username", "email"},
			func(u *models.User) []string { return []string{u.Name, u.Username, u.Email} })
	case models.ResourcePosts:
		count, err = streamRecords(ctx, w, format, s.repos.Post.StreamAll,
			[]string{"userId", "title", "content"},
			func(p *models.Post) []string { return []string{p.UserID, p.Title, p.Content} })
	case models.ResourceComments:
		count, err = streamRecords(ctx, w, format, s.repos.Comment.StreamAll,
			[]string{"name", "comment", "date"},
			func(c *models.Comment) []string {
				return []string{c.Name, c.Comment, models.FormatDate(c.Date)}
			})
	default:
		return httperr.New(http.StatusNotFound, "Resource Not Found")
	}

	if err != nil {
		return fmt.Errorf("failed to export %s: %w", resource, err)
	}

	s.log.Info().Str("resource", resource).Int("count", count).Msg("Export completed")
	return nil
}

// GetCount returns count for a resource
func (s *exportService) GetCount(ctx context.Context, resource string) (int, error) {
	switch resource {
	case models.ResourceUsers:
		return s.repos.User.Count(ctx)
	case models.ResourcePosts:
		return s.repos.Post.Count(ctx)
	case models.ResourceComments:
		return s.repos.Comment.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown resource: %s", resource)
	}
}

// streamRecords writes each streamed record to w and returns how many were
// written
func streamRecords[T any](
	ctx context.Context,
	w io.Writer,
	format string,
	stream func(context.Context, func(*T) error) error,
	header []string,
	row func(*T) []string,
) (int, error) {
	count := 0

	switch format {
	case FormatNDJSON:
		enc := json.NewEncoder(w)
		err := stream(ctx, func(record *T) error {
			count++
			return enc.Encode(record)
		})
		return count, err

	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write(header); err != nil {
			return 0, err
		}
		err := stream(ctx, func(record *T) error {
			count++
			return writer.Write(row(record))
		})
		writer.Flush()
		if err == nil {
			err = writer.Error()
		}
		return count, err

	default:
		if _, err := io.WriteString(w, "["); err != nil {
			return 0, err
		}
		err := stream(ctx, func(record *T) error {
			if count > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			count++

			data, err := json.Marshal(record)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		})
		if _, werr := io.WriteString(w, "]"); err == nil {
			err = werr
		}
		return count, err
	}
}
