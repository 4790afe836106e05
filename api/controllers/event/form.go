package event_controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/type/payload"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

const maxDesignSize = 10 * 1024 * 1024

var designTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseEventForm reads and validates the multipart event form. The returned
// string is a client-facing message when the form is rejected.
func parseEventForm(c *fiber.Ctx) (*payload.EventPayload, string) {
	body := &payload.EventPayload{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Slug:        strings.TrimSpace(c.FormValue("slug")),
		Type:        strings.TrimSpace(c.FormValue("type")),
		Location:    strings.TrimSpace(c.FormValue("location")),
		Description: c.FormValue("description"),
	}

	if raw := c.FormValue("startTime"); raw != "" {
		t, ok := parseTime(raw)
		if !ok {
			return nil, "startTime is not a valid date"
		}
		body.StartTime = t
	}
	if raw := c.FormValue("endTime"); raw != "" {
		t, ok := parseTime(raw)
		if !ok {
			return nil, "endTime is not a valid date"
		}
		body.EndTime = t
	}

	if raw := c.FormValue("quota"); raw != "" {
		quota, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, "Quota must be a number"
		}
		body.Quota = quota
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return nil, errors[0]
	}
	return body, ""
}

// designFile returns the optional ticket design upload. A missing or empty file is not an error.
func designFile(c *fiber.Ctx) (*multipart.FileHeader, string) {
	file, err := c.FormFile("ticketDesign")
	if err != nil || file.Size == 0 {
		return nil, ""
	}
	if file.Size > maxDesignSize {
		return nil, "File size must be less than 10MB"
	}
	if !designTypes[strings.ToLower(file.Header.Get("Content-Type"))] {
		return nil, "Only PNG, JPG, and GIF files are allowed"
	}
	return file, ""
}

// uploadDesign stores the design in the resource bucket and returns its bookkeeping row.
func (ctrl *EventController) uploadDesign(ctx context.Context, file *multipart.FileHeader) (*model.FileUpload, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open ticket design: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read ticket design: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := fmt.Sprintf("designs/ticket_%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")

	url, err := ctrl.storage.Upload(ctx, ctrl.designBucket, objectName, data, contentType)
	if err != nil {
		return nil, err
	}

	slog.Info("Ticket design uploaded", "object", objectName, "size", file.Size)
	return &model.FileUpload{
		Filename:     filepath.Base(objectName),
		OriginalName: file.Filename,
		FilePath:     url,
		FileSize:     file.Size,
		FileType:     contentType,
		UploadType:   model.UploadTypeTicketDesign,
	}, nil
}

// trackUpload records the upload. Bookkeeping failures never fail the request.
func (ctrl *EventController) trackUpload(upload *model.FileUpload, eventId int64) {
	upload.RelatedID = &eventId
	if err := ctrl.uploadRepo.Create(upload); err != nil {
		slog.Warn("Failed to track ticket design upload", "error", err, "event_id", eventId)
	}
}

func (ctrl *EventController) removeDesign(ctx context.Context, url string) {
	if err := ctrl.storage.DeleteByURL(ctx, url, ctrl.designBucket); err != nil {
		slog.Warn("Failed to remove ticket design", "error", err, "url", url)
	}
}

func applyPayload(event *model.Event, body *payload.EventPayload) {
	event.Name = body.Name
	event.Slug = body.Slug
	event.Type = body.Type
	event.Location = body.Location
	event.Description = body.Description
	event.StartTime = body.StartTime
	event.EndTime = body.EndTime
	event.Quota = body.Quota
}

func applyDesign(event *model.Event, upload *model.FileUpload) {
	event.TicketDesign = &upload.FilePath
	event.TicketDesignSize = &upload.FileSize
	event.TicketDesignType = &upload.FileType
}
