package certificate_controller

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sunthewhat/easy-event-api/type/response"
	"github.com/sunthewhat/easy-event-api/type/shared/model"
)

const maxTemplateSize = 10 * 1024 * 1024

var templateTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"application/pdf": true,
}

// UploadTemplate stores a certificate background in the resource bucket.
func (ctrl *CertificateController) UploadTemplate(c *fiber.Ctx) error {
	file, err := c.FormFile("certificateTemplate")
	if err != nil || file.Size == 0 {
		return response.SendFailed(c, "No file uploaded")
	}
	if file.Size > maxTemplateSize {
		return response.SendFailed(c, "File size must be less than 10MB")
	}
	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	if !templateTypes[contentType] {
		return response.SendFailed(c, "Only PNG, JPG, and PDF files are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := fmt.Sprintf("certificates/template_%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
	url, err := ctrl.storage.Upload(c.UserContext(), ctrl.resourceBucket, objectName, data, contentType)
	if err != nil {
		slog.Error("Failed to upload certificate template", "error", err, "filename", file.Filename)
		return response.SendError(c, "Failed to upload template")
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		name = strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	}
	template := &model.CertificateTemplate{
		Name:     name,
		FileURL:  url,
		FileType: contentType,
		FileSize: file.Size,
	}
	if err := ctrl.certificateRepo.CreateTemplate(template); err != nil {
		if err := ctrl.storage.DeleteByURL(c.UserContext(), url, ctrl.resourceBucket); err != nil {
			slog.Warn("Failed to remove orphaned template", "error", err, "url", url)
		}
		return response.SendInternalError(c, err)
	}

	templateId := template.ID
	if err := ctrl.uploadRepo.Create(&model.FileUpload{
		Filename:     filepath.Base(objectName),
		OriginalName: file.Filename,
		FilePath:     url,
		FileSize:     file.Size,
		FileType:     contentType,
		UploadType:   model.UploadTypeCertificateTemplate,
		RelatedID:    &templateId,
	}); err != nil {
		slog.Warn("Failed to track certificate template upload", "error", err, "template_id", templateId)
	}

	slog.Info("Certificate template uploaded", "template_id", templateId, "object", objectName)
	return response.SendSuccess(c, "Template uploaded successfully", template)
}

func (ctrl *CertificateController) GetTemplates(c *fiber.Ctx) error {
	templates, err := ctrl.certificateRepo.GetTemplates()
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if templates == nil {
		templates = []*model.CertificateTemplate{}
	}
	return response.SendSuccess(c, "Templates fetched", templates)
}
