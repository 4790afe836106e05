package certificate_controller

import (
	certificatemodel "github.com/sunthewhat/easy-event-api/api/model/certificateModel"
	fileuploadmodel "github.com/sunthewhat/easy-event-api/api/model/fileUploadModel"
	"github.com/sunthewhat/easy-event-api/common/util"
)

// CertificateController handles certificate listing, delivery and templates
type CertificateController struct {
	certificateRepo   certificatemodel.ICertificateRepository
	uploadRepo        fileuploadmodel.IFileUploadRepository
	storage           util.IFileStorage
	mailer            util.IMailer
	certificateBucket string
	resourceBucket    string
}

func NewCertificateController(
	certificateRepo certificatemodel.ICertificateRepository,
	uploadRepo fileuploadmodel.IFileUploadRepository,
	storage util.IFileStorage,
	mailer util.IMailer,
	certificateBucket string,
	resourceBucket string,
) *CertificateController {
	return &CertificateController{
		certificateRepo:   certificateRepo,
		uploadRepo:        uploadRepo,
		storage:           storage,
		mailer:            mailer,
		certificateBucket: certificateBucket,
		resourceBucket:    resourceBucket,
	}
}
