package shared

type Config struct {
	Environment       *bool              `yaml:"environment" validate:"required"`
	Port              *string            `yaml:"port" validate:"required"`
	BackendURL        *string            `yaml:"backend_url" validate:"required"`
	ServerURL         *string            `yaml:"server_url" validate:"required"`
	Cors              []*string          `yaml:"cors" validate:"required"`
	Postgres          *string            `yaml:"postgres" validate:"required"`
	Mongo             *string            `yaml:"mongo" validate:"required"`
	MongoDatabase     *string            `yaml:"mongo_database" validate:"required"`
	MinIoEndpoint     *string            `yaml:"minio_endpoint" validate:"required"`
	MinIoAccessKey    *string            `yaml:"minio_access_key" validate:"required"`
	MinIoSecretKey    *string            `yaml:"minio_secret_key" validate:"required"`
	MinIoSecure       *bool              `yaml:"minio_secure"`
	BucketResource    *string            `yaml:"bucket_resource" validate:"required"`
	BucketTicket      *string            `yaml:"bucket_ticket" validate:"required"`
	BucketCertificate *string            `yaml:"bucket_certificate" validate:"required"`
	MailHost          *string            `yaml:"mail_host" validate:"required"`
	MailPort          *int               `yaml:"mail_port"`
	MailUser          *string            `yaml:"mail_user" validate:"required"`
	MailPass          *string            `yaml:"mail_pass" validate:"required"`
	MailFrom          *string            `yaml:"mail_from"`
	SigningEnabled    *bool              `yaml:"signing_enabled"`
	SigningCertPath   *string            `yaml:"signing_cert_path"`
	SigningKeyPath    *string            `yaml:"signing_key_path"`
	TicketSheet       *TicketSheetConfig `yaml:"ticket_sheet"`
}

// TicketSheetConfig tunes offline ticket sheet generation. Every field is optional.
type TicketSheetConfig struct {
	Workers        *int    `yaml:"workers" validate:"omitempty,min=1,max=64"`
	TimeoutSeconds *int    `yaml:"timeout_seconds" validate:"omitempty,min=1"`
	FailureMode    *string `yaml:"failure_mode" validate:"omitempty,oneof=abort collect"`
	MaxUploadMB    *int    `yaml:"max_upload_mb" validate:"omitempty,min=1,max=100"`
}
