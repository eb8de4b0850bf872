package archive

import (
	"bytes"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/tozoll/legal-ai-analyzer/internal/config"
	"github.com/tozoll/legal-ai-analyzer/internal/utils"
)

const (
	contractsPrefix = "contracts"
	reportsPrefix   = "reports"
)

// Client archives uploaded contracts and exported reports. Archiving is
// best-effort: callers log failures and continue without an archive path.
type Client struct {
	backend Provider
}

func New(cfg *config.Config) *Client {
	var backend Provider

	if cfg.Archive.Provider == "s3" {
		s3Config := &aws.Config{
			Credentials:      credentials.NewStaticCredentials(cfg.Archive.KeyID, cfg.Archive.AppKey, ""),
			Endpoint:         aws.String(cfg.Archive.Endpoint),
			Region:           aws.String(cfg.Archive.Region),
			S3ForcePathStyle: aws.Bool(true),
		}
		sess := session.Must(session.NewSession(s3Config))
		backend = NewS3Provider(sess, cfg.Archive.Bucket)
	} else {
		backend = NewLocalProvider(cfg.Archive.LocalDir)
	}

	return &Client{backend: backend}
}

// NewWithProvider wires an explicit backend, used by tests.
func NewWithProvider(backend Provider) *Client {
	return &Client{backend: backend}
}

// SaveContract stores the original upload under
// contracts/<logID>_<sanitizedName> and returns that key.
func (c *Client) SaveContract(logID, filename, contentType string, data []byte) (string, error) {
	key := path.Join(contractsPrefix, fmt.Sprintf("%s_%s", logID, utils.SanitizeFilename(filename)))
	if err := c.backend.Put(key, bytes.NewReader(data), contentType); err != nil {
		return "", err
	}
	return key, nil
}

// SaveReport stores an exported report PDF under
// reports/<logID>_<sanitizedBase>_report.pdf and returns that key.
func (c *Client) SaveReport(logID, originalFilename string, pdf []byte) (string, error) {
	key := path.Join(reportsPrefix, fmt.Sprintf("%s_%s_report.pdf", logID, utils.BaseWithoutExt(originalFilename)))
	if err := c.backend.Put(key, bytes.NewReader(pdf), "application/pdf"); err != nil {
		return "", err
	}
	return key, nil
}

// ListContracts returns the keys of every archived upload.
func (c *Client) ListContracts() ([]string, error) {
	return c.backend.List(contractsPrefix + "/")
}

// Get retrieves an archived object by key.
func (c *Client) Get(key string) (*FileObject, error) {
	return c.backend.Get(key)
}

// Delete removes an archived object by key.
func (c *Client) Delete(key string) error {
	return c.backend.Delete(key)
}
