package repository

import "context"

// PlatformRepository is the interface for forwarding confirmed imports to
// the platform API.
type PlatformRepository interface {
	ConfirmImport(ctx context.Context, opt ConfirmImportOptions) (ImportReceipt, error)
}

// ImportReceipt is the platform's acknowledgment of a confirmed import.
type ImportReceipt struct {
	ImportID  string
	TaskCount int
}
