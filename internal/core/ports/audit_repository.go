package ports

import (
	"context"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

// AuditRepository persists role-change audit records.
type AuditRepository interface {
	Insert(ctx context.Context, a *domain.RoleAudit) error
}
