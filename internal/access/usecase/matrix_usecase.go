package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	accessService "github.com/badgeops/badgeops/internal/access/service"
	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	auditUsecase "github.com/badgeops/badgeops/internal/audit/usecase"
	"github.com/badgeops/badgeops/internal/database"
)

// matrixUseCase implements MatrixUseCase for role and matrix administration.
type matrixUseCase struct {
	roleRepo   RoleRepository
	matrixRepo MatrixRepository
	cache      accessService.MatrixCache
	auditSink  auditUsecase.Sink
	txManager  database.TxManager
}

// CreateRole creates and persists a new role with no matrix.
func (m *matrixUseCase) CreateRole(ctx context.Context, name string) (*accessDomain.Role, error) {
	role := &accessDomain.Role{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// GetRole retrieves a role by ID.
// Returns ErrRoleNotFound if the role doesn't exist.
func (m *matrixUseCase) GetRole(ctx context.Context, roleID uuid.UUID) (*accessDomain.Role, error) {
	return m.roleRepo.Get(ctx, roleID)
}

// ListRoles retrieves roles ordered by name with pagination.
func (m *matrixUseCase) ListRoles(ctx context.Context, offset, limit int) ([]*accessDomain.Role, error) {
	return m.roleRepo.List(ctx, offset, limit)
}

// Get retrieves the stored matrix for a role, bypassing the gate's cache so
// administrators always see the persisted document.
func (m *matrixUseCase) Get(ctx context.Context, roleID uuid.UUID) (*accessDomain.Matrix, error) {
	return m.matrixRepo.Get(ctx, roleID)
}

// Replace swaps the role's entire grant set. The persisted document and the
// gate's cached snapshot are refreshed together, and the mutation is recorded
// in the audit sink.
func (m *matrixUseCase) Replace(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	areas []accessDomain.AreaGrant,
) (*accessDomain.Matrix, error) {
	matrix := &accessDomain.Matrix{
		RoleID:    roleID,
		Areas:     areas,
		UpdatedAt: time.Now().UTC(),
	}

	// The role existence check and the document swap share a transaction so a
	// concurrent role deletion cannot leave an orphaned matrix.
	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := m.roleRepo.Get(ctx, roleID); err != nil {
			return err
		}
		return m.matrixRepo.Replace(ctx, matrix)
	})
	if err != nil {
		return nil, err
	}

	m.cache.Put(matrix)

	m.auditSink.Record(ctx, &auditDomain.Event{
		ActorID: actorID,
		Action:  string(accessDomain.ActionAssign),
		Area:    accessDomain.AreaRoleManagement,
		Outcome: auditDomain.OutcomeApplied,
		Metadata: map[string]any{
			"role_id": roleID.String(),
			"areas":   len(areas),
		},
	})

	return matrix, nil
}

// NewMatrixUseCase creates a MatrixUseCase with the provided dependencies.
func NewMatrixUseCase(
	roleRepo RoleRepository,
	matrixRepo MatrixRepository,
	cache accessService.MatrixCache,
	auditSink auditUsecase.Sink,
	txManager database.TxManager,
) MatrixUseCase {
	return &matrixUseCase{
		roleRepo:   roleRepo,
		matrixRepo: matrixRepo,
		cache:      cache,
		auditSink:  auditSink,
		txManager:  txManager,
	}
}
