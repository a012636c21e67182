// Package usecase implements business logic orchestration for the credential
// lifecycle.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/badgeops/badgeops/internal/access/domain"
	accessUsecase "github.com/badgeops/badgeops/internal/access/usecase"
	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	auditUsecase "github.com/badgeops/badgeops/internal/audit/usecase"
	"github.com/badgeops/badgeops/internal/config"
	credentialDomain "github.com/badgeops/badgeops/internal/credential/domain"
	credentialService "github.com/badgeops/badgeops/internal/credential/service"
)

// credentialUseCase implements CredentialUseCase.
type credentialUseCase struct {
	cfg            *config.Config
	credentialRepo CredentialRepository
	codeService    credentialService.CodeService
	gate           accessUsecase.AccessGate
	auditSink      auditUsecase.Sink
}

// Create issues a new credential record in status created.
// Requires generate on the issuance area.
func (c *credentialUseCase) Create(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	input *CreateCredentialInput,
) (*credentialDomain.Credential, error) {
	if err := c.gate.Authorize(
		ctx, actorID, roleID,
		accessDomain.AreaCredentialIssuance, accessDomain.ActionGenerate,
	); err != nil {
		return nil, err
	}

	code, err := c.codeService.GenerateCode()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	credential := &credentialDomain.Credential{
		ID:         uuid.Must(uuid.NewV7()),
		EmployeeID: input.EmployeeID,
		TemplateID: input.TemplateID,
		VerifyCode: code,
		Status:     credentialDomain.StatusCreated,
		IssuedAt:   now,
		ExpiresAt:  now.Add(c.cfg.CredentialValidity),
		CreatedBy:  actorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.credentialRepo.Create(ctx, credential); err != nil {
		return nil, err
	}

	c.auditSink.Record(ctx, &auditDomain.Event{
		ActorID:  actorID,
		Action:   string(accessDomain.ActionGenerate),
		Area:     accessDomain.AreaCredentialIssuance,
		RecordID: &credential.ID,
		Outcome:  auditDomain.OutcomeApplied,
		Metadata: map[string]any{
			"employee_id": credential.EmployeeID.String(),
			"status":      string(credential.Status),
		},
	})

	return credential, nil
}

// Get retrieves a credential with its effective status.
func (c *credentialUseCase) Get(ctx context.Context, credentialID uuid.UUID) (*credentialDomain.Credential, error) {
	credential, err := c.credentialRepo.Get(ctx, credentialID)
	if err != nil {
		return nil, err
	}

	credential.Status = credential.EffectiveStatus(time.Now().UTC())
	return credential, nil
}

// List retrieves credentials with effective statuses.
func (c *credentialUseCase) List(
	ctx context.Context,
	offset, limit int,
	employeeID *uuid.UUID,
) ([]*credentialDomain.Credential, error) {
	credentials, err := c.credentialRepo.List(ctx, offset, limit, employeeID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, credential := range credentials {
		credential.Status = credential.EffectiveStatus(now)
	}
	return credentials, nil
}

// RequestTransition advances a record along one edge of the transition table.
func (c *credentialUseCase) RequestTransition(
	ctx context.Context,
	actorID, roleID uuid.UUID,
	credentialID uuid.UUID,
	target credentialDomain.Status,
) (*credentialDomain.Credential, error) {
	if !target.Valid() {
		return nil, credentialDomain.ErrUnknownStatus
	}

	credential, err := c.credentialRepo.Get(ctx, credentialID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// An overdue record is materialized as expired before the requested edge
	// is evaluated. The swap is idempotent: if a concurrent caller already
	// expired the record, losing the race leaves the same stored fact.
	if !credential.Status.Terminal() && credential.EffectiveStatus(now) == credentialDomain.StatusExpired {
		if _, err := c.credentialRepo.SwapStatus(
			ctx, credential.ID,
			credential.Status, credentialDomain.StatusExpired,
			nil, now,
		); err != nil {
			return nil, err
		}
		credential.Status = credentialDomain.StatusExpired
		credential.UpdatedAt = now
	}

	action, ok := credentialDomain.TransitionAction(credential.Status, target)
	if !ok {
		return nil, credentialDomain.ErrTransitionNotAllowed
	}

	if err := c.gate.Authorize(
		ctx, actorID, roleID,
		accessDomain.AreaCredentialIssuance, action,
	); err != nil {
		return nil, err
	}

	var printedBy *uuid.UUID
	if target == credentialDomain.StatusPrinted {
		printedBy = &actorID
	}

	swapped, err := c.credentialRepo.SwapStatus(ctx, credential.ID, credential.Status, target, printedBy, now)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// The record moved on under a concurrent transition; the caller holds
		// stale state and must re-fetch.
		return nil, credentialDomain.ErrTransitionNotAllowed
	}

	from := credential.Status
	credential.Status = target
	credential.UpdatedAt = now
	if target == credentialDomain.StatusPrinted {
		credential.PrintedBy = printedBy
		credential.PrintedAt = &now
	}

	c.auditSink.Record(ctx, &auditDomain.Event{
		ActorID:  actorID,
		Action:   string(action),
		Area:     accessDomain.AreaCredentialIssuance,
		RecordID: &credential.ID,
		Outcome:  auditDomain.OutcomeApplied,
		Metadata: map[string]any{
			"from": string(from),
			"to":   string(target),
		},
	})

	return credential, nil
}

// Delete removes a record outright, gated by delete on the issuance area.
func (c *credentialUseCase) Delete(ctx context.Context, actorID, roleID, credentialID uuid.UUID) error {
	if err := c.gate.Authorize(
		ctx, actorID, roleID,
		accessDomain.AreaCredentialIssuance, accessDomain.ActionDelete,
	); err != nil {
		return err
	}

	if err := c.credentialRepo.Delete(ctx, credentialID); err != nil {
		return err
	}

	c.auditSink.Record(ctx, &auditDomain.Event{
		ActorID:  actorID,
		Action:   string(accessDomain.ActionDelete),
		Area:     accessDomain.AreaCredentialIssuance,
		RecordID: &credentialID,
		Outcome:  auditDomain.OutcomeApplied,
	})

	return nil
}

// ExpireOverdue materializes expired status in bulk.
func (c *credentialUseCase) ExpireOverdue(ctx context.Context) (int64, error) {
	return c.credentialRepo.ExpireOverdue(ctx, time.Now().UTC())
}

// NewCredentialUseCase creates a CredentialUseCase with the provided dependencies.
func NewCredentialUseCase(
	cfg *config.Config,
	credentialRepo CredentialRepository,
	codeService credentialService.CodeService,
	gate accessUsecase.AccessGate,
	auditSink auditUsecase.Sink,
) CredentialUseCase {
	return &credentialUseCase{
		cfg:            cfg,
		credentialRepo: credentialRepo,
		codeService:    codeService,
		gate:           gate,
		auditSink:      auditSink,
	}
}
