package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxCoverageRepository struct {
	BaseRepository
}

func newPgxCoverageRepository(pool *pgxpool.Pool) portsrepo.CoverageRepositoryFacade {
	return &PgxCoverageRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CoverageRepositoryFacade = (*PgxCoverageRepository)(nil)

// ApplyCoverageOperation applies one bulk add/remove against a policy inside
// a single database transaction. The policy row is locked first so the
// balance arithmetic and the endorsement sequence are computed against a
// stable view. Per-item failures are collected; only the batch total of the
// succeeded items touches the balance. When no item succeeds the transaction
// is rolled back and nothing is persisted.
func (r *PgxCoverageRepository) ApplyCoverageOperation(ctx context.Context, op domain.CoverageOperation) (*domain.CoverageOutcome, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	now := time.Now().UTC()

	// 1. Lock the policy row and read the current balance.
	var policyNumber string
	var balanceBefore decimal.Decimal
	lockQuery := `
		SELECT policy_number, sum_insured
		FROM policies
		WHERE policy_id = $1
		FOR UPDATE;
	`
	err = tx.QueryRow(ctx, lockQuery, op.PolicyID).Scan(&policyNumber, &balanceBefore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("policy " + op.PolicyID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock policy "+op.PolicyID, err)
	}

	outcome := &domain.CoverageOutcome{
		Succeeded:     []domain.CoverageSuccess{},
		Failed:        []domain.CoverageFailure{},
		TotalAmount:   decimal.Zero,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore,
	}

	// 2. Process each item against the locked state. Failures are recorded
	// and the rest of the batch continues.
	for _, item := range op.Items {
		entityID, itemErr := r.applyItem(ctx, tx, op, item, now)
		if itemErr != nil {
			var appErr *apperrors.AppError
			if errors.As(itemErr, &appErr) && appErr.Code < 500 {
				outcome.Failed = append(outcome.Failed, domain.CoverageFailure{
					StudentID:   item.StudentID,
					StudentName: item.StudentName,
					Reason:      appErr.Message,
				})
				continue
			}
			return nil, itemErr
		}
		outcome.Succeeded = append(outcome.Succeeded, domain.CoverageSuccess{
			StudentID:   item.StudentID,
			StudentName: item.StudentName,
			EntityID:    entityID,
			Amount:      item.Amount,
			Breakdown:   item.Breakdown,
		})
		outcome.TotalAmount = outcome.TotalAmount.Add(item.Amount)
	}

	// 3. Nothing succeeded: roll back so no endorsement or audit rows remain.
	if len(outcome.Succeeded) == 0 {
		if err := r.Rollback(ctx, tx); err != nil {
			return nil, err
		}
		return outcome, nil
	}

	// 4. Adjust the policy balance by the batch total. The delta is applied
	// as an atomic SQL expression against the locked row.
	delta := outcome.TotalAmount
	if op.TransactionType == domain.Debit {
		delta = delta.Neg()
	}
	balanceQuery := `
		UPDATE policies
		SET sum_insured = sum_insured + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE policy_id = $1
		RETURNING sum_insured;
	`
	err = tx.QueryRow(ctx, balanceQuery, op.PolicyID, delta, now, op.PerformedBy).Scan(&outcome.BalanceAfter)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update policy balance for "+op.PolicyID, err)
	}

	// 5. Allocate the endorsement number from the per-policy sequence while
	// the policy row is still locked, so concurrent batches cannot collide.
	var endorseCount int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM endorsements WHERE policy_id = $1;`, op.PolicyID).Scan(&endorseCount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count endorsements for policy "+op.PolicyID, err)
	}

	endorsement := domain.Endorsement{
		EndorsementID:     uuid.New().String(),
		PolicyID:          op.PolicyID,
		EndorsementNumber: domain.FormatEndorsementNumber(policyNumber, endorseCount+1),
		Description:       op.Description,
		EffectiveDate:     op.EffectiveDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     op.PerformedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: op.PerformedBy,
		},
	}
	modelEndorsement := mapping.ToModelEndorsement(endorsement)
	endorsementQuery := `
		INSERT INTO endorsements (endorsement_id, policy_id, endorsement_number, description, effective_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, endorsementQuery,
		modelEndorsement.EndorsementID,
		modelEndorsement.PolicyID,
		modelEndorsement.EndorsementNumber,
		modelEndorsement.Description,
		modelEndorsement.EffectiveDate,
		modelEndorsement.CreatedAt,
		modelEndorsement.CreatedBy,
		modelEndorsement.LastUpdatedAt,
		modelEndorsement.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert endorsement "+endorsement.EndorsementNumber, err)
	}

	// 6. Batch the dependent rows: endorsement links, audit trail, premiums.
	// BalanceBefore/BalanceAfter are the whole-batch values, stamped
	// identically on every audit row of this operation.
	batch := &pgx.Batch{}
	linkQuery := `
		INSERT INTO endorsement_entities (endorsement_id, entity_id)
		VALUES ($1, $2);
	`
	auditQuery := `
		INSERT INTO audit_logs (audit_id, action, entity_type, entity_id, policy_id, endorsement_id, amount, transaction_type, balance_before, balance_after, metadata, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	premiumQuery := `
		INSERT INTO student_policy_premiums (premium_id, student_id, policy_id, endorsement_id, sum_insured, rate, annual_premium, date_of_joining, date_of_exit, pro_rata_days, pro_rata_premium, gst_rate, gst_amount, final_premium, premium_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	action := domain.ActionAddStudent
	premiumType := domain.PremiumAddition
	if op.Action == domain.CoverageRemove {
		action = domain.ActionRemoveStudent
		premiumType = domain.PremiumRemoval
	}
	for _, s := range outcome.Succeeded {
		batch.Queue(linkQuery, endorsement.EndorsementID, s.EntityID)

		entry := domain.AuditEntry{
			AuditID:         uuid.New().String(),
			Action:          action,
			EntityType:      string(domain.EntityStudent),
			EntityID:        s.EntityID,
			PolicyID:        op.PolicyID,
			EndorsementID:   endorsement.EndorsementID,
			Amount:          s.Amount,
			TransactionType: op.TransactionType,
			BalanceBefore:   outcome.BalanceBefore,
			BalanceAfter:    outcome.BalanceAfter,
			Metadata: map[string]any{
				"studentID":         s.StudentID,
				"studentName":       s.StudentName,
				"endorsementNumber": endorsement.EndorsementNumber,
			},
			PerformedBy: op.PerformedBy,
			CreatedAt:   now,
		}
		modelEntry, mapErr := mapping.ToModelAuditLog(entry)
		if mapErr != nil {
			return nil, apperrors.NewAppError(500, "failed to encode audit metadata", mapErr)
		}
		batch.Queue(auditQuery,
			modelEntry.AuditID,
			modelEntry.Action,
			modelEntry.EntityType,
			modelEntry.EntityID,
			modelEntry.PolicyID,
			modelEntry.EndorsementID,
			modelEntry.Amount,
			modelEntry.TransactionType,
			modelEntry.BalanceBefore,
			modelEntry.BalanceAfter,
			modelEntry.Metadata,
			modelEntry.PerformedBy,
			modelEntry.CreatedAt,
		)

		if s.Breakdown != nil {
			premium := mapping.ToModelStudentPremium(domain.StudentPolicyPremium{
				PremiumID:     uuid.New().String(),
				StudentID:     s.StudentID,
				PolicyID:      op.PolicyID,
				EndorsementID: endorsement.EndorsementID,
				Breakdown:     *s.Breakdown,
				PremiumType:   premiumType,
				CreatedAt:     now,
			})
			batch.Queue(premiumQuery,
				premium.PremiumID,
				premium.StudentID,
				premium.PolicyID,
				premium.EndorsementID,
				premium.SumInsured,
				premium.Rate,
				premium.AnnualPremium,
				premium.DateOfJoining,
				premium.DateOfExit,
				premium.ProRataDays,
				premium.ProRataPremium,
				premium.GSTRate,
				premium.GSTAmount,
				premium.FinalPremium,
				premium.PremiumType,
				premium.CreatedAt,
			)
		}
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute batch for endorsement "+endorsement.EndorsementNumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	entityIDs := make([]string, len(outcome.Succeeded))
	for i, s := range outcome.Succeeded {
		entityIDs[i] = s.EntityID
	}
	endorsement.EntityIDs = entityIDs
	outcome.Endorsement = &endorsement
	return outcome, nil
}

// applyItem processes one student inside the batch transaction, returning the
// entity ID it touched. Item-level refusals come back as AppErrors with a 4xx
// code; anything else aborts the whole batch.
func (r *PgxCoverageRepository) applyItem(ctx context.Context, tx pgx.Tx, op domain.CoverageOperation, item domain.CoverageItem, now time.Time) (string, error) {
	entityID, err := r.resolveEntityInTx(ctx, tx, item.Entity, op.Action == domain.CoverageAdd, now)
	if err != nil {
		return "", err
	}
	if entityID == "" {
		return "", apperrors.NewAppError(404, "student is not covered by this policy", nil)
	}

	if op.Action == domain.CoverageAdd {
		var exists bool
		checkQuery := `
			SELECT EXISTS (
				SELECT 1 FROM policy_entities
				WHERE policy_id = $1 AND entity_id = $2 AND status = 'ACTIVE'
			);
		`
		if err := tx.QueryRow(ctx, checkQuery, op.PolicyID, entityID).Scan(&exists); err != nil {
			return "", apperrors.NewAppError(500, "failed to check existing coverage", err)
		}
		if exists {
			return "", apperrors.NewAppError(409, "student is already covered by this policy", nil)
		}

		attachment := models.CoverageAttachment{
			AttachmentID:  uuid.New().String(),
			PolicyID:      op.PolicyID,
			EntityID:      entityID,
			EffectiveDate: op.EffectiveDate,
			Status:        string(domain.AttachmentActive),
			AuditFields: models.AuditFields{
				CreatedAt:     now,
				CreatedBy:     op.PerformedBy,
				LastUpdatedAt: now,
				LastUpdatedBy: op.PerformedBy,
			},
		}
		if item.Breakdown != nil {
			attachment.EffectiveDate = item.Breakdown.DateOfJoining
		}
		insertQuery := `
			INSERT INTO policy_entities (attachment_id, policy_id, entity_id, effective_date, status, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`
		_, err := tx.Exec(ctx, insertQuery,
			attachment.AttachmentID,
			attachment.PolicyID,
			attachment.EntityID,
			attachment.EffectiveDate,
			attachment.Status,
			attachment.CreatedAt,
			attachment.CreatedBy,
			attachment.LastUpdatedAt,
			attachment.LastUpdatedBy,
		)
		if err != nil {
			return "", apperrors.NewAppError(500, "failed to insert coverage attachment", err)
		}
		return entityID, nil
	}

	// Removal terminates the active attachment; the row stays for history.
	terminateQuery := `
		UPDATE policy_entities
		SET status = 'TERMINATED',
		    termination_date = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE policy_id = $1 AND entity_id = $2 AND status = 'ACTIVE';
	`
	terminationDate := op.EffectiveDate
	if item.Breakdown != nil {
		terminationDate = item.Breakdown.DateOfExit
	}
	tag, err := tx.Exec(ctx, terminateQuery, op.PolicyID, entityID, terminationDate, now, op.PerformedBy)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to terminate coverage attachment", err)
	}
	if tag.RowsAffected() == 0 {
		return "", apperrors.NewAppError(404, "student is not covered by this policy", nil)
	}
	return entityID, nil
}

// resolveEntityInTx finds the wrapper row for a backing record inside the
// transaction, creating it when createMissing is set. Returns "" when the
// wrapper does not exist and may not be created.
func (r *PgxCoverageRepository) resolveEntityInTx(ctx context.Context, tx pgx.Tx, candidate domain.Entity, createMissing bool, now time.Time) (string, error) {
	var entityID string
	findQuery := `
		SELECT entity_id FROM entities
		WHERE entity_type = $1 AND ref_id = $2;
	`
	err := tx.QueryRow(ctx, findQuery, string(candidate.Type), candidate.RefID).Scan(&entityID)
	if err == nil {
		return entityID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.NewAppError(500, "failed to resolve entity for "+candidate.RefID, err)
	}
	if !createMissing {
		return "", nil
	}

	modelEntity := mapping.ToModelEntity(candidate)
	modelEntity.CreatedAt = now
	modelEntity.LastUpdatedAt = now
	insertQuery := `
		INSERT INTO entities (entity_id, company_id, entity_type, ref_id, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelEntity.EntityID,
		modelEntity.CompanyID,
		modelEntity.Type,
		modelEntity.RefID,
		modelEntity.Description,
		modelEntity.CreatedAt,
		modelEntity.CreatedBy,
		modelEntity.LastUpdatedAt,
		modelEntity.LastUpdatedBy,
	)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to insert entity for "+candidate.RefID, err)
	}
	return candidate.EntityID, nil
}

func (r *PgxCoverageRepository) FindAttachmentsByPolicy(ctx context.Context, policyID string, activeOnly bool) ([]domain.CoverageAttachment, error) {
	query := `
		SELECT attachment_id, policy_id, entity_id, effective_date, termination_date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM policy_entities
		WHERE policy_id = $1
	`
	if activeOnly {
		query += ` AND status = 'ACTIVE'`
	}
	query += ` ORDER BY effective_date DESC, attachment_id;`

	rows, err := r.Pool.Query(ctx, query, policyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments for policy "+policyID, err)
	}
	defer rows.Close()

	return scanAttachments(rows)
}

func (r *PgxCoverageRepository) FindAttachmentsByEntity(ctx context.Context, entityID string) ([]domain.CoverageAttachment, error) {
	query := `
		SELECT attachment_id, policy_id, entity_id, effective_date, termination_date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM policy_entities
		WHERE entity_id = $1
		ORDER BY effective_date DESC, attachment_id;
	`
	rows, err := r.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attachments for entity "+entityID, err)
	}
	defer rows.Close()

	return scanAttachments(rows)
}

func (r *PgxCoverageRepository) CountActiveAttachments(ctx context.Context, policyID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM policy_entities WHERE policy_id = $1 AND status = 'ACTIVE';`
	if err := r.Pool.QueryRow(ctx, query, policyID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count attachments for policy "+policyID, err)
	}
	return count, nil
}

func (r *PgxCoverageRepository) FindActiveEntityIDsByPolicy(ctx context.Context, policyID string) ([]string, error) {
	query := `
		SELECT entity_id FROM policy_entities
		WHERE policy_id = $1 AND status = 'ACTIVE'
		ORDER BY entity_id;
	`
	rows, err := r.Pool.Query(ctx, query, policyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query covered entities for policy "+policyID, err)
	}
	defer rows.Close()

	entityIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entity id", err)
		}
		entityIDs = append(entityIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating covered entities", err)
	}
	return entityIDs, nil
}

func scanAttachments(rows pgx.Rows) ([]domain.CoverageAttachment, error) {
	attachments := []domain.CoverageAttachment{}
	for rows.Next() {
		var m models.CoverageAttachment
		err := rows.Scan(
			&m.AttachmentID,
			&m.PolicyID,
			&m.EntityID,
			&m.EffectiveDate,
			&m.TerminationDate,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attachment row", err)
		}
		attachments = append(attachments, mapping.ToDomainAttachment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attachment rows", err)
	}
	return attachments, nil
}
