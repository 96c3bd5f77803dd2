// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-qa-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
)

const (
	qaRunTable     = "qa_run"
	qaFindingTable = "qa_finding"

	// Limite de parâmetros por insert em lote (o postgres aceita até 65535)
	findingBatchSize = 1000
)

var qaRunColumns = []string{
	"id",
	"brief_name",
	"sheet",
	"campaign_alt_ids",
	"status",
	"error",
	"entities",
	"resolved",
	"unresolved",
	"ambiguous",
	"infos",
	"warnings",
	"errors",
	"report_path",
	"started_at",
	"completed_at",
}

//go:generate mockgen -source=qa_run.go -destination=mocks/qa_run_mock.go -package=mocks

type QARunRepository interface {
	Save(ctx context.Context, run *domain.QARun, findings []domain.Finding) error
	GetByID(ctx context.Context, id string) (*domain.QARun, error)
	List(ctx context.Context, limit uint64) ([]*domain.QARun, error)
	GetFindings(ctx context.Context, runID string) ([]domain.Finding, error)
}

type qaRunRepository struct {
	conn postgres.Conn
}

func NewQARunRepository(conn postgres.Conn) QARunRepository {
	return &qaRunRepository{
		conn: conn,
	}
}

// Save grava o resumo da execução e todos os findings na mesma transação
func (r *qaRunRepository) Save(ctx context.Context, run *domain.QARun, findings []domain.Finding) error {
	runQuery, runArgs, err := buildInsertRun(run)
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.ExecContext(ctx, runQuery, runArgs...); err != nil {
			return fmt.Errorf("erro ao inserir execução %s: %w", run.ID, err)
		}

		for start := 0; start < len(findings); start += findingBatchSize {
			end := start + findingBatchSize
			if end > len(findings) {
				end = len(findings)
			}

			query, args, err := buildInsertFindings(run.ID, start, findings[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir query de findings: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir findings da execução %s: %w", run.ID, err)
			}
		}
		return nil
	})
}

func (r *qaRunRepository) GetByID(ctx context.Context, id string) (*domain.QARun, error) {
	query, args, err := squirrel.
		Select(qaRunColumns...).
		From(qaRunTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	run, err := scanQARun(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}
	return run, nil
}

func (r *qaRunRepository) List(ctx context.Context, limit uint64) ([]*domain.QARun, error) {
	query, args, err := buildListRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.QARun, 0)
	for rows.Next() {
		run, err := scanQARun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *qaRunRepository) GetFindings(ctx context.Context, runID string) ([]domain.Finding, error) {
	query, args, err := squirrel.
		Select("entity_id", "checker", "kind", "severity", "message").
		From(qaFindingTable).
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	findings := make([]domain.Finding, 0)
	for rows.Next() {
		var f domain.Finding
		if err := rows.Scan(&f.EntityID, &f.Checker, &f.Kind, &f.Severity, &f.Message); err != nil {
			return nil, fmt.Errorf("erro ao escanear finding: %w", err)
		}
		findings = append(findings, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return findings, nil
}

func buildInsertRun(run *domain.QARun) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert(qaRunTable).
		Columns(qaRunColumns...).
		Values(
			run.ID,
			run.BriefName,
			run.Sheet,
			pq.Array(run.CampaignAltIDs),
			run.Status,
			run.Error,
			run.Entities,
			run.Resolved,
			run.Unresolved,
			run.Ambiguous,
			run.Infos,
			run.Warnings,
			run.Errors,
			run.ReportPath,
			run.StartedAt,
			run.CompletedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildInsertFindings monta o insert em lote; offset preserva a posição global do finding na execução
func buildInsertFindings(runID string, offset int, findings []domain.Finding) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert(qaFindingTable).
		Columns("run_id", "position", "entity_id", "checker", "kind", "severity", "message").
		PlaceholderFormat(squirrel.Dollar)

	for i, f := range findings {
		query = query.Values(runID, offset+i, f.EntityID, f.Checker, f.Kind, f.Severity, f.Message)
	}

	return query.ToSql()
}

func buildListRuns(limit uint64) (string, []interface{}, error) {
	builder := squirrel.
		Select(qaRunColumns...).
		From(qaRunTable).
		OrderBy("started_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(limit)
	}
	return builder.ToSql()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanQARun(row scanner) (*domain.QARun, error) {
	run := &domain.QARun{}
	var altIDs pq.StringArray

	err := row.Scan(
		&run.ID,
		&run.BriefName,
		&run.Sheet,
		&altIDs,
		&run.Status,
		&run.Error,
		&run.Entities,
		&run.Resolved,
		&run.Unresolved,
		&run.Ambiguous,
		&run.Infos,
		&run.Warnings,
		&run.Errors,
		&run.ReportPath,
		&run.StartedAt,
		&run.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	run.CampaignAltIDs = []string(altIDs)
	return run, nil
}
