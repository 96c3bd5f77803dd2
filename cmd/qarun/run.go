package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax"
	"github.com/vfg2006/campaign-qa-api/infrastructure/integrator/beeswax/beeswaxclient"
	"github.com/vfg2006/campaign-qa-api/infrastructure/report"
	"github.com/vfg2006/campaign-qa-api/infrastructure/workbook"
	"github.com/vfg2006/campaign-qa-api/internal/config"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/validating/checkers"
	"github.com/vfg2006/campaign-qa-api/pkg/utils"
)

// errFindings indica que a execução terminou com findings de severidade ERROR
var errFindings = errors.New("qa finished with error findings")

type runOptions struct {
	brief       string
	sheet       string
	campaigns   []string
	out         string
	json        bool
	failOnError bool
}

type runnerFactory func(cfg *config.Config) qarunning.Runner

func defaultRunner(cfg *config.Config) qarunning.Runner {
	integrator := beeswax.New(beeswaxclient.NewClient(cfg))
	return qarunning.NewService(integrator, validating.NewDispatcher(checkers.Default()...))
}

func newRunCmd(cfg *config.Config, newRunner runnerFactory) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Executa o QA de um brief e grava o relatório",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.sheet == "" {
				opts.sheet = cfg.Brief.Sheet
			}
			return runBrief(cmd, newRunner(cfg), cfg.Brief, opts)
		},
	}

	cmd.Flags().StringVar(&opts.brief, "brief", "", "Caminho do brief (.xlsx, .xlsm ou .csv) (obrigatório)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Aba do brief (padrão: aba ativa ou BRIEF_SHEET)")
	cmd.Flags().StringSliceVar(&opts.campaigns, "campaign", nil, "Alternative id da campanha; repetível (padrão: ids encontrados no brief)")
	cmd.Flags().StringVar(&opts.out, "out", "", "Arquivo .xlsx do relatório (padrão: QA_Report_<brief>_<data>.xlsx no diretório atual)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Imprime o resumo em JSON")
	cmd.Flags().BoolVar(&opts.failOnError, "fail-on-error", false, "Sai com código 2 se houver findings de severidade ERROR")

	_ = cmd.MarkFlagRequired("brief")

	return cmd
}

func runBrief(cmd *cobra.Command, runner qarunning.Runner, briefCfg config.Brief, opts runOptions) error {
	grid, err := workbook.Load(opts.brief, opts.sheet)
	if err != nil {
		return err
	}

	result, err := runner.Run(cmd.Context(), qarunning.Input{
		BriefName:      filepath.Base(opts.brief),
		Grid:           grid,
		CampaignAltIDs: opts.campaigns,
		Config:         briefCfg.BriefingConfig(),
	})
	if err != nil {
		return err
	}

	path, err := writeReport(result, opts.out)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"brief":    result.BriefName,
		"report":   path,
		"findings": len(result.Findings),
	}).Info("qarun: relatório gravado")

	if err := printSummary(cmd.OutOrStdout(), result, path, opts.json); err != nil {
		return err
	}

	if opts.failOnError && domain.CountBySeverity(result.Findings)[domain.SeverityError] > 0 {
		return errFindings
	}
	return nil
}

func writeReport(result *domain.QAResult, out string) (string, error) {
	compiler := report.NewCompiler()
	if out == "" {
		return compiler.WriteFile(result, ".")
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "error creating dir %s", dir)
		}
	}

	file, err := os.Create(out)
	if err != nil {
		return "", errors.Wrapf(err, "error creating report %s", out)
	}
	defer file.Close()

	if err := compiler.Write(result, file); err != nil {
		return "", err
	}
	return out, nil
}

func printSummary(w io.Writer, result *domain.QAResult, path string, asJSON bool) error {
	summary := result.Summary("")
	if asJSON {
		_, err := fmt.Fprintln(w, utils.PrettyJson(map[string]any{
			"summary": summary,
			"report":  path,
		}))
		return err
	}

	lines := []string{
		fmt.Sprintf("Brief:      %s", result.BriefName),
		fmt.Sprintf("Campaigns:  %s", strings.Join(result.CampaignAltIDs, ", ")),
		fmt.Sprintf("Entities:   %d (resolved %d, unresolved %d, ambiguous %d)",
			summary.Entities, summary.Resolved, summary.Unresolved, summary.Ambiguous),
		fmt.Sprintf("Match rate: %.2f%%", utils.Percent(summary.Resolved, summary.Entities)),
		fmt.Sprintf("Findings:   %d errors, %d warnings, %d infos", summary.Errors, summary.Warnings, summary.Infos),
		fmt.Sprintf("Report:     %s", path),
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errFindings):
		return 2
	case domain.IsFatal(err):
		return 3
	}
	return 1
}
