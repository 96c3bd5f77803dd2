package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/infrastructure/workbook"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/briefing"
	"github.com/vfg2006/campaign-qa-api/internal/usecases/qarunning"
	"github.com/vfg2006/campaign-qa-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-qa-api/pkg/log"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// QARunOptions são os parâmetros de execução vindos da configuração
type QARunOptions struct {
	MaxUploadBytes int64
	Sheet          string
	BriefConfig    briefing.Config
}

type CreateRunResponse struct {
	Run      *domain.QARun             `json:"run"`
	Checkers []string                  `json:"checkers"`
	Layout   domain.BriefLayout        `json:"layout"`
	Entities []domain.ReconciledEntity `json:"entities"`
	Findings []domain.Finding          `json:"findings"`
}

// CreateRun recebe o brief por multipart (campo brief) e executa o QA.
// campaign_ids é opcional e aceita o campo repetido ou uma lista separada por vírgula.
func CreateRun(runner qarunning.Runner, opts QARunOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)
		if err := r.ParseMultipartForm(opts.MaxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Brief acima do limite de upload", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		file, header, err := r.FormFile("brief")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O arquivo do brief (campo brief) é obrigatório", nil)
			return
		}
		defer file.Close()

		sheet := r.FormValue("sheet")
		if sheet == "" {
			sheet = opts.Sheet
		}

		grid, err := workbook.Read(file, header.Filename, sheet)
		if err != nil {
			logger.WithError(err).Warn("Brief ilegível")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o brief", err.Error())
			return
		}

		run, result, err := runner.RunAndStore(r.Context(), qarunning.Input{
			BriefName:      filepath.Base(header.Filename),
			Grid:           grid,
			CampaignAltIDs: campaignIDs(r.MultipartForm.Value["campaign_ids"]),
			Config:         opts.BriefConfig,
		})
		if err != nil {
			writeRunError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateRunResponse{
			Run:      run,
			Checkers: result.Checkers,
			Layout:   result.Layout,
			Entities: result.Entities,
			Findings: result.Findings,
		})
	}
}

func writeRunError(w http.ResponseWriter, err error) {
	logrus.WithError(err).Error("Erro ao executar QA do brief")

	if domain.IsFatal(err) {
		apiErrors.WriteError(w, apiErrors.ErrMalformedBrief, "Brief malformado", err.Error())
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao executar QA do brief", err.Error())
}

// campaignIDs normaliza os ids informados, aceitando listas separadas por vírgula
func campaignIDs(values []string) []string {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			id = strings.TrimSpace(id)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func ListRuns(runner qarunning.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultListLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(parsed, maxListLimit)
		}

		runs, err := runner.ListRuns(r.Context(), limit)
		if err != nil {
			writeStorageError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}

func GetRun(runner qarunning.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := runner.GetRun(r.Context(), id)
		if err != nil {
			writeStorageError(w, err)
			return
		}
		if detail == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, fmt.Sprintf("Execução %s não encontrada", id), nil)
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

// DownloadReport envia o relatório xlsx gravado pela execução
func DownloadReport(runner qarunning.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := runner.GetRun(r.Context(), id)
		if err != nil {
			writeStorageError(w, err)
			return
		}
		if detail == nil || detail.Run.ReportPath == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, fmt.Sprintf("Relatório da execução %s não encontrado", id), nil)
			return
		}

		path := *detail.Run.ReportPath
		file, err := os.Open(path)
		if err != nil {
			logrus.WithError(err).WithField("run_id", id).Error("Relatório registrado mas ausente no disco")
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Arquivo do relatório não encontrado", nil)
			return
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler relatório", nil)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
		http.ServeContent(w, r, filepath.Base(path), info.ModTime(), file)
	}
}

func writeStorageError(w http.ResponseWriter, err error) {
	if errors.Is(err, qarunning.ErrStorageDisabled) {
		apiErrors.WriteError(w, apiErrors.ErrStorageDisabled, "Persistência de execuções desabilitada", nil)
		return
	}
	logrus.WithError(err).Error("Erro ao consultar execuções")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar execuções", nil)
}
