package workbook

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-qa-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// Load lê o arquivo do brief. Em planilhas xlsx usa a aba informada ou, se vazia, a aba ativa.
func Load(path, sheet string) (domain.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Grid{}, errors.Wrapf(err, "error opening brief %s", path)
	}
	defer file.Close()

	return Read(file, filepath.Base(path), sheet)
}

// Supported indica se a extensão do arquivo é um formato de brief aceito
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".csv":
		return true
	}
	return false
}

// Read lê o brief de um reader; o formato é decidido pela extensão de name
func Read(r io.Reader, name, sheet string) (domain.Grid, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return readXLSX(r, sheet)
	case ".csv":
		return readCSV(r, strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
	}
	return domain.Grid{}, errors.Wrapf(ErrUnsupportedFormat, "file %s", name)
}

func readXLSX(r io.Reader, sheet string) (domain.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.Grid{}, errors.Wrap(err, "error reading xlsx")
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Warnf("workbook: erro ao fechar planilha: %v", err)
		}
	}()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return domain.Grid{}, errors.Errorf("sheet %q not found; sheets: %v", sheet, f.GetSheetList())
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Grid{}, errors.Wrapf(err, "error reading rows of sheet %s", sheet)
	}

	logrus.WithFields(logrus.Fields{
		"sheet": sheet,
		"rows":  len(rows),
	}).Debug("workbook: planilha carregada")

	return domain.NewGrid(sheet, rows), nil
}

func readCSV(r io.Reader, sheet string) (domain.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Grid{}, errors.Wrap(err, "error reading csv")
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Grid{}, errors.Wrap(err, "error parsing csv")
	}

	return domain.NewGrid(sheet, rows), nil
}
