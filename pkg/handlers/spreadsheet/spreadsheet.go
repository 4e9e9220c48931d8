// Package spreadsheet renders the computed report as a multi sheet xlsx
// workbook: one sheet per event plus the Final Summary and Loss&Profit
// sheets. Layout and styling reproduce the workbook the association has
// filed for years, so the aggregation core can change underneath without
// anyone noticing in the output.
package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/bernatfelip/cuentas/pkg/services/reporter"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	summarySheetName       = "Final Summary"
	profitAndLossSheetName = "Loss&Profit"
)

type spreadsheetHandler struct {
	log         *zap.Logger
	reporterSvc reporter.Service
}

func New(log *zap.Logger, reporterSvc reporter.Service) *spreadsheetHandler {
	return &spreadsheetHandler{
		log:         log,
		reporterSvc: reporterSvc,
	}
}

// Write builds the report and saves the rendered workbook. Nothing is
// written when any stage fails.
func (h *spreadsheetHandler) Write(path string, liquidity reporter.Liquidity) error {
	report, err := h.reporterSvc.Report(liquidity)
	if err != nil {
		return errors.Wrap(err, "unable to build report")
	}
	workbook, err := Render(report)
	if err != nil {
		return errors.Wrap(err, "unable to render workbook")
	}
	if err := workbook.SaveAs(path); err != nil {
		return errors.Wrapf(err, "unable to save workbook: %s", path)
	}
	h.log.Info("workbook written",
		zap.String("file", path),
		zap.Int("event_sheets", len(report.Events)),
	)
	return nil
}

// Render builds the whole workbook in memory.
func Render(report *reporter.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create cell styles")
	}
	for _, event := range report.Events {
		if err := writeEventSheet(f, st, event); err != nil {
			return nil, errors.Wrapf(err, "error writing sheet for event: %s", event.Event)
		}
	}
	if err := writeSummarySheet(f, st, report.Summary); err != nil {
		return nil, errors.Wrap(err, "error writing summary sheet")
	}
	if err := writeProfitAndLossSheet(f, st, report.ProfitLoss); err != nil {
		return nil, errors.Wrap(err, "error writing loss&profit sheet")
	}
	// Drop the empty sheet excelize starts every workbook with.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "unable to remove default sheet")
	}
	return f, nil
}

type styles struct {
	header int
	cell   int
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"9FF9FF"}},
		Border:    borders(2),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return styles{}, errors.Wrap(err, "header style")
	}
	cell, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri"},
		Border:    borders(1),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return styles{}, errors.Wrap(err, "cell style")
	}
	return styles{header: header, cell: cell}, nil
}

// borders builds the four sided black border, style 1 is thin and 2 is
// medium in excelize terms.
func borders(style int) []excelize.Border {
	sides := []string{"top", "left", "right", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		out = append(out, excelize.Border{Type: side, Color: "000000", Style: style})
	}
	return out
}

// sheetWriter wraps one sheet and remembers the first error, keeping the
// cell by cell layout code below readable.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	st    styles
	err   error
}

func newSheetWriter(f *excelize.File, st styles, sheet string) (*sheetWriter, error) {
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, errors.Wrapf(err, "unable to create sheet: %s", sheet)
	}
	return &sheetWriter{f: f, sheet: sheet, st: st}, nil
}

func (w *sheetWriter) header(ref string, value interface{}) {
	w.set(ref, value)
	w.style(ref, w.st.header)
}

func (w *sheetWriter) headerStyle(ref string) {
	w.style(ref, w.st.header)
}

func (w *sheetWriter) cell(ref string, value interface{}) {
	w.set(ref, value)
	w.style(ref, w.st.cell)
}

func (w *sheetWriter) set(ref string, value interface{}) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, ref, value)
}

func (w *sheetWriter) style(ref string, styleID int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, ref, ref, styleID)
}

func (w *sheetWriter) merge(hRef, vRef string) {
	if w.err != nil {
		return
	}
	w.err = w.f.MergeCell(w.sheet, hRef, vRef)
}

func (w *sheetWriter) width(col string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, col, col, width)
}

func (w *sheetWriter) error() error {
	return errors.Wrapf(w.err, "sheet: %s", w.sheet)
}

func ref(col string, row int) string {
	return col + strconv.Itoa(row)
}

var sheetNameReplacer = strings.NewReplacer(
	":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ",
)

// sheetName cleans an event name up to Excel's sheet naming rules: no
// more than 31 characters and none of the reserved characters.
func sheetName(name string) string {
	cleaned := []rune(sheetNameReplacer.Replace(name))
	if len(cleaned) > 31 {
		cleaned = cleaned[:31]
	}
	return string(cleaned)
}
