// Package report writes the periodic CSV sample of a decay run.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/san-kum/mycodecay/internal/decay"
)

const (
	DefaultDir  = "output"
	DefaultFile = "degradation_report.csv"

	// Stride is the sampling interval in days.
	Stride = 30
)

var Header = []string{"Day", "Fibers_Remaining", "Reduction_%", "Risk_Score"}

type Writer struct {
	baseDir string
	name    string
}

func New(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, name: DefaultFile}
}

// Init creates the output directory if it does not exist yet.
func (w *Writer) Init() error {
	return os.MkdirAll(w.baseDir, 0755)
}

func (w *Writer) Path() string {
	return filepath.Join(w.baseDir, w.name)
}

// Write overwrites the report with one row per Stride days of run and
// returns the file path.
func (w *Writer) Write(run *decay.Run) (string, error) {
	if err := w.Init(); err != nil {
		return "", err
	}

	path := w.Path()
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(Header); err != nil {
		return "", err
	}
	for _, row := range Rows(run) {
		if err := cw.Write(row); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}

	return path, file.Close()
}

// Rows returns the formatted data rows for run, without the header.
func Rows(run *decay.Run) [][]string {
	risk := fixed(run.RiskScore, 3)
	rows := make([][]string, 0, RowCount(run.Days))
	for day := 0; day <= run.Days; day += Stride {
		rows = append(rows, []string{
			strconv.Itoa(day),
			fixed(run.Series[day], 2),
			fixed(run.ReductionAt(day), 2),
			risk,
		})
	}
	return rows
}

// RowCount is the number of data rows a run of the given length produces.
func RowCount(days int) int {
	if days < 0 {
		return 0
	}
	return days/Stride + 1
}

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
