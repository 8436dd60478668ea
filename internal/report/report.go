package report

import (
	"fmt"
	"io"
	"os"

	"github.com/nightshift-tools/nightshift/internal/log"
	"github.com/nightshift-tools/nightshift/internal/model"
)

// Service runs the quick sales report.
type Service struct {
	logger *log.Logger
}

// NewService creates a report Service. A nil logger discards output.
func NewService(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Discard()
	}
	return &Service{logger: logger.WithComponent(log.ComponentReport)}
}

// QuickSummary reads the sales CSV at csvPath, writes the per-store summary
// to outPath and renders the console report to w.
func (s *Service) QuickSummary(csvPath, outPath string, w io.Writer) (*Summary, error) {
	records, err := s.Load(csvPath)
	if err != nil {
		return nil, err
	}

	sum, err := Summarize(records)
	if err != nil {
		return nil, fmt.Errorf("summarizing %s: %w", csvPath, err)
	}
	s.logger.Debug("summarized", "records", sum.Records, "stores", len(sum.ByStore), "months", len(sum.ByMonth))

	if err := s.SaveStoreSummary(outPath, sum.ByStore); err != nil {
		return nil, err
	}

	if err := Render(w, sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// Load reads all sales records from path.
func (s *Service) Load(path string) ([]model.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sales CSV: %w", err)
	}
	defer f.Close()

	records, err := ReadSales(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s.logger.Info("loaded sales", "path", path, "records", len(records))
	return records, nil
}

// SaveStoreSummary writes the per-store summary CSV to path.
func (s *Service) SaveStoreSummary(path string, totals []StoreTotal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary %s: %w", path, err)
	}

	if err := WriteStoreSummary(f, totals); err != nil {
		f.Close()
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing summary %s: %w", path, err)
	}
	s.logger.Info("wrote store summary", "path", path, "stores", len(totals))
	return nil
}
