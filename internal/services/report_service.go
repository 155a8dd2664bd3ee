package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/arifrizal16/sahasrara/domain"
)

// ReportServiceImpl implements domain.ReportService
type ReportServiceImpl struct {
	txRepo domain.TransactionRepository
}

// NewReportService creates a new report service
func NewReportService(txRepo domain.TransactionRepository) domain.ReportService {
	return &ReportServiceImpl{txRepo: txRepo}
}

// Revenue implements domain.ReportService
func (s *ReportServiceImpl) Revenue(ctx context.Context, filter domain.RevenueFilter) (*domain.RevenueReport, error) {
	txs, err := s.txRepo.FindInRange(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	total := decimal.Zero
	counts := make(map[domain.TreatmentType]int64)
	totals := make(map[domain.TreatmentType]decimal.Decimal)

	for _, tx := range txs {
		amount := decimal.NewFromInt(tx.Cost)
		total = total.Add(amount)
		counts[tx.Treatment]++
		totals[tx.Treatment] = totals[tx.Treatment].Add(amount)
	}

	report := &domain.RevenueReport{
		Total:   total,
		Count:   int64(len(txs)),
		Average: decimal.Zero,
	}
	if report.Count > 0 {
		report.Average = total.DivRound(decimal.NewFromInt(report.Count), 2)
	}

	for _, t := range domain.TreatmentTypes() {
		report.ByTreatment = append(report.ByTreatment, domain.TreatmentRevenue{
			Treatment: t,
			Label:     t.Label(),
			Count:     counts[t],
			Total:     totals[t],
		})
	}

	return report, nil
}

var csvHeader = []string{
	"No",
	"Nama Bayi",
	"Umur",
	"Jenis Kelamin",
	"Berat Badan (kg)",
	"Panjang Badan (cm)",
	"Nama Ortu",
	"Alamat",
	"Tindakan",
	"Biaya (Rp)",
	"Keterangan",
	"Tanggal",
}

// ExportCSV implements domain.ReportService
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, filter domain.RevenueFilter, w io.Writer) error {
	txs, err := s.txRepo.FindInRange(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, tx := range txs {
		row := []string{
			strconv.Itoa(i + 1),
			tx.BabyName,
			tx.Age,
			tx.Sex.Code(),
			tx.WeightKg,
			tx.LengthCm,
			tx.GuardianName,
			tx.Address,
			tx.Treatment.Label(),
			strconv.FormatInt(tx.Cost, 10),
			tx.Note,
			tx.CreatedAt.Format("02/01/2006"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
