package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/money"
	"github.com/curioyard/studio-api/internal/repository"
)

type InvoiceService struct {
	repo      *repository.InvoiceRepository
	sequences *SequenceService
	logger    *zap.Logger
}

func NewInvoiceService(
	repo *repository.InvoiceRepository,
	sequences *SequenceService,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		repo:      repo,
		sequences: sequences,
		logger:    logger,
	}
}

// Create validates and persists a new invoice. The sequence number is
// allocated and persisted before the record write, so a failed save can
// leave a gap in the visible numbering but never a duplicate.
func (s *InvoiceService) Create(ctx context.Context, userID string, req *domain.InvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.buildInvoice(userID, req)
	if err != nil {
		return nil, err
	}
	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	number, seq, err := s.sequences.NextInvoiceNumber(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}
	invoice.ID = uuid.New()
	invoice.InvoiceNumber = number
	invoice.Sequence = seq
	now := time.Now()
	invoice.SavedDate = &now

	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.logger.Info("Invoice created",
		zap.String("user_id", userID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("total", money.Format(invoice.Total)),
	)
	return invoice, nil
}

// Update validates and persists changes to an existing invoice. Edits
// never consume a sequence number; the payment history is carried over.
func (s *InvoiceService) Update(ctx context.Context, userID string, id uuid.UUID, req *domain.InvoiceRequest) (*domain.Invoice, error) {
	existing, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}

	invoice, err := s.buildInvoice(userID, req)
	if err != nil {
		return nil, err
	}
	invoice.BaseModel = existing.BaseModel
	invoice.InvoiceNumber = existing.InvoiceNumber
	invoice.Sequence = existing.Sequence
	invoice.History = existing.History
	if req.Paid == "" {
		invoice.Paid = existing.Paid
	}
	invoice.ComputeTotals()
	if err := invoice.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	invoice.SavedDate = &now

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.logger.Info("Invoice updated",
		zap.String("user_id", userID),
		zap.String("invoice_number", invoice.InvoiceNumber),
	)
	return invoice, nil
}

// buildInvoice parses the request's amount strings and assembles an
// invoice with derived totals. Ledger validation happens afterwards.
func (s *InvoiceService) buildInvoice(userID string, req *domain.InvoiceRequest) (*domain.Invoice, error) {
	discount, err := parseOptionalAmount(req.Discount)
	if err != nil {
		return nil, err
	}
	tax, err := parseOptionalAmount(req.Tax)
	if err != nil {
		return nil, err
	}
	paid, err := parseOptionalAmount(req.Paid)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.ServiceLine, 0, len(req.Services))
	for _, l := range req.Services {
		rate, err := parseOptionalAmount(l.Rate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.ServiceLine{
			Description: l.Description,
			Rate:        rate,
			Quantity:    l.Quantity,
		})
	}

	status := req.Status
	if status == "" {
		status = domain.InvoiceStatusUnpaid
	}
	currency := req.Currency
	if currency == "" {
		currency = "GHS"
	}
	invoiceDate := req.InvoiceDate
	if invoiceDate == "" {
		invoiceDate = time.Now().Format("2006-01-02")
	}

	invoice := &domain.Invoice{
		UserID:        userID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		ClientAddress: req.ClientAddress,
		InvoiceDate:   invoiceDate,
		DueDate:       req.DueDate,
		Services:      domain.CleanServices(lines),
		Discount:      discount,
		Tax:           tax,
		Paid:          paid,
		Status:        status,
		Currency:      currency,
		PaymentMethod: req.PaymentMethod,
		AccountNumber: req.AccountNumber,
		PaymentLink:   req.PaymentLink,
		Notes:         req.Notes,
	}
	invoice.ComputeTotals()
	return invoice, nil
}

// GetByID returns one invoice owned by the user
func (s *InvoiceService) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}
	return invoice, nil
}

// List returns the user's invoices, newest first
func (s *InvoiceService) List(ctx context.Context, userID string, filter domain.InvoiceListFilter) ([]domain.Invoice, error) {
	return s.repo.List(ctx, userID, filter)
}

// Delete removes an invoice by id. The consumed sequence number is not
// released.
func (s *InvoiceService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.logger.Info("Invoice deleted",
		zap.String("user_id", userID),
		zap.String("invoice_id", id.String()),
	)
	return nil
}

// RecordPayment applies one payment to an invoice and persists the
// result. The write must succeed before the caller sees the new state.
func (s *InvoiceService) RecordPayment(ctx context.Context, userID string, id uuid.UUID, req *domain.PaymentRequest) (*domain.Invoice, *domain.PaymentEntry, error) {
	invoice, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	amount, ok := money.ParseAmount(req.Amount)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.Amount)
	}

	entry, err := invoice.ApplyPayment(amount, req.Method, req.Date, req.Notes, time.Now())
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.Update(ctx, invoice); err != nil {
		return nil, nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.logger.Info("Payment recorded",
		zap.String("user_id", userID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("amount", money.Format(entry.Amount)),
		zap.String("status", string(invoice.Status)),
	)
	return invoice, entry, nil
}

// Receipt derives a receipt for the whole invoice, or for one payment
// entry when entryID is set.
func (s *InvoiceService) Receipt(ctx context.Context, userID string, id uuid.UUID, entryID *uuid.UUID) (*domain.Receipt, error) {
	invoice, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if entryID == nil {
		r := invoice.FullReceipt()
		return &r, nil
	}
	for _, entry := range invoice.History {
		if entry.ID == *entryID {
			r := invoice.PaymentReceipt(entry)
			return &r, nil
		}
	}
	return nil, ErrPaymentEntryNotFound
}

// ExportCSV renders the user's invoice list as a CSV document
func (s *InvoiceService) ExportCSV(ctx context.Context, userID string, filter domain.InvoiceListFilter) ([]byte, error) {
	invoices, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"Invoice Number", "Client", "Date", "Due Date", "Status", "Currency", "Subtotal", "Discount", "Tax", "Total", "Paid", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	for _, inv := range invoices {
		row := []string{
			inv.InvoiceNumber,
			inv.ClientName,
			inv.InvoiceDate,
			inv.DueDate,
			string(inv.Status),
			inv.Currency,
			money.Format(inv.Subtotal),
			money.Format(inv.Discount),
			money.Format(inv.Tax),
			money.Format(inv.Total),
			money.Format(inv.Paid),
			money.Format(inv.CurrentBalance()),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// parseOptionalAmount treats an empty string as zero and rejects anything
// else that does not parse.
func parseOptionalAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, ok := money.ParseAmount(s)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}
