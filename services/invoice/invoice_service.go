package invoiceservice

import (
	"context"
	"fmt"
	"strings"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// InvoiceService derives the billing document for a completed work order:
// a flat service fee by priority plus the approved spare part lines. At most
// one invoice ever exists per work order.
type InvoiceService interface {
	GenerateForWorkOrder(ctx context.Context, tx *sqlx.Tx, workOrder models.WorkOrder) error
	GetByWorkOrder(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string) (models.Invoice, error)
}

type invoiceService struct {
	repo InvoiceRepository
}

func NewInvoiceService(repo InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func (s *invoiceService) GenerateForWorkOrder(ctx context.Context, tx *sqlx.Tx, workOrder models.WorkOrder) error {
	exists, err := s.repo.ExistsForWorkOrder(ctx, tx, workOrder.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	lines, err := s.repo.ListApprovedLines(ctx, tx, workOrder.ID)
	if err != nil {
		return err
	}

	serviceFee := models.ServiceFee(workOrder.Priority)
	partsTotal := 0.0
	for _, line := range lines {
		partsTotal += line.UnitPrice * float64(line.Quantity)
	}
	grandTotal := serviceFee + partsTotal

	invoice := models.Invoice{
		UserID:      workOrder.CreatedByUserID,
		WorkOrderID: workOrder.ID,
		InvoiceText: renderInvoiceText(workOrder, lines, serviceFee, partsTotal, grandTotal),
		Total:       grandTotal,
	}
	return s.repo.Insert(ctx, tx, invoice)
}

func (s *invoiceService) GetByWorkOrder(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string) (models.Invoice, error) {
	invoice, err := s.repo.GetByWorkOrder(ctx, workOrderID)
	if err != nil {
		return models.Invoice{}, err
	}
	if invoice.UserID != actorID && !models.HasRole(roles, models.ManagerRole) {
		return models.Invoice{}, errors.Wrap(models.ErrForbidden, "only the billed user or a manager can view the invoice")
	}
	return invoice, nil
}

func renderInvoiceText(workOrder models.WorkOrder, lines []InvoiceLine, serviceFee, partsTotal, grandTotal float64) string {
	priority := string(models.PriorityMedium)
	if workOrder.Priority != nil {
		priority = string(*workOrder.Priority)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INVOICE - Work Order %s\n", workOrder.ID)
	fmt.Fprintf(&b, "Title: %s\n", workOrder.Title)
	fmt.Fprintf(&b, "--------------------------------\n")
	fmt.Fprintf(&b, "Service fee (%s): %.2f\n", priority, serviceFee)
	for _, line := range lines {
		fmt.Fprintf(&b, "%s x%d @ %.2f = %.2f\n", line.PartName, line.Quantity, line.UnitPrice, line.UnitPrice*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "--------------------------------\n")
	fmt.Fprintf(&b, "Parts total: %.2f\n", partsTotal)
	fmt.Fprintf(&b, "Grand total: %.2f\n", grandTotal)
	return b.String()
}
