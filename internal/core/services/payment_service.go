package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_hub_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/utils/metrics"
)

type paymentService struct {
	BaseService
	clientRepo portsrepo.ClientReader
}

// NewPaymentService creates the service exposing payments derived from clients.
func NewPaymentService(clientRepo portsrepo.ClientReader, options ...ServiceOption) portssvc.PaymentSvc {
	return &paymentService{
		BaseService: newBaseService(options...),
		clientRepo:  clientRepo,
	}
}

var _ portssvc.PaymentSvc = (*paymentService)(nil)

func (s *paymentService) ListPayments(ctx context.Context, status domain.PaymentViewStatus) ([]domain.PaymentView, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for payments")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	payments := metrics.Payments(clients, s.Today())
	if status == "" {
		return payments, nil
	}
	out := make([]domain.PaymentView, 0, len(payments))
	for _, p := range payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}
