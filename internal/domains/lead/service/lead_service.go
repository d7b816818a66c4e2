package service

import (
	"context"
	"fmt"
	"time"

	"vitrine-backend/internal/domains/lead"
	"vitrine-backend/internal/infrastructure/cache"
	"vitrine-backend/internal/infrastructure/email"
	"vitrine-backend/pkg/logger"
)

type leadService struct {
	mailer        email.EmailService
	limiter       *cache.RedisClient // nil disables rate limiting
	operatorEmail string
	limitPerHour  int
}

func NewLeadService(mailer email.EmailService, limiter *cache.RedisClient, operatorEmail string, limitPerHour int) lead.LeadService {
	return &leadService{
		mailer:        mailer,
		limiter:       limiter,
		operatorEmail: operatorEmail,
		limitPerHour:  limitPerHour,
	}
}

func (s *leadService) ValidateStep(ctx context.Context, step lead.Step, draft lead.Lead) error {
	return lead.ValidateStep(step, draft)
}

func (s *leadService) Submit(ctx context.Context, clientIP string, l lead.Lead) error {
	if err := l.Validate(); err != nil {
		return err
	}

	if err := s.checkRateLimit(ctx, clientIP); err != nil {
		return err
	}

	data := email.LeadEmailData{
		FirstName:    l.Identity.FirstName,
		LastName:     l.Identity.LastName,
		Email:        l.Identity.Email,
		Phone:        l.Identity.Phone,
		Street:       l.Address.Street,
		PostalCode:   l.Address.PostalCode,
		City:         l.Address.City,
		BuildingType: l.Address.BuildingType,
		Services:     l.Services.Services,
		Urgency:      l.Details.Urgency,
		Message:      l.Details.Message,
	}

	if err := s.mailer.SendLeadSummary(ctx, s.operatorEmail, data); err != nil {
		logger.Error("lead summary dispatch failed", err)
		return lead.ErrDispatchFailed
	}

	if err := s.mailer.SendLeadConfirmation(ctx, data); err != nil {
		// The operator already has the lead; losing the confirmation is
		// not worth failing the submission over.
		logger.Error("lead confirmation dispatch failed", err)
	}

	logger.Info("lead submitted", map[string]interface{}{
		"services": l.Services.Services,
		"urgency":  l.Details.Urgency,
		"city":     l.Address.City,
	})

	return nil
}

func (s *leadService) checkRateLimit(ctx context.Context, clientIP string) error {
	if s.limiter == nil || s.limitPerHour <= 0 || clientIP == "" {
		return nil
	}

	key := fmt.Sprintf("leads:ratelimit:%s", clientIP)
	count, err := s.limiter.IncrWithWindow(ctx, key, time.Hour)
	if err != nil {
		// Rate limiting is best effort; a redis outage must not block
		// lead intake.
		logger.Warn("lead rate limiter unavailable", map[string]interface{}{"error": err.Error()})
		return nil
	}

	if count > int64(s.limitPerHour) {
		return lead.ErrRateLimited
	}

	return nil
}
