package scanservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scanservice.go -destination=mock_scanservice.go -package=scanservice

const (
	EventSubscriptionToday   = "suscripcion_vence_hoy"
	EventCommissionExpiring  = "comision_por_vencer"
	EventCommissionExpired   = "comision_vencida"
	EventReferralMilestone   = "referidos_hito"
	subscriptionEventPattern = "suscripcion_vence_%d_dias"

	dateLayout = "2006-01-02"
)

type SubscriptionRepo interface {
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.ExpiringSubscription, error)
}

type CommissionRepo interface {
	FindPendingExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Commission, error)
	FindPendingExpiredBy(ctx context.Context, now time.Time) ([]domain.Commission, error)
	MarkExpired(ctx context.Context, id string) error
}

type UserRepo interface {
	FindReferralMilestones(ctx context.Context, step, final int) ([]domain.User, error)
}

type Ledger interface {
	Claim(ctx context.Context, entityID, event string, day time.Time) (bool, error)
}

type Notifier interface {
	Fire(ctx context.Context, code string, data map[string]string)
	FireFor(ctx context.Context, code, targetID string, data map[string]string)
}

// Result is the outcome of one threshold type within a run.
type Result struct {
	Event      string
	TargetDate *time.Time
	Found      *int
	Sent       int
	Skipped    int
	Errors     []string
}

type Report struct {
	Timestamp time.Time
	Results   []Result
}

type Service struct {
	subscriptions SubscriptionRepo
	commissions   CommissionRepo
	users         UserRepo
	ledger        Ledger
	notifier      Notifier
	metrics       *metrics.Metrics
	cfg           config.Scan
	loc           *time.Location
}

func New(
	cfg config.Scan,
	subscriptions SubscriptionRepo,
	commissions CommissionRepo,
	users UserRepo,
	ledger Ledger,
	notifier Notifier,
	m *metrics.Metrics,
) *Service {
	return &Service{
		subscriptions: subscriptions,
		commissions:   commissions,
		users:         users,
		ledger:        ledger,
		notifier:      notifier,
		metrics:       m,
		cfg:           cfg,
		loc:           cfg.Location(),
	}
}

// Run checks every threshold type once. A failing type is reported in its
// own result and does not stop the others.
func (s *Service) Run(ctx context.Context, now time.Time) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Timestamp: now}
	for _, days := range s.cfg.SubscriptionNoticeDays {
		report.Results = append(report.Results, s.scanSubscriptions(ctx, now, days))
	}
	report.Results = append(report.Results,
		s.scanExpiringCommissions(ctx, now),
		s.scanExpiredCommissions(ctx, now),
		s.scanReferrals(ctx, now),
	)

	zap.L().Info("threshold scan finished", zap.Int("types", len(report.Results)))
	return report, nil
}

func SubscriptionEvent(days int) string {
	if days == 0 {
		return EventSubscriptionToday
	}
	return fmt.Sprintf(subscriptionEventPattern, days)
}

// DayWindow returns the calendar day that lies offset days after now's day in
// loc, as a half-open [from, to) range.
func DayWindow(now time.Time, loc *time.Location, offset int) (from, to time.Time) {
	local := now.In(loc)
	from = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, offset)
	return from, from.AddDate(0, 0, 1)
}

func (s *Service) scanSubscriptions(ctx context.Context, now time.Time, days int) Result {
	event := SubscriptionEvent(days)
	from, to := DayWindow(now, s.loc, days)
	res := Result{Event: event, TargetDate: &from, Errors: []string{}}

	subs, err := s.subscriptions.FindExpiringBetween(ctx, from, to)
	if err != nil {
		return s.failed(res, err)
	}
	found := len(subs)
	res.Found = &found

	for _, sub := range subs {
		data := map[string]string{
			"nombre":           sub.UserName,
			"email":            sub.UserEmail,
			"plan":             sub.Plan,
			"fecha_expiracion": sub.ExpiresAt.In(s.loc).Format(dateLayout),
			"dias_restantes":   strconv.Itoa(days),
		}
		s.notify(ctx, &res, sub.ID, from, func() {
			s.notifier.Fire(ctx, event, data)
		})
	}
	return res
}

func (s *Service) scanExpiringCommissions(ctx context.Context, now time.Time) Result {
	from, to := DayWindow(now, s.loc, s.cfg.CommissionNoticeDays)
	res := Result{Event: EventCommissionExpiring, TargetDate: &from, Errors: []string{}}

	commissions, err := s.commissions.FindPendingExpiringBetween(ctx, from, to)
	if err != nil {
		return s.failed(res, err)
	}
	found := len(commissions)
	res.Found = &found

	for _, c := range commissions {
		data := s.commissionData(c)
		data["dias_restantes"] = strconv.Itoa(s.cfg.CommissionNoticeDays)
		s.notify(ctx, &res, c.ID, from, func() {
			s.notifier.Fire(ctx, EventCommissionExpiring, data)
		})
	}
	return res
}

// scanExpiredCommissions flips every overdue pending commission to expired.
// The notification goes out even when the flip fails; that commission will be
// selected again on the next run.
func (s *Service) scanExpiredCommissions(ctx context.Context, now time.Time) Result {
	res := Result{Event: EventCommissionExpired, Errors: []string{}}
	today, _ := DayWindow(now, s.loc, 0)

	commissions, err := s.commissions.FindPendingExpiredBy(ctx, now)
	if err != nil {
		return s.failed(res, err)
	}
	found := len(commissions)
	res.Found = &found

	for _, c := range commissions {
		if err := s.commissions.MarkExpired(ctx, c.ID); err != nil {
			zap.L().Error("commission not flipped to expired, it will be notified again",
				zap.String("commission_id", c.ID), zap.Error(err))
			s.metrics.Errors.WithLabelValues("scan_flip").Inc()
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", c.ID, err))
		}
		data := s.commissionData(c)
		s.notify(ctx, &res, c.ID, today, func() {
			s.notifier.Fire(ctx, EventCommissionExpired, data)
		})
	}
	return res
}

// milestoneDay is the ledger date for referral milestones. A milestone is
// claimed once for good, not once per scan day.
var milestoneDay = time.Time{}

func (s *Service) scanReferrals(ctx context.Context, _ time.Time) Result {
	res := Result{Event: EventReferralMilestone, Errors: []string{}}

	users, err := s.users.FindReferralMilestones(ctx, s.cfg.ReferralStep, s.cfg.ReferralFinalThreshold)
	if err != nil {
		return s.failed(res, err)
	}
	found := len(users)
	res.Found = &found

	for _, u := range users {
		data := map[string]string{
			"nombre":    u.Name,
			"email":     u.Email,
			"referidos": strconv.Itoa(u.ReferralCount),
			"meta":      strconv.Itoa(s.cfg.ReferralFinalThreshold),
		}
		// keyed by count: reaching the next multiple is a new claim
		event := fmt.Sprintf("%s_%d", EventReferralMilestone, u.ReferralCount)
		s.notifyAs(ctx, &res, u.ID, event, milestoneDay, func() {
			s.notifier.FireFor(ctx, EventReferralMilestone, u.ID, data)
		})
	}
	return res
}

func (s *Service) commissionData(c domain.Commission) map[string]string {
	return map[string]string{
		"nombre":           c.UserName,
		"email":            c.UserEmail,
		"monto":            fmt.Sprintf("%.2f", c.Amount),
		"fecha_expiracion": c.ExpiresAt.In(s.loc).Format(dateLayout),
	}
}

func (s *Service) notify(ctx context.Context, res *Result, entityID string, day time.Time, send func()) {
	s.notifyAs(ctx, res, entityID, res.Event, day, send)
}

// notifyAs claims (entityID, event, day) in the ledger before sending. A
// ledger failure still sends.
func (s *Service) notifyAs(ctx context.Context, res *Result, entityID, event string, day time.Time, send func()) {
	if s.cfg.Dedup {
		claimed, err := s.ledger.Claim(ctx, entityID, event, day)
		switch {
		case err != nil:
			zap.L().Warn("notification ledger unavailable, sending anyway",
				zap.String("event", event), zap.String("entity_id", entityID), zap.Error(err))
		case !claimed:
			res.Skipped++
			s.metrics.ScanMatches.WithLabelValues(res.Event, "skipped").Inc()
			return
		}
	}
	send()
	res.Sent++
	s.metrics.ScanMatches.WithLabelValues(res.Event, "sent").Inc()
}

func (s *Service) failed(res Result, err error) Result {
	zap.L().Error("threshold query failed", zap.String("event", res.Event), zap.Error(err))
	s.metrics.ScanMatches.WithLabelValues(res.Event, "error").Inc()
	res.Errors = append(res.Errors, err.Error())
	return res
}
