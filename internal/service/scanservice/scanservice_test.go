package scanservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/costeo/internal/config"
	"github.com/GlebRadaev/costeo/internal/domain"
	"github.com/GlebRadaev/costeo/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	subscriptions *MockSubscriptionRepo
	commissions   *MockCommissionRepo
	users         *MockUserRepo
	ledger        *MockLedger
	notifier      *MockNotifier
}

func NewMock(t *testing.T, cfg config.Scan) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		subscriptions: NewMockSubscriptionRepo(ctrl),
		commissions:   NewMockCommissionRepo(ctrl),
		users:         NewMockUserRepo(ctrl),
		ledger:        NewMockLedger(ctrl),
		notifier:      NewMockNotifier(ctrl),
	}
	service := New(cfg, m.subscriptions, m.commissions, m.users, m.ledger, m.notifier, metrics.Registry("costeo"))
	return service, m
}

func scanConfig(dedup bool) config.Scan {
	return config.Scan{
		Timezone:               "UTC",
		SubscriptionNoticeDays: []int{0},
		CommissionNoticeDays:   30,
		ReferralStep:           10,
		ReferralFinalThreshold: 50,
		Dedup:                  dedup,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayWindow_ExactDayMatch(t *testing.T) {
	expiry := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		now     time.Time
		matches bool
	}{
		{name: "Scan on the expiry day", now: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC), matches: true},
		{name: "Scan early on the expiry day", now: time.Date(2025, 6, 10, 0, 0, 1, 0, time.UTC), matches: true},
		{name: "Scan the day before", now: time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC), matches: false},
		{name: "Scan the day after", now: time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC), matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := DayWindow(tt.now, time.UTC, 0)
			inWindow := !expiry.Before(from) && expiry.Before(to)
			assert.Equal(t, tt.matches, inWindow)
		})
	}
}

func TestDayWindow_Offsets(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	from, to := DayWindow(now, time.UTC, 2)
	assert.Equal(t, day(2025, 6, 12), from)
	assert.Equal(t, day(2025, 6, 13), to)

	from, to = DayWindow(time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC), time.UTC, 30)
	assert.Equal(t, day(2025, 3, 2), from)
	assert.Equal(t, day(2025, 3, 3), to)
}

func TestDayWindow_Timezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 03:00Z is still the previous evening in Bogota
	from, to := DayWindow(time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC), loc, 0)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), to)
}

func TestSubscriptionEvent(t *testing.T) {
	assert.Equal(t, "suscripcion_vence_hoy", SubscriptionEvent(0))
	assert.Equal(t, "suscripcion_vence_2_dias", SubscriptionEvent(2))
}

func TestRun_AllThresholds(t *testing.T) {
	cfg := scanConfig(false)
	cfg.SubscriptionNoticeDays = []int{0, 2}
	service, m := NewMock(t, cfg)
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	m.subscriptions.EXPECT().FindExpiringBetween(gomock.Any(), day(2025, 6, 10), day(2025, 6, 11)).
		Return([]domain.ExpiringSubscription{{
			ID: "sub-1", Plan: "pro", ExpiresAt: now, UserName: "Ana", UserEmail: "ana@example.com",
		}}, nil)
	m.subscriptions.EXPECT().FindExpiringBetween(gomock.Any(), day(2025, 6, 12), day(2025, 6, 13)).
		Return(nil, nil)
	m.commissions.EXPECT().FindPendingExpiringBetween(gomock.Any(), day(2025, 7, 10), day(2025, 7, 11)).
		Return([]domain.Commission{{
			ID: "com-1", Amount: 12.5, ExpiresAt: day(2025, 7, 10), UserName: "Bo", UserEmail: "bo@example.com",
		}}, nil)
	m.commissions.EXPECT().FindPendingExpiredBy(gomock.Any(), now).
		Return([]domain.Commission{{ID: "com-2", Amount: 3, ExpiresAt: day(2025, 6, 1)}}, nil)
	m.commissions.EXPECT().MarkExpired(gomock.Any(), "com-2").Return(nil)
	m.users.EXPECT().FindReferralMilestones(gomock.Any(), 10, 50).
		Return([]domain.User{{ID: "user-9", Name: "Cy", Email: "cy@example.com", ReferralCount: 20}}, nil)

	m.notifier.EXPECT().Fire(gomock.Any(), EventSubscriptionToday, map[string]string{
		"nombre":           "Ana",
		"email":            "ana@example.com",
		"plan":             "pro",
		"fecha_expiracion": "2025-06-10",
		"dias_restantes":   "0",
	})
	m.notifier.EXPECT().Fire(gomock.Any(), EventCommissionExpiring, map[string]string{
		"nombre":           "Bo",
		"email":            "bo@example.com",
		"monto":            "12.50",
		"fecha_expiracion": "2025-07-10",
		"dias_restantes":   "30",
	})
	m.notifier.EXPECT().Fire(gomock.Any(), EventCommissionExpired, gomock.Any())
	m.notifier.EXPECT().FireFor(gomock.Any(), EventReferralMilestone, "user-9", map[string]string{
		"nombre":    "Cy",
		"email":     "cy@example.com",
		"referidos": "20",
		"meta":      "50",
	})

	report, err := service.Run(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, report.Results, 5)
	assert.Equal(t, now, report.Timestamp)

	events := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		events = append(events, r.Event)
		assert.Empty(t, r.Errors)
		require.NotNil(t, r.Found)
		assert.Equal(t, *r.Found, r.Sent)
	}
	assert.Equal(t, []string{
		"suscripcion_vence_hoy",
		"suscripcion_vence_2_dias",
		"comision_por_vencer",
		"comision_vencida",
		"referidos_hito",
	}, events)
	assert.Equal(t, day(2025, 6, 12), *report.Results[1].TargetDate)
	assert.Nil(t, report.Results[3].TargetDate)
	assert.Nil(t, report.Results[4].TargetDate)
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	service, m := NewMock(t, scanConfig(false))
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	m.subscriptions.EXPECT().FindExpiringBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("subscriptions down"))
	m.commissions.EXPECT().FindPendingExpiringBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.commissions.EXPECT().FindPendingExpiredBy(gomock.Any(), now).
		Return(nil, errors.New("commissions down"))
	m.users.EXPECT().FindReferralMilestones(gomock.Any(), 10, 50).
		Return([]domain.User{{ID: "user-1", ReferralCount: 10}}, nil)
	m.notifier.EXPECT().FireFor(gomock.Any(), EventReferralMilestone, "user-1", gomock.Any())

	report, err := service.Run(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, report.Results, 4)

	assert.Equal(t, []string{"subscriptions down"}, report.Results[0].Errors)
	assert.Nil(t, report.Results[0].Found)
	assert.Equal(t, 0, *report.Results[1].Found)
	assert.Equal(t, []string{"commissions down"}, report.Results[2].Errors)
	assert.Equal(t, 1, report.Results[3].Sent)
}

func TestRun_ExpiredFlipFailureStillDispatches(t *testing.T) {
	cfg := scanConfig(false)
	cfg.SubscriptionNoticeDays = nil
	service, m := NewMock(t, cfg)
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	m.commissions.EXPECT().FindPendingExpiringBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.commissions.EXPECT().FindPendingExpiredBy(gomock.Any(), now).
		Return([]domain.Commission{{ID: "com-1", Amount: 40, ExpiresAt: day(2025, 6, 9)}}, nil)
	m.commissions.EXPECT().MarkExpired(gomock.Any(), "com-1").Return(errors.New("update failed"))
	m.notifier.EXPECT().Fire(gomock.Any(), EventCommissionExpired, gomock.Any())
	m.users.EXPECT().FindReferralMilestones(gomock.Any(), 10, 50).Return(nil, nil)

	report, err := service.Run(context.Background(), now)
	require.NoError(t, err)

	expired := report.Results[1]
	assert.Equal(t, EventCommissionExpired, expired.Event)
	assert.Equal(t, 1, expired.Sent)
	assert.Equal(t, []string{"com-1: update failed"}, expired.Errors)
}

func TestRun_DedupLedger(t *testing.T) {
	cfg := scanConfig(true)
	cfg.CommissionNoticeDays = 1
	service, m := NewMock(t, cfg)
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	m.subscriptions.EXPECT().FindExpiringBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.ExpiringSubscription{{ID: "sub-1"}, {ID: "sub-2"}}, nil)
	m.ledger.EXPECT().Claim(gomock.Any(), "sub-1", EventSubscriptionToday, day(2025, 6, 10)).Return(false, nil)
	m.ledger.EXPECT().Claim(gomock.Any(), "sub-2", EventSubscriptionToday, day(2025, 6, 10)).Return(true, nil)
	m.notifier.EXPECT().Fire(gomock.Any(), EventSubscriptionToday, gomock.Any()).Times(1)

	m.commissions.EXPECT().FindPendingExpiringBetween(gomock.Any(), day(2025, 6, 11), day(2025, 6, 12)).
		Return([]domain.Commission{{ID: "com-1"}}, nil)
	m.ledger.EXPECT().Claim(gomock.Any(), "com-1", EventCommissionExpiring, day(2025, 6, 11)).
		Return(false, errors.New("ledger down"))
	m.notifier.EXPECT().Fire(gomock.Any(), EventCommissionExpiring, gomock.Any())

	m.commissions.EXPECT().FindPendingExpiredBy(gomock.Any(), now).Return(nil, nil)
	m.users.EXPECT().FindReferralMilestones(gomock.Any(), 10, 50).
		Return([]domain.User{{ID: "user-1", ReferralCount: 30}}, nil)
	m.ledger.EXPECT().Claim(gomock.Any(), "user-1", "referidos_hito_30", time.Time{}).Return(false, nil)

	report, err := service.Run(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Results[0].Sent)
	assert.Equal(t, 1, report.Results[0].Skipped)
	assert.Equal(t, 1, report.Results[1].Sent)
	assert.Equal(t, 0, report.Results[3].Sent)
	assert.Equal(t, 1, report.Results[3].Skipped)
}

type ledgerKey struct {
	entityID string
	event    string
	day      string
}

// memoryLedger enforces the same unique triple as notificaciones_enviadas.
type memoryLedger struct {
	claimed map[ledgerKey]bool
}

func (l *memoryLedger) Claim(_ context.Context, entityID, event string, day time.Time) (bool, error) {
	key := ledgerKey{entityID, event, day.Format("2006-01-02")}
	if l.claimed[key] {
		return false, nil
	}
	l.claimed[key] = true
	return true, nil
}

func TestRun_ReferralMilestoneNotifiedOnceAcrossDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	ledger := &memoryLedger{claimed: map[ledgerKey]bool{}}

	cfg := scanConfig(true)
	cfg.SubscriptionNoticeDays = nil
	commissions := NewMockCommissionRepo(ctrl)
	service := New(cfg, NewMockSubscriptionRepo(ctrl), commissions, users, ledger, notifier, metrics.Registry("costeo"))

	scans := []struct {
		now      time.Time
		count    int
		expected int
	}{
		{now: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), count: 10, expected: 1},
		{now: time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC), count: 10, expected: 0},
		{now: time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC), count: 10, expected: 0},
		{now: time.Date(2025, 6, 13, 8, 0, 0, 0, time.UTC), count: 20, expected: 1},
	}

	for _, scan := range scans {
		commissions.EXPECT().FindPendingExpiringBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		commissions.EXPECT().FindPendingExpiredBy(gomock.Any(), scan.now).Return(nil, nil)
		users.EXPECT().FindReferralMilestones(gomock.Any(), 10, 50).
			Return([]domain.User{{ID: "user-1", ReferralCount: scan.count}}, nil)
		notifier.EXPECT().FireFor(gomock.Any(), EventReferralMilestone, "user-1", gomock.Any()).Times(scan.expected)

		report, err := service.Run(context.Background(), scan.now)
		require.NoError(t, err)

		referrals := report.Results[len(report.Results)-1]
		assert.Equal(t, EventReferralMilestone, referrals.Event)
		assert.Equal(t, scan.expected, referrals.Sent)
		assert.Equal(t, 1-scan.expected, referrals.Skipped)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	service, _ := NewMock(t, scanConfig(false))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := service.Run(ctx, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}
