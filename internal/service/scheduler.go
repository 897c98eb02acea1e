package service

import (
	"context"
	"sort"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// agingBatchSize caps how many rows one aging pass touches.
const agingBatchSize = 500

// Scheduler runs the daily settlement housekeeping: aging pending
// commissions past their due date, sending consolidated per-vendor
// reminders, and escalating severely overdue vendors to admins. Aging is
// also applied lazily on every load, so a missed run degrades reminder
// timeliness, never correctness.
type Scheduler struct {
	cron           *cron.Cron
	commissionRepo ports.CommissionRepository
	dispatcher     ports.NotificationDispatcher
	cache          ports.SummaryCache
	cfg            config.SettlementConfig
	log            zerolog.Logger
	now            func() time.Time
}

// NewScheduler creates the daily housekeeping scheduler.
func NewScheduler(
	commissionRepo ports.CommissionRepository,
	dispatcher ports.NotificationDispatcher,
	cache ports.SummaryCache,
	cfg config.SettlementConfig,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		commissionRepo: commissionRepo,
		dispatcher:     dispatcher,
		cache:          cache,
		cfg:            cfg,
		log:            log,
		now:            time.Now,
	}
}

// Start registers the daily job and launches the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.SchedulerSpec, func() {
		s.RunDaily(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.cfg.SchedulerSpec).Msg("settlement scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("settlement scheduler stopped")
}

// RunDaily executes the three housekeeping passes. Exposed so operators
// can trigger a run out of schedule.
func (s *Scheduler) RunDaily(ctx context.Context) {
	now := s.now().UTC()
	aged := s.agingPass(ctx, now)
	reminded := s.reminderPass(ctx, now)
	alerted := s.overdueAlertPass(ctx, now)
	s.log.Info().
		Int("aged", aged).
		Int("vendors_reminded", reminded).
		Int("vendors_escalated", alerted).
		Msg("daily settlement pass complete")
}

func (s *Scheduler) agingPass(ctx context.Context, now time.Time) int {
	due, err := s.commissionRepo.ListDueForAging(ctx, now, agingBatchSize)
	if err != nil {
		s.log.Error().Err(err).Msg("aging pass: listing due commissions failed")
		return 0
	}

	aged := 0
	touched := make(map[uuid.UUID]struct{})
	for i := range due {
		c := &due[i]
		stored := c.Status
		if !c.ApplyLazyAging(now) {
			continue
		}
		ok, err := s.commissionRepo.UpdateStatus(ctx, c, stored)
		if err != nil {
			s.log.Error().Err(err).
				Str("commission_id", c.ID.String()).
				Msg("aging pass: status update failed")
			continue
		}
		if !ok {
			// Remitted or waived between the list and the update; the
			// guard keeps the terminal state.
			continue
		}
		aged++
		touched[c.VendorID] = struct{}{}
	}

	for vendorID := range touched {
		if err := s.cache.Delete(ctx, ports.PendingCommissionsKey(vendorID)); err != nil {
			s.log.Warn().Err(err).
				Str("vendor_id", vendorID.String()).
				Msg("aging pass: cache invalidation failed")
		}
	}
	return aged
}

func (s *Scheduler) reminderPass(ctx context.Context, now time.Time) int {
	cutoff := now.Add(-s.cfg.ReminderCadence())
	open, err := s.commissionRepo.ListOpenForReminder(ctx, cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("reminder pass: listing failed")
		return 0
	}
	if len(open) == 0 {
		return 0
	}

	// One digest per vendor: count, total owed, and the most urgent
	// commission so the notification can lead with it.
	digests := make(map[uuid.UUID]*ports.ReminderDigest)
	ids := make(map[uuid.UUID][]uuid.UUID)
	for i := range open {
		c := &open[i]
		d, seen := digests[c.VendorID]
		if !seen {
			d = &ports.ReminderDigest{VendorID: c.VendorID, TotalOwed: decimal.Zero}
			digests[c.VendorID] = d
		}
		d.Count++
		d.TotalOwed = d.TotalOwed.Add(c.Amount)
		if d.MostUrgent == uuid.Nil || c.DueDate.Before(d.MostUrgentDue) {
			d.MostUrgent = c.ID
			d.MostUrgentDue = c.DueDate
			d.MostUrgentOwed = c.Amount
		}
		ids[c.VendorID] = append(ids[c.VendorID], c.ID)
	}

	// Deterministic dispatch order for log readability.
	vendorIDs := make([]uuid.UUID, 0, len(digests))
	for id := range digests {
		vendorIDs = append(vendorIDs, id)
	}
	sort.Slice(vendorIDs, func(i, j int) bool {
		return vendorIDs[i].String() < vendorIDs[j].String()
	})

	reminded := 0
	for _, vendorID := range vendorIDs {
		d := digests[vendorID]
		if err := s.dispatcher.NotifyCommissionReminder(ctx, *d); err != nil {
			// The reminder bookkeeping is skipped so the next run retries.
			s.log.Warn().Err(err).
				Str("vendor_id", vendorID.String()).
				Msg("reminder pass: dispatch failed")
			continue
		}
		if err := s.commissionRepo.RecordReminder(ctx, ids[vendorID], now); err != nil {
			s.log.Error().Err(err).
				Str("vendor_id", vendorID.String()).
				Msg("reminder pass: bookkeeping failed")
			continue
		}
		reminded++
	}
	return reminded
}

func (s *Scheduler) overdueAlertPass(ctx context.Context, now time.Time) int {
	cutoff := now.Add(-s.cfg.OverdueAlertAge())
	overdue, err := s.commissionRepo.ListOverdueSince(ctx, cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("overdue alert pass: listing failed")
		return 0
	}
	if len(overdue) == 0 {
		return 0
	}

	byVendor := make(map[uuid.UUID]*ports.OverdueAlert)
	for i := range overdue {
		c := &overdue[i]
		a, seen := byVendor[c.VendorID]
		if !seen {
			a = &ports.OverdueAlert{VendorID: c.VendorID, OverdueTotal: decimal.Zero, OldestDue: c.DueDate}
			byVendor[c.VendorID] = a
		}
		a.OverdueCount++
		a.OverdueTotal = a.OverdueTotal.Add(c.Amount)
		if c.DueDate.Before(a.OldestDue) {
			a.OldestDue = c.DueDate
		}
	}

	alerts := make([]ports.OverdueAlert, 0, len(byVendor))
	for _, a := range byVendor {
		alerts = append(alerts, *a)
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].VendorID.String() < alerts[j].VendorID.String()
	})

	if err := s.dispatcher.NotifyAdminOverdueCommissions(ctx, alerts); err != nil {
		s.log.Warn().Err(err).Msg("overdue alert pass: dispatch failed")
		return 0
	}
	return len(alerts)
}
