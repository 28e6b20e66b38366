// Package scheduler runs the periodic reminder sweep: pending loans whose
// reminder date has elapsed are mailed to their owners once.
package scheduler

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderSource lists due reminders and records sent ones.
// *repository.Repository satisfies it.
type ReminderSource interface {
	LoansDueForReminder(ctx context.Context, now time.Time) ([]repository.ReminderNotice, error)
	MarkReminderSent(ctx context.Context, loanID int64) error
}

// ReminderMailer sends a single reminder mail.
type ReminderMailer interface {
	SendLoanReminder(to, name string, loan *models.Loan) error
}

// Scheduler owns the cron instance.
type Scheduler struct {
	cron   *cron.Cron
	source ReminderSource
	mailer ReminderMailer
	log    *logrus.Logger
}

// New builds a scheduler running the reminder sweep on the given cron spec.
func New(spec string, source ReminderSource, mailer ReminderMailer, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		source: source,
		mailer: mailer,
		log:    log,
	}
	if _, err := s.cron.AddFunc(spec, s.Sweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep mails every due reminder exactly once. A mail failure leaves the
// loan unmarked so the next sweep retries it.
func (s *Scheduler) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	notices, err := s.source.LoansDueForReminder(ctx, time.Now().UTC())
	if err != nil {
		s.log.Errorf("Reminder sweep failed: %v", err)
		return
	}

	for _, n := range notices {
		loan := n.Loan
		if err := s.mailer.SendLoanReminder(n.UserEmail, n.UserName, &loan); err != nil {
			s.log.Errorf("Failed to mail reminder for loan %d: %v", loan.ID, err)
			continue
		}
		if err := s.source.MarkReminderSent(ctx, loan.ID); err != nil {
			s.log.Errorf("Failed to mark reminder sent for loan %d: %v", loan.ID, err)
		}
	}
	if len(notices) > 0 {
		s.log.Infof("Reminder sweep processed %d loans", len(notices))
	}
}
