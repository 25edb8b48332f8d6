// Package notify fans a newly posted job out to the followers of its
// company: one in-app notification row each, then one email each.
package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a single email. Implementations make one attempt.
type Mailer interface {
	Send(ctx context.Context, e Email) error
}

type NotificationWriter interface {
	CreateBulk(ctx context.Context, items []notification.Notification) (int64, error)
}

type Options struct {
	Workers    int
	RatePerSec int
}

// Report summarises one fan-out. It is informational only.
type Report struct {
	Notified     int64
	EmailsSent   int
	EmailsFailed int
}

type Dispatcher struct {
	notifications NotificationWriter
	mailer        Mailer
	opts          Options
	logger        *log.Logger
	now           func() time.Time
}

func NewDispatcher(notifications NotificationWriter, mailer Mailer, opts Options, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Dispatcher{
		notifications: notifications,
		mailer:        mailer,
		opts:          opts,
		logger:        logger,
		now:           time.Now,
	}
}

func JobLink(jobID uuid.UUID) string {
	return "/jobs/" + jobID.String()
}

// JobPosted writes one notification per follower in a single bulk insert and
// then attempts one email per follower. Failures are logged and counted but
// never returned; the call returns once every send attempt has finished.
func (d *Dispatcher) JobPosted(ctx context.Context, c company.Company, j job.Job, followers []user.User) Report {
	var rep Report
	if d == nil || len(followers) == 0 {
		return rep
	}

	message := fmt.Sprintf("%s posted a new job: %s", c.Name, j.Title)
	link := JobLink(j.ID)
	now := d.now().UTC()

	items := make([]notification.Notification, 0, len(followers))
	for _, f := range followers {
		items = append(items, notification.Notification{
			ID:        uuid.New(),
			UserID:    f.ID,
			Message:   message,
			Link:      link,
			Active:    true,
			CreatedAt: now,
		})
	}

	if d.notifications != nil {
		n, err := d.notifications.CreateBulk(ctx, items)
		if err != nil {
			d.logger.Printf("[Notify] bulk insert failed job_id=%s followers=%d err=%v", j.ID, len(items), err)
		} else {
			rep.Notified = n
		}
	}

	if d.mailer == nil {
		return rep
	}

	pool := NewWorkerPool(d.opts.Workers, len(followers))
	pool.SetRateLimit(d.opts.RatePerSec)
	results := pool.Run(ctx)

	subject := fmt.Sprintf("New job at %s: %s", c.Name, j.Title)
	for _, f := range followers {
		to := strings.TrimSpace(f.Email)
		if to == "" {
			continue
		}
		e := Email{To: to, Subject: subject, Body: jobEmailBody(f, c, j, link)}
		pool.Submit(Task{
			Key: to,
			Run: func(ctx context.Context) error { return d.mailer.Send(ctx, e) },
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil {
			rep.EmailsFailed++
			d.logger.Printf("[Notify] email failed job_id=%s recipient=%s err=%v", j.ID, res.Key, res.Err)
			continue
		}
		rep.EmailsSent++
	}

	d.logger.Printf("[Notify] job posted job_id=%s notified=%d emails_sent=%d emails_failed=%d",
		j.ID, rep.Notified, rep.EmailsSent, rep.EmailsFailed)
	return rep
}

func jobEmailBody(to user.User, c company.Company, j job.Job, link string) string {
	name := strings.TrimSpace(to.FirstName + " " + to.LastName)
	if name == "" {
		name = to.Username
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "%s, a company you follow, has posted a new job.\n\n", c.Name)
	fmt.Fprintf(&b, "%s\nLocation: %s\n", j.Title, j.Location)
	fmt.Fprintf(&b, "Salary: %.0f - %.0f (%s)\n\n", j.SalaryFrom, j.SalaryTo, j.SalaryType)
	fmt.Fprintf(&b, "View it at %s\n", link)
	return b.String()
}
