package services

import (
	"sync"
	"time"

	"github.com/zentask/zentask-platform/internal/logger"
)

// Notifier delivers emails on a background worker so a slow or failing
// SMTP round-trip never blocks the request that triggered it. Deliveries
// are retried a few times, then dropped with a log entry.
type Notifier struct {
	email *EmailService
	log   *logger.Logger
	jobs  chan assignmentJob
	wg    sync.WaitGroup

	maxAttempts int
	retryDelay  time.Duration
}

type assignmentJob struct {
	to           string
	assigneeName string
	adminName    string
	taskTitle    string
	meetingTitle string
}

func NewNotifier(email *EmailService, log *logger.Logger) *Notifier {
	n := &Notifier{
		email:       email,
		log:         log,
		jobs:        make(chan assignmentJob, 64),
		maxAttempts: 3,
		retryDelay:  5 * time.Second,
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// SendTaskAssignmentEmail enqueues the notification and returns
// immediately. When the queue is full the notification is dropped rather
// than blocking the caller.
func (n *Notifier) SendTaskAssignmentEmail(to, assigneeName, adminName, taskTitle, meetingTitle string) error {
	job := assignmentJob{
		to:           to,
		assigneeName: assigneeName,
		adminName:    adminName,
		taskTitle:    taskTitle,
		meetingTitle: meetingTitle,
	}

	select {
	case n.jobs <- job:
	default:
		n.log.Warn("notification queue full, dropping email", "to", to, "task", taskTitle)
	}
	return nil
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for job := range n.jobs {
		n.deliver(job)
	}
}

func (n *Notifier) deliver(job assignmentJob) {
	var err error
	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		err = n.email.SendTaskAssignmentEmail(job.to, job.assigneeName, job.adminName, job.taskTitle, job.meetingTitle)
		if err == nil {
			return
		}
		if attempt < n.maxAttempts {
			time.Sleep(n.retryDelay)
		}
	}
	n.log.Error("giving up on task assignment email",
		"to", job.to,
		"task", job.taskTitle,
		"attempts", n.maxAttempts,
		"error", err)
}

// Close drains the queue and stops the worker.
func (n *Notifier) Close() {
	close(n.jobs)
	n.wg.Wait()
}
