package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler wires the recurring jobs. Runs the inactive-account sweep
// daily at 03:00 server time.
func StartScheduler(d Dispatcher) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 3 * * *", func() {
		d.Submit(DeactivateInactiveUsers)
	})

	c.Start()
	log.Println("[jobs] scheduler started")
	return c
}
