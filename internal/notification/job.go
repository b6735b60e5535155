package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// EmailJobArgs contains the arguments of an e-mail delivery job submitted to River.
type EmailJobArgs struct {
	// Template selects the e-mail to render.
	Template Template `json:"template" river:"unique"`
	// ID is the booking or payment the e-mail is about, depending on Template.
	ID uuid.UUID `json:"id" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniquePeriod, when set, makes jobs with the same arguments duplicates of
	// each other within the period.
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the e-mail worker.
func (args EmailJobArgs) Kind() string { return "SendEmailJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args EmailJobArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{MaxAttempts: args.maxAttempts}
	if args.uniquePeriod > 0 {
		opts.UniqueOpts = river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		}
	}

	return opts
}
