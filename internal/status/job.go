package status

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// PollArgs are the arguments for a status poll job submitted to River. The job
// carries no payload; uniqueness prevents overlapping polls from piling up.
type PollArgs struct {
	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which another poll job
	// is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// NewPollArgs builds PollArgs with retry and uniqueness settings. maxAttempts
// bounds retries of a failed poll; uniqueJobPeriod should be the poll interval.
func NewPollArgs(maxAttempts int, uniqueJobPeriod time.Duration) PollArgs {
	return PollArgs{
		maxAttempts:     maxAttempts,
		uniqueJobPeriod: uniqueJobPeriod,
	}
}

// Kind returns the River job kind used to register and dispatch the poll worker.
func (args PollArgs) Kind() string { return "PollStatusJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including retry attempts and uniqueness constraints so only one poll is ever
// queued or running at a time.
func (args PollArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one poll job in flight
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
