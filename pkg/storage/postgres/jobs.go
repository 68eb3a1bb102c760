package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job on the current database handle. Inside a
// transaction the insert joins it via InsertTx, so the job only becomes
// visible on commit; outside a transaction it is inserted directly. The
// returned bool is false when river skipped the insert as a duplicate of a
// pending unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var result *rivertype.JobInsertResult

	switch db := p.DB.(type) {
	case *sql.Tx:
		riverClient, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}

		result, err = riverClient.InsertTx(ctx, db, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}

	case *sql.DB:
		riverClient, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if err != nil {
			return false, fmt.Errorf("could not create river queue client: %w", err)
		}

		result, err = riverClient.Insert(ctx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}

	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}

	return !result.UniqueSkippedAsDuplicate, nil
}
