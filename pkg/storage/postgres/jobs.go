package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// insertClient returns an insert-only River client. db may be nil when the
// client is only used with InsertTx.
func insertClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible to workers once the transaction commits.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var res *rivertype.JobInsertResult

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, err := insertClient(nil)
		if err != nil {
			return false, err
		}
		if res, err = client.InsertTx(ctx, db, args, opts); err != nil {
			return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
		}
	case *sql.DB:
		client, err := insertClient(db)
		if err != nil {
			return false, err
		}
		if res, err = client.Insert(ctx, args, opts); err != nil {
			return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
		}
	default:
		return false, fmt.Errorf("unsupported db handle %T", p.DB)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
