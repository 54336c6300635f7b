// Package projectanalytics computes the month-over-month task summary shown on
// a project's overview.
//
// Five metrics are counted for the current and the previous calendar month,
// giving ten independent count queries that run concurrently. Tasks belong to
// a month by createdAt. "Overdue" is always measured against the request time,
// for both months.
package projectanalytics

import (
	"context"
	"time"

	taskstore "github.com/dalemusser/projecthub/internal/app/store/tasks"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// Counter counts the tasks matching a filter. *taskstore.Store satisfies it.
type Counter interface {
	Count(ctx context.Context, f taskstore.Filter) (int64, error)
}

// Engine runs the analytics queries. It holds no state between calls.
type Engine struct {
	tasks Counter
}

// New returns an Engine over the given task counter.
func New(tasks Counter) *Engine {
	return &Engine{tasks: tasks}
}

// metric narrows the per-project, per-period base filter.
type metric func(f taskstore.Filter, memberID primitive.ObjectID, now time.Time) taskstore.Filter

// Order matches the pairs written into AnalyticsSnapshot below.
var metrics = [...]metric{
	// all tasks
	func(f taskstore.Filter, _ primitive.ObjectID, _ time.Time) taskstore.Filter { return f },
	// assigned to the member
	func(f taskstore.Filter, memberID primitive.ObjectID, _ time.Time) taskstore.Filter {
		f.AssigneeID = &memberID
		return f
	},
	// completed
	func(f taskstore.Filter, _ primitive.ObjectID, _ time.Time) taskstore.Filter {
		f.Status = models.StatusDone
		return f
	},
	// incomplete
	func(f taskstore.Filter, _ primitive.ObjectID, _ time.Time) taskstore.Filter {
		f.StatusNot = models.StatusDone
		return f
	},
	// overdue
	func(f taskstore.Filter, _ primitive.ObjectID, now time.Time) taskstore.Filter {
		f.StatusNot = models.StatusDone
		f.DueBefore = &now
		return f
	},
}

// ProjectAnalytics returns the snapshot for projectID as seen by memberID
// (a Membership _id, matched against task assigneeId) at time now.
//
// Authorization is the caller's job. All ten counts must succeed; the first
// failure cancels the rest and is returned unchanged.
func (e *Engine) ProjectAnalytics(ctx context.Context, projectID, memberID primitive.ObjectID, now time.Time) (models.AnalyticsSnapshot, error) {
	current, previous := CurrentAndPrevious(now)
	periods := [2]Period{current, previous}

	var counts [len(metrics)][2]int64

	g, gctx := errgroup.WithContext(ctx)
	for mi, m := range metrics {
		for pi, p := range periods {
			f := m(taskstore.Filter{
				ProjectID:   &projectID,
				CreatedFrom: &p.Start,
				CreatedTo:   &p.End,
			}, memberID, now)
			g.Go(func() error {
				n, err := e.tasks.Count(gctx, f)
				if err != nil {
					return err
				}
				counts[mi][pi] = n
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return models.AnalyticsSnapshot{}, err
	}

	diff := func(i int) int64 { return counts[i][0] - counts[i][1] }
	return models.AnalyticsSnapshot{
		TaskCount:                counts[0][0],
		TaskDifference:           diff(0),
		AssignedTaskCount:        counts[1][0],
		AssignedTaskDifference:   diff(1),
		CompletedTaskCount:       counts[2][0],
		CompletedTaskDifference:  diff(2),
		IncompleteTaskCount:      counts[3][0],
		IncompleteTaskDifference: diff(3),
		OverdueTaskCount:         counts[4][0],
		OverdueTaskDifference:    diff(4),
	}, nil
}
