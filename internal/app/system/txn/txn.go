// Package txn runs multi-collection writes in a MongoDB transaction when the
// deployment supports one, and sequentially otherwise.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// IsNotSupported reports whether err means the server cannot run
// transactions (standalone mongod, some hosted variants).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case 20, // IllegalOperation
			51,  // NoReplicationEnabled / standalone
			263: // OperationNotSupportedInTransaction
			return true
		}
	}

	s := strings.ToLower(err.Error())
	keywords := 0
	for _, k := range []string{"transaction", "replica set", "session", "not supported", "illegal operation"} {
		if strings.Contains(s, k) {
			keywords++
		}
	}
	return keywords >= 2
}

// Run executes fn inside a transaction on client. When the server does not
// support transactions, fn runs once more without one. fn must therefore be
// safe to run after a rolled-back attempt, and should order its writes so a
// partial sequential run leaves no dangling references.
func Run(ctx context.Context, client *mongo.Client, logger *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		logger.Debug("transactions unavailable; running sequentially", zap.Error(err))
		return fn(ctx)
	}
	return err
}
