package contract

import "context"

// IDeployNotifier signals the downstream deploy trigger after a successful
// publish or delete. Its failure never fails the overall operation.
type IDeployNotifier interface {
	Notify(ctx context.Context) error
}
