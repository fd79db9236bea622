package error_notificator

import "context"

type Notificator interface {
	// Notify tells the operator about a failed provider call
	Notify(ctx context.Context, err error, details string) error
}
