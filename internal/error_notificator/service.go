package error_notificator

import "context"

type Service struct {
	infra Notificator
}

// NewService accepts a nil infra, in which case alerts are dropped.
func NewService(infra Notificator) *Service {
	return &Service{infra: infra}
}

func (s *Service) Enabled() bool {
	return s != nil && s.infra != nil
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	if !s.Enabled() {
		return nil
	}
	return s.infra.Notify(ctx, err, details)
}
