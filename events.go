package users

import "go.uber.org/zap"

type logEvents struct {
	logger *zap.Logger
}

// NewLogEvents returns Events that record every committed mutation.
func NewLogEvents(logger *zap.Logger) Events {
	return &logEvents{logger: logger.Named("users")}
}

func (e *logEvents) UserCreated(u User) {
	e.logger.Info("user created", zap.String("id", string(u.ID)), zap.String("username", u.Username))
}

func (e *logEvents) UserUpdated(u User) {
	e.logger.Info("user updated", zap.String("id", string(u.ID)), zap.String("username", u.Username))
}

func (e *logEvents) UserDeleted(id ID) {
	e.logger.Info("user deleted", zap.String("id", string(id)))
}
