package client

import "github.com/rs/zerolog"

// ZerologLogger is a [RequestLogger] backed by a [zerolog.Logger]. Use it to
// route client request logging into an existing zerolog setup:
//
//	c, err := client.New(baseURL, cfg,
//	    client.WithRequestLogger(client.NewZerologLogger(log.Logger)),
//	)
type ZerologLogger struct {
	log zerolog.Logger
}

func NewZerologLogger(log zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: log}
}

func (l *ZerologLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l *ZerologLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l *ZerologLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
