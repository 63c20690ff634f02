package log

import (
	"context"
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

const HttpXRequestId = "X-Request-Id"

type ctxKey string

const CtxRequestId ctxKey = "requestId"

func InitLog(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Errorf("failed to parse log level: %v, err: %v", logLevel, err)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(true)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		DisableColors:   true,
		DisableQuote:    true,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
	})
}

// WithRequestId returns a copy of ctx whose logger carries requestId.
func WithRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, CtxRequestId, requestId)
}

func RequestId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(CtxRequestId).(string)
	return v
}

func GetLogger(ctx context.Context) *logrus.Entry {
	if id := RequestId(ctx); id != "" {
		return logrus.WithFields(logrus.Fields{
			string(CtxRequestId): id,
		})
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
