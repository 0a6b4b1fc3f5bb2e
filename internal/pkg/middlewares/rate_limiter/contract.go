//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_test
package rate_limiter

import "trackit/pkg/logger"

// Limiter is one bucket shared by every route, chat and tracking alike.
type Limiter interface {
	Allow() bool
}

// limiterLogger logs rejections with the request's method, path and route.
type limiterLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
