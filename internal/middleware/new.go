package middleware

import (
	"clinic-assistant/pkg/log"
)

type Middleware struct {
	l        log.Logger
	limiters *limiterPool
}

func New(l log.Logger, rps float64, burst int) Middleware {
	return Middleware{
		l:        l,
		limiters: newLimiterPool(rps, burst),
	}
}
