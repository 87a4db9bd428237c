package logging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/urandom/feedkeeper/content/repo"
	"github.com/urandom/feedkeeper/log"
)

var callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "feedkeeper_repo_call_duration_seconds",
	Help:    "Duration of content repository calls",
	Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
}, []string{"call", "outcome"})

type Service struct {
	repo.Service

	feed feedRepo
}

// NewService wraps the repositories of s, logging and measuring the duration
// of every call.
func NewService(s repo.Service, log log.Log) Service {
	return Service{
		s,
		feedRepo{s.FeedRepo(), log},
	}
}

func (s Service) FeedRepo() repo.Feed {
	return s.feed
}
