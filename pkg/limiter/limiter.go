// Package limiter 提供基于令牌桶的接口限流
package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face is the interface every limiter strategy implements.
// Face 限流器策略接口
type Face interface {
	// Key derives the bucket key for a request
	Key(c *gin.Context) string
	// GetBucket returns the bucket for a key, false when the key is unmanaged
	GetBucket(key string) (*ratelimit.Bucket, bool)
	// AddBuckets registers rules and returns the limiter for chaining
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule 单条限流规则
type BucketRule struct {
	// Key is the URI prefix the rule applies to
	Key string
	// FillInterval is how often one token is added
	FillInterval time.Duration
	// Capacity is the bucket size
	Capacity int64
	// Quantum is the number of tokens added per interval
	Quantum int64
}

// MethodLimiter keys buckets by request URI prefix.
// MethodLimiter 按请求 URI 前缀限流
type MethodLimiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

func NewMethodLimiter() Face {
	return &MethodLimiter{
		limiterBuckets: map[string]*ratelimit.Bucket{},
	}
}

func (l *MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	if index := strings.Index(uri, "?"); index >= 0 {
		uri = uri[:index]
	}
	return uri
}

func (l *MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	for prefix, bucket := range l.limiterBuckets {
		if strings.HasPrefix(key, prefix) {
			return bucket, true
		}
	}
	return nil, false
}

func (l *MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
