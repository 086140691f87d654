package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so the spell store can take either a
// standalone or cluster connection
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
