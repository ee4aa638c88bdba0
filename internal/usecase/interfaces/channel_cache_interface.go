package interfaces

import (
	"context"
	"encoding/json"
)

// IChannelCache stores the gateway channel list for a short time.
// Get reports a miss with ok=false; cache failures are never fatal to callers.
type IChannelCache interface {
	Get(ctx context.Context, key string) (payload json.RawMessage, ok bool)
	Set(ctx context.Context, key string, payload json.RawMessage)
}
