package http

import (
	"strconv"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"
)

// IdempotencyHeader carries the client-chosen key of an order placement.
const IdempotencyHeader = "Idempotency-Key"

func idempotencyKey(params servers.CreateOrderParams) string {
	if params.IdempotencyKey == nil {
		return ""
	}
	return strings.TrimSpace(*params.IdempotencyKey)
}

// scopedKey confines a client key to the identity that sent it. The length prefix
// keeps identities containing ':' from colliding.
func scopedKey(requester kernel.Identity, key string) string {
	identity := requester.String()
	return strconv.Itoa(len(identity)) + ":" + identity + ":" + key
}
