package moneyserver

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/currency-gateway/internal/adapters/rpc/xmlrpc"
	"pkt.systems/pslog"
)

type Caller interface {
	Call(ctx context.Context, method string, params xmlrpc.Struct) Reply
}

type Client struct {
	rpc    *xmlrpc.Client
	logger pslog.Logger
}

var _ Caller = (*Client)(nil)

func NewClient(url string, timeout time.Duration, logger pslog.Logger) *Client {
	if logger == nil {
		logger = pslog.NoopLogger()
	}

	return &Client{
		rpc:    xmlrpc.NewClient(url, timeout),
		logger: logger.With("sys", "moneyserver.client"),
	}
}

func (c *Client) URL() string {
	return c.rpc.URL
}

// Call never returns an error: transport failures and faults come back as a
// Reply with success=false.
func (c *Client) Call(ctx context.Context, method string, params xmlrpc.Struct) Reply {
	if c.rpc.URL == "" || len(params) == 0 {
		return failedReply(unavailableMessage)
	}

	result, err := c.rpc.Call(ctx, method, params)
	if err != nil {
		c.logger.Error("moneyserver.call.failed", "method", method, "url", c.rpc.URL, "error", err)
		return failedReply(unavailableMessage)
	}

	fields, ok := result.(xmlrpc.Struct)
	if !ok {
		c.logger.Error("moneyserver.call.malformed", "method", method, "type", fmt.Sprintf("%T", result))
		return failedReply(unavailableMessage)
	}

	if ok, _ := fields.Bool("success"); !ok {
		if !fields.Has("errorMessage") {
			fields["errorMessage"] = unavailableMessage
		}
		if !fields.Has("errorURI") {
			fields["errorURI"] = ""
		}
		c.logger.Warn("moneyserver.call.rejected", "method", method, "error_message", fields["errorMessage"])
	}

	return Reply{fields: fields}
}
