package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// RelayPublishTimeout bounds a single publish to the cross-instance relay
	RelayPublishTimeout = 2 * time.Second
)

// Stream control event types. Engine events keep their bus type names.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Request parameters
const (
	QueryParamTypes  = "types"
	QueryParamUserID = "user_id"
	HeaderUserID     = "X-User-ID"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgRelayPublishFailed = "SSE relay publish failed, delivering locally"
	LogMsgRelayDecodeFailed  = "Failed to decode relayed SSE event"
	LogMsgRelaySubscribed    = "SSE relay subscribed"
	LogMsgRelayStopped       = "SSE relay stopped"
	LogMsgSubscriberReady    = "SSE subscriber registered for engine events"
)

// ErrMsgStreamingUnsupported is returned when the response writer cannot flush
const ErrMsgStreamingUnsupported = "SSE not supported"
