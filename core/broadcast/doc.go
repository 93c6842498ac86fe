// Package broadcast implements the push channel that notifies live viewers.
//
// A Hub keeps the set of current subscribers. Publish queues an event on every
// subscriber without blocking; a full queue drops the event for that subscriber
// only, so one slow viewer never stalls the others or the request that triggered
// the publish. Nothing is acknowledged, retried or replayed.
//
// Subscribe accepts a snapshot function whose events are queued ahead of any
// later publish. The live feature uses it to send the "all-connections" snapshot
// exactly once per new subscriber.
//
// Events travel as JSON envelopes {"event": name, "data": payload} over WebSocket,
// or as "event:"/"data:" frames over Server-Sent Events.
package broadcast
