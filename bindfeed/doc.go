/*
Package bindfeed keeps a remote view in sync with an [observable.Vector].

A [Feed] subscribes to the vector's notifications and turns each one into a
[Frame]: inserted and changed frames carry the element, removed frames only
the index, and reset frames a full snapshot. The first frame of every feed is
a reset, so a view that connects late starts from the current contents.

Frames are queued in an [Outbox] on the goroutine that mutates the vector and
written by [Feed.Run] on another, encoded with a [Codec] (JSON or msgpack)
and delivered through a [Sink] such as a websocket connection.

	feed, err := bindfeed.NewFeed(vec, bindfeed.Config{Format: bindfeed.FormatMsgpack})
	...
	go feed.Run(ctx, feed.WebsocketSink(conn))

On the other end a [Replica] applies decoded frames and reports gaps or
divergence instead of silently drifting.
*/
package bindfeed
