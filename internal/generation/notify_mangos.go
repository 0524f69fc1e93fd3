//go:build mangos
// +build mangos

package generation

import (
	"encoding/binary"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pub"
	_ "go.nanomsg.org/mangos/v3/transport/all"
)

// MangosNotifier publishes generation-change events over a nanomsg PUB
// socket so out-of-process listeners (a second engine instance, a cache
// warmer) can subscribe without polling the host's generation table. The
// topic is the graph name itself, so subscribers can filter by prefix.
type MangosNotifier struct {
	sock mangos.Socket
}

// NewMangosNotifier binds a PUB socket at addr (e.g. "tcp://127.0.0.1:5560").
func NewMangosNotifier(addr string) (*MangosNotifier, error) {
	sock, err := pub.NewSocket()
	if err != nil {
		return nil, err
	}
	if err := sock.Listen(addr); err != nil {
		sock.Close()
		return nil, err
	}
	return &MangosNotifier{sock: sock}, nil
}

// Notify publishes "<graphName>\0<generation big-endian u64>" on the topic
// equal to graphName, so a subscriber filtering on that prefix sees only
// its own graph's invalidations.
func (n *MangosNotifier) Notify(graphName string, newGeneration int64) {
	payload := make([]byte, len(graphName)+1+8)
	copy(payload, graphName)
	binary.BigEndian.PutUint64(payload[len(graphName)+1:], uint64(newGeneration))
	// Best-effort: a publisher with no live subscribers never blocks on
	// PUB sockets, so a Send error here only means the socket is closed.
	_ = n.sock.Send(payload)
}

// Close releases the underlying socket.
func (n *MangosNotifier) Close() error {
	return n.sock.Close()
}

var _ Notifier = (*MangosNotifier)(nil)
