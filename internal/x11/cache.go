package x11

import (
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// atomCache maps atom names to atoms so that each one is only interned once.
type atomCache struct {
	conn *xgb.Conn
	data map[string]xproto.Atom
	mu   sync.RWMutex
}

func newAtomCache(conn *xgb.Conn) *atomCache {
	return &atomCache{
		conn: conn,
		data: make(map[string]xproto.Atom),
	}
}

// Get returns the atom with the given name, interning it if needed.
func (c *atomCache) Get(name string) (xproto.Atom, error) {
	c.mu.RLock()
	if atom, ok := c.data[name]; ok {
		c.mu.RUnlock()
		return atom, nil
	}
	c.mu.RUnlock()

	reply, err := xproto.InternAtom(c.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[name] = reply.Atom
	return reply.Atom, nil
}
