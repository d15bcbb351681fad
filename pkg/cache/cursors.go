package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry struct {
	chatID     int64
	messageID  int
	expiration time.Time
}

// Cursors хранит id последнего отправленного сообщения по каждому чату,
// чтобы редактировать его вместо отправки нового. Состояние живёт только
// в памяти процесса: после рестарта бот просто отправит новое сообщение.
type Cursors struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	index    map[int64]*list.Element
	ttl      time.Duration
}

func NewCursors(capacity int, ttl time.Duration) *Cursors {
	return &Cursors{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
		ttl:      ttl,
	}
}

func (c *Cursors) Get(chatID int64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.index[chatID]; ok {
		ent := ele.Value.(*entry)
		if time.Now().After(ent.expiration) {
			c.removeElement(ele)
			return 0, false
		}
		c.ll.MoveToFront(ele)
		return ent.messageID, true
	}
	return 0, false
}

func (c *Cursors) Set(chatID int64, messageID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.index[chatID]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.messageID = messageID
		ent.expiration = time.Now().Add(c.ttl)
		return
	}

	ent := &entry{chatID: chatID, messageID: messageID, expiration: time.Now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.index[chatID] = ele

	if c.ll.Len() > c.capacity {
		c.removeOldest()
	}
}

// Drop забывает курсор чата, например после неудачного редактирования.
func (c *Cursors) Drop(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.index[chatID]; ok {
		c.removeElement(ele)
	}
}

func (c *Cursors) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *Cursors) removeOldest() {
	ele := c.ll.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cursors) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry)
	delete(c.index, ent.chatID)
}

// Start раз в janitorInterval убирает протухшие курсоры.
func (c *Cursors) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *Cursors) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry)
		if time.Now().After(ent.expiration) {
			c.removeElement(e)
		}
		e = prev
	}
}
