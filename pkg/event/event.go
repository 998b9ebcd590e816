// Package event 提供单线程的指针事件队列
//
// 宿主（App）每帧轮询输入并 Publish，随后调用 Dispatch 把事件按先后顺序
// 投递给命中测试通过的订阅者。Publish 与 Dispatch 必须在同一个 goroutine 中调用。
package event

// PointerMoved 指针移动事件，坐标为逻辑屏幕像素
type PointerMoved struct {
	X, Y float64
}

// DefaultQueueSize 队列默认容量
// 超出容量时丢弃最旧的事件，快速移动不会造成无限积压
const DefaultQueueSize = 64

// SubscriptionID 订阅标识，0 表示无效
type SubscriptionID uint64

// HitTest 判断点是否落在订阅者区域内；nil 表示接收所有事件
type HitTest func(x, y float64) bool

// Handler 事件处理函数
type Handler func(ev PointerMoved)

type subscription struct {
	id      SubscriptionID
	hit     HitTest
	handler Handler
}

// Bus 指针事件总线
type Bus struct {
	capacity int
	queue    []PointerMoved
	subs     []subscription
	nextID   SubscriptionID
	dropped  int
}

// NewBus 创建事件总线
// capacity <= 0 时使用 DefaultQueueSize
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &Bus{
		capacity: capacity,
		queue:    make([]PointerMoved, 0, capacity),
		nextID:   1,
	}
}

// Subscribe 注册处理函数，返回订阅标识
func (b *Bus) Subscribe(hit HitTest, handler Handler) SubscriptionID {
	if handler == nil {
		return 0
	}
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription{id: id, hit: hit, handler: handler})
	return id
}

// Unsubscribe 移除订阅；重复调用无副作用
func (b *Bus) Unsubscribe(id SubscriptionID) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// ListenerCount 返回当前订阅者数量
func (b *Bus) ListenerCount() int {
	return len(b.subs)
}

// Publish 入队事件
func (b *Bus) Publish(ev PointerMoved) {
	if len(b.queue) >= b.capacity {
		copy(b.queue, b.queue[1:])
		b.queue = b.queue[:len(b.queue)-1]
		b.dropped++
	}
	b.queue = append(b.queue, ev)
}

// Pending 返回待投递事件数量
func (b *Bus) Pending() int {
	return len(b.queue)
}

// Dropped 返回因队列满而丢弃的事件总数
func (b *Bus) Dropped() int {
	return b.dropped
}

// Dispatch 按 FIFO 顺序投递所有待处理事件
//
// 处理函数中可以安全地 Subscribe/Unsubscribe：每个事件投递前都会重新读取订阅列表，
// 已退订的处理函数不会再收到后续事件。
func (b *Bus) Dispatch() {
	if len(b.queue) == 0 {
		return
	}
	pending := b.queue
	b.queue = make([]PointerMoved, 0, b.capacity)

	for _, ev := range pending {
		subs := append([]subscription(nil), b.subs...)
		for _, s := range subs {
			if !b.subscribed(s.id) {
				continue
			}
			if s.hit != nil && !s.hit(ev.X, ev.Y) {
				continue
			}
			s.handler(ev)
		}
	}
}

func (b *Bus) subscribed(id SubscriptionID) bool {
	for _, s := range b.subs {
		if s.id == id {
			return true
		}
	}
	return false
}
