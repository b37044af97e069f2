package irecv

// EventType identifies which callback a Callbacks value is about to
// receive, mirroring irecv_event_type.
type EventType int

const (
	EventUnknown EventType = iota
	EventConnected
	EventDisconnected
	EventPrecommand
	EventPostcommand
	EventProgress
	EventReceived
)

func (t EventType) String() string {
	switch t {
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	case EventPrecommand:
		return "precommand"
	case EventPostcommand:
		return "postcommand"
	case EventProgress:
		return "progress"
	case EventReceived:
		return "received"
	default:
		return "unknown"
	}
}

// Event describes one callback occurrence. Which fields are meaningful
// depends on Type: Data/Size for Received, Progress for Progress,
// Command for Precommand/Postcommand. The Callbacks hooks themselves
// receive these values as direct arguments, not as an Event.
type Event struct {
	Type     EventType
	Progress int
	Data     []byte
	Size     int
	Command  string
}

// Callbacks holds the six independent event hooks a Client may register.
// Each hook is its own optional field: a nil hook is simply not called,
// and setting one can never mask another.
type Callbacks struct {
	Connected    func(c *Client) error
	Disconnected func(c *Client)
	Precommand   func(c *Client, cmd string) bool
	Postcommand  func(c *Client, cmd string) bool
	Progress     func(c *Client, percent int)
	Received     func(c *Client, data []byte) error
}

func (cb *Callbacks) fireConnected(c *Client) error {
	if cb == nil || cb.Connected == nil {
		return nil
	}
	return cb.Connected(c)
}

func (cb *Callbacks) fireDisconnected(c *Client) {
	if cb == nil || cb.Disconnected == nil {
		return
	}
	cb.Disconnected(c)
}

// firePrecommand reports whether the hook wants the command short-circuited:
// a true return means the caller should skip the USB transfer and treat the
// command as already handled.
func (cb *Callbacks) firePrecommand(c *Client, cmd string) bool {
	if cb == nil || cb.Precommand == nil {
		return false
	}
	return cb.Precommand(c, cmd)
}

// firePostcommand mirrors firePrecommand for the hook run after the transfer.
func (cb *Callbacks) firePostcommand(c *Client, cmd string) bool {
	if cb == nil || cb.Postcommand == nil {
		return false
	}
	return cb.Postcommand(c, cmd)
}

func (cb *Callbacks) fireProgress(c *Client, percent int) {
	if cb == nil || cb.Progress == nil {
		return
	}
	cb.Progress(c, percent)
}

func (cb *Callbacks) fireReceived(c *Client, data []byte) error {
	if cb == nil || cb.Received == nil {
		return nil
	}
	return cb.Received(c, data)
}

// EventSubscribe installs cb for the given event type on this session
// (event_subscribe, §6), the per-session counterpart to the package-level
// DeviceEventSubscribe used for hot-plug. cb's type must match what Type
// expects (e.g. func(*Client, string) bool for Precommand/Postcommand); a
// mismatch returns ErrInvalidInput rather than panicking.
func (c *Client) EventSubscribe(t EventType, cb any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch t {
	case EventConnected:
		f, ok := cb.(func(*Client) error)
		if !ok {
			return ErrInvalidInput
		}
		c.callbacks.Connected = f
	case EventDisconnected:
		f, ok := cb.(func(*Client))
		if !ok {
			return ErrInvalidInput
		}
		c.callbacks.Disconnected = f
	case EventPrecommand:
		f, ok := cb.(func(*Client, string) bool)
		if !ok {
			return ErrInvalidInput
		}
		c.callbacks.Precommand = f
	case EventPostcommand:
		f, ok := cb.(func(*Client, string) bool)
		if !ok {
			return ErrInvalidInput
		}
		c.callbacks.Postcommand = f
	case EventProgress:
		f, ok := cb.(func(*Client, int))
		if !ok {
			return ErrInvalidInput
		}
		c.callbacks.Progress = f
	case EventReceived:
		f, ok := cb.(func(*Client, []byte) error)
		if !ok {
			return ErrInvalidInput
		}
		c.callbacks.Received = f
	default:
		return ErrInvalidInput
	}
	return nil
}

// EventUnsubscribe clears whichever hook is registered for t
// (event_unsubscribe, §6).
func (c *Client) EventUnsubscribe(t EventType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch t {
	case EventConnected:
		c.callbacks.Connected = nil
	case EventDisconnected:
		c.callbacks.Disconnected = nil
	case EventPrecommand:
		c.callbacks.Precommand = nil
	case EventPostcommand:
		c.callbacks.Postcommand = nil
	case EventProgress:
		c.callbacks.Progress = nil
	case EventReceived:
		c.callbacks.Received = nil
	default:
		return ErrInvalidInput
	}
	return nil
}
