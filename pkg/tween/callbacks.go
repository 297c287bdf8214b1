package tween

import "slices"

// FinishFunc is called with the animated entity each time a run completes.
type FinishFunc func(e Entity)

type timedCallback struct {
	id int
	fn func()
	at float64
}

type finishCallback struct {
	id int
	fn FinishFunc
}

// callbacks holds every notification a tween can emit. All of them are
// optional.
type callbacks struct {
	start  func()
	update func()
	finish []finishCallback
	timed  []timedCallback

	statusListeners map[int]func(Status)
	nextID          int
}

func (c *callbacks) newID() int {
	c.nextID++
	return c.nextID
}

func (c *callbacks) addFinish(fn FinishFunc) func() {
	id := c.newID()
	c.finish = append(c.finish, finishCallback{id: id, fn: fn})
	return func() {
		c.finish = slices.DeleteFunc(c.finish, func(f finishCallback) bool { return f.id == id })
	}
}

func (c *callbacks) addTimed(fn func(), at float64) func() {
	id := c.newID()
	c.timed = append(c.timed, timedCallback{id: id, fn: fn, at: at})
	return func() {
		c.timed = slices.DeleteFunc(c.timed, func(tc timedCallback) bool { return tc.id == id })
	}
}

func (c *callbacks) addStatusListener(fn func(Status)) func() {
	if c.statusListeners == nil {
		c.statusListeners = make(map[int]func(Status))
	}
	id := c.newID()
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *callbacks) fireStart() {
	if c.start != nil {
		c.start()
	}
}

func (c *callbacks) fireUpdate() {
	if c.update != nil {
		c.update()
	}
}

// fireFinish calls the finish callbacks in registration order. The list is
// copied so callbacks may add or remove callbacks.
func (c *callbacks) fireFinish(e Entity) {
	for _, f := range slices.Clone(c.finish) {
		f.fn(e)
	}
}

// fireTimed calls every timed callback whose time lies in (prev, now].
func (c *callbacks) fireTimed(prev, now float64) {
	for _, tc := range slices.Clone(c.timed) {
		if tc.at > prev && tc.at <= now {
			tc.fn()
		}
	}
}

func (c *callbacks) fireStatus(s Status) {
	for _, listener := range c.statusListeners {
		listener(s)
	}
}

func (c *callbacks) clear() {
	c.start = nil
	c.update = nil
	c.finish = nil
	c.timed = nil
}
