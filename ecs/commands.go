package ecs

// Command is a deferred structural change to the world
type Command func(w *World)

// Commands buffers spawns and despawns issued while a system iterates the
// world. The buffer is drained by Apply at the schedule's sync point.
type Commands struct {
	queue []Command
}

// Spawn queues the creation of an entity; build runs at apply time with the
// freshly spawned entity and inserts its components
func (c *Commands) Spawn(build func(e Entity)) {
	c.Push(func(w *World) {
		build(w.Spawn())
	})
}

// Despawn queues the removal of e. Despawning a dead entity is a no-op.
func (c *Commands) Despawn(e EntityID) {
	c.Push(func(w *World) {
		w.Despawn(e)
	})
}

// Push queues an arbitrary command
func (c *Commands) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Apply runs the pending commands in issue order and empties the buffer
func (c *Commands) Apply(w *World) {
	// Commands applied here may queue more; drain until empty.
	for len(c.queue) > 0 {
		pending := c.queue
		c.queue = nil
		for _, cmd := range pending {
			cmd(w)
		}
	}
}
