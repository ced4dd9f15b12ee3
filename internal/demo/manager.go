package demo

// Manager manages scene transitions.
type Manager struct {
	current Scene
	next    Scene
}

// NewManager creates a new scene manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current scene.
func (m *Manager) Current() Scene {
	return m.current
}

// Change schedules a scene change for the next Update.
func (m *Manager) Change(next Scene) {
	m.next = next
}

// Update processes a pending change and updates the current scene.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current scene.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// Close exits the current scene and drops any pending change.
func (m *Manager) Close() error {
	m.next = nil
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
