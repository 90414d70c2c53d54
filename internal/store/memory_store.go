package store

import "sync"

// MemoryStore keeps the shared, thread-safe view of what the service is
// watching: the monitored team id (mutated by admin requests, read by the
// watcher loop) and the watcher's last published game/status (read by the
// status endpoint).
type MemoryStore struct {
	mu            sync.RWMutex
	monitoredTeam int
	currentGamePk int
	lastStatus    string
}

// NewMemoryStore constructs a MemoryStore watching the given team.
func NewMemoryStore(teamID int) *MemoryStore {
	return &MemoryStore{
		monitoredTeam: teamID,
	}
}

// MonitoredTeam returns the currently monitored team id.
func (s *MemoryStore) MonitoredTeam() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monitoredTeam
}

// SetMonitoredTeam replaces the monitored team id.
func (s *MemoryStore) SetMonitoredTeam(teamID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitoredTeam = teamID
}

// SetTrackedGame publishes the watcher's current game and status.
func (s *MemoryStore) SetTrackedGame(gamePk int, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentGamePk = gamePk
	s.lastStatus = status
}

// TrackedGame returns the last published game pk and status. A zero game pk
// means no game is currently tracked.
func (s *MemoryStore) TrackedGame() (gamePk int, status string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentGamePk, s.lastStatus
}
