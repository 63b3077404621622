package main

import "testing"

func TestSessionLifecycle(t *testing.T) {
	sm := NewSessionManager()

	sess := sm.CreateSession("morning run", nil)
	if sess == nil {
		t.Fatal("CreateSession returned nil")
	}
	if sess.ID == "" {
		t.Error("session should get an id")
	}
	if sm.GetSession(sess.ID) != sess {
		t.Error("GetSession should find the session")
	}
	if sm.Count() != 1 {
		t.Errorf("count = %d, want 1", sm.Count())
	}

	p := sess.Game.AddPlayer("Ada")
	if p == nil {
		t.Fatal("AddPlayer failed")
	}

	summary := sm.EndSession(sess.ID, p.ID)
	if summary == nil {
		t.Fatal("EndSession should return the run summary")
	}
	if sm.GetSession(sess.ID) != nil {
		t.Error("ended session should be gone")
	}
	if sm.Count() != 0 {
		t.Errorf("count = %d, want 0", sm.Count())
	}
}

func TestEndUnknownSession(t *testing.T) {
	sm := NewSessionManager()
	if sm.EndSession("nope", "p1") != nil {
		t.Error("ending an unknown session should return nil")
	}
}

func TestListSessions(t *testing.T) {
	sm := NewSessionManager()
	a := sm.CreateSession("alpha", nil)
	sm.CreateSession("beta", nil)
	a.Game.AddPlayer("Ada")
	defer func() {
		for _, s := range sm.ListSessions() {
			sm.EndSession(s.ID, "")
		}
	}()

	list := sm.ListSessions()
	if len(list) != 2 {
		t.Fatalf("listed %d sessions, want 2", len(list))
	}
	byID := make(map[string]SessionInfo)
	for _, s := range list {
		byID[s.ID] = s
	}
	if !byID[a.ID].Active {
		t.Error("session with a player should list as active")
	}
}

func TestSessionLimit(t *testing.T) {
	sm := NewSessionManager()
	for i := 0; i < maxSessions; i++ {
		if sm.CreateSession("s", nil) == nil {
			t.Fatalf("creation %d failed under the limit", i)
		}
	}
	if sm.CreateSession("overflow", nil) != nil {
		t.Error("creation past the limit should return nil")
	}
	for _, s := range sm.ListSessions() {
		sm.EndSession(s.ID, "")
	}
}
