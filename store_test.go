package main

import (
	"testing"
)

func TestStoreSetGetRoundTrip(t *testing.T) {
	st := newTestStore(t)

	if err := st.SetItem("k", "v1"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	value, ok, err := st.GetItem("k")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !ok || value != "v1" {
		t.Errorf("GetItem = (%q, %v), want (v1, true)", value, ok)
	}

	// Last write wins
	if err := st.SetItem("k", "v2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = st.GetItem("k")
	if value != "v2" {
		t.Errorf("after overwrite = %q, want v2", value)
	}
}

func TestStoreMissingKey(t *testing.T) {
	st := newTestStore(t)

	_, ok, err := st.GetItem("never-set")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if ok {
		t.Error("unset key reported as present")
	}
}

func TestMissingProfileRoutesToOnboarding(t *testing.T) {
	st := newTestStore(t)

	profile, err := st.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil profile on first run, got %+v", profile)
	}
}

func TestCorruptValueDegradesToNoData(t *testing.T) {
	st := newTestStore(t)

	if err := st.SetItem(keyUserData, "{not json"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	profile, err := st.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile should not fail on corrupt data: %v", err)
	}
	if profile != nil {
		t.Errorf("corrupt data should read as no data, got %+v", profile)
	}
}

func TestProfilePersistenceRoundTrip(t *testing.T) {
	st := newTestStore(t)

	saved := testProfile(4, 350)
	saved.LastDailyQuestDate = "2024-01-02"
	saved.AssessmentResults = map[string]int{exPushups: 20, exSquats: 30, exSitups: 25}

	if err := st.SaveProfile(saved); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	loaded, err := st.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("profile missing after save")
	}
	if loaded.Level != 4 || loaded.Experience != 350 {
		t.Errorf("progression fields = (%d, %d), want (4, 350)", loaded.Level, loaded.Experience)
	}
	if loaded.LastDailyQuestDate != "2024-01-02" {
		t.Errorf("daily quest date = %q, want 2024-01-02", loaded.LastDailyQuestDate)
	}
	if loaded.AssessmentResults[exSquats] != 30 {
		t.Errorf("assessment results lost: %+v", loaded.AssessmentResults)
	}
}

func TestProgramsPersistenceRoundTrip(t *testing.T) {
	st := newTestStore(t)

	programs, err := st.LoadPrograms()
	if err != nil {
		t.Fatalf("LoadPrograms failed: %v", err)
	}
	if len(programs) != 0 {
		t.Fatalf("fresh store has %d programs, want 0", len(programs))
	}

	prog := CustomProgram{
		ID:       "p1",
		Name:     "Leg Day",
		Targets:  map[string]float64{exSquats: 80},
		Weekdays: []string{"tue", "thu"},
	}
	if err := st.SavePrograms([]CustomProgram{prog}); err != nil {
		t.Fatalf("SavePrograms failed: %v", err)
	}

	programs, err = st.LoadPrograms()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(programs) != 1 || programs[0].Name != "Leg Day" {
		t.Errorf("programs after reload = %+v", programs)
	}
	if !programs[0].ScheduledOn("thu") || programs[0].ScheduledOn("mon") {
		t.Error("weekday schedule lost on reload")
	}
}
