package sim

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerRunsTasksInRegistrationOrder(t *testing.T) {
	s := NewScheduler(time.Second / 60)
	var order []string
	for _, name := range []string{"move", "gravity", "collision"} {
		s.Every(name, s.Tick(), func() { order = append(order, name) })
	}

	s.Advance()
	expected := []string{"move", "gravity", "collision"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("run order = %v, expected %v", order, expected)
	}
	if !reflect.DeepEqual(s.Tasks(), expected) {
		t.Errorf("Tasks() = %v, expected %v", s.Tasks(), expected)
	}
}

func TestSchedulerPeriods(t *testing.T) {
	s := NewScheduler(time.Second / 60)
	fast, slow := 0, 0
	s.Every("fast", s.Tick(), func() { fast++ })
	s.Every("slow", 100*time.Millisecond, func() { slow++ })

	for i := 0; i < 60; i++ {
		s.Advance()
	}

	if fast != 60 {
		t.Errorf("fast task ran %d times, expected 60", fast)
	}
	// 60 ticks end just short of one second: deadlines 100ms..900ms
	if slow != 9 {
		t.Errorf("slow task ran %d times, expected 9", slow)
	}
}

func TestSchedulerAtMostOncePerAdvance(t *testing.T) {
	s := NewScheduler(100 * time.Millisecond)
	runs := 0
	s.Every("hungry", 10*time.Millisecond, func() { runs++ })

	for i := 0; i < 5; i++ {
		s.Advance()
	}
	if runs != 5 {
		t.Errorf("task ran %d times in 5 advances, expected 5", runs)
	}
}

func TestSchedulerDelayedEffects(t *testing.T) {
	s := NewScheduler(100 * time.Millisecond)
	var order []string
	s.After(50*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(50*time.Millisecond, func() { order = append(order, "c") })
	s.After(150*time.Millisecond, func() { order = append(order, "late") })
	s.Every("task", s.Tick(), func() { order = append(order, "task") })

	s.Advance()
	expected := []string{"b", "a", "c", "task"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("first advance order = %v, expected %v", order, expected)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}

	s.Advance()
	if order[len(order)-2] != "late" {
		t.Errorf("late effect should fire before tasks of the second advance, got %v", order)
	}
}

func TestSchedulerStopAll(t *testing.T) {
	s := NewScheduler(time.Second / 60)
	first, second := 0, 0
	s.Every("first", s.Tick(), func() {
		first++
		s.StopAll()
	})
	s.Every("second", s.Tick(), func() { second++ })

	s.Advance()
	s.Advance()

	if first != 1 {
		t.Errorf("first ran %d times, expected 1", first)
	}
	if second != 0 {
		t.Errorf("second ran %d times after StopAll, expected 0", second)
	}
	if !s.Stopped() {
		t.Error("Stopped() should be true")
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("Tasks() = %v, expected none", s.Tasks())
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler(time.Second / 60)
	fired := false
	s.Every("old", s.Tick(), func() { fired = true })
	s.After(time.Millisecond, func() { fired = true })
	s.Advance()
	fired = false

	s.After(time.Hour, func() { fired = true })
	s.Reset()
	for i := 0; i < 10; i++ {
		s.Advance()
	}

	if fired {
		t.Error("no task or effect should survive Reset")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}
