package app

import "testing"

type orderedSystem struct {
	name string
	log  *[]string
}

func (s *orderedSystem) Update(a *App) {
	*s.log = append(*s.log, s.name)
}

func TestAppRunsSystemsInOrder(t *testing.T) {
	a := New()
	var order []string
	a.AddStartupSystem(func(*App) { order = append(order, "startup") })
	a.AddSystem(&orderedSystem{name: "first", log: &order})
	a.AddSystem(&orderedSystem{name: "second", log: &order})

	if err := a.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := a.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := []string{"startup", "first", "second", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestResourceLifecycle(t *testing.T) {
	type conf struct {
		FPS int
	}
	h := NewResource[conf]()

	cases := []struct {
		name  string
		setup func(a *App)
		check func(t *testing.T, a *App)
	}{
		{
			name:  "missing",
			setup: func(a *App) {},
			check: func(t *testing.T, a *App) {
				if _, ok := Get(a, h); ok {
					t.Fatalf("expected missing resource")
				}
				if v := Version(a, h); v != 0 {
					t.Fatalf("expected version 0, got %d", v)
				}
			},
		},
		{
			name:  "insert",
			setup: func(a *App) { Insert(a, h, conf{FPS: 60}) },
			check: func(t *testing.T, a *App) {
				c, ok := Get(a, h)
				if !ok || c.FPS != 60 {
					t.Fatalf("expected fps 60, got %v ok=%v", c, ok)
				}
				if v := Version(a, h); v != 1 {
					t.Fatalf("expected version 1, got %d", v)
				}
			},
		},
		{
			name: "replace_bumps_version",
			setup: func(a *App) {
				Insert(a, h, conf{FPS: 60})
				Insert(a, h, conf{FPS: 30})
			},
			check: func(t *testing.T, a *App) {
				c, _ := Get(a, h)
				if c.FPS != 30 {
					t.Fatalf("expected fps 30, got %d", c.FPS)
				}
				if v := Version(a, h); v != 2 {
					t.Fatalf("expected version 2, got %d", v)
				}
			},
		},
		{
			name: "touch_bumps_version",
			setup: func(a *App) {
				Insert(a, h, conf{FPS: 60})
				Touch(a, h)
			},
			check: func(t *testing.T, a *App) {
				if v := Version(a, h); v != 2 {
					t.Fatalf("expected version 2, got %d", v)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := New()
			c.setup(a)
			c.check(t, a)
		})
	}
}

func TestInvalidHandleIsIgnored(t *testing.T) {
	a := New()
	var h Handle[int]
	Insert(a, h, 1)
	if _, ok := Get(a, h); ok {
		t.Fatalf("zero handle should never resolve")
	}
	if h.Valid() {
		t.Fatalf("zero handle should be invalid")
	}
}

func TestSetSizeAdjustsLayout(t *testing.T) {
	a := New()
	if w, h := a.Layout(0, 0); w != 1920 || h != 1080 {
		t.Fatalf("expected 1920x1080 default, got %dx%d", w, h)
	}
	a.SetSize(1280, 720)
	if w, h := a.Layout(640, 480); w != 1280 || h != 720 {
		t.Fatalf("expected 1280x720, got %dx%d", w, h)
	}
	a.SetSize(0, -1)
	if w, h := a.Layout(0, 0); w != 1280 || h != 720 {
		t.Fatalf("degenerate sizes should be ignored, got %dx%d", w, h)
	}
}
