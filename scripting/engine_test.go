package scripting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ebiten-asteroids/ecs"
)

func testResolver(name string) (int, error) {
	codes := map[string]int{"W": 1, "S": 2}
	if code, ok := codes[name]; ok {
		return code, nil
	}
	return -1, fmt.Errorf("unknown key %q", name)
}

func newTestEngine(t *testing.T, src string) (*Engine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	e, err := NewEngine("", testResolver, zap.New(core))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	t.Cleanup(e.Close)
	if err := e.DoString(src); err != nil {
		t.Fatalf("load script: %v", err)
	}
	return e, logs
}

func TestBehaviorUpdate(t *testing.T) {
	e, _ := newTestEngine(t, `
drifter = {}
function drifter.update(actor, dt)
  local x, y = actor:position()
  actor:set_position(x + 10 * dt, y - 1)
  actor:set_rotation(actor:rotation() + 1)
  actor:set_scale(actor:scale() * 2)
end
`)
	b, err := e.Behavior("drifter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := ecs.NewActor(nil, b)
	a.SetPosition(mgl32.Vec2{1, 1})
	a.Update(0.5)

	if !a.Position().ApproxEqual(mgl32.Vec2{6, 0}) {
		t.Errorf("expected (6, 0), got %v", a.Position())
	}
	if a.Rotation() != 1 || a.Scale() != 2 {
		t.Errorf("expected rotation 1 scale 2, got %g %g", a.Rotation(), a.Scale())
	}
	if a.TransformDirty() {
		t.Errorf("expected the scripted move resolved by the end of Update")
	}
}

func TestBehaviorQueries(t *testing.T) {
	e, _ := newTestEngine(t, `
probe = {}
function probe.update(actor, dt)
  result = {
    id = actor:id(),
    state = actor:state(),
    tagged = actor:has_tag("asteroid"),
    untagged = actor:has_tag("ship"),
    moves = actor:has_component("move"),
  }
  result.fx, result.fy = actor:forward()
  actor:kill()
end
`)
	b, err := e.Behavior("probe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := ecs.NewActor(nil, b)
	a.AddTag("asteroid")
	a.Update(0.1)

	result, ok := e.vm.GetGlobal("result").(*lua.LTable)
	if !ok {
		t.Fatalf("expected the hook to publish a result table")
	}
	if got := lua.LVAsNumber(result.RawGetString("id")); int(got) != int(a.ID()) {
		t.Errorf("expected id %d, got %v", a.ID(), got)
	}
	if got := result.RawGetString("state"); got.String() != "active" {
		t.Errorf("expected state active, got %v", got)
	}
	if result.RawGetString("tagged") != lua.LTrue || result.RawGetString("untagged") != lua.LFalse {
		t.Errorf("unexpected tag lookups")
	}
	if result.RawGetString("moves") != lua.LFalse {
		t.Errorf("expected no move component")
	}
	if lua.LVAsNumber(result.RawGetString("fx")) != 1 || lua.LVAsNumber(result.RawGetString("fy")) != 0 {
		t.Errorf("expected forward (1, 0)")
	}
	if a.State() != ecs.StateDead {
		t.Errorf("expected kill to mark the actor dead, got %v", a.State())
	}
}

func TestBehaviorInput(t *testing.T) {
	e, _ := newTestEngine(t, `
pilot = {}
function pilot.input(actor, keys)
  if keys:pressed("W") then
    actor:set_position(1, 0)
  end
  if keys:pressed(2) then
    actor:set_position(-1, 0)
  end
end
`)
	b, _ := e.Behavior("pilot")
	a := ecs.NewActor(nil, b)

	a.ProcessInput(ecs.KeyState{false, true, false})
	if a.Position() != (mgl32.Vec2{1, 0}) {
		t.Errorf("expected named key lookup, got %v", a.Position())
	}

	a.ProcessInput(ecs.KeyState{false, false, true})
	if a.Position() != (mgl32.Vec2{-1, 0}) {
		t.Errorf("expected key code lookup, got %v", a.Position())
	}
}

func TestScriptErrorsAreLogged(t *testing.T) {
	e, logs := newTestEngine(t, `
broken = {}
function broken.update(actor, dt)
  error("boom")
end
function broken.input(actor, keys)
  keys:pressed("NoSuchKey")
end
`)
	b, _ := e.Behavior("broken")
	a := ecs.NewActor(nil, b)

	a.Update(0.1)
	a.ProcessInput(ecs.KeyState{})

	errs := logs.FilterMessage("lua behaviour error").All()
	if len(errs) != 2 {
		t.Fatalf("expected 2 logged errors, got %d", len(errs))
	}
	if errs[0].ContextMap()["hook"] != "update" || errs[1].ContextMap()["hook"] != "input" {
		t.Errorf("unexpected hooks in log: %v %v", errs[0].ContextMap(), errs[1].ContextMap())
	}
	if a.State() != ecs.StateActive {
		t.Errorf("expected actor unaffected by script errors")
	}
}

func TestBehaviorMissingTable(t *testing.T) {
	e, _ := newTestEngine(t, `not_a_table = 5`)
	if _, err := e.Behavior("nope"); err == nil {
		t.Errorf("expected error for undefined behaviour")
	}
	if _, err := e.Behavior("not_a_table"); err == nil {
		t.Errorf("expected error for non-table global")
	}
}

func TestPartialBehavior(t *testing.T) {
	e, _ := newTestEngine(t, `idle = {}`)
	b, err := e.Behavior("idle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := ecs.NewActor(nil, b)
	a.Update(1)
	a.ProcessInput(ecs.KeyState{true})
}

func TestNewEngineLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	script := "spin = {}\nfunction spin.update(actor, dt) actor:set_rotation(3) end\n"
	if err := os.WriteFile(filepath.Join(dir, "spin.lua"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not lua"), 0o644); err != nil {
		t.Fatal(err)
	}

	e, err := NewEngine(dir, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer e.Close()

	b, err := e.Behavior("spin")
	if err != nil {
		t.Fatalf("expected spin loaded: %v", err)
	}
	a := ecs.NewActor(nil, b)
	a.Update(0.1)
	if a.Rotation() != 3 {
		t.Errorf("expected rotation 3, got %g", a.Rotation())
	}
}

func TestNewEngineBadScript(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.lua"), []byte("function ("), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewEngine(dir, nil, nil); err == nil {
		t.Errorf("expected load error")
	}
}

func TestShippedScriptsLoad(t *testing.T) {
	e, err := NewEngine(filepath.Join("..", "scripts"), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer e.Close()
	if _, err := e.Behavior("spinner"); err != nil {
		t.Errorf("expected spinner behaviour: %v", err)
	}
}

func TestSpinnerPulseFollowsRotation(t *testing.T) {
	e, err := NewEngine(filepath.Join("..", "scripts"), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer e.Close()
	b, err := e.Behavior("spinner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// two actors at the same rotation pulse identically regardless of age
	old := ecs.NewActor(nil, b)
	for i := 0; i < 10; i++ {
		old.Update(0.1)
	}
	fresh := ecs.NewActor(nil, b)
	fresh.SetRotation(old.Rotation())
	old.Update(0.1)
	fresh.Update(0.1)

	if diff := math.Abs(float64(old.Scale() - fresh.Scale())); diff > 1e-5 {
		t.Errorf("expected equal scales, got %g and %g", old.Scale(), fresh.Scale())
	}
	want := 0.5 + 0.1*math.Sin(float64(fresh.Rotation())*2)
	if diff := math.Abs(float64(fresh.Scale()) - want); diff > 1e-4 {
		t.Errorf("expected scale %g, got %g", want, fresh.Scale())
	}
}
