package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"ebiten-asteroids/ecs"
)

const (
	actorTypeName = "actor"
	keysTypeName  = "keys"
)

// KeyResolver maps a key name to a key code
type KeyResolver func(name string) (int, error)

// Engine wraps a single gopher-lua VM running actor behaviours.
// Single-goroutine access only (game loop).
type Engine struct {
	vm      *lua.LState
	resolve KeyResolver
	log     *zap.Logger
}

// NewEngine creates a Lua engine and loads every script in scriptsDir. A
// missing directory loads nothing.
func NewEngine(scriptsDir string, resolve KeyResolver, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		vm:      lua.NewState(),
		resolve: resolve,
		log:     log,
	}
	e.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	e.vm.SetGlobal("log", e.vm.NewFunction(e.luaLog))
	e.registerTypes()

	if err := e.loadDir(scriptsDir); err != nil {
		e.vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua source in the engine's VM
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// Behavior returns the actor behaviour defined by the global Lua table name.
// The table may define update(actor, dt) and input(actor, keys).
func (e *Engine) Behavior(name string) (ecs.Behavior, error) {
	table, ok := e.vm.GetGlobal(name).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua behaviour %q: no such table", name)
	}
	return &scriptBehavior{
		engine: e,
		name:   name,
		update: hook(table, "update"),
		input:  hook(table, "input"),
	}, nil
}

func hook(table *lua.LTable, name string) *lua.LFunction {
	fn, _ := table.RawGetString(name).(*lua.LFunction)
	return fn
}

// Close releases the VM
func (e *Engine) Close() {
	e.vm.Close()
}

func (e *Engine) call(script, hookName string, fn *lua.LFunction, a *ecs.Actor, args ...lua.LValue) {
	params := append([]lua.LValue{e.actorValue(a)}, args...)
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, params...); err != nil {
		e.log.Error("lua behaviour error",
			zap.String("script", script),
			zap.String("hook", hookName),
			zap.Uint64("actor", uint64(a.ID())),
			zap.Error(err))
	}
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}

// scriptBehavior forwards the actor hooks to Lua functions
type scriptBehavior struct {
	engine *Engine
	name   string
	update *lua.LFunction
	input  *lua.LFunction
}

func (b *scriptBehavior) UpdateActor(a *ecs.Actor, dt float32) {
	if b.update == nil {
		return
	}
	b.engine.call(b.name, "update", b.update, a, lua.LNumber(dt))
}

func (b *scriptBehavior) ActorInput(a *ecs.Actor, keys ecs.KeyState) {
	if b.input == nil {
		return
	}
	b.engine.call(b.name, "input", b.input, a, b.engine.keysValue(keys))
}
