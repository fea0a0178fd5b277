package scripting

import (
	"github.com/go-gl/mathgl/mgl32"
	lua "github.com/yuin/gopher-lua"

	"ebiten-asteroids/components"
	"ebiten-asteroids/ecs"
)

type keysValue struct {
	state   ecs.KeyState
	resolve KeyResolver
}

func (e *Engine) registerTypes() {
	actorMT := e.vm.NewTypeMetatable(actorTypeName)
	e.vm.SetField(actorMT, "__index", e.vm.SetFuncs(e.vm.NewTable(), actorMethods))

	keysMT := e.vm.NewTypeMetatable(keysTypeName)
	e.vm.SetField(keysMT, "__index", e.vm.SetFuncs(e.vm.NewTable(), keysMethods))
}

func (e *Engine) actorValue(a *ecs.Actor) *lua.LUserData {
	ud := e.vm.NewUserData()
	ud.Value = a
	e.vm.SetMetatable(ud, e.vm.GetTypeMetatable(actorTypeName))
	return ud
}

func (e *Engine) keysValue(keys ecs.KeyState) *lua.LUserData {
	ud := e.vm.NewUserData()
	ud.Value = &keysValue{state: keys, resolve: e.resolve}
	e.vm.SetMetatable(ud, e.vm.GetTypeMetatable(keysTypeName))
	return ud
}

var actorMethods = map[string]lua.LGFunction{
	"id":            actorID,
	"position":      actorPosition,
	"set_position":  actorSetPosition,
	"rotation":      actorRotation,
	"set_rotation":  actorSetRotation,
	"scale":         actorScale,
	"set_scale":     actorSetScale,
	"forward":       actorForward,
	"state":         actorState,
	"kill":          actorKill,
	"has_tag":       actorHasTag,
	"has_component": actorHasComponent,
}

func checkActor(L *lua.LState) *ecs.Actor {
	ud := L.CheckUserData(1)
	if a, ok := ud.Value.(*ecs.Actor); ok {
		return a
	}
	L.ArgError(1, "actor expected")
	return nil
}

func actorID(L *lua.LState) int {
	L.Push(lua.LNumber(checkActor(L).ID()))
	return 1
}

func actorPosition(L *lua.LState) int {
	pos := checkActor(L).Position()
	L.Push(lua.LNumber(pos.X()))
	L.Push(lua.LNumber(pos.Y()))
	return 2
}

func actorSetPosition(L *lua.LState) int {
	a := checkActor(L)
	a.SetPosition(mgl32.Vec2{float32(L.CheckNumber(2)), float32(L.CheckNumber(3))})
	return 0
}

func actorRotation(L *lua.LState) int {
	L.Push(lua.LNumber(checkActor(L).Rotation()))
	return 1
}

func actorSetRotation(L *lua.LState) int {
	a := checkActor(L)
	a.SetRotation(float32(L.CheckNumber(2)))
	return 0
}

func actorScale(L *lua.LState) int {
	L.Push(lua.LNumber(checkActor(L).Scale()))
	return 1
}

func actorSetScale(L *lua.LState) int {
	a := checkActor(L)
	a.SetScale(float32(L.CheckNumber(2)))
	return 0
}

func actorForward(L *lua.LState) int {
	f := checkActor(L).Forward()
	L.Push(lua.LNumber(f.X()))
	L.Push(lua.LNumber(f.Y()))
	return 2
}

func actorState(L *lua.LState) int {
	L.Push(lua.LString(checkActor(L).State().String()))
	return 1
}

func actorKill(L *lua.LState) int {
	checkActor(L).SetState(ecs.StateDead)
	return 0
}

func actorHasTag(L *lua.LState) int {
	a := checkActor(L)
	L.Push(lua.LBool(a.HasTag(L.CheckString(2))))
	return 1
}

func actorHasComponent(L *lua.LState) int {
	a := checkActor(L)
	L.Push(lua.LBool(components.HasComponentNamed(a, L.CheckString(2))))
	return 1
}

var keysMethods = map[string]lua.LGFunction{
	"pressed": keysPressed,
}

// keysPressed accepts a key code or, with a resolver, a key name
func keysPressed(L *lua.LState) int {
	ud := L.CheckUserData(1)
	keys, ok := ud.Value.(*keysValue)
	if !ok {
		L.ArgError(1, "keys expected")
		return 0
	}

	code := -1
	switch arg := L.CheckAny(2).(type) {
	case lua.LNumber:
		code = int(arg)
	case lua.LString:
		if keys.resolve == nil {
			L.ArgError(2, "key names need a resolver")
			return 0
		}
		resolved, err := keys.resolve(string(arg))
		if err != nil {
			L.ArgError(2, err.Error())
			return 0
		}
		code = resolved
	default:
		L.ArgError(2, "key code or name expected")
		return 0
	}

	L.Push(lua.LBool(keys.state.Pressed(code)))
	return 1
}
