//go:build !no_scripts

package script

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"zigbee-zcl/internal/sniffer"
	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/zcl"
)

const maxHandlersPerScript = 100

// registerZCLModule registers the `zcl` global table in a Lua state.
func registerZCLModule(L *lua.LState, vm *scriptVM, e *Engine) {
	mod := L.NewTable()
	mod.RawSetString("on", L.NewFunction(func(L *lua.LState) int {
		return zclOn(L, vm)
	}))
	mod.RawSetString("decode", L.NewFunction(func(L *lua.LState) int {
		return zclDecode(L, e)
	}))
	mod.RawSetString("encode", L.NewFunction(func(L *lua.LState) int {
		return zclEncode(L, e)
	}))
	mod.RawSetString("after", L.NewFunction(func(L *lua.LState) int {
		return zclAfter(L, vm, e)
	}))
	mod.RawSetString("log", L.NewFunction(func(L *lua.LState) int {
		return zclLog(L, vm, e)
	}))
	L.SetGlobal("zcl", mod)
}

// zcl.on(filter, callback)
//
// filter fields: cluster, command (names), errors (true for frames that
// failed to decode). The callback receives the frame event as a table.
func zclOn(L *lua.LState, vm *scriptVM) int {
	filter := L.CheckTable(1)
	fn := L.CheckFunction(2)

	h := frameHandler{eventType: sniffer.EventFrameDecoded, fn: fn}
	if v := filter.RawGetString("cluster"); v != lua.LNil {
		h.cluster = v.String()
	}
	if v := filter.RawGetString("command"); v != lua.LNil {
		h.command = v.String()
	}
	if lua.LVAsBool(filter.RawGetString("errors")) {
		if h.cluster != "" || h.command != "" {
			L.ArgError(1, "errors cannot be combined with cluster or command")
			return 0
		}
		h.eventType = sniffer.EventFrameError
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if len(vm.handlers) >= maxHandlersPerScript {
		L.RaiseError("too many handlers (max %d)", maxHandlersPerScript)
		return 0
	}
	vm.handlers = append(vm.handlers, h)
	return 0
}

// zcl.decode(cluster, hex [, manufacturer]) -> frame table | nil, error
//
// cluster is a name or a numeric ID.
func zclDecode(L *lua.LState, e *Engine) int {
	registry := e.pipeline.Registry()
	manufacturer := uint16(L.OptInt(3, 0))

	var clusterID uint16
	switch v := L.CheckAny(1).(type) {
	case lua.LNumber:
		clusterID = uint16(v)
	case lua.LString:
		c, err := registry.Cluster(zcl.ParseKey(string(v)), manufacturer)
		if err != nil {
			return pushError(L, err.Error())
		}
		clusterID = c.ID
	default:
		L.ArgError(1, "cluster must be a name or a number")
		return 0
	}

	data, err := hex.DecodeString(strings.ReplaceAll(L.CheckString(2), " ", ""))
	if err != nil {
		return pushError(L, "invalid hex: "+err.Error())
	}

	ev := e.pipeline.Decode(source.RawFrame{
		Source:           "script",
		Time:             time.Now(),
		ClusterID:        clusterID,
		ManufacturerHint: manufacturer,
		Data:             data,
	})
	if ev.Error != "" {
		return pushError(L, ev.Error)
	}
	view := frameView(ev)
	L.Push(goToLua(L, view["frame"]))
	return 1
}

// zcl.encode(request) -> hex | nil, error
//
// request has the fields of the HTTP encode body: frameType, direction,
// cluster, command, payload and so on.
func zclEncode(L *lua.LState, e *Engine) int {
	body, err := json.Marshal(luaToGo(L.CheckTable(1)))
	if err != nil {
		return pushError(L, err.Error())
	}
	frame, err := e.pipeline.Registry().DecodeFrameRequest(body)
	if err != nil {
		return pushError(L, err.Error())
	}
	data, err := frame.MarshalBinary()
	if err != nil {
		return pushError(L, err.Error())
	}
	L.Push(lua.LString(hex.EncodeToString(data)))
	return 1
}

// zcl.after(seconds, callback) runs callback later on the script's VM.
func zclAfter(L *lua.LState, vm *scriptVM, e *Engine) int {
	seconds := L.CheckNumber(1)
	fn := L.CheckFunction(2)

	go func() {
		timer := time.NewTimer(time.Duration(float64(seconds) * float64(time.Second)))
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-vm.ctx.Done():
			return
		}

		select {
		case vm.commands <- func(L *lua.LState) {
			if err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
				e.logger.Error("after callback error", "id", vm.id, "err", err)
			}
		}:
		case <-vm.ctx.Done():
		default:
			e.logger.Warn("after: command channel full", "id", vm.id)
		}
	}()
	return 0
}

// zcl.log(msg) logs msg and publishes it to stream subscribers.
func zclLog(L *lua.LState, vm *scriptVM, e *Engine) int {
	msg := L.CheckString(1)
	e.logger.Info("script log", "id", vm.id, "msg", msg)
	e.pipeline.Events().Emit(sniffer.Event{
		Type: sniffer.EventScriptLog,
		Data: sniffer.ScriptLog{Script: vm.id, Message: msg},
	})
	return 0
}

func pushError(L *lua.LState, msg string) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(msg))
	return 2
}
