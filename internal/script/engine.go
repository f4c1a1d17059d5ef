//go:build !no_scripts

// Package script runs Lua hooks against decoded frames.
package script

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"zigbee-zcl/internal/sniffer"
)

// handlerTimeout bounds a single handler invocation.
const handlerTimeout = 5 * time.Second

// frameHandler is a Lua callback registered with zcl.on.
type frameHandler struct {
	eventType string // sniffer.EventFrameDecoded or sniffer.EventFrameError
	cluster   string // filter: cluster name (empty = any)
	command   string // filter: command name (empty = any)
	fn        *lua.LFunction
}

// scriptVM is a running Lua VM for a single script. Only the goroutine
// draining commands touches state after the script has loaded.
type scriptVM struct {
	id       string
	state    *lua.LState
	commands chan func(*lua.LState)
	handlers []frameHandler
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	mu       sync.Mutex // protects handlers
}

// Engine runs one VM per enabled script and dispatches pipeline events to
// the handlers they register.
type Engine struct {
	pipeline *sniffer.Pipeline
	manager  *Manager
	logger   *slog.Logger

	mu    sync.Mutex
	vms   map[string]*scriptVM
	unsub func()
}

func NewEngine(p *sniffer.Pipeline, mgr *Manager, logger *slog.Logger) *Engine {
	return &Engine{
		pipeline: p,
		manager:  mgr,
		logger:   logger.With("component", "script"),
		vms:      make(map[string]*scriptVM),
	}
}

// Start subscribes to the event bus and loads all enabled scripts. A script
// that fails to load is logged and skipped.
func (e *Engine) Start() error {
	scripts, err := e.manager.List()
	if err != nil {
		return err
	}

	e.unsub = e.pipeline.Events().OnAll(e.dispatchEvent)

	for _, s := range scripts {
		if !s.Meta.Enabled {
			continue
		}
		if err := e.startScript(s); err != nil {
			e.logger.Error("start script", "id", s.ID, "err", err)
		}
	}
	e.logger.Info("script engine started", "scripts", len(e.Running()))
	return nil
}

// Stop unsubscribes from the bus and shuts every VM down.
func (e *Engine) Stop() {
	if e.unsub != nil {
		e.unsub()
	}

	e.mu.Lock()
	vms := e.vms
	e.vms = make(map[string]*scriptVM)
	e.mu.Unlock()

	for _, vm := range vms {
		vm.cancel()
		<-vm.done
	}
	e.logger.Info("script engine stopped")
}

// Running returns the IDs of the loaded scripts in order.
func (e *Engine) Running() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.vms))
	for id := range e.vms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reload stops the script's VM, if any, and starts it again from disk.
func (e *Engine) Reload(id string) error {
	e.stopScript(id)

	s, err := e.manager.Get(id)
	if err != nil {
		return fmt.Errorf("get script: %w", err)
	}
	if !s.Meta.Enabled {
		return nil
	}
	return e.startScript(s)
}

func (e *Engine) stopScript(id string) {
	e.mu.Lock()
	vm, ok := e.vms[id]
	delete(e.vms, id)
	e.mu.Unlock()

	if ok {
		vm.cancel()
		<-vm.done
		e.logger.Info("script stopped", "id", id)
	}
}

// newState returns a Lua state without file, OS or module access.
func newState() *lua.LState {
	L := lua.NewState()
	for _, name := range []string{"os", "io", "loadfile", "dofile", "require", "load", "debug", "package"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

func (e *Engine) startScript(s *Script) error {
	ctx, cancel := context.WithCancel(context.Background())
	L := newState()
	vm := &scriptVM{
		id:       s.ID,
		state:    L,
		commands: make(chan func(*lua.LState), 64),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	registerZCLModule(L, vm, e)

	// The top level only registers handlers; bound it like a handler call.
	loadCtx, loadCancel := context.WithTimeout(ctx, handlerTimeout)
	L.SetContext(loadCtx)
	err := L.DoString(s.Code)
	loadCancel()
	L.RemoveContext()
	if err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("execute script %s: %w", s.ID, err)
	}

	e.mu.Lock()
	e.vms[s.ID] = vm
	e.mu.Unlock()

	go func() {
		defer close(vm.done)
		defer L.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case fn := <-vm.commands:
				fn(L)
			}
		}
	}()

	e.logger.Info("script started", "id", s.ID, "name", s.Meta.Name)
	return nil
}

// dispatchEvent queues every matching handler on its VM. Events are dropped
// for VMs whose queue is full.
func (e *Engine) dispatchEvent(event sniffer.Event) {
	ev, ok := event.Data.(*sniffer.FrameEvent)
	if !ok {
		return
	}

	e.mu.Lock()
	vms := make([]*scriptVM, 0, len(e.vms))
	for _, vm := range e.vms {
		vms = append(vms, vm)
	}
	e.mu.Unlock()

	var view map[string]any
	for _, vm := range vms {
		vm.mu.Lock()
		handlers := make([]frameHandler, len(vm.handlers))
		copy(handlers, vm.handlers)
		vm.mu.Unlock()

		for _, h := range handlers {
			if !matchesHandler(h, event.Type, ev) {
				continue
			}
			if view == nil {
				view = frameView(ev)
			}
			fn := h.fn
			select {
			case <-vm.ctx.Done():
			case vm.commands <- func(L *lua.LState) { e.callHandler(L, vm, fn, view) }:
			default:
				e.logger.Warn("script command channel full, dropping event", "id", vm.id)
			}
		}
	}
}

func matchesHandler(h frameHandler, eventType string, ev *sniffer.FrameEvent) bool {
	if h.eventType != eventType {
		return false
	}
	if h.cluster == "" && h.command == "" {
		return true
	}
	if ev.Frame == nil {
		return false
	}
	if h.cluster != "" && !ev.Frame.MatchesCluster(h.cluster) {
		return false
	}
	if h.command != "" && !ev.Frame.MatchesCommand(h.command) {
		return false
	}
	return true
}

// frameView is the JSON form of ev as plain Go values, ready for goToLua.
func frameView(ev *sniffer.FrameEvent) map[string]any {
	data, err := json.Marshal(ev)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	var view map[string]any
	if err := json.Unmarshal(data, &view); err != nil {
		return map[string]any{"error": err.Error()}
	}
	return view
}

func (e *Engine) callHandler(L *lua.LState, vm *scriptVM, fn *lua.LFunction, view map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("lua handler panic", "id", vm.id, "err", r)
		}
	}()

	ctx, cancel := context.WithTimeout(vm.ctx, handlerTimeout)
	defer cancel()
	L.SetContext(ctx)
	defer L.RemoveContext()

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, goToLua(L, view)); err != nil {
		e.logger.Error("lua handler error", "id", vm.id, "err", err)
	}
}

// goToLua converts a decoded JSON value to a Lua value.
func goToLua(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case string:
		return lua.LString(val)
	case float64:
		return lua.LNumber(val)
	case int:
		return lua.LNumber(val)
	case map[string]any:
		t := L.NewTable()
		for k, vv := range val {
			t.RawSetString(k, goToLua(L, vv))
		}
		return t
	case []any:
		t := L.NewTable()
		for i, vv := range val {
			t.RawSetInt(i+1, goToLua(L, vv))
		}
		return t
	default:
		return lua.LString(fmt.Sprintf("%v", val))
	}
}

// luaToGo converts a Lua value to a value encoding/json understands. Tables
// with a non-empty array part become slices, other tables become maps.
func luaToGo(v lua.LValue) any {
	switch val := v.(type) {
	case *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		return float64(val)
	case lua.LString:
		return string(val)
	case *lua.LTable:
		if n := val.MaxN(); n > 0 {
			list := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				list = append(list, luaToGo(val.RawGetInt(i)))
			}
			return list
		}
		m := make(map[string]any)
		val.ForEach(func(k, vv lua.LValue) {
			m[k.String()] = luaToGo(vv)
		})
		return m
	default:
		return v.String()
	}
}
