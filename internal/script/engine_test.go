//go:build !no_scripts

package script

import (
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"

	"zigbee-zcl/internal/sniffer"
	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/zcl"
	"zigbee-zcl/internal/zcl/clusters"
)

var (
	onOffFrame = source.RawFrame{Source: "test", ClusterID: 6, Data: []byte{0x01, 0x01, 0x40, 0x01, 0x00}}
	basicFrame = source.RawFrame{Source: "test", ClusterID: 0, Data: []byte{0x18, 0x04, 0x0b, 0x0c, 0x82}}
	badFrame   = source.RawFrame{Source: "test", ClusterID: 6, Data: []byte{0x01, 0x01}}
)

// startEngine loads files into a fresh engine. The returned channel carries
// script log messages, including those logged while loading.
func startEngine(t *testing.T, files map[string]string) (*Engine, *sniffer.Pipeline, <-chan sniffer.Event) {
	t.Helper()
	registry, err := clusters.Default()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	writeScripts(t, dir, files)
	m, err := NewManager(dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	p := sniffer.NewPipeline(registry, nil, sniffer.NewEventBus(testLogger()), testLogger())
	logs, cancel := p.Events().Subscribe(32, sniffer.EventScriptLog)
	t.Cleanup(cancel)

	e := NewEngine(p, m, testLogger())
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(e.Stop)
	return e, p, logs
}

func nextLog(t *testing.T, logs <-chan sniffer.Event) sniffer.ScriptLog {
	t.Helper()
	select {
	case ev := <-logs:
		return ev.Data.(sniffer.ScriptLog)
	case <-time.After(2 * time.Second):
		t.Fatal("no script log")
		return sniffer.ScriptLog{}
	}
}

func expectNoLog(t *testing.T, logs <-chan sniffer.Event) {
	t.Helper()
	select {
	case ev := <-logs:
		t.Errorf("unexpected log %+v", ev.Data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerReceivesMatchingFrames(t *testing.T) {
	_, p, logs := startEngine(t, map[string]string{"watch.lua": `
zcl.on({cluster = "genOnOff", command = "offWithEffect"}, function(ev)
  zcl.log(ev.frame.command .. " " .. ev.frame.payload.effectid .. " " .. ev.source)
end)
`})

	p.Process(basicFrame)
	p.Process(onOffFrame)

	got := nextLog(t, logs)
	if got.Script != "watch" || got.Message != "offWithEffect 1 test" {
		t.Errorf("log %+v", got)
	}
	expectNoLog(t, logs)
}

func TestErrorHandler(t *testing.T) {
	_, p, logs := startEngine(t, map[string]string{"errs.lua": `
zcl.on({errors = true}, function(ev) zcl.log("bad " .. ev.raw) end)
`})

	p.Process(onOffFrame)
	p.Process(badFrame)

	if got := nextLog(t, logs); got.Message != "bad 0101" {
		t.Errorf("log %+v", got)
	}
	expectNoLog(t, logs)
}

func TestDecodeAndEncodeFromLua(t *testing.T) {
	_, _, logs := startEngine(t, map[string]string{"codec.lua": `
local f = zcl.decode("genOnOff", "01 01 40 01 00")
zcl.log(f.cluster .. "/" .. f.command)
local g = zcl.decode(0xfc00, "0008000000", 0x10f2)
zcl.log(g.cluster)
local bad, err = zcl.decode(6, "0101")
zcl.log(tostring(bad) .. " " .. err)
zcl.log(zcl.encode({frameType = 1, transactionSequenceNumber = 1, cluster = "genOnOff",
  command = "offWithEffect", payload = {effectid = 1, effectvariant = 0}}))
local none, encErr = zcl.encode({frameType = 1, cluster = "genOnOff", command = "nope"})
zcl.log(tostring(none) .. " " .. encErr)
`})

	if got := nextLog(t, logs).Message; got != "genOnOff/offWithEffect" {
		t.Errorf("decode by name: %q", got)
	}
	if got := nextLog(t, logs).Message; got != "manuSpecificUbisysDeviceSetup" {
		t.Errorf("decode with manufacturer: %q", got)
	}
	if got := nextLog(t, logs).Message; !strings.HasPrefix(got, "nil ") || !strings.Contains(got, zcl.ErrFrameTooShort.Error()) {
		t.Errorf("decode error: %q", got)
	}
	if got := nextLog(t, logs).Message; got != "0101400100" {
		t.Errorf("encode: %q", got)
	}
	if got := nextLog(t, logs).Message; !strings.HasPrefix(got, "nil ") || !strings.Contains(got, "nope") {
		t.Errorf("encode error: %q", got)
	}
}

func TestAfter(t *testing.T) {
	_, _, logs := startEngine(t, map[string]string{"later.lua": `
zcl.after(0.01, function() zcl.log("later") end)
`})
	if got := nextLog(t, logs).Message; got != "later" {
		t.Errorf("log %q", got)
	}
}

func TestScriptsThatDoNotLoad(t *testing.T) {
	e, _, _ := startEngine(t, map[string]string{
		"ok.lua":       `zcl.on({}, function(ev) end)`,
		"sandbox.lua":  `os.exit(1)`,
		"io.lua":       `io.open("/etc/passwd")`,
		"syntax.lua":   `zcl.on(`,
		"combined.lua": `zcl.on({errors = true, cluster = "genOnOff"}, function(ev) end)`,
		"off.lua":      "-- {\"enabled\": false}\nzcl.log(\"never\")\n",
	})

	running := e.Running()
	if len(running) != 1 || running[0] != "ok" {
		t.Errorf("running %v, want [ok]", running)
	}
}

func TestReload(t *testing.T) {
	e, p, logs := startEngine(t, map[string]string{"r.lua": `
zcl.on({}, function(ev) zcl.log("v1") end)
`})
	writeScripts(t, e.manager.dir, map[string]string{"r.lua": `
zcl.on({}, function(ev) zcl.log("v2") end)
`})
	if err := e.Reload("r"); err != nil {
		t.Fatal(err)
	}

	p.Process(onOffFrame)
	if got := nextLog(t, logs).Message; got != "v2" {
		t.Errorf("log %q, want v2", got)
	}
	expectNoLog(t, logs)

	writeScripts(t, e.manager.dir, map[string]string{"r.lua": "-- {\"enabled\": false}\n"})
	if err := e.Reload("r"); err != nil {
		t.Fatal(err)
	}
	if len(e.Running()) != 0 {
		t.Errorf("running %v after disabling", e.Running())
	}
}

func TestMatchesHandler(t *testing.T) {
	p := sniffer.NewPipeline(mustRegistry(t), nil, sniffer.NewEventBus(testLogger()), testLogger())
	decoded := p.Decode(onOffFrame)
	failed := p.Decode(badFrame)

	tests := []struct {
		name    string
		handler frameHandler
		evType  string
		ev      *sniffer.FrameEvent
		want    bool
	}{
		{"no filter", frameHandler{eventType: sniffer.EventFrameDecoded}, sniffer.EventFrameDecoded, decoded, true},
		{"cluster", frameHandler{eventType: sniffer.EventFrameDecoded, cluster: "genOnOff"}, sniffer.EventFrameDecoded, decoded, true},
		{"cluster mismatch", frameHandler{eventType: sniffer.EventFrameDecoded, cluster: "genBasic"}, sniffer.EventFrameDecoded, decoded, false},
		{"command", frameHandler{eventType: sniffer.EventFrameDecoded, command: "offWithEffect"}, sniffer.EventFrameDecoded, decoded, true},
		{"command mismatch", frameHandler{eventType: sniffer.EventFrameDecoded, command: "on"}, sniffer.EventFrameDecoded, decoded, false},
		{"wrong type", frameHandler{eventType: sniffer.EventFrameError}, sniffer.EventFrameDecoded, decoded, false},
		{"error event", frameHandler{eventType: sniffer.EventFrameError}, sniffer.EventFrameError, failed, true},
		{"filter on failed frame", frameHandler{eventType: sniffer.EventFrameError, cluster: "genOnOff"}, sniffer.EventFrameError, failed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesHandler(tt.handler, tt.evType, tt.ev); got != tt.want {
				t.Errorf("matchesHandler() = %v, want %v", got, tt.want)
			}
		})
	}
}

func mustRegistry(t *testing.T) *zcl.Registry {
	t.Helper()
	r, err := clusters.Default()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestLuaConversions(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	in := map[string]any{
		"n":    float64(3),
		"s":    "x",
		"b":    true,
		"nil":  nil,
		"list": []any{float64(1), "two"},
		"obj":  map[string]any{"k": "v"},
	}
	back, ok := luaToGo(goToLua(L, in)).(map[string]any)
	if !ok {
		t.Fatal("table did not convert to a map")
	}
	if back["n"] != float64(3) || back["s"] != "x" || back["b"] != true {
		t.Errorf("scalars %v", back)
	}
	if _, present := back["nil"]; present {
		t.Error("nil entries are not stored in Lua tables")
	}
	list, ok := back["list"].([]any)
	if !ok || len(list) != 2 || list[0] != float64(1) || list[1] != "two" {
		t.Errorf("list %v", back["list"])
	}
	if obj, ok := back["obj"].(map[string]any); !ok || obj["k"] != "v" {
		t.Errorf("obj %v", back["obj"])
	}
}
