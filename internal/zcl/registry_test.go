package zcl

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func onOffDef() ClusterDef {
	return ClusterDef{
		ID:   0x0006,
		Name: "genOnOff",
		Attributes: []AttributeDef{
			{ID: 0x0000, Name: "onOff", Type: TypeBool, Access: AccessRead | AccessReport},
			{ID: 0x4001, Name: "onTime", Type: TypeUint16, Access: AccessRead | AccessWrite},
		},
		Commands: []CommandDef{
			{ID: 0x00, Name: "off", Direction: DirectionToServer},
			{ID: 0x01, Name: "on", Direction: DirectionToServer},
			{ID: 0x40, Name: "offWithEffect", Direction: DirectionToServer, Params: []ParamDef{
				param("effectid", TypeUint8), param("effectvariant", TypeUint8),
			}},
		},
	}
}

func TestRegistryGet(t *testing.T) {
	r, err := NewRegistry(testLogger(), onOffDef())
	if err != nil {
		t.Fatal(err)
	}

	got := r.Get(0x0006)
	if got == nil {
		t.Fatal("cluster not found")
	}
	if got.Name != "genOnOff" {
		t.Errorf("name = %q, want %q", got.Name, "genOnOff")
	}
	if len(got.Attributes) != 2 {
		t.Errorf("attrs = %d, want 2", len(got.Attributes))
	}
	if r.Get(0x9999) != nil {
		t.Error("expected nil for unknown cluster")
	}
}

func TestRegistryMerge(t *testing.T) {
	overlay := ClusterDef{
		ID: 0x0006,
		Attributes: []AttributeDef{
			{ID: 0x0000, Name: "ignored", Type: TypeUint8},
			{ID: 0xF000, Name: "vendorMode", Type: TypeEnum8, Access: AccessRead},
		},
		Commands: []CommandDef{
			{ID: 0x01, Name: "ignored", Direction: DirectionToServer},
			{ID: 0x01, Name: "vendorAck", Direction: DirectionToClient},
		},
	}
	r, err := NewRegistry(testLogger(), onOffDef(), overlay)
	if err != nil {
		t.Fatal(err)
	}

	c := r.Get(0x0006)
	if len(c.Attributes) != 3 {
		t.Errorf("attrs = %d, want 3", len(c.Attributes))
	}
	if a := c.FindAttribute(0x0000); a.Name != "onOff" {
		t.Errorf("existing attribute replaced by %q", a.Name)
	}
	if a := c.FindAttribute(0xF000); a == nil || a.Name != "vendorMode" {
		t.Error("merged attribute missing")
	}
	if cmd := c.FindCommand(0x01, DirectionToServer); cmd.Name != "on" {
		t.Errorf("existing command replaced by %q", cmd.Name)
	}
	if cmd := c.FindCommand(0x01, DirectionToClient); cmd == nil || cmd.Name != "vendorAck" {
		t.Error("merged response missing")
	}
}

func TestRegistryDoesNotAliasInput(t *testing.T) {
	def := onOffDef()
	r, err := NewRegistry(testLogger(), def)
	if err != nil {
		t.Fatal(err)
	}
	def.Attributes[0].Name = "changed"
	if r.Get(0x0006).Attributes[0].Name != "onOff" {
		t.Error("registry shares attribute slice with caller")
	}
}

func TestRegistryManufacturerVariants(t *testing.T) {
	r, err := NewRegistry(testLogger(),
		ClusterDef{ID: 0xFC00, Name: "vendorB", ManufacturerCode: 0x10F2},
		ClusterDef{ID: 0xFC00, Name: "vendorDefault"},
		ClusterDef{ID: 0xFC00, Name: "vendorC", ManufacturerCode: 0x1234},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		manuf uint16
		want  string
	}{
		{0, "vendorDefault"},
		{0x10F2, "vendorB"},
		{0x1234, "vendorC"},
		{123, "vendorDefault"},
	}
	for _, tt := range tests {
		c, err := r.Cluster(ByID(0xFC00), tt.manuf)
		if err != nil {
			t.Fatal(err)
		}
		if c.Name != tt.want {
			t.Errorf("manufacturer 0x%04X: got %q, want %q", tt.manuf, c.Name, tt.want)
		}
	}

	// Names bypass the manufacturer.
	c, err := r.Cluster(ByName("vendorB"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if c.ManufacturerCode != 0x10F2 {
		t.Errorf("manufacturer = 0x%04X, want 0x10F2", c.ManufacturerCode)
	}

	all := r.All()
	if len(all) != 3 || all[0].Name != "vendorDefault" || all[2].Name != "vendorC" {
		t.Errorf("All() order wrong: %v, %v, %v", all[0].Name, all[1].Name, all[2].Name)
	}
}

func TestRegistrySingleManufacturerCluster(t *testing.T) {
	r, err := NewRegistry(testLogger(), ClusterDef{ID: 0xFC0F, Name: "vendorOnly", ManufacturerCode: 0x110C})
	if err != nil {
		t.Fatal(err)
	}
	if c := r.Get(0xFC0F); c == nil || c.Name != "vendorOnly" {
		t.Error("single manufacturer cluster should resolve without a code")
	}
}

func TestRegistryVariantsNeedDefault(t *testing.T) {
	_, err := NewRegistry(testLogger(),
		ClusterDef{ID: 0xFC00, Name: "a", ManufacturerCode: 1},
		ClusterDef{ID: 0xFC00, Name: "b", ManufacturerCode: 2},
	)
	if err == nil || !strings.Contains(err.Error(), "no default") {
		t.Errorf("got %v, want missing default error", err)
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	_, err := NewRegistry(testLogger(),
		ClusterDef{ID: 0x0001, Name: "same"},
		ClusterDef{ID: 0x0002, Name: "same"},
	)
	if err == nil {
		t.Error("expected duplicate name error")
	}
}

func TestRegistryNamelessCluster(t *testing.T) {
	_, err := NewRegistry(testLogger(), ClusterDef{ID: 0x0001})
	if err == nil {
		t.Error("expected error for cluster without name")
	}
}

func TestRegistryUnknownCluster(t *testing.T) {
	r, err := NewRegistry(testLogger(), onOffDef())
	if err != nil {
		t.Fatal(err)
	}

	_, err = r.Cluster(ByName("notExisting"), 0)
	if !errors.Is(err, ErrUnknownCluster) {
		t.Fatalf("got %v, want ErrUnknownCluster", err)
	}
	if want := "zcl: cluster with key 'notExisting' does not exist"; err.Error() != want {
		t.Errorf("error %q, want %q", err.Error(), want)
	}

	var lookup *LookupError
	if _, err = r.Cluster(ByID(0x0099), 0); !errors.As(err, &lookup) {
		t.Fatalf("got %T, want *LookupError", err)
	}
	if lookup.Key.String() != "153" {
		t.Errorf("key = %q, want 153", lookup.Key.String())
	}

	if _, err = r.Cluster(Key{}, 0); !errors.Is(err, ErrUnknownCluster) {
		t.Errorf("zero key: got %v, want ErrUnknownCluster", err)
	}
}

func TestClusterLookups(t *testing.T) {
	r, err := NewRegistry(testLogger(), onOffDef())
	if err != nil {
		t.Fatal(err)
	}
	c, err := r.Cluster(ByName("genOnOff"), 0)
	if err != nil {
		t.Fatal(err)
	}

	byID, err := c.Command(ByID(0))
	if err != nil {
		t.Fatal(err)
	}
	byName, err := c.Command(ByName("off"))
	if err != nil {
		t.Fatal(err)
	}
	if byID != byName || byID.Name != "off" {
		t.Errorf("command 0 = %q, want the same definition as \"off\"", byID.Name)
	}

	attr, err := c.Attribute(ByID(16385))
	if err != nil {
		t.Fatal(err)
	}
	if attr.Name != "onTime" {
		t.Errorf("attribute 16385 = %q, want onTime", attr.Name)
	}

	_, err = c.Attribute(ByName("notExisting"))
	if want := "zcl: cluster 'genOnOff' has no attribute 'notExisting'"; err == nil || err.Error() != want {
		t.Errorf("error %v, want %q", err, want)
	}
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Error("attribute error should unwrap to ErrUnknownAttribute")
	}

	_, err = c.Command(ByName("notExisting"))
	if want := "zcl: cluster 'genOnOff' has no command 'notExisting'"; err == nil || err.Error() != want {
		t.Errorf("error %v, want %q", err, want)
	}

	_, err = c.CommandResponse(ByName("off"))
	if want := "zcl: cluster 'genOnOff' has no command response 'off'"; err == nil || err.Error() != want {
		t.Errorf("error %v, want %q", err, want)
	}
	if !errors.Is(err, ErrUnknownCommand) {
		t.Error("command error should unwrap to ErrUnknownCommand")
	}

	if !c.HasAttribute(ByName("onOff")) || !c.HasAttribute(ByID(0)) {
		t.Error("HasAttribute missed onOff")
	}
	if c.HasAttribute(ByName("NOTEXISTING")) || c.HasAttribute(ByID(910)) {
		t.Error("HasAttribute matched an unknown attribute")
	}
}

func TestAttributeForManufacturer(t *testing.T) {
	c := ClusterDef{
		ID:   0x0102,
		Name: "covering",
		Attributes: []AttributeDef{
			{ID: 0x0000, Name: "windowCoveringType", Type: TypeEnum8},
			{ID: 0x1000, Name: "vendorGuardTime", Type: TypeUint8, ManufacturerCode: 0x10F2},
			{ID: 0x1000, Name: "otherVendorMode", Type: TypeUint16, ManufacturerCode: 0x1234},
		},
	}

	a, err := c.AttributeFor(ByID(0x1000), 0x1234)
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "otherVendorMode" {
		t.Errorf("got %q, want otherVendorMode", a.Name)
	}

	// A scoped attribute is still found for another manufacturer.
	a, err = c.AttributeFor(ByID(0x1000), 123)
	if err != nil {
		t.Fatal(err)
	}
	if a.ManufacturerCode == 0 {
		t.Errorf("got unscoped %q", a.Name)
	}

	a, err = c.AttributeFor(ByName("vendorGuardTime"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if a.Type != TypeUint8 || a.ManufacturerCode != 0x10F2 {
		t.Errorf("got %+v", a)
	}
}

func TestAccessFlags(t *testing.T) {
	a := AttributeDef{Access: AccessRead | AccessReport}
	if !a.IsReadable() || a.IsWritable() || !a.IsReportable() {
		t.Errorf("access %d decoded wrong", a.Access)
	}
}

func TestDeepCopy(t *testing.T) {
	orig := onOffDef()
	cp := orig.DeepCopy()
	cp.Attributes[0].Name = "changed"
	cp.Commands[2].Params[0].Name = "changed"
	if orig.Attributes[0].Name != "onOff" {
		t.Error("attribute shared with copy")
	}
	if orig.Commands[2].Params[0].Name != "effectid" {
		t.Error("params shared with copy")
	}
}

func TestGlobalCommandLookup(t *testing.T) {
	cmd, err := GlobalCommand(ByName("readRsp"))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.ID != FoundationReadAttributesResponse {
		t.Errorf("readRsp ID = %d, want 1", cmd.ID)
	}

	cmd, err = GlobalCommand(ByID(uint16(FoundationDiscoverAttributesExtendedResp)))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Name != "discoverExtRsp" {
		t.Errorf("0x16 = %q, want discoverExtRsp", cmd.Name)
	}

	_, err = GlobalCommand(ByName("nonexisting"))
	if want := "zcl: global command with key 'nonexisting' does not exist"; err == nil || err.Error() != want {
		t.Errorf("error %v, want %q", err, want)
	}
	if !errors.Is(err, ErrUnknownGlobalCommand) {
		t.Error("error should unwrap to ErrUnknownGlobalCommand")
	}

	if n := len(GlobalCommands()); n != 23 {
		t.Errorf("%d global commands, want 23", n)
	}
	for _, cmd := range GlobalCommands() {
		if _, ok := globalCodecs[cmd.ID]; !ok {
			t.Errorf("global command %s has no payload codec", cmd.Name)
		}
	}
}
