package zcl

// Access flags
const (
	AccessRead   uint8 = 0x01
	AccessWrite  uint8 = 0x02
	AccessReport uint8 = 0x04
)

// AttributeDef defines a ZCL attribute. A non-zero ManufacturerCode scopes
// the ID to that manufacturer.
type AttributeDef struct {
	ID               uint16   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Type             DataType `json:"type" yaml:"type"`
	Access           uint8    `json:"access,omitempty" yaml:"access"` // bitmask: 1=read, 2=write, 4=reportable
	ManufacturerCode uint16   `json:"manufacturerCode,omitempty" yaml:"manufacturerCode"`
}

// IsReadable returns true if the attribute can be read.
func (a *AttributeDef) IsReadable() bool {
	return a.Access&AccessRead != 0
}

// IsWritable returns true if the attribute can be written.
func (a *AttributeDef) IsWritable() bool {
	return a.Access&AccessWrite != 0
}

// IsReportable returns true if the attribute supports reporting.
func (a *AttributeDef) IsReportable() bool {
	return a.Access&AccessReport != 0
}

// CommandDirection indicates the direction of a cluster command.
type CommandDirection string

const (
	DirectionToServer CommandDirection = "toServer"
	DirectionToClient CommandDirection = "toClient"
)

// ConditionKind names a rule deciding whether a parameter is present.
type ConditionKind string

const (
	// CondStatusEquals: present when the "status" parameter equals Value.
	CondStatusEquals ConditionKind = "statusEquals"
	// CondStatusNotEquals: present when "status" differs from Value.
	CondStatusNotEquals ConditionKind = "statusNotEquals"
	// CondBitMaskSet: present when Param has all bits of Mask set.
	CondBitMaskSet ConditionKind = "bitMaskSet"
	// CondBitMaskClear: present when Param has none of the bits of Mask set.
	CondBitMaskClear ConditionKind = "bitMaskClear"
	// CondMinimumRemaining: present when at least Value bytes are left.
	CondMinimumRemaining ConditionKind = "minimumRemainingBufferBytes"
)

type Condition struct {
	Kind  ConditionKind `json:"kind" yaml:"kind"`
	Param string        `json:"param,omitempty" yaml:"param"`
	Value uint64        `json:"value,omitempty" yaml:"value"`
	Mask  uint64        `json:"mask,omitempty" yaml:"mask"`
}

// ParamDef is one field of a cluster-specific command payload.
type ParamDef struct {
	Name       string      `json:"name" yaml:"name"`
	Type       DataType    `json:"type" yaml:"type"`
	Conditions []Condition `json:"conditions,omitempty" yaml:"conditions"`
}

// CommandDef defines a command and its payload layout.
type CommandDef struct {
	ID        uint8            `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Direction CommandDirection `json:"direction,omitempty" yaml:"direction"`
	Params    []ParamDef       `json:"params,omitempty" yaml:"params"`
}

// ClusterDef defines a ZCL cluster with its attributes and commands.
// Commands sent to the server make up the command table; those sent to the
// client make up the command response table.
type ClusterDef struct {
	ID               uint16         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	ManufacturerCode uint16         `json:"manufacturerCode,omitempty" yaml:"manufacturerCode"`
	Attributes       []AttributeDef `json:"attributes,omitempty" yaml:"attributes"`
	Commands         []CommandDef   `json:"commands,omitempty" yaml:"commands"`
}

// FindAttribute looks up an attribute by ID. The global meaning of the ID
// wins over manufacturer-scoped ones.
func (c *ClusterDef) FindAttribute(id uint16) *AttributeDef {
	return c.findAttribute(ByID(id), 0)
}

// FindCommand looks up a command by ID and direction.
func (c *ClusterDef) FindCommand(id uint8, dir CommandDirection) *CommandDef {
	return c.findCommand(ByID(uint16(id)), dir)
}

func (c *ClusterDef) findAttribute(key Key, manufacturerCode uint16) *AttributeDef {
	var fallback *AttributeDef
	for i := range c.Attributes {
		a := &c.Attributes[i]
		if !key.matches(a.ID, a.Name) {
			continue
		}
		if a.ManufacturerCode == manufacturerCode {
			return a
		}
		if fallback == nil || a.ManufacturerCode == 0 {
			fallback = a
		}
	}
	return fallback
}

func (c *ClusterDef) findCommand(key Key, dir CommandDirection) *CommandDef {
	for i := range c.Commands {
		cmd := &c.Commands[i]
		if cmd.Direction == dir && key.matches(uint16(cmd.ID), cmd.Name) {
			return cmd
		}
	}
	return nil
}

// Attribute resolves an attribute by ID or name.
func (c *ClusterDef) Attribute(key Key) (*AttributeDef, error) {
	return c.AttributeFor(key, 0)
}

// AttributeFor resolves an attribute, preferring the variant scoped to
// manufacturerCode. An attribute that only exists for another manufacturer
// is still returned.
func (c *ClusterDef) AttributeFor(key Key, manufacturerCode uint16) (*AttributeDef, error) {
	if a := c.findAttribute(key, manufacturerCode); a != nil {
		return a, nil
	}
	return nil, &LookupError{Err: ErrUnknownAttribute, Cluster: c.Name, Table: TableAttributes, Key: key}
}

func (c *ClusterDef) HasAttribute(key Key) bool {
	return c.findAttribute(key, 0) != nil
}

// Command resolves a client to server command.
func (c *ClusterDef) Command(key Key) (*CommandDef, error) {
	if cmd := c.findCommand(key, DirectionToServer); cmd != nil {
		return cmd, nil
	}
	return nil, &LookupError{Err: ErrUnknownCommand, Cluster: c.Name, Table: TableCommands, Key: key}
}

// CommandResponse resolves a server to client command.
func (c *ClusterDef) CommandResponse(key Key) (*CommandDef, error) {
	if cmd := c.findCommand(key, DirectionToClient); cmd != nil {
		return cmd, nil
	}
	return nil, &LookupError{Err: ErrUnknownCommand, Cluster: c.Name, Table: TableCommandResponses, Key: key}
}

// DeepCopy returns a deep copy of the cluster definition.
func (c *ClusterDef) DeepCopy() *ClusterDef {
	cp := *c
	if c.Attributes != nil {
		cp.Attributes = make([]AttributeDef, len(c.Attributes))
		copy(cp.Attributes, c.Attributes)
	}
	if c.Commands != nil {
		cp.Commands = make([]CommandDef, len(c.Commands))
		for i, cmd := range c.Commands {
			cp.Commands[i] = cmd
			if cmd.Params != nil {
				cp.Commands[i].Params = make([]ParamDef, len(cmd.Params))
				copy(cp.Commands[i].Params, cmd.Params)
			}
		}
	}
	return &cp
}

// Merge adds attributes and commands from another definition (for custom
// definition overlays). Existing entries are kept.
func (c *ClusterDef) Merge(other *ClusterDef) {
	for _, attr := range other.Attributes {
		if !c.hasAttributeVariant(attr.ID, attr.ManufacturerCode) {
			c.Attributes = append(c.Attributes, attr)
		}
	}
	for _, cmd := range other.Commands {
		if c.FindCommand(cmd.ID, cmd.Direction) == nil {
			c.Commands = append(c.Commands, cmd)
		}
	}
}

func (c *ClusterDef) hasAttributeVariant(id, manufacturerCode uint16) bool {
	for _, a := range c.Attributes {
		if a.ID == id && a.ManufacturerCode == manufacturerCode {
			return true
		}
	}
	return false
}
