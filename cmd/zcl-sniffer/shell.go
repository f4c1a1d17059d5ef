package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chzyer/readline"

	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/zcl"
)

// shell is the interactive decode prompt started by -shell.
type shell struct {
	registry *zcl.Registry
	out      io.Writer
}

func runShell(registry *zcl.Registry) error {
	s := &shell{registry: registry}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "zcl> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()
	s.out = rl.Stdout()

	s.printHelp()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		if !s.exec(line) {
			return nil
		}
	}
}

func (s *shell) completer() *readline.PrefixCompleter {
	clusterNames := func(string) []string {
		all := s.registry.All()
		names := make([]string, 0, len(all))
		for _, c := range all {
			names = append(names, c.Name)
		}
		return names
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("decode", readline.PcItemDynamic(clusterNames)),
		readline.PcItem("encode"),
		readline.PcItem("clusters"),
		readline.PcItem("cluster", readline.PcItemDynamic(clusterNames)),
		readline.PcItem("global"),
		readline.PcItem("classify"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// exec runs one command line. It returns false when the shell should exit.
func (s *shell) exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}
	cmd, rest, _ := strings.Cut(input, " ")
	args := strings.Fields(rest)

	switch strings.ToLower(cmd) {
	case "help", "?":
		s.printHelp()
	case "decode", "d":
		s.cmdDecode(args)
	case "encode", "e":
		s.cmdEncode(strings.TrimSpace(rest))
	case "clusters", "ls":
		s.cmdClusters(args)
	case "cluster", "c":
		s.cmdCluster(args)
	case "global", "g":
		s.cmdGlobal()
	case "classify":
		s.cmdClassify(args)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.out, `
ZCL shell commands:
  decode <cluster>[@<manuf>] <hex>  - Decode a frame (hex may contain spaces)
  encode <json>                     - Build a frame from a JSON frame request
  clusters [filter]                 - List registered clusters
  cluster <cluster>[@<manuf>]       - Show attributes and commands of a cluster
  global                            - List foundation commands
  classify <type>                   - Classify a data type as analog or discrete
  help                              - Show this help
  quit                              - Exit

  <cluster> is a name (genOnOff) or an ID (6, 0x0006); <manuf> is hex (10f2).`)
}

// parseClusterArg splits "<cluster>[@<manuf>]" and resolves the cluster.
// Numeric IDs are returned even when unregistered.
func (s *shell) parseClusterArg(arg string) (uint16, uint16, error) {
	name, manufStr, hasManuf := strings.Cut(arg, "@")
	var manufacturer uint16
	if hasManuf {
		var err error
		if manufacturer, err = source.ParseHex16(manufStr); err != nil {
			return 0, 0, fmt.Errorf("manufacturer %q: %w", manufStr, err)
		}
	}
	key := zcl.ParseKey(name)
	if id, ok := key.ID(); ok {
		return id, manufacturer, nil
	}
	c, err := s.registry.Cluster(key, manufacturer)
	if err != nil {
		return 0, 0, err
	}
	return c.ID, manufacturer, nil
}

func (s *shell) cmdDecode(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: decode <cluster>[@<manuf>] <hex>")
		return
	}
	clusterID, manufacturer, err := s.parseClusterArg(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	data, err := hex.DecodeString(strings.Join(args[1:], ""))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid hex: %v\n", err)
		return
	}
	frame, err := s.registry.ParseFrame(clusterID, data, manufacturer)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	out, err := json.MarshalIndent(frame, "", "  ")
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, string(out))
}

func (s *shell) cmdEncode(request string) {
	if request == "" {
		fmt.Fprintln(s.out, `Usage: encode {"frameType":1,"cluster":"genOnOff","command":"on"}`)
		return
	}
	frame, err := s.registry.DecodeFrameRequest([]byte(request))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	data, err := frame.MarshalBinary()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, hex.EncodeToString(data))
}

func (s *shell) cmdClusters(args []string) {
	filter := ""
	if len(args) > 0 {
		filter = strings.ToLower(args[0])
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, c := range s.registry.All() {
		if filter != "" && !strings.Contains(strings.ToLower(c.Name), filter) {
			continue
		}
		manuf := ""
		if c.ManufacturerCode != 0 {
			manuf = fmt.Sprintf("manuf 0x%04x", c.ManufacturerCode)
		}
		fmt.Fprintf(tw, "0x%04x\t%s\t%s\n", c.ID, c.Name, manuf)
	}
	tw.Flush()
}

func (s *shell) cmdCluster(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: cluster <cluster>[@<manuf>]")
		return
	}
	name, manufStr, hasManuf := strings.Cut(args[0], "@")
	var manufacturer uint16
	if hasManuf {
		var err error
		if manufacturer, err = source.ParseHex16(manufStr); err != nil {
			fmt.Fprintf(s.out, "Error: manufacturer %q: %v\n", manufStr, err)
			return
		}
	}
	c, err := s.registry.Cluster(zcl.ParseKey(name), manufacturer)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "%s (0x%04x)", c.Name, c.ID)
	if c.ManufacturerCode != 0 {
		fmt.Fprintf(s.out, " manufacturer 0x%04x", c.ManufacturerCode)
	}
	fmt.Fprintln(s.out)

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Attributes:")
	for _, a := range c.Attributes {
		fmt.Fprintf(tw, "  0x%04x\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, accessString(&a))
	}
	fmt.Fprintln(tw, "Commands:")
	for _, cmd := range c.Commands {
		fmt.Fprintf(tw, "  0x%02x\t%s\t%s\t%s\n", cmd.ID, cmd.Name, cmd.Direction, paramsString(cmd.Params))
	}
	tw.Flush()
}

func accessString(a *zcl.AttributeDef) string {
	var b strings.Builder
	for _, f := range []struct {
		ok   bool
		flag byte
	}{{a.IsReadable(), 'r'}, {a.IsWritable(), 'w'}, {a.IsReportable(), 'p'}} {
		if f.ok {
			b.WriteByte(f.flag)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func paramsString(params []zcl.ParamDef) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+":"+p.Type.String())
	}
	return strings.Join(parts, " ")
}

func (s *shell) cmdGlobal() {
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, cmd := range zcl.GlobalCommands() {
		fmt.Fprintf(tw, "0x%02x\t%s\n", cmd.ID, cmd.Name)
	}
	tw.Flush()
}

func (s *shell) cmdClassify(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: classify <type name or code>")
		return
	}
	t, err := zcl.ParseDataType(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	class, err := zcl.Classify(t)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s (0x%02x): %s\n", t, uint16(t), class)
}
