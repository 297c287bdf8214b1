package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/tween/pkg/preset"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preset",
		Short: "Manage stored presets",
		Long: `Manage the presets stored for the application.

Subcommands:
  save <preset.yaml> [--name NAME]   Validate and store a preset file
  show <name>                        Print a stored preset as YAML
  list                               List stored presets
  delete <name>                      Forget a stored preset

Presets are kept in the per-user data directory of the storage application
(store.app in tween.yaml, --app, or TWEEN_APP). When that directory is not
available the store runs in memory and nothing is kept after exit.`,
		Usage: "tween preset <save|show|list|delete> [args]",
		Run:   runPreset,
	})
}

func runPreset(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a subcommand is required (save, show, list or delete)")
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)

	sub, rest := args[0], args[1:]
	switch sub {
	case "save":
		return presetSave(store, rest)
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("usage: tween preset show <name>")
		}
		p, err := store.Get(rest[0])
		if err != nil {
			return err
		}
		data, err := preset.Marshal(p)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	case "list":
		names := store.Names()
		if len(names) == 0 {
			fmt.Fprintln(stdout, "No stored presets.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return nil
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: tween preset delete <name>")
		}
		ok, err := store.Delete(rest[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no preset named %q", rest[0])
		}
		fmt.Fprintf(stdout, "Deleted %s\n", rest[0])
		return nil
	default:
		return fmt.Errorf("unknown preset subcommand %q (use save, show, list or delete)", sub)
	}
}

func presetSave(store *preset.Store, args []string) error {
	var name string
	var positional []string
	for i := 0; i < len(args); i++ {
		v, next, ok, err := flagValue(args, i, "--name")
		if err != nil {
			return err
		}
		if ok {
			name, i = v, next
			continue
		}
		if strings.HasPrefix(args[i], "--") {
			return fmt.Errorf("unknown flag: %s", args[i])
		}
		positional = append(positional, args[i])
	}
	if len(positional) != 1 {
		return fmt.Errorf("usage: tween preset save <preset.yaml> [--name NAME]")
	}

	p, err := preset.Load(positional[0])
	if err != nil {
		return err
	}
	if name == "" {
		name = p.Name
	}
	if err := store.Save(name, p); err != nil {
		return err
	}
	where := "memory only"
	if store.Persistent() {
		where = "persistent"
	}
	fmt.Fprintf(stdout, "Saved %s (%s)\n", name, where)
	return nil
}
