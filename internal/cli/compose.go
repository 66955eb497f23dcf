package cli

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/motorpool/internal/composer"
	"github.com/mesh-intelligence/motorpool/pkg/types"
)

type composeFlags struct {
	with []string
	kind string
	set  []string
	from string
}

func newComposeCmd(a *app) *cobra.Command {
	var f composeFlags

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Assemble a vehicle and print its description",
		Long: `Assemble a vehicle from named fields and print its layered description.

Capabilities are chosen with --with (passenger, cargo) or by kind with --kind
(car, passenger_car, truck, pickup). Fields come from a YAML file (--from)
and/or repeated --set name=value pairs; --set wins on conflicts. In the
YAML file make and model are read as text even when they look numeric.`,
		Example: `  motorpool compose --with passenger,cargo \
    --set make=Toyota --set model=Hilux --set year=2023 \
    --set passengers=5 --set capacity=1.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, a, f)
		},
	}

	cmd.Flags().StringSliceVar(&f.with, "with", nil, "capabilities to compose (passenger, cargo)")
	cmd.Flags().StringVar(&f.kind, "kind", "", "entity kind (car, passenger_car, truck, pickup)")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "field as name=value (repeatable)")
	cmd.Flags().StringVar(&f.from, "from", "", "YAML file of fields")
	cmd.MarkFlagsMutuallyExclusive("with", "kind")

	return cmd
}

func runCompose(cmd *cobra.Command, a *app, f composeFlags) error {
	fields, err := collectFields(f)
	if err != nil {
		return err
	}

	var e *types.Entity
	if f.kind != "" {
		kind, err := types.ParseKind(f.kind)
		if err != nil {
			return err
		}
		e, err = a.composer.CreateKind(kind, fields)
		if err != nil {
			return fmt.Errorf("compose %s: %w", kind, err)
		}
	} else {
		caps, err := types.ParseCapabilities(strings.Join(f.with, ","))
		if err != nil {
			return err
		}
		e, err = a.composer.Create(caps, fields)
		if err != nil {
			return fmt.Errorf("compose: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		data, err := json.MarshalIndent(composeResult{Entity: e, Description: composer.Render(e)}, "", "  ")
		if err != nil {
			return &exitError{code: exitSysError, err: fmt.Errorf("encode entity: %w", err)}
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, composer.Render(e))
	return nil
}

// composeResult is the --json output of compose.
type composeResult struct {
	Entity      *types.Entity `json:"entity"`
	Description string        `json:"description"`
}

// collectFields merges fields from --from and --set, in that order.
func collectFields(f composeFlags) (types.Fields, error) {
	fields := types.Fields{}
	if f.from != "" {
		loaded, err := readFieldsFile(f.from)
		if err != nil {
			return nil, err
		}
		for k, v := range loaded {
			fields[k] = v
		}
	}
	for _, kv := range f.set {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, &exitError{code: exitUserError, err: fmt.Errorf("--set %q: want name=value", kv)}
		}
		fields[name] = value
	}
	return fields, nil
}

// textFields are kept verbatim from YAML, so "model: 86" stays "86"
// instead of decoding as an int.
var textFields = map[string]bool{
	types.FieldMake:  true,
	types.FieldModel: true,
}

// readFieldsFile decodes a flat YAML mapping of field names to scalars.
func readFieldsFile(path string) (types.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &exitError{code: exitSysError, err: fmt.Errorf("read fields file: %w", err)}
	}
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, &exitError{code: exitUserError, err: fmt.Errorf("parse fields file %s: %w", path, err)}
	}

	fields := make(types.Fields, len(nodes))
	for name, node := range nodes {
		if textFields[name] && node.Kind == yaml.ScalarNode {
			fields[name] = node.Value
			continue
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, &exitError{code: exitUserError, err: fmt.Errorf("parse fields file %s: field %q: %w", path, name, err)}
		}
		fields[name] = v
	}
	return fields, nil
}
