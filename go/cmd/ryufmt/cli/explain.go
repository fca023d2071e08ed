/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"sigs.k8s.io/yaml"

	"vitess.io/floatfmt/go/ryu"
)

// explanation is one explained value, in pipeline order.
type explanation struct {
	Value   string  `json:"value"`
	BitSize int     `json:"bitSize"`
	Stages  []stage `json:"stages"`
}

type stage struct {
	Name  string `json:"stage"`
	Value string `json:"value"`
}

var explainOutputs = []string{"table", "tree", "json", "yaml"}

func newExplainCmd(s *settings) *cobra.Command {
	output := explainOutputs[0]
	cmd := &cobra.Command{
		Use:   "explain [value ...]",
		Short: "Show every stage of the conversion of each value.",
		Long:  "Show every stage of the conversion of each value. Negative values must follow -- so they are not read as flags.",
		Example: "ryufmt explain 0.1\n" +
			"ryufmt explain -o json -- -2.5\n" +
			"ryufmt --float32 explain --output tree 1e-45",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.options()
			if err != nil {
				return err
			}
			vals, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			bitSize := s.bitSize()
			exps := make([]explanation, 0, len(vals))
			for _, v := range vals {
				f, err := parseValue(v, bitSize)
				if err != nil {
					return err
				}
				var tr ryu.Trace
				if bitSize == 32 {
					tr = ryu.Explain32(float32(f), opts)
				} else {
					tr = ryu.Explain64(f, opts)
				}
				exps = append(exps, explanation{Value: v, BitSize: bitSize, Stages: traceStages(tr, bitSize)})
			}
			return writeExplanations(cmd.OutOrStdout(), output, exps)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", output, "output format: table, tree, json or yaml")
	return cmd
}

func traceStages(tr ryu.Trace, bitSize int) []stage {
	stages := []stage{
		{"bits", fmt.Sprintf("0x%0*x", bitSize/4, tr.Bits)},
	}
	if tr.Literal != "" {
		return append(stages,
			stage{"literal", tr.Literal},
			stage{"output", tr.Output},
		)
	}
	d, iv, dt, digs := tr.Decoded, tr.Interval, tr.Decimal, tr.Digits
	return append(stages,
		stage{"decoded", fmt.Sprintf("neg=%t m=%d e2=%d", d.Neg, d.Mantissa, d.Exponent)},
		stage{"interval", fmt.Sprintf("mm=%d mv=%d mp=%d e2=%d even=%t", iv.MM, iv.MV, iv.MP, iv.Exponent, iv.Even)},
		stage{"decimal", fmt.Sprintf("dm=%d dv=%d dp=%d e10=%d", dt.DM, dt.DV, dt.DP, dt.Exponent)},
		stage{"exact", fmt.Sprintf("dm=%t dv=%t dp=%t inclusive=%t", dt.DMExact, dt.DVExact, dt.DPExact, dt.Inclusive)},
		stage{"digits", fmt.Sprintf("%d (%d digits, exponent %d)", digs.Mantissa, digs.Length, digs.Exponent)},
		stage{"output", tr.Output},
	)
}

func writeExplanations(w io.Writer, output string, exps []explanation) error {
	switch output {
	case "table":
		for _, e := range exps {
			if _, err := fmt.Fprintf(w, "%s (float%d)\n", e.Value, e.BitSize); err != nil {
				return err
			}
			if err := renderTable(w, e.Stages); err != nil {
				return err
			}
		}
		return nil
	case "tree":
		for _, e := range exps {
			if _, err := io.WriteString(w, asTree(e).String()); err != nil {
				return err
			}
		}
		return nil
	case "json":
		out, err := json.MarshalIndent(exps, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(exps)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("unknown output %q: expected one of %v", output, explainOutputs)
}

func renderTable(w io.Writer, stages []stage) error {
	table := tablewriter.NewWriter(w)
	table.Header("Stage", "Value")
	for _, st := range stages {
		if err := table.Append([]string{st.Name, st.Value}); err != nil {
			return err
		}
	}
	return table.Render()
}

func asTree(e explanation) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (float%d)", e.Value, e.BitSize))
	for _, st := range e.Stages {
		tree.AddNode(st.Name + ": " + st.Value)
	}
	return tree
}
